package model

import "errors"

// ErrInvalidConfiguration is returned when a tunable (search radius, sampling
// distance, dedup identity radius) is zero or negative. It is reported before
// any external call is made.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrInvalidRoute is returned when a route contains a coordinate outside the
// valid latitude/longitude range. It is reported before sampling begins.
var ErrInvalidRoute = errors.New("invalid route")
