package model

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// LatLng represents a geographic coordinate in decimal degrees (WGS 84).
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToPoint converts the coordinate to an orb.Point ([lng, lat] order).
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Valid reports whether the coordinate is inside the WGS 84 range.
func (l LatLng) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// DistanceMeters returns the great-circle (haversine) distance between two
// coordinates in meters.
func DistanceMeters(a, b LatLng) float64 {
	return geo.DistanceHaversine(a.ToPoint(), b.ToPoint())
}

// Route is an ordered sequence of coordinates tracing a traversed path.
// No invariant on spacing: it may be empty, contain duplicates, or backtrack.
type Route []LatLng

// Validate checks every coordinate against the WGS 84 range and wraps
// ErrInvalidRoute with the first offending index.
func (r Route) Validate() error {
	for i, c := range r {
		if !c.Valid() {
			return fmt.Errorf("%w: coordinate %d out of range (%f, %f)", ErrInvalidRoute, i, c.Lat, c.Lng)
		}
	}
	return nil
}

// SamplePoint is a coordinate selected from a route, tagged with the index it
// originated from. Sample order follows route order.
type SamplePoint struct {
	LatLng
	RouteIndex int `json:"route_index"`
}
