package model

// ActivitySummary is the trimmed activity record returned to the frontend.
// Only activities carrying a GPS polyline are listed.
type ActivitySummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Distance  float64 `json:"distance"`
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
}

// LatLngStream is the raw ordered [lat, lng] stream of an activity as
// delivered by the activity provider.
type LatLngStream [][]float64

// ToRoute converts the stream into a Route, skipping malformed entries with
// fewer than two values.
func (s LatLngStream) ToRoute() Route {
	route := make(Route, 0, len(s))
	for _, pair := range s {
		if len(pair) < 2 {
			continue
		}
		route = append(route, LatLng{Lat: pair[0], Lng: pair[1]})
	}
	return route
}
