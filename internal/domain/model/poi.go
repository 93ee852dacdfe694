package model

import "strings"

// PlaceTypes is the allow-list of place categories searched along a route.
var PlaceTypes = []string{
	"cafe", "restaurant", "bar", "tourist_attraction",
	"museum", "park", "art_gallery", "viewpoint",
}

// POI represents a discovered point of interest. Rating and PriceLevel are
// optional: the provider may omit them, in which case the pointers stay nil
// and the fields are absent from the JSON output.
type POI struct {
	PlaceID    string   `json:"-"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Location   LatLng   `json:"-"`
	Coords     []float64 `json:"coords"` // [lat, lng], the response wire shape
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
}

// NewPOI builds a POI and keeps Coords in sync with Location.
func NewPOI(placeID, name, poiType string, location LatLng, rating *float64, priceLevel *int) *POI {
	return &POI{
		PlaceID:    placeID,
		Name:       name,
		Type:       poiType,
		Location:   location,
		Coords:     []float64{location.Lat, location.Lng},
		Rating:     rating,
		PriceLevel: priceLevel,
	}
}

// NormalizedName returns the name lower-cased with whitespace runs collapsed,
// the form used for proximity-based identity.
func (p *POI) NormalizedName() string {
	return strings.Join(strings.Fields(strings.ToLower(p.Name)), " ")
}

// DisplayType converts a raw provider type ("tourist_attraction") into the
// human-readable form ("Tourist Attraction").
func DisplayType(raw string) string {
	words := strings.Split(raw, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// PickAllowedType returns the first provider type present in the allow-list,
// falling back to "point_of_interest" when none matches.
func PickAllowedType(types []string) string {
	for _, t := range types {
		for _, allowed := range PlaceTypes {
			if t == allowed {
				return t
			}
		}
	}
	return "point_of_interest"
}
