package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
)

const nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// GooglePlacesProvider implements nearby place search against the Google
// Places API.
type GooglePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesProvider creates a new provider.
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		baseURL:    nearbySearchURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewGooglePlacesProviderWithBaseURL creates a provider pointed at an
// alternative endpoint. Used by tests to target an httptest server.
func NewGooglePlacesProviderWithBaseURL(apiKey, baseURL string) *GooglePlacesProvider {
	p := NewGooglePlacesProvider(apiKey)
	p.baseURL = baseURL
	return p
}

// SearchNearby calls the Places Nearby Search API around the given center and
// normalizes the response into POI records. Absent rating/price level fields
// stay absent rather than defaulting to zero.
func (g *GooglePlacesProvider) SearchNearby(ctx context.Context, center model.LatLng, radiusMeters float64) ([]*model.POI, error) {
	reqURL := g.buildURL(center, radiusMeters)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned error status: %s", resp.Status)
	}

	var apiResp placesNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse places response: %w", err)
	}

	// ZERO_RESULTS is a valid empty answer, everything else non-OK is an
	// error on the provider side.
	if apiResp.Status != "OK" && apiResp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API status %s: %s", apiResp.Status, apiResp.ErrorMessage)
	}

	pois := make([]*model.POI, 0, len(apiResp.Results))
	for _, place := range apiResp.Results {
		name := place.Name
		if name == "" {
			name = "Unknown"
		}
		poiType := model.DisplayType(model.PickAllowedType(place.Types))
		location := model.LatLng{
			Lat: place.Geometry.Location.Lat,
			Lng: place.Geometry.Location.Lng,
		}
		pois = append(pois, model.NewPOI(place.PlaceID, name, poiType, location, place.Rating, place.PriceLevel))
	}
	return pois, nil
}

func (g *GooglePlacesProvider) buildURL(center model.LatLng, radiusMeters float64) string {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	params.Set("radius", fmt.Sprintf("%.0f", radiusMeters))
	params.Set("type", strings.Join(model.PlaceTypes, "|"))
	params.Set("key", g.apiKey)
	return fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
}

// --- structs for parsing the Places API response ---

type placesNearbyResponse struct {
	Results      []place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

type place struct {
	PlaceID    string        `json:"place_id"`
	Name       string        `json:"name"`
	Types      []string      `json:"types"`
	Geometry   placeGeometry `json:"geometry"`
	Rating     *float64      `json:"rating,omitempty"`
	PriceLevel *int          `json:"price_level,omitempty"`
}

type placeGeometry struct {
	Location placeLatLng `json:"location"`
}

type placeLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
