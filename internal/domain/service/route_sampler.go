package service

import (
	"fmt"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
)

// RouteSampler reduces a dense GPS route to the minimal ordered set of query
// points such that every route point lies within the sampling distance of a
// preceding sample, measured along the route path.
type RouteSampler struct{}

// NewRouteSampler creates a new RouteSampler instance.
func NewRouteSampler() *RouteSampler {
	return &RouteSampler{}
}

// Sample walks the route once, greedily selecting a new sample whenever the
// accumulated path distance since the last selected sample reaches
// samplingDistanceMeters. The first point is always selected; the last point
// is appended if the scan did not already select it, so the endpoint stays
// covered even when the final segment is short.
//
// Consecutive samples (except possibly the final pair) are therefore at least
// samplingDistanceMeters apart along the path. The sampler never interpolates:
// if the raw track itself has gaps larger than the sampling distance, so does
// the coverage.
func (s *RouteSampler) Sample(route model.Route, samplingDistanceMeters float64) ([]model.SamplePoint, error) {
	if samplingDistanceMeters <= 0 {
		return nil, fmt.Errorf("%w: sampling distance must be positive, got %f", model.ErrInvalidConfiguration, samplingDistanceMeters)
	}

	if len(route) == 0 {
		return []model.SamplePoint{}, nil
	}

	samples := []model.SamplePoint{{LatLng: route[0], RouteIndex: 0}}
	accumulated := 0.0

	for i := 1; i < len(route); i++ {
		accumulated += model.DistanceMeters(route[i-1], route[i])
		if accumulated >= samplingDistanceMeters {
			samples = append(samples, model.SamplePoint{LatLng: route[i], RouteIndex: i})
			accumulated = 0
		}
	}

	// The endpoint is always covered, even when the last segment stayed
	// under the sampling distance.
	lastIndex := len(route) - 1
	if samples[len(samples)-1].RouteIndex != lastIndex {
		samples = append(samples, model.SamplePoint{LatLng: route[lastIndex], RouteIndex: lastIndex})
	}

	return samples, nil
}
