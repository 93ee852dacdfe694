package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/repository"
)

// defaultMaxConcurrentSearches bounds the number of in-flight provider calls
// so a long route does not hammer the rate-limited API.
const defaultMaxConcurrentSearches = 5

// SearchFailure records one per-sample search that failed. Failures are
// metadata, not errors: the aggregation continues with the remaining samples.
type SearchFailure struct {
	SampleIndex int    `json:"sample_index"`
	Reason      string `json:"reason"`
}

// AggregateResult is the outcome of aggregating all per-sample searches:
// the deduplicated POI list in first-seen order plus any per-sample failures.
type AggregateResult struct {
	POIs     []*model.POI
	Failures []SearchFailure
}

// POIAggregator issues one nearby search per sample point and merges the
// results into a single deduplicated list.
type POIAggregator struct {
	searchProvider      repository.PlaceSearchProvider
	identityRadiusMeters float64
	maxGoroutines       int
}

// NewPOIAggregator creates a new POIAggregator instance. identityRadiusMeters
// is the proximity threshold under which two same-named places without a
// stable provider ID are treated as one.
func NewPOIAggregator(searchProvider repository.PlaceSearchProvider, identityRadiusMeters float64) *POIAggregator {
	return &POIAggregator{
		searchProvider:       searchProvider,
		identityRadiusMeters: identityRadiusMeters,
		maxGoroutines:        defaultMaxConcurrentSearches,
	}
}

// Aggregate searches around every sample point and merges the per-sample
// results in sample order, so the output is deterministic regardless of which
// call finishes first. A failed call contributes an empty list and a
// SearchFailure entry; it never aborts the whole aggregation. Even when every
// call fails the result is a valid empty list with full failure metadata.
func (a *POIAggregator) Aggregate(ctx context.Context, samples []model.SamplePoint, searchRadiusMeters float64) (*AggregateResult, error) {
	if searchRadiusMeters <= 0 {
		return nil, fmt.Errorf("%w: search radius must be positive, got %f", model.ErrInvalidConfiguration, searchRadiusMeters)
	}
	if a.identityRadiusMeters <= 0 {
		return nil, fmt.Errorf("%w: identity radius must be positive, got %f", model.ErrInvalidConfiguration, a.identityRadiusMeters)
	}

	if len(samples) == 0 {
		return &AggregateResult{POIs: []*model.POI{}}, nil
	}

	// Fan out with a bounded number of in-flight calls. Each result lands in
	// its own slot, so no locks are needed and the merge below can run in
	// sample order.
	perSample := make([][]*model.POI, len(samples))
	perSampleErr := make([]error, len(samples))

	semaphore := make(chan struct{}, a.maxGoroutines)
	var wg sync.WaitGroup

	for i, sample := range samples {
		wg.Add(1)
		go func(idx int, center model.LatLng) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := ctx.Err(); err != nil {
				perSampleErr[idx] = err
				return
			}

			pois, err := a.searchProvider.SearchNearby(ctx, center, searchRadiusMeters)
			if err != nil {
				perSampleErr[idx] = err
				return
			}
			perSample[idx] = pois
		}(i, sample.LatLng)
	}

	wg.Wait()

	result := &AggregateResult{POIs: []*model.POI{}}
	seenByID := make(map[string]struct{})

	for i := range samples {
		if err := perSampleErr[i]; err != nil {
			log.Printf("poi search failed at sample %d (%.5f, %.5f): %v", i, samples[i].Lat, samples[i].Lng, err)
			result.Failures = append(result.Failures, SearchFailure{SampleIndex: i, Reason: err.Error()})
			continue
		}
		for _, poi := range perSample[i] {
			if a.isDuplicate(poi, seenByID, result.POIs) {
				continue
			}
			if poi.PlaceID != "" {
				seenByID[poi.PlaceID] = struct{}{}
			}
			result.POIs = append(result.POIs, poi)
		}
	}

	return result, nil
}

// isDuplicate decides whether poi refers to a place already kept. A shared
// provider place ID is authoritative. Without one, two POIs are the same place
// only when their normalized names match and they sit within the identity
// radius. Anything less certain is treated as distinct: a false-negative here
// costs a duplicate entry, a false-positive silently drops a real place.
func (a *POIAggregator) isDuplicate(poi *model.POI, seenByID map[string]struct{}, kept []*model.POI) bool {
	if poi.PlaceID != "" {
		_, ok := seenByID[poi.PlaceID]
		return ok
	}

	name := poi.NormalizedName()
	for _, existing := range kept {
		if existing.NormalizedName() != name {
			continue
		}
		if model.DistanceMeters(existing.Location, poi.Location) <= a.identityRadiusMeters {
			return true
		}
	}
	return false
}
