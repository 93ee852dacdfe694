package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/service"
)

// POIDiscoveryUseCase turns a raw GPS route into a deduplicated list of
// points of interest along it.
type POIDiscoveryUseCase interface {
	DiscoverPOIs(ctx context.Context, route model.Route) (*POIDiscoveryResult, error)
}

// POIDiscoveryResult is the outcome of one discovery run: the unique POIs in
// first-seen order plus how many sample searches were attempted and failed.
type POIDiscoveryResult struct {
	POIs          []*model.POI
	SampleCount   int
	Failures      []service.SearchFailure
}

// poiDiscoveryUseCaseImpl implements POIDiscoveryUseCase.
type poiDiscoveryUseCaseImpl struct {
	sampler            *service.RouteSampler
	aggregator         *service.POIAggregator
	searchRadiusMeters float64
	samplingDistanceMeters float64
}

// NewPOIDiscoveryUseCase creates a new POIDiscoveryUseCase instance.
func NewPOIDiscoveryUseCase(sampler *service.RouteSampler, aggregator *service.POIAggregator, searchRadiusMeters, samplingDistanceMeters float64) POIDiscoveryUseCase {
	return &poiDiscoveryUseCaseImpl{
		sampler:                sampler,
		aggregator:             aggregator,
		searchRadiusMeters:     searchRadiusMeters,
		samplingDistanceMeters: samplingDistanceMeters,
	}
}

// DiscoverPOIs validates the route, samples it, and aggregates per-sample
// nearby searches. Validation failures abort before any external call;
// per-sample search failures only reduce the result and are reported in the
// Failures metadata.
func (u *poiDiscoveryUseCaseImpl) DiscoverPOIs(ctx context.Context, route model.Route) (*POIDiscoveryResult, error) {
	if err := route.Validate(); err != nil {
		return nil, err
	}

	samples, err := u.sampler.Sample(route, u.samplingDistanceMeters)
	if err != nil {
		return nil, fmt.Errorf("route sampling failed: %w", err)
	}
	log.Printf("searching POIs at %d sample points along a %d-point route", len(samples), len(route))

	aggregate, err := u.aggregator.Aggregate(ctx, samples, u.searchRadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("POI aggregation failed: %w", err)
	}

	if len(aggregate.Failures) > 0 {
		log.Printf("%d of %d sample searches failed, returning partial result", len(aggregate.Failures), len(samples))
	}
	log.Printf("found %d unique POIs", len(aggregate.POIs))

	return &POIDiscoveryResult{
		POIs:        aggregate.POIs,
		SampleCount: len(samples),
		Failures:    aggregate.Failures,
	}, nil
}
