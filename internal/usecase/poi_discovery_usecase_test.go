package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/service"
)

// stubSearchProvider answers every search with the same canned result and
// counts calls.
type stubSearchProvider struct {
	mu    sync.Mutex
	pois  []*model.POI
	err   error
	calls int
}

func (s *stubSearchProvider) SearchNearby(_ context.Context, _ model.LatLng, _ float64) ([]*model.POI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.pois, nil
}

func (s *stubSearchProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newDiscoveryUseCase(provider *stubSearchProvider, searchRadius, samplingDistance float64) POIDiscoveryUseCase {
	sampler := service.NewRouteSampler()
	aggregator := service.NewPOIAggregator(provider, 25)
	return NewPOIDiscoveryUseCase(sampler, aggregator, searchRadius, samplingDistance)
}

func TestDiscoverPOIs_EmptyRoute(t *testing.T) {
	provider := &stubSearchProvider{}
	uc := newDiscoveryUseCase(provider, 100, 500)

	result, err := uc.DiscoverPOIs(context.Background(), model.Route{})
	require.NoError(t, err)

	assert.Empty(t, result.POIs)
	assert.Zero(t, result.SampleCount)
	assert.Equal(t, 0, provider.callCount())
}

func TestDiscoverPOIs_InvalidRouteAbortsBeforeSearch(t *testing.T) {
	provider := &stubSearchProvider{pois: []*model.POI{
		model.NewPOI("p1", "A", "Cafe", model.LatLng{}, nil, nil),
	}}
	uc := newDiscoveryUseCase(provider, 100, 500)

	route := model.Route{{Lat: 0, Lng: 0}, {Lat: 120, Lng: 0}}
	_, err := uc.DiscoverPOIs(context.Background(), route)

	assert.ErrorIs(t, err, model.ErrInvalidRoute)
	assert.Equal(t, 0, provider.callCount(), "no external call before validation passes")
}

func TestDiscoverPOIs_InvalidConfigurationAbortsBeforeSearch(t *testing.T) {
	provider := &stubSearchProvider{}
	route := model.Route{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.01}}

	_, err := newDiscoveryUseCase(provider, 100, 0).DiscoverPOIs(context.Background(), route)
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)

	_, err = newDiscoveryUseCase(provider, -5, 500).DiscoverPOIs(context.Background(), route)
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)

	assert.Equal(t, 0, provider.callCount())
}

func TestDiscoverPOIs_EndToEnd(t *testing.T) {
	provider := &stubSearchProvider{pois: []*model.POI{
		model.NewPOI("p1", "Joe's Cafe", "Cafe", model.LatLng{Lat: 0, Lng: 0.001}, nil, nil),
	}}
	uc := newDiscoveryUseCase(provider, 100, 500)

	// Two samples: start plus the point that crosses 500 m (also the endpoint).
	route := model.Route{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.001}, {Lat: 0, Lng: 0.01}}
	result, err := uc.DiscoverPOIs(context.Background(), route)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SampleCount)
	assert.Equal(t, 2, provider.callCount(), "one search per sample")
	require.Len(t, result.POIs, 1, "same place from both samples dedups to one")
	assert.Equal(t, "Joe's Cafe", result.POIs[0].Name)
	assert.Empty(t, result.Failures)
}

func TestDiscoverPOIs_ProviderDownYieldsEmptyResult(t *testing.T) {
	provider := &stubSearchProvider{err: errors.New("connection refused")}
	uc := newDiscoveryUseCase(provider, 100, 500)

	route := model.Route{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.01}}
	result, err := uc.DiscoverPOIs(context.Background(), route)

	require.NoError(t, err, "provider unavailability is not a request error")
	assert.Empty(t, result.POIs)
	assert.Len(t, result.Failures, result.SampleCount)
}
