package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
)

func TestRouteSampler_EmptyRoute(t *testing.T) {
	sampler := NewRouteSampler()

	samples, err := sampler.Sample(model.Route{}, 500)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestRouteSampler_SinglePoint(t *testing.T) {
	sampler := NewRouteSampler()

	samples, err := sampler.Sample(model.Route{{Lat: 35.0, Lng: 135.0}}, 500)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 0, samples[0].RouteIndex)
	assert.Equal(t, 35.0, samples[0].Lat)
}

func TestRouteSampler_InvalidSamplingDistance(t *testing.T) {
	sampler := NewRouteSampler()
	route := model.Route{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.01}}

	for _, distance := range []float64{0, -1, -500} {
		_, err := sampler.Sample(route, distance)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	}
}

// Equator degrees: 0.001° of longitude is roughly 111 m, 0.01° roughly 1113 m.
func TestRouteSampler_GreedyScan(t *testing.T) {
	sampler := NewRouteSampler()
	route := model.Route{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.001},
		{Lat: 0, Lng: 0.01},
	}

	samples, err := sampler.Sample(route, 500)
	require.NoError(t, err)

	// The middle point stays under the sampling distance and is skipped; the
	// last point crosses it and doubles as the endpoint sample.
	require.Len(t, samples, 2)
	assert.Equal(t, 0, samples[0].RouteIndex)
	assert.Equal(t, 2, samples[1].RouteIndex)
}

func TestRouteSampler_LastPointAlwaysIncluded(t *testing.T) {
	sampler := NewRouteSampler()
	route := model.Route{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.006}, // ~668m, crosses 500m
		{Lat: 0, Lng: 0.007}, // ~111m further, under 500m
	}

	samples, err := sampler.Sample(route, 500)
	require.NoError(t, err)

	require.Len(t, samples, 3)
	assert.Equal(t, 2, samples[len(samples)-1].RouteIndex)
}

func TestRouteSampler_DuplicatePointsTolerated(t *testing.T) {
	sampler := NewRouteSampler()
	route := model.Route{
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 10},
	}

	samples, err := sampler.Sample(route, 100)
	require.NoError(t, err)

	// Zero accumulated distance never crosses the threshold; only the first
	// point and the endpoint are selected.
	require.Len(t, samples, 2)
	assert.Equal(t, 0, samples[0].RouteIndex)
	assert.Equal(t, 2, samples[1].RouteIndex)
}

// Consecutive selected samples other than the final pair must be at least the
// sampling distance apart along the path.
func TestRouteSampler_MinimumSpacing(t *testing.T) {
	sampler := NewRouteSampler()

	route := make(model.Route, 0, 100)
	for i := 0; i < 100; i++ {
		route = append(route, model.LatLng{Lat: 0, Lng: float64(i) * 0.001})
	}

	const samplingDistance = 500.0
	samples, err := sampler.Sample(route, samplingDistance)
	require.NoError(t, err)
	require.Greater(t, len(samples), 2)

	for i := 1; i < len(samples)-1; i++ {
		pathDistance := 0.0
		for j := samples[i-1].RouteIndex; j < samples[i].RouteIndex; j++ {
			pathDistance += model.DistanceMeters(route[j], route[j+1])
		}
		assert.GreaterOrEqual(t, pathDistance, samplingDistance,
			"samples %d and %d closer than sampling distance along the path", i-1, i)
	}

	assert.Equal(t, 0, samples[0].RouteIndex)
	assert.Equal(t, len(route)-1, samples[len(samples)-1].RouteIndex)
}

// A large gap in the raw track produces a single sample per threshold
// crossing; the sampler never interpolates points that do not exist.
func TestRouteSampler_LargeGapSingleSample(t *testing.T) {
	sampler := NewRouteSampler()
	route := model.Route{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.05}, // ~5.5 km jump
		{Lat: 0, Lng: 0.051},
	}

	samples, err := sampler.Sample(route, 500)
	require.NoError(t, err)

	require.Len(t, samples, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{samples[0].RouteIndex, samples[1].RouteIndex, samples[2].RouteIndex})
}
