package repository

import (
	"context"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
)

// PlaceSearchProvider is the external nearby-search capability: given a center
// and a radius in meters it returns candidate places. Injected into the
// aggregator so it can be exercised with deterministic fakes in tests.
type PlaceSearchProvider interface {
	SearchNearby(ctx context.Context, center model.LatLng, radiusMeters float64) ([]*model.POI, error)
}
