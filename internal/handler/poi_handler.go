package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
	"github.com/JarethMcC/route-variety-helper-backend/internal/usecase"
)

// POIHandler serves POI discovery along a route.
type POIHandler struct {
	discoveryUseCase usecase.POIDiscoveryUseCase
}

// NewPOIHandler creates a new POIHandler instance.
func NewPOIHandler(discoveryUseCase usecase.POIDiscoveryUseCase) *POIHandler {
	return &POIHandler{discoveryUseCase: discoveryUseCase}
}

// POIRequest is the discovery request body: an ordered list of [lat, lng]
// pairs tracing the route.
type POIRequest struct {
	Route [][]float64 `json:"route"`
}

// POIResponse carries the unique POIs found plus partial-failure metadata.
// An empty route yields an empty list, not an error; failed sample searches
// reduce the list but never fail the request.
type POIResponse struct {
	POIs           []*model.POI `json:"pois"`
	SampleCount    int          `json:"sample_count"`
	FailedSearches int          `json:"failed_searches"`
}

// DiscoverPOIs finds points of interest near a given route.
// POST /api/pois
func (h *POIHandler) DiscoverPOIs(c *gin.Context) {
	var req POIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}
	if req.Route == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Route data is required",
		})
		return
	}

	route, err := parseRoute(req.Route)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_route",
			"message": err.Error(),
		})
		return
	}

	result, err := h.discoveryUseCase.DiscoverPOIs(c.Request.Context(), route)
	if err != nil {
		status := http.StatusInternalServerError
		code := "internal_error"
		if errors.Is(err, model.ErrInvalidRoute) {
			status, code = http.StatusBadRequest, "invalid_route"
		} else if errors.Is(err, model.ErrInvalidConfiguration) {
			code = "invalid_configuration"
		}
		log.Printf("POI discovery failed: %v", err)
		c.JSON(status, gin.H{"error": code, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, POIResponse{
		POIs:           result.POIs,
		SampleCount:    result.SampleCount,
		FailedSearches: len(result.Failures),
	})
}

// parseRoute converts the wire shape into a model.Route, rejecting pairs that
// do not hold two numeric values.
func parseRoute(pairs [][]float64) (model.Route, error) {
	route := make(model.Route, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("coordinate %d must be a [lat, lng] pair, got %d values", i, len(pair))
		}
		route = append(route, model.LatLng{Lat: pair[0], Lng: pair[1]})
	}
	return route, nil
}
