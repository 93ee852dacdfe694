package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
)

// Defaults for the POI search tunables. Both are overridable via environment
// variables and validated to be positive before any request is served.
const (
	DefaultSearchRadiusMeters      = 100.0
	DefaultSamplingDistanceMeters  = 500.0
	DefaultDedupIdentityRadius     = 25.0
	DefaultFrontendURL             = "http://localhost:5173"
	DefaultPort                    = "8080"
)

// Config holds all application configuration, resolved once at startup.
type Config struct {
	Port                string
	FrontendURL         string
	StravaClientID      string
	StravaClientSecret  string
	GoogleMapsAPIKey    string
	SearchRadiusMeters  float64
	SamplingDistanceMeters float64
	DedupIdentityRadiusMeters float64
}

// Load reads configuration from environment variables, applying defaults for
// the optional keys. A .env file, if any, is loaded by main before this runs.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               envOrDefault("PORT", DefaultPort),
		FrontendURL:        envOrDefault("FRONTEND_URL", DefaultFrontendURL),
		StravaClientID:     os.Getenv("STRAVA_CLIENT_ID"),
		StravaClientSecret: os.Getenv("STRAVA_CLIENT_SECRET"),
		GoogleMapsAPIKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
	}

	var err error
	if cfg.SearchRadiusMeters, err = envFloat("POI_SEARCH_RADIUS", DefaultSearchRadiusMeters); err != nil {
		return nil, err
	}
	if cfg.SamplingDistanceMeters, err = envFloat("POI_ROUTE_SAMPLING_DISTANCE", DefaultSamplingDistanceMeters); err != nil {
		return nil, err
	}
	if cfg.DedupIdentityRadiusMeters, err = envFloat("POI_DEDUP_IDENTITY_RADIUS", DefaultDedupIdentityRadius); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required credentials are present and all tunables are
// positive. Degenerate values (zero spacing would mean infinite samples) are
// rejected up front rather than discovered mid-request.
func (c *Config) Validate() error {
	var missing []string
	if c.StravaClientID == "" {
		missing = append(missing, "STRAVA_CLIENT_ID")
	}
	if c.StravaClientSecret == "" {
		missing = append(missing, "STRAVA_CLIENT_SECRET")
	}
	if c.GoogleMapsAPIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.SearchRadiusMeters <= 0 {
		return fmt.Errorf("%w: POI_SEARCH_RADIUS must be positive, got %f", model.ErrInvalidConfiguration, c.SearchRadiusMeters)
	}
	if c.SamplingDistanceMeters <= 0 {
		return fmt.Errorf("%w: POI_ROUTE_SAMPLING_DISTANCE must be positive, got %f", model.ErrInvalidConfiguration, c.SamplingDistanceMeters)
	}
	if c.DedupIdentityRadiusMeters <= 0 {
		return fmt.Errorf("%w: POI_DEDUP_IDENTITY_RADIUS must be positive, got %f", model.ErrInvalidConfiguration, c.DedupIdentityRadiusMeters)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric, got %q", model.ErrInvalidConfiguration, key, v)
	}
	return f, nil
}
