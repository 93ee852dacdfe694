package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/JarethMcC/route-variety-helper-backend/internal/config"
	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/service"
	"github.com/JarethMcC/route-variety-helper-backend/internal/handler"
	"github.com/JarethMcC/route-variety-helper-backend/internal/infrastructure/maps"
	"github.com/JarethMcC/route-variety-helper-backend/internal/infrastructure/strava"
	"github.com/JarethMcC/route-variety-helper-backend/internal/session"
	"github.com/JarethMcC/route-variety-helper-backend/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Infrastructure
	stravaClient := strava.NewClient(cfg.StravaClientID, cfg.StravaClientSecret)
	placesProvider := maps.NewGooglePlacesProvider(cfg.GoogleMapsAPIKey)
	sessions := session.NewStore()

	// Domain services
	sampler := service.NewRouteSampler()
	aggregator := service.NewPOIAggregator(placesProvider, cfg.DedupIdentityRadiusMeters)

	// Use cases
	discoveryUseCase := usecase.NewPOIDiscoveryUseCase(sampler, aggregator, cfg.SearchRadiusMeters, cfg.SamplingDistanceMeters)
	activityUseCase := usecase.NewActivityUseCase(stravaClient)

	// Handlers
	authHandler := handler.NewAuthHandler(stravaClient, sessions, cfg.FrontendURL)
	activityHandler := handler.NewActivityHandler(activityUseCase)
	poiHandler := handler.NewPOIHandler(discoveryUseCase)

	router := handler.NewRouter(authHandler, activityHandler, poiHandler, sessions, stravaClient)

	fmt.Printf("route-variety-helper server starting on :%s...\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
