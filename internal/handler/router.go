package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/repository"
	"github.com/JarethMcC/route-variety-helper-backend/internal/session"
)

// NewRouter wires all handlers into a gin engine.
func NewRouter(
	authHandler *AuthHandler,
	activityHandler *ActivityHandler,
	poiHandler *POIHandler,
	sessions *session.Store,
	activityProvider repository.ActivityProvider,
) *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "route-variety-helper"})
	})

	auth := router.Group("/auth")
	{
		auth.GET("/strava", authHandler.StravaAuth)
		auth.GET("/strava/callback", authHandler.StravaCallback)
		auth.GET("/status", authHandler.Status)
		auth.POST("/logout", authHandler.Logout)
	}

	api := router.Group("/api")
	{
		api.POST("/pois", poiHandler.DiscoverPOIs)

		authed := api.Group("", AuthRequired(sessions, activityProvider))
		{
			authed.GET("/activities", activityHandler.ListActivities)
			authed.GET("/activities/:id/stream", activityHandler.GetStream)
			authed.GET("/activities/:id/gpx", activityHandler.GetGPX)
		}
	}

	return router
}
