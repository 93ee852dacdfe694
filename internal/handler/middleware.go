package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/repository"
	"github.com/JarethMcC/route-variety-helper-backend/internal/session"
)

// tokenContextKey is the gin context key under which AuthRequired stores the
// session's OAuth token for downstream handlers.
const tokenContextKey = "strava_token"

// AuthRequired guards endpoints that need a Strava session. An expired token
// is refreshed transparently; a failed refresh clears the session and asks
// the user to re-authenticate.
func AuthRequired(sessions *session.Store, provider repository.ActivityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(session.CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		token, ok := sessions.Get(sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !token.Valid() {
			refreshed, err := provider.RefreshToken(c.Request.Context(), token)
			if err != nil {
				log.Printf("token refresh failed: %v", err)
				sessions.Delete(sessionID)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication expired, please re-authenticate"})
				return
			}
			sessions.Update(sessionID, refreshed)
			token = refreshed
			log.Printf("token refreshed for session")
		}

		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// sessionToken returns the OAuth token stored by AuthRequired.
func sessionToken(c *gin.Context) *oauth2.Token {
	return c.MustGet(tokenContextKey).(*oauth2.Token)
}
