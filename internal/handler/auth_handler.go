package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/repository"
	"github.com/JarethMcC/route-variety-helper-backend/internal/session"
)

// sessionMaxAgeSeconds keeps the session cookie alive for a week; the OAuth
// token inside it is refreshed independently.
const sessionMaxAgeSeconds = 7 * 24 * 60 * 60

// AuthHandler owns the Strava OAuth handshake endpoints.
type AuthHandler struct {
	provider    repository.ActivityProvider
	sessions    *session.Store
	frontendURL string
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(provider repository.ActivityProvider, sessions *session.Store, frontendURL string) *AuthHandler {
	return &AuthHandler{
		provider:    provider,
		sessions:    sessions,
		frontendURL: frontendURL,
	}
}

// StravaAuth redirects the user to Strava for authentication.
// GET /auth/strava
func (h *AuthHandler) StravaAuth(c *gin.Context) {
	c.Redirect(http.StatusFound, h.provider.AuthorizationURL(h.callbackURL(c)))
}

// StravaCallback handles the redirect back from Strava, exchanging the
// authorization code for a token and opening a session.
// GET /auth/strava/callback
func (h *AuthHandler) StravaCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		log.Printf("auth callback received without code")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code not provided"})
		return
	}

	token, err := h.provider.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		log.Printf("authentication failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	sessionID := h.sessions.Create(token)
	c.SetCookie(session.CookieName, sessionID, sessionMaxAgeSeconds, "/", "", false, true)
	log.Printf("user successfully authenticated with Strava")
	c.Redirect(http.StatusFound, h.frontendURL+"/activities")
}

// Status reports whether the caller holds a session with a usable token.
// GET /auth/status
func (h *AuthHandler) Status(c *gin.Context) {
	sessionID, err := c.Cookie(session.CookieName)
	if err == nil {
		if token, ok := h.sessions.Get(sessionID); ok && token.Valid() {
			c.JSON(http.StatusOK, gin.H{"authenticated": true})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// Logout clears the caller's session.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Delete(sessionID)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (h *AuthHandler) callbackURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/auth/strava/callback", scheme, c.Request.Host)
}
