package repository

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
)

// ActivityProvider is the external activity-tracking capability (Strava).
// It handles the OAuth handshake and serves recorded activities and their
// raw GPS streams.
type ActivityProvider interface {
	// AuthorizationURL builds the URL the user visits to grant access.
	AuthorizationURL(redirectURI string) string

	// ExchangeCode trades an authorization code for a token.
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)

	// RefreshToken obtains a fresh token from an expired one.
	RefreshToken(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error)

	// Activities lists the athlete's activities that carry GPS data.
	Activities(ctx context.Context, token *oauth2.Token, perPage int) ([]model.ActivitySummary, error)

	// ActivityStream fetches the ordered [lat, lng] stream of one activity.
	ActivityStream(ctx context.Context, token *oauth2.Token, activityID int64) (model.LatLngStream, error)
}
