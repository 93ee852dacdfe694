package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
)

const defaultAPIURL = "https://www.strava.com/api/v3"

// Endpoint is Strava's OAuth 2.0 endpoint.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://www.strava.com/oauth/authorize",
	TokenURL: "https://www.strava.com/oauth/token",
}

// Client talks to the Strava API, handling the OAuth handshake and token
// refreshes on behalf of the handlers.
type Client struct {
	oauthConfig *oauth2.Config
	apiURL      string
	httpClient  *http.Client
}

// NewClient creates a new Strava client.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes:       []string{"read,activity:read_all"},
			Endpoint:     Endpoint,
		},
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithAPIURL creates a client pointed at an alternative API base
// URL. Used by tests to target an httptest server.
func NewClientWithAPIURL(clientID, clientSecret, apiURL string) *Client {
	c := NewClient(clientID, clientSecret)
	c.apiURL = apiURL
	return c
}

// AuthorizationURL builds the URL the user visits to grant access. Strava
// expects approval_prompt instead of the standard prompt parameter.
func (c *Client) AuthorizationURL(redirectURI string) string {
	cfg := *c.oauthConfig
	cfg.RedirectURL = redirectURI
	return cfg.AuthCodeURL("", oauth2.SetAuthURLParam("approval_prompt", "force"))
}

// ExchangeCode trades an authorization code for a token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	return token, nil
}

// RefreshToken obtains a fresh token using the refresh token carried by the
// expired one.
func (c *Client) RefreshToken(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error) {
	refreshed, err := c.oauthConfig.TokenSource(ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	return refreshed, nil
}

// Activities lists the athlete's most recent activities, keeping only those
// that carry a GPS polyline. perPage is capped at Strava's limit of 200.
func (c *Client) Activities(ctx context.Context, token *oauth2.Token, perPage int) ([]model.ActivitySummary, error) {
	if perPage > 200 {
		perPage = 200
	}
	reqURL := fmt.Sprintf("%s/athlete/activities?page=1&per_page=%d", c.apiURL, perPage)

	var raw []stravaActivity
	if err := c.getJSON(ctx, token, reqURL, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	activities := make([]model.ActivitySummary, 0, len(raw))
	for _, act := range raw {
		if act.Map.SummaryPolyline == "" {
			continue
		}
		activities = append(activities, model.ActivitySummary{
			ID:        act.ID,
			Name:      act.Name,
			Distance:  roundTwo(act.Distance),
			Type:      act.Type,
			StartDate: act.StartDateLocal,
		})
	}
	return activities, nil
}

// ActivityStream fetches the ordered [lat, lng] stream for one activity.
// Activities recorded without GPS yield an empty stream.
func (c *Client) ActivityStream(ctx context.Context, token *oauth2.Token, activityID int64) (model.LatLngStream, error) {
	reqURL := fmt.Sprintf("%s/activities/%d/streams?keys=latlng&key_by_type=true", c.apiURL, activityID)

	var raw stravaStreamResponse
	if err := c.getJSON(ctx, token, reqURL, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch activity stream for %d: %w", activityID, err)
	}
	return raw.LatLng.Data, nil
}

func (c *Client) getJSON(ctx context.Context, token *oauth2.Token, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("strava API returned error status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}

// --- structs for parsing Strava API responses ---

type stravaActivity struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Distance       float64     `json:"distance"`
	Type           string      `json:"type"`
	StartDateLocal string      `json:"start_date_local"`
	Map            stravaMap   `json:"map"`
}

type stravaMap struct {
	SummaryPolyline string `json:"summary_polyline"`
}

type stravaStreamResponse struct {
	LatLng stravaStream `json:"latlng"`
}

type stravaStream struct {
	Data [][]float64 `json:"data"`
}
