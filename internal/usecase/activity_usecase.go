package usecase

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/model"
	"github.com/JarethMcC/route-variety-helper-backend/internal/domain/repository"
)

// activitiesPerPage matches the page size the original frontend requests.
const activitiesPerPage = 50

// ActivityUseCase serves the athlete's recorded activities and their GPS data
// in the shapes the frontend consumes.
type ActivityUseCase interface {
	ListActivities(ctx context.Context, token *oauth2.Token) ([]model.ActivitySummary, error)
	GetStream(ctx context.Context, token *oauth2.Token, activityID int64) (model.LatLngStream, error)
	GetGPX(ctx context.Context, token *oauth2.Token, activityID int64) (string, error)
}

type activityUseCaseImpl struct {
	provider repository.ActivityProvider
}

// NewActivityUseCase creates a new ActivityUseCase instance.
func NewActivityUseCase(provider repository.ActivityProvider) ActivityUseCase {
	return &activityUseCaseImpl{provider: provider}
}

func (u *activityUseCaseImpl) ListActivities(ctx context.Context, token *oauth2.Token) ([]model.ActivitySummary, error) {
	return u.provider.Activities(ctx, token, activitiesPerPage)
}

func (u *activityUseCaseImpl) GetStream(ctx context.Context, token *oauth2.Token, activityID int64) (model.LatLngStream, error) {
	return u.provider.ActivityStream(ctx, token, activityID)
}

// GetGPX fetches the activity stream and renders it as a GPX document.
func (u *activityUseCaseImpl) GetGPX(ctx context.Context, token *oauth2.Token, activityID int64) (string, error) {
	stream, err := u.provider.ActivityStream(ctx, token, activityID)
	if err != nil {
		return "", err
	}
	if len(stream) == 0 {
		return "", nil
	}
	return model.BuildGPX(fmt.Sprintf("Activity %d", activityID), stream.ToRoute())
}
