package services

import (
	"context"

	"github.com/google/uuid"

	"planner/internal/models/db_models"
	"planner/internal/models/request_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, tripID string, req request_models.CreateActivityRequest) (uuid.UUID, error)
}

type ActivityService struct {
	tripRepo     repositories.TripRepository
	activityRepo repositories.ActivityRepository
}

func NewActivityService(
	tripRepo repositories.TripRepository,
	activityRepo repositories.ActivityRepository,
) ActivityServiceInterface {
	return &ActivityService{
		tripRepo:     tripRepo,
		activityRepo: activityRepo,
	}
}

// CreateActivity schedules an activity inside the trip window. The window
// check is boundary-inclusive and only enforced here, never re-checked.
func (a *ActivityService) CreateActivity(ctx context.Context, tripID string, req request_models.CreateActivityRequest) (uuid.UUID, error) {
	trip, err := a.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return uuid.Nil, utils.ErrTripNotFound
	}

	if req.OccursAt.Before(trip.StartsAt) || req.OccursAt.After(trip.EndsAt) {
		return uuid.Nil, utils.ErrInvalidActivityDate
	}

	activity := &db_models.Activity{
		TripID:   trip.ID,
		Title:    req.Title,
		OccursAt: req.OccursAt,
	}

	activityID, err := a.activityRepo.CreateActivity(ctx, activity)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	return activityID, nil
}
