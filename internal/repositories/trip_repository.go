package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "planner/internal/models/db_models"
)

type TripRepository interface {
	CreateTripWithParticipants(ctx context.Context, trip *dbm.Trip, participants []dbm.Participant) (uuid.UUID, error)
	GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error)
	GetTripWithPendingParticipants(ctx context.Context, tripID string) (*dbm.Trip, error)
	MarkTripConfirmed(ctx context.Context, tripID uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// CreateTripWithParticipants persists the trip and its initial participant
// rows in one transaction so a half-created trip never becomes visible.
func (r *tripRepository) CreateTripWithParticipants(
	ctx context.Context,
	trip *dbm.Trip,
	participants []dbm.Participant,
) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].TripID = trip.ID
		}
		if len(participants) == 0 {
			return nil
		}
		return tx.Create(&participants).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetTripWithPendingParticipants preloads only the non-owner participants,
// the set that receives presence-confirmation mail.
func (r *tripRepository) GetTripWithPendingParticipants(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Participants", "is_owner = ?", false).
		Where("id = ?", tripID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) MarkTripConfirmed(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripID).
		Update("is_confirmed", true).Error
}
