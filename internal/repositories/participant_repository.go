package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "planner/internal/models/db_models"
)

type ParticipantRepository interface {
	CreateParticipant(ctx context.Context, participant *dbm.Participant) (uuid.UUID, error)
	GetParticipantByID(ctx context.Context, participantID string) (*dbm.Participant, error)
	MarkParticipantConfirmed(ctx context.Context, participantID uuid.UUID) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) CreateParticipant(ctx context.Context, participant *dbm.Participant) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return uuid.Nil, err
	}
	return participant.ID, nil
}

func (r *participantRepository) GetParticipantByID(ctx context.Context, participantID string) (*dbm.Participant, error) {
	var participant dbm.Participant
	err := r.db.WithContext(ctx).
		Where("id = ?", participantID).
		First(&participant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) MarkParticipantConfirmed(ctx context.Context, participantID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Participant{}).
		Where("id = ?", participantID).
		Update("is_confirmed", true).Error
}
