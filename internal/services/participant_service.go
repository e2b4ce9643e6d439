package services

import (
	"context"

	"github.com/google/uuid"

	"planner/internal/models/response_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type ParticipantServiceInterface interface {
	// ConfirmParticipant flips the participant to confirmed and returns the
	// parent trip's id for the redirect. Already confirmed is a no-op.
	ConfirmParticipant(ctx context.Context, participantID string) (uuid.UUID, error)
	GetParticipantByID(ctx context.Context, participantID string) (*response_models.ParticipantResponse, error)
}

type ParticipantService struct {
	participantRepo repositories.ParticipantRepository
}

func NewParticipantService(participantRepo repositories.ParticipantRepository) ParticipantServiceInterface {
	return &ParticipantService{
		participantRepo: participantRepo,
	}
}

func (p *ParticipantService) ConfirmParticipant(ctx context.Context, participantID string) (uuid.UUID, error) {
	participant, err := p.participantRepo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if participant == nil {
		return uuid.Nil, utils.ErrParticipantNotFound
	}
	if participant.IsConfirmed {
		return participant.TripID, nil
	}

	if err := p.participantRepo.MarkParticipantConfirmed(ctx, participant.ID); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	return participant.TripID, nil
}

func (p *ParticipantService) GetParticipantByID(ctx context.Context, participantID string) (*response_models.ParticipantResponse, error) {
	participant, err := p.participantRepo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}

	return &response_models.ParticipantResponse{
		ID:          participant.ID.String(),
		Name:        participant.Name,
		Email:       participant.Email,
		IsConfirmed: participant.IsConfirmed,
	}, nil
}
