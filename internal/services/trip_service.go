package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"planner/internal/config"
	"planner/internal/models/db_models"
	"planner/internal/models/request_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (uuid.UUID, error)
	InviteParticipant(ctx context.Context, tripID string, email string) (uuid.UUID, error)
	ConfirmTrip(ctx context.Context, tripID string) error
}

type TripService struct {
	tripRepo        repositories.TripRepository
	participantRepo repositories.ParticipantRepository
	mailService     IMailService
	cfg             config.Config
}

func NewTripService(
	tripRepo repositories.TripRepository,
	participantRepo repositories.ParticipantRepository,
	mailService IMailService,
	cfg config.Config,
) TripServiceInterface {
	return &TripService{
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
		mailService:     mailService,
		cfg:             cfg,
	}
}

// CreateTrip creates the trip together with its owner (pre-confirmed) and
// one unconfirmed participant per invited email, then mails the owner a
// confirmation link. Duplicate invite emails produce duplicate rows.
func (t *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (uuid.UUID, error) {
	if req.StartsAt.Before(time.Now()) {
		return uuid.Nil, utils.ErrInvalidStartDate
	}
	if req.EndsAt.Before(req.StartsAt) {
		return uuid.Nil, utils.ErrInvalidEndDate
	}

	trip := &db_models.Trip{
		Destination: req.Destination,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}

	participants := make([]db_models.Participant, 0, 1+len(req.EmailsToInvite))
	participants = append(participants, db_models.Participant{
		Name:        req.OwnerName,
		Email:       req.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range req.EmailsToInvite {
		participants = append(participants, db_models.Participant{Email: email})
	}

	tripID, err := t.tripRepo.CreateTripWithParticipants(ctx, trip, participants)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	// The write is already committed; a failed send must not fail the request.
	err = t.mailService.SendTripConfirmationMail(
		req.OwnerEmail,
		req.OwnerName,
		req.Destination,
		req.StartsAt,
		req.EndsAt,
		t.cfg.TripConfirmURL(tripID.String()),
	)
	if err != nil {
		log.Printf("Failed to send trip confirmation mail to %s: %v", req.OwnerEmail, err)
	}

	return tripID, nil
}

// InviteParticipant adds one unconfirmed participant to an existing trip and
// mails them a presence-confirmation link. Late or duplicate invites are
// allowed, including on already-confirmed trips.
func (t *TripService) InviteParticipant(ctx context.Context, tripID string, email string) (uuid.UUID, error) {
	trip, err := t.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return uuid.Nil, utils.ErrTripNotFound
	}

	participant := &db_models.Participant{
		TripID: trip.ID,
		Email:  email,
	}

	participantID, err := t.participantRepo.CreateParticipant(ctx, participant)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	err = t.mailService.SendPresenceConfirmationMail(
		email,
		trip.Destination,
		trip.StartsAt,
		trip.EndsAt,
		t.cfg.ParticipantConfirmURL(participantID.String()),
	)
	if err != nil {
		log.Printf("Failed to send presence confirmation mail to %s: %v", email, err)
	}

	return participantID, nil
}

// ConfirmTrip flips the trip to confirmed and fans presence-confirmation
// mail out to every non-owner participant. Re-confirming is a no-op and
// sends nothing.
func (t *TripService) ConfirmTrip(ctx context.Context, tripID string) error {
	trip, err := t.tripRepo.GetTripWithPendingParticipants(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if trip.IsConfirmed {
		return nil
	}

	if err := t.tripRepo.MarkTripConfirmed(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}

	// One goroutine per participant; a rejected send is logged and does not
	// block or fail the other sends, nor the confirmation itself.
	var wg sync.WaitGroup
	for _, participant := range trip.Participants {
		wg.Add(1)
		go func(p db_models.Participant) {
			defer wg.Done()
			err := t.mailService.SendPresenceConfirmationMail(
				p.Email,
				trip.Destination,
				trip.StartsAt,
				trip.EndsAt,
				t.cfg.ParticipantConfirmURL(p.ID.String()),
			)
			if err != nil {
				log.Printf("Failed to send presence confirmation mail to %s: %v", p.Email, err)
			}
		}(participant)
	}
	wg.Wait()

	return nil
}
