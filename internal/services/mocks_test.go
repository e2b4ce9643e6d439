package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	dbm "planner/internal/models/db_models"
	"planner/internal/repositories"
	"planner/internal/services"
)

// Test doubles in the func-field style: set only the methods a test needs.

type mockTripRepo struct {
	createTripWithParticipants func(ctx context.Context, trip *dbm.Trip, participants []dbm.Participant) (uuid.UUID, error)
	getTripByID                func(ctx context.Context, tripID string) (*dbm.Trip, error)
	getTripWithPending         func(ctx context.Context, tripID string) (*dbm.Trip, error)
	markTripConfirmed          func(ctx context.Context, tripID uuid.UUID) error
}

func (m *mockTripRepo) CreateTripWithParticipants(ctx context.Context, trip *dbm.Trip, participants []dbm.Participant) (uuid.UUID, error) {
	return m.createTripWithParticipants(ctx, trip, participants)
}

func (m *mockTripRepo) GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	return m.getTripByID(ctx, tripID)
}

func (m *mockTripRepo) GetTripWithPendingParticipants(ctx context.Context, tripID string) (*dbm.Trip, error) {
	return m.getTripWithPending(ctx, tripID)
}

func (m *mockTripRepo) MarkTripConfirmed(ctx context.Context, tripID uuid.UUID) error {
	return m.markTripConfirmed(ctx, tripID)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

type mockParticipantRepo struct {
	createParticipant        func(ctx context.Context, participant *dbm.Participant) (uuid.UUID, error)
	getParticipantByID       func(ctx context.Context, participantID string) (*dbm.Participant, error)
	markParticipantConfirmed func(ctx context.Context, participantID uuid.UUID) error
}

func (m *mockParticipantRepo) CreateParticipant(ctx context.Context, participant *dbm.Participant) (uuid.UUID, error) {
	return m.createParticipant(ctx, participant)
}

func (m *mockParticipantRepo) GetParticipantByID(ctx context.Context, participantID string) (*dbm.Participant, error) {
	return m.getParticipantByID(ctx, participantID)
}

func (m *mockParticipantRepo) MarkParticipantConfirmed(ctx context.Context, participantID uuid.UUID) error {
	return m.markParticipantConfirmed(ctx, participantID)
}

var _ repositories.ParticipantRepository = (*mockParticipantRepo)(nil)

type mockActivityRepo struct {
	createActivity func(ctx context.Context, activity *dbm.Activity) (uuid.UUID, error)
}

func (m *mockActivityRepo) CreateActivity(ctx context.Context, activity *dbm.Activity) (uuid.UUID, error) {
	return m.createActivity(ctx, activity)
}

var _ repositories.ActivityRepository = (*mockActivityRepo)(nil)

// sentMail records one delivery attempt made through the mock mailer.
type sentMail struct {
	Kind       string // "trip" or "presence"
	To         string
	ConfirmURL string
}

// mockMailService records sends; failFor lists recipients whose sends fail.
// It is safe for concurrent use since confirm-trip fans out goroutines.
type mockMailService struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]error
}

func (m *mockMailService) record(kind, to, confirmURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{Kind: kind, To: to, ConfirmURL: confirmURL})
	if err, ok := m.failFor[to]; ok {
		return err
	}
	return nil
}

func (m *mockMailService) SendTripConfirmationMail(to, ownerName, destination string, startsAt, endsAt time.Time, confirmURL string) error {
	return m.record("trip", to, confirmURL)
}

func (m *mockMailService) SendPresenceConfirmationMail(to, destination string, startsAt, endsAt time.Time, confirmURL string) error {
	return m.record("presence", to, confirmURL)
}

func (m *mockMailService) sentMails() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

var _ services.IMailService = (*mockMailService)(nil)
