package participant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"planner/internal/repositories"
	"planner/internal/services"
)

var Module = fx.Provide(provideParticipantRepo, provideParticipantService)

func provideParticipantRepo(db *gorm.DB) repositories.ParticipantRepository {
	return repositories.NewParticipantRepository(db)
}

func provideParticipantService(participantRepo repositories.ParticipantRepository) services.ParticipantServiceInterface {
	return services.NewParticipantService(participantRepo)
}
