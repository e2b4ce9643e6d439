package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"planner/internal/repositories"
	"planner/internal/services"
)

var Module = fx.Provide(provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	tripRepo repositories.TripRepository,
	activityRepo repositories.ActivityRepository,
) services.ActivityServiceInterface {
	return services.NewActivityService(tripRepo, activityRepo)
}
