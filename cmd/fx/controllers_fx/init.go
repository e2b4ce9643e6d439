package controllers_fx

import (
	"go.uber.org/fx"

	"planner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewParticipantController),
	fx.Provide(controllers.NewActivityController))
