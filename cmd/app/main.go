package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"planner/cmd/fx/activity_fx"
	"planner/cmd/fx/config_fx"
	"planner/cmd/fx/controllers_fx"
	"planner/cmd/fx/db_fx"
	"planner/cmd/fx/mail_fx"
	"planner/cmd/fx/participant_fx"
	"planner/cmd/fx/trip_fx"
	"planner/internal/api/controllers"
	"planner/internal/config"
	"planner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		mail_fx.Module,
		trip_fx.Module,
		participant_fx.Module,
		activity_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	participantController *controllers.ParticipantController,
	activityController *controllers.ActivityController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, participantController, activityController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	participantController *controllers.ParticipantController,
	activityController *controllers.ActivityController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.POST("/:tripId/invites", tripController.CreateInvite)
	tripsGroup.POST("/:tripId/activities", activityController.CreateActivity)
	tripsGroup.GET("/:tripId/confirm", tripController.ConfirmTrip)

	participantsGroup := r.Group("/participants")
	participantsGroup.GET("/:participantId", participantController.GetParticipant)
	participantsGroup.GET("/:participantId/confirm", participantController.ConfirmParticipant)
}
