package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planner/internal/config"
	"planner/internal/models/request_models"
	"planner/internal/models/response_models"
	"planner/internal/services"
	"planner/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	cfg         config.Config
}

func NewTripController(tripService services.TripServiceInterface, cfg config.Config) *TripController {
	return &TripController{
		tripService: tripService,
		cfg:         cfg,
	}
}

// CreateTrip handles POST /trips.
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload: "+err.Error())
		return
	}

	tripID, err := t.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TripCreatedResponse{TripID: tripID.String()}, "Trip created successfully")
}

// CreateInvite handles POST /trips/:tripId/invites.
func (t *TripController) CreateInvite(c *gin.Context) {
	tripID := c.Param("tripId")
	if _, err := uuid.Parse(tripID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID must be a valid UUID")
		return
	}

	var req request_models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid invite payload: "+err.Error())
		return
	}

	participantID, err := t.tripService.InviteParticipant(c.Request.Context(), tripID, req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.InviteCreatedResponse{ParticipantID: participantID.String()}, "Invite created successfully")
}

// ConfirmTrip handles GET /trips/:tripId/confirm and redirects to the
// trip's front-end page whether or not the call actually confirmed it.
func (t *TripController) ConfirmTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if _, err := uuid.Parse(tripID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID must be a valid UUID")
		return
	}

	if err := t.tripService.ConfirmTrip(c.Request.Context(), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, t.cfg.TripPageURL(tripID))
}
