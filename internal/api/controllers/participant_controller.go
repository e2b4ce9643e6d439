package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planner/internal/config"
	"planner/internal/services"
	"planner/pkg/utils"
)

type ParticipantController struct {
	participantService services.ParticipantServiceInterface
	cfg                config.Config
}

func NewParticipantController(participantService services.ParticipantServiceInterface, cfg config.Config) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
		cfg:                cfg,
	}
}

// ConfirmParticipant handles GET /participants/:participantId/confirm.
func (p *ParticipantController) ConfirmParticipant(c *gin.Context) {
	participantID := c.Param("participantId")
	if _, err := uuid.Parse(participantID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Participant ID must be a valid UUID")
		return
	}

	tripID, err := p.participantService.ConfirmParticipant(c.Request.Context(), participantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, p.cfg.TripPageURL(tripID.String()))
}

// GetParticipant handles GET /participants/:participantId.
func (p *ParticipantController) GetParticipant(c *gin.Context) {
	participantID := c.Param("participantId")
	if _, err := uuid.Parse(participantID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Participant ID must be a valid UUID")
		return
	}

	participant, err := p.participantService.GetParticipantByID(c.Request.Context(), participantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"participant": participant}, "Participant fetched successfully")
}
