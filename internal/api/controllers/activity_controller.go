package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planner/internal/models/request_models"
	"planner/internal/models/response_models"
	"planner/internal/services"
	"planner/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// CreateActivity handles POST /trips/:tripId/activities.
func (a *ActivityController) CreateActivity(c *gin.Context) {
	tripID := c.Param("tripId")
	if _, err := uuid.Parse(tripID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID must be a valid UUID")
		return
	}

	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity payload: "+err.Error())
		return
	}

	activityID, err := a.activityService.CreateActivity(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ActivityCreatedResponse{ActivityID: activityID.String()}, "Activity created successfully")
}
