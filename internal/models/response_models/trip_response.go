package response_models

type TripCreatedResponse struct {
	TripID string `json:"tripId"`
}

type InviteCreatedResponse struct {
	ParticipantID string `json:"participantId"`
}

type ActivityCreatedResponse struct {
	ActivityID string `json:"activityId"`
}
