package response_models

type ParticipantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
}

type ParticipantEnvelope struct {
	Participant ParticipantResponse `json:"participant"`
}
