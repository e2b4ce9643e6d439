package db_models

import "github.com/google/uuid"

type Participant struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Email       string
	IsOwner     bool
	IsConfirmed bool
}
