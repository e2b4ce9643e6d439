package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;index"`
	Title    string
	OccursAt time.Time
}
