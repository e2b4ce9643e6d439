package db_models

import "time"

type Trip struct {
	BaseModel
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
	IsConfirmed bool

	Participants []Participant
	Activities   []Activity
}
