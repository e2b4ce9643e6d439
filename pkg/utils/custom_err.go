package utils

import "errors"

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidStartDate    = errors.New("invalid trip start date")
	ErrInvalidEndDate      = errors.New("invalid trip end date")
	ErrInvalidActivityDate = errors.New("invalid activity date")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
)
