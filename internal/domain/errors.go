package domain

import "errors"

var (
	ErrEventNameRequired       = errors.New("event name required")
	ErrInvalidStatus           = errors.New("invalid event status")
	ErrInvalidParticipantCount = errors.New("invalid participant count")
	ErrInvalidStartDate        = errors.New("invalid start date")
	ErrInvalidID               = errors.New("invalid id")
	ErrEventAlreadyExists      = errors.New("event already exists")
)
