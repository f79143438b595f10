package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date form used for event start dates.
const DateLayout = "2006-01-02"

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusPending   EventStatus = "pending"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// EventStatuses returns every status value in declaration order.
func EventStatuses() []EventStatus {
	return []EventStatus{
		EventStatusActive,
		EventStatusPending,
		EventStatusCompleted,
		EventStatusCancelled,
	}
}

// ParseEventStatus converts a stored or submitted value into an EventStatus.
func ParseEventStatus(value string) (EventStatus, error) {
	for _, status := range EventStatuses() {
		if string(status) == value {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	_, err := ParseEventStatus(string(s))
	return err == nil
}

// Event represents a scheduled symposium, conference or similar gathering.
type Event struct {
	ID               string
	Name             string
	StartDate        time.Time
	ParticipantCount int
	Status           EventStatus
}

// StartDateString formats the start date as YYYY-MM-DD.
func (e Event) StartDateString() string {
	return e.StartDate.Format(DateLayout)
}
