package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sympohub/dashboard/internal/app"
	"github.com/sympohub/dashboard/internal/domain"
)

// AdminEventService is the minimal interface needed for admin event endpoints.
type AdminEventService interface {
	CreateEvent(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

type createEventRequest struct {
	Name             string `json:"name"`
	StartDate        string `json:"start_date,omitempty"`
	ParticipantCount int    `json:"participant_count"`
	Status           string `json:"status,omitempty"`
}

type eventResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	StartDate        string `json:"start_date"`
	ParticipantCount int    `json:"participant_count"`
	Status           string `json:"status"`
}

func toEventResponse(event domain.Event) eventResponse {
	return eventResponse{
		ID:               event.ID,
		Name:             event.Name,
		StartDate:        event.StartDateString(),
		ParticipantCount: event.ParticipantCount,
		Status:           string(event.Status),
	}
}

// HandleListEvents lists every event, most recent start date first.
func HandleListEvents(svc AdminEventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := svc.ListEvents(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		resp := make([]eventResponse, 0, len(events))
		for _, event := range events {
			resp = append(resp, toEventResponse(event))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleCreateEvent creates one event from a JSON body.
func HandleCreateEvent(svc AdminEventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		in := app.CreateEventInput{
			Name:             req.Name,
			ParticipantCount: req.ParticipantCount,
		}
		if req.StartDate != "" {
			startDate, err := parseStartDate(req.StartDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidStartDate, domain.ErrInvalidStartDate.Error())
				return
			}
			in.StartDate = &startDate
		}
		if req.Status != "" {
			status, err := domain.ParseEventStatus(req.Status)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidStatus, domain.ErrInvalidStatus.Error())
				return
			}
			in.Status = status
		}

		event, err := svc.CreateEvent(r.Context(), in)
		if err != nil {
			writeCreateEventError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEventResponse(event))
	}
}

func writeCreateEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNameRequired):
		writeError(w, http.StatusBadRequest, codeEventNameRequired, err.Error())
	case errors.Is(err, domain.ErrInvalidParticipantCount):
		writeError(w, http.StatusBadRequest, codeInvalidParticipantCount, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, codeInvalidStatus, err.Error())
	case errors.Is(err, domain.ErrInvalidStartDate):
		writeError(w, http.StatusBadRequest, codeInvalidStartDate, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrEventAlreadyExists):
		writeError(w, http.StatusConflict, codeEventAlreadyExists, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// parseStartDate accepts a calendar date or an RFC3339 timestamp.
func parseStartDate(value string) (time.Time, error) {
	if t, err := time.Parse(domain.DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
