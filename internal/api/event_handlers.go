package api

import (
	"net/http"
	"time"

	"hostelia/internal/auth"
	"hostelia/internal/errors"
	"hostelia/internal/service"
)

type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, errors.NewValidationError("date must be formatted as YYYY-MM-DD"))
		return
	}

	event, err := h.events.CreateEvent(auth.UserID(r), service.CreateEventInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Date:            date,
		SpotsAvailable:  req.SpotsAvailable,
		LimitedSpots:    req.LimitedSpots,
		PaidEvent:       req.PaidEvent,
		PaymentToHostel: req.PaymentToHostel,
		PaymentMethods:  req.PaymentMethods,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListEvents(auth.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, toEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}
