package service

import (
	"database/sql"
	"time"

	"hostelia/internal/db"
	"hostelia/internal/errors"
	"hostelia/internal/repository"
)

type CreateEventInput struct {
	Name            string
	Description     string
	Price           float64
	Date            time.Time
	SpotsAvailable  int
	LimitedSpots    bool
	PaidEvent       bool
	PaymentToHostel bool
	PaymentMethods  []string
}

type EventService struct {
	events  repository.EventRepository
	hostels repository.HostelRepository
}

func NewEventService(events repository.EventRepository, hostels repository.HostelRepository) *EventService {
	return &EventService{events: events, hostels: hostels}
}

func (s *EventService) CreateEvent(ownerID int, in CreateEventInput) (*db.Event, error) {
	hostel, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, errors.NewValidationError("hostel does not exist")
	}
	if in.Name == "" || in.Date.IsZero() {
		return nil, errors.NewValidationError("event name and date are required")
	}

	event := &db.Event{
		HostelID:        hostel.ID,
		Name:            in.Name,
		Description:     nullString(in.Description),
		Date:            in.Date,
		SpotsAvailable:  in.SpotsAvailable,
		LimitedSpots:    in.LimitedSpots,
		PaidEvent:       in.PaidEvent,
		PaymentToHostel: in.PaymentToHostel,
		PaymentMethods:  in.PaymentMethods,
		// Events created by a registered hostel are auto-approved.
		Status: "approved",
	}
	if in.PaidEvent {
		event.Price = sql.NullFloat64{Float64: in.Price, Valid: true}
	}
	if err := s.events.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListEvents(ownerID int) ([]db.Event, error) {
	hostel, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, errors.NewValidationError("hostel does not exist")
	}
	return s.events.ListByHostel(hostel.ID)
}
