package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"hostelia/internal/db"
)

type EventRepository interface {
	Create(event *db.Event) error
	ListByHostel(hostelID int) ([]db.Event, error)
}

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(database *sql.DB) EventRepository {
	return &eventRepository{db: database}
}

func (r *eventRepository) Create(event *db.Event) error {
	err := r.db.QueryRow(`
		INSERT INTO events
			(hostel_id, name, description, price, date, spots_available, limited_spots,
			 paid_event, payment_to_hostel, payment_methods, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		event.HostelID, event.Name, event.Description, event.Price, event.Date,
		event.SpotsAvailable, event.LimitedSpots, event.PaidEvent, event.PaymentToHostel,
		pq.Array(event.PaymentMethods), event.Status,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting event: %w", err)
	}
	return nil
}

func (r *eventRepository) ListByHostel(hostelID int) ([]db.Event, error) {
	rows, err := r.db.Query(`
		SELECT id, hostel_id, name, description, price, date, spots_available,
		       limited_spots, paid_event, payment_to_hostel, payment_methods, status, created_at
		FROM events WHERE hostel_id = $1 ORDER BY date`, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		var e db.Event
		if err := rows.Scan(
			&e.ID, &e.HostelID, &e.Name, &e.Description, &e.Price, &e.Date,
			&e.SpotsAvailable, &e.LimitedSpots, &e.PaidEvent, &e.PaymentToHostel,
			pq.Array(&e.PaymentMethods), &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating events: %w", err)
	}
	return events, nil
}
