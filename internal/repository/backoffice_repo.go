package repository

import (
	"database/sql"
	"fmt"
	"time"

	"hostelia/internal/db"
)

// HostelSummary is one hostel row plus the counts the stats aggregation
// needs, so the service never loads rooms and guests wholesale.
type HostelSummary struct {
	Hostel     db.Hostel
	RoomCount  int
	GuestCount int
}

type BackofficeRepository interface {
	ListUsers() ([]db.User, error)
	ListHostelSummaries() ([]HostelSummary, error)
}

type backofficeRepository struct {
	db *sql.DB
}

func NewBackofficeRepository(database *sql.DB) BackofficeRepository {
	return &backofficeRepository{db: database}
}

func (r *backofficeRepository) ListUsers() ([]db.User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.GoogleID, &u.AppleID,
			&u.Role, &u.IsNewUser, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating users: %w", err)
	}
	return users, nil
}

func (r *backofficeRepository) ListHostelSummaries() ([]HostelSummary, error) {
	rows, err := r.db.Query(`
		SELECT h.id, h.username, h.name, h.city, h.country, h.status,
		       h.experience_with_volunteers, h.created_at,
		       (SELECT COUNT(*) FROM rooms rm WHERE rm.hostel_id = h.id) AS room_count,
		       (SELECT COUNT(*) FROM hostel_guests hg WHERE hg.hostel_id = h.id) AS guest_count
		FROM hostels h
		ORDER BY h.id`)
	if err != nil {
		return nil, fmt.Errorf("error querying hostel summaries: %w", err)
	}
	defer rows.Close()

	var summaries []HostelSummary
	for rows.Next() {
		var s HostelSummary
		var createdAt time.Time
		if err := rows.Scan(
			&s.Hostel.ID, &s.Hostel.Username, &s.Hostel.Name, &s.Hostel.City,
			&s.Hostel.Country, &s.Hostel.Status, &s.Hostel.ExperienceWithVolunteers,
			&createdAt, &s.RoomCount, &s.GuestCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning hostel summary: %w", err)
		}
		s.Hostel.CreatedAt = createdAt
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating hostel summaries: %w", err)
	}
	return summaries, nil
}
