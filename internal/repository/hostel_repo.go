package repository

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"hostelia/internal/db"
)

type HostelRepository interface {
	// FindByOwner resolves the hostel administered by the given user.
	// Returns (nil, nil) when the user owns no hostel.
	FindByOwner(userID int) (*db.Hostel, error)

	GetByID(id int) (*db.Hostel, error)

	// Create persists the hostel and its first owner together.
	Create(hostel *db.Hostel, ownerID int) error

	UsernameExists(username string) (bool, error)

	SetStripeAccount(hostelID int, accountID string) error
}

type hostelRepository struct {
	db *sql.DB
}

func NewHostelRepository(database *sql.DB) HostelRepository {
	return &hostelRepository{db: database}
}

const hostelColumns = `id, username, name, street, city, country, zip, phone, email, website,
	experience_with_volunteers, currency, status, stripe_account_id, created_at, updated_at`

func scanHostel(row *sql.Row) (*db.Hostel, error) {
	var h db.Hostel
	err := row.Scan(
		&h.ID, &h.Username, &h.Name, &h.Street, &h.City, &h.Country, &h.Zip, &h.Phone,
		&h.Email, &h.Website, &h.ExperienceWithVolunteers, &h.Currency, &h.Status,
		&h.StripeAccountID, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hostelRepository) FindByOwner(userID int) (*db.Hostel, error) {
	row := r.db.QueryRow(`
		SELECT `+hostelColumns+`
		FROM hostels h
		JOIN hostel_owners ho ON ho.hostel_id = h.id
		WHERE ho.user_id = $1`, userID)
	hostel, err := scanHostel(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying hostel by owner: %w", err)
	}
	return hostel, nil
}

func (r *hostelRepository) GetByID(id int) (*db.Hostel, error) {
	row := r.db.QueryRow(`SELECT `+hostelColumns+` FROM hostels h WHERE h.id = $1`, id)
	hostel, err := scanHostel(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying hostel: %w", err)
	}
	return hostel, nil
}

func (r *hostelRepository) Create(hostel *db.Hostel, ownerID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting hostel transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO hostels
			(username, name, street, city, country, zip, phone, email, website, experience_with_volunteers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, status, created_at, updated_at`,
		hostel.Username, hostel.Name, hostel.Street, hostel.City, hostel.Country,
		hostel.Zip, hostel.Phone, hostel.Email, hostel.Website, hostel.ExperienceWithVolunteers,
	).Scan(&hostel.ID, &hostel.Status, &hostel.CreatedAt, &hostel.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting hostel: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO hostel_owners (hostel_id, user_id) VALUES ($1, $2)`,
		hostel.ID, ownerID); err != nil {
		return fmt.Errorf("error inserting hostel owner: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing hostel: %w", err)
	}
	return nil
}

func (r *hostelRepository) UsernameExists(username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM hostels WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking hostel username: %w", err)
	}
	return exists, nil
}

func (r *hostelRepository) SetStripeAccount(hostelID int, accountID string) error {
	result, err := r.db.Exec(`
		UPDATE hostels SET stripe_account_id = $1, updated_at = NOW() WHERE id = $2`,
		accountID, hostelID)
	if err != nil {
		return fmt.Errorf("error storing stripe account: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
