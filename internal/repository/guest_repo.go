package repository

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/lib/pq"

	"hostelia/internal/db"
)

type GuestRepository interface {
	// GetByUserID returns (nil, nil) when the user has no guest profile.
	GetByUserID(userID int) (*db.Guest, error)
	GetByID(id int) (*db.Guest, error)
	GetByUsername(username string) (*db.Guest, error)
	Create(guest *db.Guest) error
	Update(guest *db.Guest) error
	UsernameExists(username string) (bool, error)
	AddPhoto(guestID int, url string) error
	RemovePhoto(guestID int, url string) error
}

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(database *sql.DB) GuestRepository {
	return &guestRepository{db: database}
}

const guestColumns = `id, user_id, username, phone_number, birthday, country, description,
	interests, languages, guest_photos, digital_nomad, smoker, pets,
	show_profile_authorization, created_at, updated_at`

func scanGuest(row *sql.Row) (*db.Guest, error) {
	var g db.Guest
	err := row.Scan(
		&g.ID, &g.UserID, &g.Username, &g.PhoneNumber, &g.Birthday, &g.Country, &g.Description,
		pq.Array(&g.Interests), pq.Array(&g.Languages), pq.Array(&g.GuestPhotos),
		&g.DigitalNomad, &g.Smoker, &g.Pets, &g.ShowProfileAuth, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *guestRepository) getBy(clause string, arg interface{}) (*db.Guest, error) {
	row := r.db.QueryRow(`SELECT `+guestColumns+` FROM guests WHERE `+clause, arg)
	guest, err := scanGuest(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying guest: %w", err)
	}
	return guest, nil
}

func (r *guestRepository) GetByUserID(userID int) (*db.Guest, error) {
	return r.getBy("user_id = $1", userID)
}

func (r *guestRepository) GetByID(id int) (*db.Guest, error) {
	return r.getBy("id = $1", id)
}

func (r *guestRepository) GetByUsername(username string) (*db.Guest, error) {
	return r.getBy("username = $1", username)
}

func (r *guestRepository) Create(guest *db.Guest) error {
	err := r.db.QueryRow(`
		INSERT INTO guests
			(user_id, username, phone_number, birthday, country, description, interests,
			 languages, guest_photos, digital_nomad, smoker, pets, show_profile_authorization)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		guest.UserID, guest.Username, guest.PhoneNumber, guest.Birthday, guest.Country,
		guest.Description, pq.Array(guest.Interests), pq.Array(guest.Languages),
		pq.Array(guest.GuestPhotos), guest.DigitalNomad, guest.Smoker, guest.Pets,
		guest.ShowProfileAuth,
	).Scan(&guest.ID, &guest.CreatedAt, &guest.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting guest: %w", err)
	}
	return nil
}

func (r *guestRepository) Update(guest *db.Guest) error {
	_, err := r.db.Exec(`
		UPDATE guests SET
			phone_number = $1, birthday = $2, country = $3, description = $4,
			interests = $5, languages = $6, digital_nomad = $7, smoker = $8,
			pets = $9, show_profile_authorization = $10, updated_at = NOW()
		WHERE id = $11`,
		guest.PhoneNumber, guest.Birthday, guest.Country, guest.Description,
		pq.Array(guest.Interests), pq.Array(guest.Languages), guest.DigitalNomad,
		guest.Smoker, guest.Pets, guest.ShowProfileAuth, guest.ID)
	if err != nil {
		return fmt.Errorf("error updating guest: %w", err)
	}
	return nil
}

func (r *guestRepository) UsernameExists(username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM guests WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking guest username: %w", err)
	}
	return exists, nil
}

func (r *guestRepository) AddPhoto(guestID int, url string) error {
	_, err := r.db.Exec(`
		UPDATE guests SET guest_photos = array_append(guest_photos, $1), updated_at = NOW()
		WHERE id = $2`, url, guestID)
	if err != nil {
		return fmt.Errorf("error adding guest photo: %w", err)
	}
	return nil
}

func (r *guestRepository) RemovePhoto(guestID int, url string) error {
	_, err := r.db.Exec(`
		UPDATE guests SET guest_photos = array_remove(guest_photos, $1), updated_at = NOW()
		WHERE id = $2`, url, guestID)
	if err != nil {
		return fmt.Errorf("error removing guest photo: %w", err)
	}
	return nil
}
