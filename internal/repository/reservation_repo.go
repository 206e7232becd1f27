package repository

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"hostelia/internal/db"
	"hostelia/internal/errors"
	"hostelia/internal/inventory"
)

// Postgres error codes surfaced as reservation conflicts.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type ReservationRepository interface {
	// ListForBed returns every reservation ever made for one bed,
	// identified by value (room name + bed number) within a hostel.
	ListForBed(hostelID int, roomNumber, bedNumber string) ([]db.Reservation, error)

	// ListOverlapping returns the hostel's reservations whose half-open
	// [checkin, checkout) range intersects the given one.
	ListOverlapping(hostelID int, checkin, checkout time.Time) ([]db.Reservation, error)

	// Create persists the reservation and its three cross-references
	// (bed pointer, guest reservation list, hostel guest set) in a
	// single transaction. A concurrent overlapping insert is rejected
	// by the exclusion constraint and reported as a ConflictError.
	Create(res *db.Reservation) error

	// CurrentOccupantPhotos maps each occupied bed of the hostel to the
	// occupant's first profile photo, derived from reservations active
	// on the given day.
	CurrentOccupantPhotos(hostelID int, on time.Time) (map[inventory.BedRef]string, error)
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(database *sql.DB) ReservationRepository {
	return &reservationRepository{db: database}
}

const reservationColumns = `id, code, hostel_id, guest_id, room_number, bed_number,
	checkin_date, checkout_date, status, created_at, updated_at`

func scanReservations(rows *sql.Rows) ([]db.Reservation, error) {
	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := rows.Scan(
			&res.ID, &res.Code, &res.HostelID, &res.GuestID, &res.RoomNumber, &res.BedNumber,
			&res.CheckinDate, &res.CheckoutDate, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservations: %w", err)
	}
	return reservations, nil
}

func (r *reservationRepository) ListForBed(hostelID int, roomNumber, bedNumber string) ([]db.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE hostel_id = $1 AND room_number = $2 AND bed_number = $3
		ORDER BY checkin_date`
	rows, err := r.db.Query(query, hostelID, roomNumber, bedNumber)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations for bed: %w", err)
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) ListOverlapping(hostelID int, checkin, checkout time.Time) ([]db.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE hostel_id = $1
		  AND checkin_date < $3
		  AND checkout_date > $2
		ORDER BY checkin_date`
	rows, err := r.db.Query(query, hostelID, checkin, checkout)
	if err != nil {
		return nil, fmt.Errorf("error querying overlapping reservations: %w", err)
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) Create(res *db.Reservation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting reservation transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO reservations
			(code, hostel_id, guest_id, room_number, bed_number, checkin_date, checkout_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(insert,
		res.Code, res.HostelID, res.GuestID, res.RoomNumber, res.BedNumber,
		res.CheckinDate, res.CheckoutDate, res.Status,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return mapConflict(err)
	}

	// Bed pointer: which reservation currently claims the bed. Display
	// convenience only; overlap queries never read it.
	_, err = tx.Exec(`
		UPDATE beds SET reservation_id = $1
		FROM rooms
		WHERE beds.room_id = rooms.id
		  AND rooms.hostel_id = $2 AND rooms.name = $3 AND beds.bed_number = $4`,
		res.ID, res.HostelID, res.RoomNumber, res.BedNumber)
	if err != nil {
		return fmt.Errorf("error updating bed pointer: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO guest_reservations (guest_id, reservation_id) VALUES ($1, $2)`,
		res.GuestID, res.ID)
	if err != nil {
		return fmt.Errorf("error appending guest reservation: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO hostel_guests (hostel_id, guest_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		res.HostelID, res.GuestID)
	if err != nil {
		return fmt.Errorf("error adding guest to hostel: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return mapConflict(err)
	}
	return nil
}

func (r *reservationRepository) CurrentOccupantPhotos(hostelID int, on time.Time) (map[inventory.BedRef]string, error) {
	query := `
		SELECT r.room_number, r.bed_number, g.guest_photos
		FROM reservations r
		JOIN guests g ON g.id = r.guest_id
		WHERE r.hostel_id = $1
		  AND r.checkin_date <= $2
		  AND r.checkout_date > $2
		  AND r.status <> 'checked out'`
	rows, err := r.db.Query(query, hostelID, on)
	if err != nil {
		return nil, fmt.Errorf("error querying current occupants: %w", err)
	}
	defer rows.Close()

	occupants := make(map[inventory.BedRef]string)
	for rows.Next() {
		var room, bed string
		var photos []string
		if err := rows.Scan(&room, &bed, pq.Array(&photos)); err != nil {
			return nil, fmt.Errorf("error scanning occupant row: %w", err)
		}
		photo := ""
		if len(photos) > 0 {
			photo = photos[0]
		}
		occupants[inventory.BedRef{Room: room, Bed: bed}] = photo
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating occupants: %w", err)
	}
	return occupants, nil
}

// mapConflict turns overlap-constraint violations into the 409 the
// caller expects; everything else passes through wrapped.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		if string(pqErr.Code) == pgExclusionViolation || string(pqErr.Code) == pgUniqueViolation {
			return errors.NewConflictError("this bed is already reserved for the selected dates")
		}
	}
	return fmt.Errorf("error creating reservation: %w", err)
}
