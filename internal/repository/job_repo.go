package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"hostelia/internal/db"
)

type JobRepository interface {
	// ReservationIDsToCheckIn returns 'walking in' reservations whose
	// checkin date has been reached. Stays already past checkout are
	// included: a sweep that was missed entirely still advances them,
	// and the same sweep's check-out pass then completes the move.
	ReservationIDsToCheckIn(today time.Time) ([]int, error)

	// ReservationIDsToCheckOut returns 'in house' reservations whose
	// checkout date has passed.
	ReservationIDsToCheckOut(today time.Time) ([]int, error)

	// UpdateReservationStatuses advances the given reservations from
	// fromStatus to newStatus. Rows no longer in fromStatus are left
	// alone, and an illegal transition is rejected outright.
	UpdateReservationStatuses(ids []int, fromStatus, newStatus string) error

	// ClearStaleBedPointers detaches bed pointers whose reservation has
	// checked out.
	ClearStaleBedPointers() (int64, error)
}

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(database *sql.DB) JobRepository {
	return &jobRepository{db: database}
}

func (r *jobRepository) idsWhere(query string, args ...interface{}) ([]int, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reservation ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning reservation id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation ids: %w", err)
	}
	return ids, nil
}

func (r *jobRepository) ReservationIDsToCheckIn(today time.Time) ([]int, error) {
	return r.idsWhere(`
		SELECT id FROM reservations
		WHERE status = $1 AND checkin_date <= $2`,
		db.StatusWalkingIn, today)
}

func (r *jobRepository) ReservationIDsToCheckOut(today time.Time) ([]int, error) {
	return r.idsWhere(`
		SELECT id FROM reservations
		WHERE status = $1 AND checkout_date <= $2`,
		db.StatusInHouse, today)
}

func (r *jobRepository) UpdateReservationStatuses(ids []int, fromStatus, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	if !db.CanTransition(fromStatus, newStatus) {
		return fmt.Errorf("illegal reservation status transition %q -> %q", fromStatus, newStatus)
	}
	_, err := r.db.Exec(`
		UPDATE reservations SET status = $1, updated_at = NOW()
		WHERE id = ANY($2) AND status = $3`,
		newStatus, pq.Array(ids), fromStatus)
	if err != nil {
		return fmt.Errorf("error updating reservation statuses: %w", err)
	}
	return nil
}

func (r *jobRepository) ClearStaleBedPointers() (int64, error) {
	result, err := r.db.Exec(`
		UPDATE beds SET reservation_id = NULL
		FROM reservations res
		WHERE beds.reservation_id = res.id AND res.status = $1`,
		db.StatusCheckedOut)
	if err != nil {
		return 0, fmt.Errorf("error clearing stale bed pointers: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error counting cleared bed pointers: %w", err)
	}
	return affected, nil
}
