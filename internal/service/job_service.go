package service

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"hostelia/internal/db"
	"hostelia/internal/repository"
)

// JobService runs the scheduled reservation sweeps. Status moves are
// monotonic: walking in -> in house once checkin is reached, in house
// -> checked out once checkout has passed.
type JobService struct {
	repo repository.JobRepository
}

func NewJobService(repo repository.JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) SweepReservationStatuses() error {
	return s.sweepAt(today())
}

func (s *JobService) sweepAt(now time.Time) error {
	// Check-ins run before check-outs so a stay whose whole in-house
	// window was missed still moves walking in -> in house -> checked
	// out within a single sweep.
	checkIns, err := s.repo.ReservationIDsToCheckIn(now)
	if err != nil {
		return fmt.Errorf("sweep: failed to find reservations to check in: %w", err)
	}
	if len(checkIns) > 0 {
		if err := s.repo.UpdateReservationStatuses(checkIns, db.StatusWalkingIn, db.StatusInHouse); err != nil {
			return fmt.Errorf("sweep: failed to mark reservations in house: %w", err)
		}
		log.WithField("count", len(checkIns)).Info("reservations marked in house")
	}

	checkOuts, err := s.repo.ReservationIDsToCheckOut(now)
	if err != nil {
		return fmt.Errorf("sweep: failed to find reservations to check out: %w", err)
	}
	if len(checkOuts) > 0 {
		if err := s.repo.UpdateReservationStatuses(checkOuts, db.StatusInHouse, db.StatusCheckedOut); err != nil {
			return fmt.Errorf("sweep: failed to mark reservations checked out: %w", err)
		}
		log.WithField("count", len(checkOuts)).Info("reservations marked checked out")
	}

	cleared, err := s.repo.ClearStaleBedPointers()
	if err != nil {
		return fmt.Errorf("sweep: failed to clear stale bed pointers: %w", err)
	}
	if cleared > 0 {
		log.WithField("count", cleared).Info("stale bed pointers cleared")
	}
	return nil
}
