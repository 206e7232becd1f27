package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelia/internal/db"
	"hostelia/internal/entities"
	"hostelia/internal/errors"
)

const testOwnerID = 7

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func newReservationFixture(t *testing.T) (*ReservationService, *fakeReservationRepo) {
	t.Helper()

	hostels := &fakeHostelRepo{
		hostel:  &db.Hostel{ID: 1, Username: "sunsethostel", Name: "Sunset Hostel"},
		ownerID: testOwnerID,
	}
	guests := &fakeGuestRepo{guests: []*db.Guest{
		{ID: 1, UserID: 20, Username: "ana"},
		{ID: 2, UserID: 21, Username: "bruno"},
	}}
	users := &fakeUserRepo{users: []*db.User{
		{ID: 20, Name: "Ana María", Email: "ana@example.com", Role: RoleGuest},
		{ID: 21, Name: "Bruno", Email: "bruno@example.com", Role: RoleGuest},
	}}
	rooms := &fakeRoomRepo{}
	require.NoError(t, rooms.CreateWithBeds(
		&db.Room{HostelID: 1, Name: "Dorm 1", Type: "Shared", Capacity: 4, OrganizationBy: "letters"},
		[]string{"A", "B", "C", "D"},
	))
	reservations := &fakeReservationRepo{}

	svc := NewReservationService(reservations, rooms, hostels, guests, users, nil)
	return svc, reservations
}

func reserve(t *testing.T, svc *ReservationService, guestID int, bed string, checkin, checkout time.Time) (*entities.ReservationResponse, error) {
	t.Helper()
	return svc.CreateReservation(testOwnerID, entities.CreateReservationInput{
		GuestID:      guestID,
		RoomNumber:   "Dorm 1",
		BedNumber:    bed,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
	})
}

func TestCreateReservation(t *testing.T) {
	svc, repo := newReservationFixture(t)

	res, err := reserve(t, svc, 1, "A", date(1), date(5))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Code)
	assert.Equal(t, db.StatusWalkingIn, res.Status)
	assert.Equal(t, "Dorm 1", res.RoomNumber)
	assert.Equal(t, "A", res.BedNumber)
	assert.Len(t, repo.reservations, 1)
}

func TestCreateReservationOverlapConflict(t *testing.T) {
	svc, repo := newReservationFixture(t)

	_, err := reserve(t, svc, 1, "A", date(1), date(5))
	require.NoError(t, err)

	// A second guest wants the same bed for an intersecting range.
	_, err = reserve(t, svc, 2, "A", date(3), date(8))
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))
	assert.Len(t, repo.reservations, 1)
}

func TestCreateReservationDifferentBedsSameDates(t *testing.T) {
	svc, repo := newReservationFixture(t)

	_, err := reserve(t, svc, 1, "A", date(1), date(5))
	require.NoError(t, err)
	_, err = reserve(t, svc, 2, "B", date(1), date(5))
	require.NoError(t, err)
	assert.Len(t, repo.reservations, 2)
}

func TestCreateReservationBackToBackStays(t *testing.T) {
	svc, _ := newReservationFixture(t)

	_, err := reserve(t, svc, 1, "A", date(1), date(5))
	require.NoError(t, err)

	// Checkout day is free for the next guest's checkin.
	_, err = reserve(t, svc, 2, "A", date(5), date(9))
	require.NoError(t, err)
}

func TestCreateReservationInvertedDates(t *testing.T) {
	svc, _ := newReservationFixture(t)

	for _, checkout := range []time.Time{date(1), date(2)} {
		_, err := reserve(t, svc, 1, "A", date(2), checkout)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err))
	}
}

func TestCreateReservationUnknownGuest(t *testing.T) {
	svc, _ := newReservationFixture(t)

	_, err := reserve(t, svc, 99, "A", date(1), date(5))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errors.StatusCode(err))
}

func TestCreateReservationUnknownBed(t *testing.T) {
	svc, _ := newReservationFixture(t)

	// Bed outside the room's generated range.
	_, err := reserve(t, svc, 1, "Z", date(1), date(5))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errors.StatusCode(err))

	// Room that was never created.
	_, err = svc.CreateReservation(testOwnerID, entities.CreateReservationInput{
		GuestID:      1,
		RoomNumber:   "Dorm 9",
		BedNumber:    "A",
		CheckinDate:  date(1),
		CheckoutDate: date(5),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errors.StatusCode(err))
}

func TestCreateReservationWithoutHostel(t *testing.T) {
	svc, _ := newReservationFixture(t)

	_, err := svc.CreateReservation(999, entities.CreateReservationInput{
		GuestID:      1,
		RoomNumber:   "Dorm 1",
		BedNumber:    "A",
		CheckinDate:  date(1),
		CheckoutDate: date(5),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err))
}

func TestGetAvailabilityExcludesOccupiedBeds(t *testing.T) {
	svc, _ := newReservationFixture(t)

	_, err := reserve(t, svc, 1, "B", date(1), date(5))
	require.NoError(t, err)

	avail, err := svc.GetAvailability(testOwnerID, "2026-03-02", "2026-03-04")
	require.NoError(t, err)
	require.Len(t, avail.Rooms, 1)
	assert.Equal(t, "Dorm 1", avail.Rooms[0].Room)
	assert.Equal(t, []string{"A", "C", "D"}, avail.Rooms[0].FreeBeds)
}

func TestGetAvailabilityBoundaryDates(t *testing.T) {
	svc, _ := newReservationFixture(t)

	_, err := reserve(t, svc, 1, "A", date(1), date(5))
	require.NoError(t, err)

	// A query starting on the checkout day sees the bed as free.
	avail, err := svc.GetAvailability(testOwnerID, "2026-03-05", "2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, avail.Rooms[0].FreeBeds)

	// A query ending on the checkin day does too.
	avail, err = svc.GetAvailability(testOwnerID, "2026-02-25", "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, avail.Rooms[0].FreeBeds)
}

func TestGetAvailabilityIsReadOnly(t *testing.T) {
	svc, repo := newReservationFixture(t)

	_, err := reserve(t, svc, 1, "A", date(1), date(5))
	require.NoError(t, err)

	first, err := svc.GetAvailability(testOwnerID, "2026-03-01", "2026-03-05")
	require.NoError(t, err)
	second, err := svc.GetAvailability(testOwnerID, "2026-03-01", "2026-03-05")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.reservations, 1)
}

func TestGetAvailabilityValidation(t *testing.T) {
	svc, _ := newReservationFixture(t)

	tests := []struct {
		name     string
		checkin  string
		checkout string
	}{
		{"missing checkin", "", "2026-03-05"},
		{"missing checkout", "2026-03-01", ""},
		{"malformed checkin", "03/01/2026", "2026-03-05"},
		{"malformed checkout", "2026-03-01", "next week"},
		{"checkout before checkin", "2026-03-05", "2026-03-01"},
		{"zero-length stay", "2026-03-05", "2026-03-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetAvailability(testOwnerID, tt.checkin, tt.checkout)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err))
		})
	}
}
