package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelia/internal/db"
)

func TestBuildReservationEmailAddressesGuest(t *testing.T) {
	user := &db.User{ID: 20, Name: "Ana María", Email: "ana@example.com", Role: RoleGuest}
	hostel := &db.Hostel{
		ID:    1,
		Name:  "Sunset Hostel",
		Email: sql.NullString{String: "front-desk@sunsethostel.example", Valid: true},
	}
	res := &db.Reservation{
		Code:         "9f0d4a7e-aaaa-bbbb-cccc-000000000001",
		RoomNumber:   "Dorm 1",
		BedNumber:    "A",
		CheckinDate:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		CheckoutDate: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
	}

	email, err := buildReservationEmail(user, hostel, res)
	require.NoError(t, err)
	require.NotNil(t, email)

	// Delivered to the guest's account address, never the hostel's.
	assert.Equal(t, "ana@example.com", email.to)
	assert.Equal(t, "Ana María", email.toName)
	assert.NotEqual(t, hostel.Email.String, email.to)

	assert.Contains(t, email.subject, res.Code)
	assert.Contains(t, email.plain, "Hi Ana María")
	assert.Contains(t, email.plain, "Dorm 1")
	assert.Contains(t, email.html, res.Code)
	assert.Contains(t, email.html, "01 Mar 2026")
}

func TestBuildReservationEmailWithoutAddress(t *testing.T) {
	hostel := &db.Hostel{ID: 1, Name: "Sunset Hostel"}
	res := &db.Reservation{Code: "code"}

	email, err := buildReservationEmail(nil, hostel, res)
	require.NoError(t, err)
	assert.Nil(t, email)

	email, err = buildReservationEmail(&db.User{Name: "Ana"}, hostel, res)
	require.NoError(t, err)
	assert.Nil(t, email)
}
