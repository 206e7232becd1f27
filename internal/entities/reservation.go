package entities

import "time"

// CreateReservationInput is what the ledger needs to place a guest in a
// bed. Dates are half-open: the checkout day is free for the next stay.
type CreateReservationInput struct {
	GuestID      int
	RoomNumber   string
	BedNumber    string
	CheckinDate  time.Time
	CheckoutDate time.Time
}

type ReservationResponse struct {
	ID           int       `json:"id"`
	Code         string    `json:"code"`
	HostelID     int       `json:"hostel_id"`
	GuestID      int       `json:"guest_id"`
	RoomNumber   string    `json:"room_number"`
	BedNumber    string    `json:"bed_number"`
	CheckinDate  time.Time `json:"checkin_date"`
	CheckoutDate time.Time `json:"checkout_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
