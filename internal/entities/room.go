package entities

import "time"

type CreateRoomInput struct {
	Name           string
	Type           string
	Capacity       int
	OrganizationBy string
}

// BedView is one bed in a room listing. OccupantPhoto is the current
// occupant's first profile photo, recomputed from the reservation
// ledger on read; the bed row's reservation pointer is display-only
// and never trusted for this.
type BedView struct {
	BedNumber     string `json:"bed_number"`
	ReservationID *int   `json:"reservation_id,omitempty"`
	OccupantPhoto string `json:"occupant_photo,omitempty"`
}

type RoomView struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Capacity       int       `json:"capacity"`
	OrganizationBy string    `json:"organization_by"`
	Beds           []BedView `json:"beds"`
	CreatedAt      time.Time `json:"created_at"`
}
