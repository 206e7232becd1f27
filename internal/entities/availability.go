package entities

import (
	"time"

	"hostelia/internal/inventory"
)

type AvailabilityResponse struct {
	RequestedCheckin  time.Time                    `json:"requested_checkin"`
	RequestedCheckout time.Time                    `json:"requested_checkout"`
	Rooms             []inventory.RoomAvailability `json:"rooms"`
}
