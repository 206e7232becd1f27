// Package inventory holds the bed-allocation core: bed identifier
// generation, the date-overlap predicate, and free-bed computation.
// Everything here is pure so it can be exercised without a database.
package inventory

import (
	"fmt"
	"strconv"
	"time"

	"hostelia/internal/errors"
)

const (
	// SchemeLetters names beds A, B, C... Any other scheme value names
	// them "1", "2", "3"...
	SchemeLetters = "letters"

	// MaxLetterBeds caps the letters scheme at the alphabet. Beyond 26
	// the generated identifiers would stop being letters, so room
	// creation rejects it instead.
	MaxLetterBeds = 26
)

// GenerateBeds returns the ordered bed identifiers for a room of the
// given capacity.
func GenerateBeds(capacity int, scheme string) ([]string, error) {
	if capacity <= 0 {
		return nil, errors.NewValidationError("capacity must be a positive integer")
	}
	if scheme == SchemeLetters && capacity > MaxLetterBeds {
		return nil, errors.NewValidationError(
			fmt.Sprintf("capacity cannot exceed %d beds with the letters scheme", MaxLetterBeds))
	}

	beds := make([]string, 0, capacity)
	for i := 0; i < capacity; i++ {
		if scheme == SchemeLetters {
			beds = append(beds, string(rune('A'+i)))
		} else {
			beds = append(beds, strconv.Itoa(i+1))
		}
	}
	return beds, nil
}

// Interval is a half-open [Checkin, Checkout) date range.
type Interval struct {
	Checkin  time.Time
	Checkout time.Time
}

// Overlaps reports whether two half-open intervals intersect. A stay
// ending on a given date does not block a stay starting that date.
// This predicate is the single source of truth for conflict detection:
// reservation creation and availability must both go through it.
func Overlaps(a, b Interval) bool {
	return a.Checkin.Before(b.Checkout) && a.Checkout.After(b.Checkin)
}

// BedRef identifies one bed within a hostel by room name and bed number.
type BedRef struct {
	Room string
	Bed  string
}

// RoomBeds is a room's stored bed order.
type RoomBeds struct {
	Room string
	Beds []string
}

// RoomAvailability lists the free beds of one room for a queried range.
type RoomAvailability struct {
	Room     string   `json:"room_number"`
	FreeBeds []string `json:"beds"`
}

// FreeBeds returns, per room, the beds not present in the occupied set.
// Rooms keep their persisted order and beds keep the room's stored
// order. Rooms with no free beds are still listed with an empty slice.
func FreeBeds(rooms []RoomBeds, occupied map[BedRef]bool) []RoomAvailability {
	result := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		free := make([]string, 0, len(room.Beds))
		for _, bed := range room.Beds {
			if !occupied[BedRef{Room: room.Room, Bed: bed}] {
				free = append(free, bed)
			}
		}
		result = append(result, RoomAvailability{Room: room.Room, FreeBeds: free})
	}
	return result
}
