package service

import (
	"time"

	"hostelia/internal/db"
	"hostelia/internal/inventory"
)

// In-memory repository fakes. They mirror the Postgres semantics the
// real implementations rely on, including half-open overlap matching.

type fakeHostelRepo struct {
	hostel  *db.Hostel
	ownerID int
}

func (f *fakeHostelRepo) FindByOwner(userID int) (*db.Hostel, error) {
	if f.hostel != nil && f.ownerID == userID {
		return f.hostel, nil
	}
	return nil, nil
}

func (f *fakeHostelRepo) GetByID(id int) (*db.Hostel, error) {
	if f.hostel != nil && f.hostel.ID == id {
		return f.hostel, nil
	}
	return nil, nil
}

func (f *fakeHostelRepo) Create(hostel *db.Hostel, ownerID int) error {
	hostel.ID = 1
	f.hostel = hostel
	f.ownerID = ownerID
	return nil
}

func (f *fakeHostelRepo) UsernameExists(username string) (bool, error) {
	return f.hostel != nil && f.hostel.Username == username, nil
}

func (f *fakeHostelRepo) SetStripeAccount(hostelID int, accountID string) error {
	return nil
}

type fakeGuestRepo struct {
	guests []*db.Guest
}

func (f *fakeGuestRepo) GetByUserID(userID int) (*db.Guest, error) {
	for _, g := range f.guests {
		if g.UserID == userID {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGuestRepo) GetByID(id int) (*db.Guest, error) {
	for _, g := range f.guests {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGuestRepo) GetByUsername(username string) (*db.Guest, error) {
	for _, g := range f.guests {
		if g.Username == username {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGuestRepo) Create(guest *db.Guest) error {
	guest.ID = len(f.guests) + 1
	f.guests = append(f.guests, guest)
	return nil
}

func (f *fakeGuestRepo) Update(guest *db.Guest) error { return nil }

func (f *fakeGuestRepo) UsernameExists(username string) (bool, error) {
	g, _ := f.GetByUsername(username)
	return g != nil, nil
}

func (f *fakeGuestRepo) AddPhoto(guestID int, url string) error {
	g, _ := f.GetByID(guestID)
	if g != nil {
		g.GuestPhotos = append(g.GuestPhotos, url)
	}
	return nil
}

func (f *fakeGuestRepo) RemovePhoto(guestID int, url string) error {
	g, _ := f.GetByID(guestID)
	if g == nil {
		return nil
	}
	photos := g.GuestPhotos[:0]
	for _, p := range g.GuestPhotos {
		if p != url {
			photos = append(photos, p)
		}
	}
	g.GuestPhotos = photos
	return nil
}

type fakeRoomRepo struct {
	rooms []db.Room
}

func (f *fakeRoomRepo) CreateWithBeds(room *db.Room, bedNumbers []string) error {
	room.ID = len(f.rooms) + 1
	room.Beds = make([]db.Bed, 0, len(bedNumbers))
	for i, number := range bedNumbers {
		room.Beds = append(room.Beds, db.Bed{
			ID:        room.ID*100 + i,
			RoomID:    room.ID,
			BedNumber: number,
			Position:  i,
		})
	}
	f.rooms = append(f.rooms, *room)
	return nil
}

func (f *fakeRoomRepo) ListByHostel(hostelID int) ([]db.Room, error) {
	var rooms []db.Room
	for _, r := range f.rooms {
		if r.HostelID == hostelID {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

func (f *fakeRoomRepo) NameExists(hostelID int, name string) (bool, error) {
	for _, r := range f.rooms {
		if r.HostelID == hostelID && r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoomRepo) BedExists(hostelID int, roomNumber, bedNumber string) (bool, error) {
	for _, r := range f.rooms {
		if r.HostelID != hostelID || r.Name != roomNumber {
			continue
		}
		for _, b := range r.Beds {
			if b.BedNumber == bedNumber {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeReservationRepo struct {
	reservations []db.Reservation
}

func (f *fakeReservationRepo) ListForBed(hostelID int, roomNumber, bedNumber string) ([]db.Reservation, error) {
	var out []db.Reservation
	for _, res := range f.reservations {
		if res.HostelID == hostelID && res.RoomNumber == roomNumber && res.BedNumber == bedNumber {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListOverlapping(hostelID int, checkin, checkout time.Time) ([]db.Reservation, error) {
	var out []db.Reservation
	for _, res := range f.reservations {
		if res.HostelID == hostelID && res.CheckinDate.Before(checkout) && res.CheckoutDate.After(checkin) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Create(res *db.Reservation) error {
	res.ID = len(f.reservations) + 1
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeReservationRepo) CurrentOccupantPhotos(hostelID int, on time.Time) (map[inventory.BedRef]string, error) {
	return map[inventory.BedRef]string{}, nil
}
