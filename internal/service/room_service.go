package service

import (
	"time"

	"hostelia/internal/db"
	"hostelia/internal/entities"
	"hostelia/internal/errors"
	"hostelia/internal/inventory"
	"hostelia/internal/repository"
)

type RoomService struct {
	rooms        repository.RoomRepository
	hostels      repository.HostelRepository
	reservations repository.ReservationRepository
}

func NewRoomService(
	rooms repository.RoomRepository,
	hostels repository.HostelRepository,
	reservations repository.ReservationRepository,
) *RoomService {
	return &RoomService{rooms: rooms, hostels: hostels, reservations: reservations}
}

// CreateRoom generates the bed list from the naming scheme and persists
// the room with its beds. The bed list is fixed at creation.
func (s *RoomService) CreateRoom(ownerID int, in entities.CreateRoomInput) (*entities.RoomView, error) {
	hostel, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, errors.NewValidationError("hostel does not exist")
	}

	if in.Name == "" {
		return nil, errors.NewValidationError("room name is required")
	}

	taken, err := s.rooms.NameExists(hostel.ID, in.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewValidationError("a room with this name already exists")
	}

	beds, err := inventory.GenerateBeds(in.Capacity, in.OrganizationBy)
	if err != nil {
		return nil, err
	}

	room := &db.Room{
		HostelID:       hostel.ID,
		Name:           in.Name,
		Type:           in.Type,
		Capacity:       in.Capacity,
		OrganizationBy: in.OrganizationBy,
	}
	if err := s.rooms.CreateWithBeds(room, beds); err != nil {
		return nil, err
	}
	return toRoomView(room, nil), nil
}

// ListRooms returns the hostel's rooms with each bed annotated with its
// current occupant's first photo. Occupancy comes from the reservation
// ledger for today, not from the beds' stored pointers.
func (s *RoomService) ListRooms(ownerID int) ([]entities.RoomView, error) {
	hostel, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, errors.NewValidationError("hostel does not exist")
	}

	rooms, err := s.rooms.ListByHostel(hostel.ID)
	if err != nil {
		return nil, err
	}
	occupants, err := s.reservations.CurrentOccupantPhotos(hostel.ID, today())
	if err != nil {
		return nil, err
	}

	views := make([]entities.RoomView, 0, len(rooms))
	for i := range rooms {
		views = append(views, *toRoomView(&rooms[i], occupants))
	}
	return views, nil
}

func toRoomView(room *db.Room, occupants map[inventory.BedRef]string) *entities.RoomView {
	view := &entities.RoomView{
		ID:             room.ID,
		Name:           room.Name,
		Type:           room.Type,
		Capacity:       room.Capacity,
		OrganizationBy: room.OrganizationBy,
		Beds:           make([]entities.BedView, 0, len(room.Beds)),
		CreatedAt:      room.CreatedAt,
	}
	for _, bed := range room.Beds {
		bedView := entities.BedView{BedNumber: bed.BedNumber}
		if bed.ReservationID.Valid {
			id := int(bed.ReservationID.Int64)
			bedView.ReservationID = &id
		}
		if occupants != nil {
			bedView.OccupantPhoto = occupants[inventory.BedRef{Room: room.Name, Bed: bed.BedNumber}]
		}
		view.Beds = append(view.Beds, bedView)
	}
	return view
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
