package service

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hostelia/internal/db"
	"hostelia/internal/entities"
	"hostelia/internal/errors"
	"hostelia/internal/inventory"
	"hostelia/internal/repository"
)

const dateLayout = "2006-01-02"

// ReservationService owns reservation creation and availability. All
// operations are scoped to the hostel administered by the calling user.
type ReservationService struct {
	reservations repository.ReservationRepository
	rooms        repository.RoomRepository
	hostels      repository.HostelRepository
	guests       repository.GuestRepository
	users        repository.UserRepository
	sender       *SenderService
}

func NewReservationService(
	reservations repository.ReservationRepository,
	rooms repository.RoomRepository,
	hostels repository.HostelRepository,
	guests repository.GuestRepository,
	users repository.UserRepository,
	sender *SenderService,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		rooms:        rooms,
		hostels:      hostels,
		guests:       guests,
		users:        users,
		sender:       sender,
	}
}

// CreateReservation places a guest in a bed for [checkin, checkout).
// The overlap pre-check gives the caller a descriptive 409; the
// database exclusion constraint backs it up against concurrent writes,
// so two requests racing past the check cannot both commit.
func (s *ReservationService) CreateReservation(ownerID int, in entities.CreateReservationInput) (*entities.ReservationResponse, error) {
	hostel, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, errors.NewValidationError("hostel does not exist")
	}

	if !in.CheckoutDate.After(in.CheckinDate) {
		return nil, errors.NewValidationError("checkout date must be after checkin date")
	}

	guest, err := s.guests.GetByID(in.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, errors.NewNotFoundError("guest not found")
	}

	exists, err := s.rooms.BedExists(hostel.ID, in.RoomNumber, in.BedNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("room or bed not found in hostel inventory")
	}

	existing, err := s.reservations.ListForBed(hostel.ID, in.RoomNumber, in.BedNumber)
	if err != nil {
		return nil, err
	}
	requested := inventory.Interval{Checkin: in.CheckinDate, Checkout: in.CheckoutDate}
	for _, res := range existing {
		if inventory.Overlaps(requested, inventory.Interval{Checkin: res.CheckinDate, Checkout: res.CheckoutDate}) {
			return nil, errors.NewConflictError("this bed is already reserved for the selected dates")
		}
	}

	reservation := &db.Reservation{
		Code:         uuid.NewString(),
		HostelID:     hostel.ID,
		GuestID:      guest.ID,
		RoomNumber:   in.RoomNumber,
		BedNumber:    in.BedNumber,
		CheckinDate:  in.CheckinDate,
		CheckoutDate: in.CheckoutDate,
		Status:       db.StatusWalkingIn,
	}
	if err := s.reservations.Create(reservation); err != nil {
		return nil, err
	}

	if s.sender != nil {
		// The confirmation goes to the guest's account email, not the
		// hostel's; the guest row only carries a phone number.
		user, err := s.users.GetByID(guest.UserID)
		if err != nil {
			log.WithError(err).WithField("code", reservation.Code).Warn("could not load guest user for notification")
		} else {
			go s.sender.SendReservationConfirmation(user, guest, hostel, reservation)
		}
	}

	log.WithFields(log.Fields{
		"code": reservation.Code,
		"room": reservation.RoomNumber,
		"bed":  reservation.BedNumber,
	}).Info("reservation created")

	return toReservationResponse(reservation), nil
}

// GetAvailability returns the free beds per room for [checkin, checkout).
// Occupancy is re-derived from the ledger on every call; bed pointers
// are never consulted.
func (s *ReservationService) GetAvailability(ownerID int, checkinDate, checkoutDate string) (*entities.AvailabilityResponse, error) {
	if checkinDate == "" || checkoutDate == "" {
		return nil, errors.NewValidationError("checkin_date and checkout_date are required")
	}
	checkin, err := time.Parse(dateLayout, checkinDate)
	if err != nil {
		return nil, errors.NewValidationError("checkin_date must be formatted as YYYY-MM-DD")
	}
	checkout, err := time.Parse(dateLayout, checkoutDate)
	if err != nil {
		return nil, errors.NewValidationError("checkout_date must be formatted as YYYY-MM-DD")
	}
	if !checkout.After(checkin) {
		return nil, errors.NewValidationError("checkout date must be after checkin date")
	}

	hostel, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, errors.NewValidationError("hostel does not exist")
	}

	overlapping, err := s.reservations.ListOverlapping(hostel.ID, checkin, checkout)
	if err != nil {
		return nil, err
	}
	requested := inventory.Interval{Checkin: checkin, Checkout: checkout}
	occupied := make(map[inventory.BedRef]bool, len(overlapping))
	for _, res := range overlapping {
		if inventory.Overlaps(requested, inventory.Interval{Checkin: res.CheckinDate, Checkout: res.CheckoutDate}) {
			occupied[inventory.BedRef{Room: res.RoomNumber, Bed: res.BedNumber}] = true
		}
	}

	rooms, err := s.rooms.ListByHostel(hostel.ID)
	if err != nil {
		return nil, err
	}
	roomBeds := make([]inventory.RoomBeds, 0, len(rooms))
	for _, room := range rooms {
		beds := make([]string, 0, len(room.Beds))
		for _, bed := range room.Beds {
			beds = append(beds, bed.BedNumber)
		}
		roomBeds = append(roomBeds, inventory.RoomBeds{Room: room.Name, Beds: beds})
	}

	return &entities.AvailabilityResponse{
		RequestedCheckin:  checkin,
		RequestedCheckout: checkout,
		Rooms:             inventory.FreeBeds(roomBeds, occupied),
	}, nil
}

func toReservationResponse(res *db.Reservation) *entities.ReservationResponse {
	return &entities.ReservationResponse{
		ID:           res.ID,
		Code:         res.Code,
		HostelID:     res.HostelID,
		GuestID:      res.GuestID,
		RoomNumber:   res.RoomNumber,
		BedNumber:    res.BedNumber,
		CheckinDate:  res.CheckinDate,
		CheckoutDate: res.CheckoutDate,
		Status:       res.Status,
		CreatedAt:    res.CreatedAt,
	}
}
