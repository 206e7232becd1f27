package api

import (
	"net/http"
	"time"

	"hostelia/internal/auth"
	"hostelia/internal/entities"
	"hostelia/internal/errors"
	"hostelia/internal/service"
)

const dateLayout = "2006-01-02"

type ReservationHandler struct {
	reservations *service.ReservationService
}

func NewReservationHandler(reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	checkin, err := time.Parse(dateLayout, req.CheckinDate)
	if err != nil {
		writeError(w, errors.NewValidationError("checkin_date must be formatted as YYYY-MM-DD"))
		return
	}
	checkout, err := time.Parse(dateLayout, req.CheckoutDate)
	if err != nil {
		writeError(w, errors.NewValidationError("checkout_date must be formatted as YYYY-MM-DD"))
		return
	}

	reservation, err := h.reservations.CreateReservation(auth.UserID(r), entities.CreateReservationInput{
		GuestID:      req.GuestID,
		RoomNumber:   req.RoomNumber,
		BedNumber:    req.BedNumber,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

// GetAvailability reads the requested stay from the checkin_date and
// checkout_date query parameters.
func (h *ReservationHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	availability, err := h.reservations.GetAvailability(
		auth.UserID(r),
		query.Get("checkin_date"),
		query.Get("checkout_date"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}
