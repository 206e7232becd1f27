package api

import (
	"database/sql"
	"time"

	"hostelia/internal/db"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=host guest"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
	Role        string `json:"role"`
}

type AppleLoginRequest struct {
	IdentityToken string `json:"identity_token" validate:"required"`
	Name          string `json:"name"`
	Role          string `json:"role"`
}

type CreateHostelRequest struct {
	Name                     string `json:"name" validate:"required"`
	Street                   string `json:"street" validate:"required"`
	City                     string `json:"city" validate:"required"`
	Country                  string `json:"country" validate:"required"`
	Zip                      string `json:"zip"`
	Phone                    string `json:"phone"`
	Email                    string `json:"email" validate:"omitempty,email"`
	Website                  string `json:"website"`
	ExperienceWithVolunteers bool   `json:"experience_with_volunteers"`
}

type CreateRoomRequest struct {
	Name           string `json:"name" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=Shared Private Staff"`
	Capacity       int    `json:"capacity" validate:"required"`
	OrganizationBy string `json:"organization_by" validate:"omitempty,oneof=letters numbers"`
}

type CreateReservationRequest struct {
	GuestID      int    `json:"guest_id" validate:"required"`
	RoomNumber   string `json:"room_number" validate:"required"`
	BedNumber    string `json:"bed_number" validate:"required"`
	CheckinDate  string `json:"checkin_date" validate:"required"`
	CheckoutDate string `json:"checkout_date" validate:"required"`
}

type SaveGuestRequest struct {
	PhoneNumber     string   `json:"phone_number"`
	Birthday        string   `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Country         string   `json:"country"`
	Description     string   `json:"description"`
	Interests       []string `json:"interests"`
	Languages       []string `json:"languages"`
	DigitalNomad    bool     `json:"digital_nomad"`
	Smoker          bool     `json:"smoker"`
	Pets            bool     `json:"pets"`
	ShowProfileAuth bool     `json:"show_profile_auth"`
}

type GuestPhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type CreateEventRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	SpotsAvailable  int      `json:"spots_available"`
	LimitedSpots    bool     `json:"limited_spots"`
	PaidEvent       bool     `json:"paid_event"`
	PaymentToHostel bool     `json:"payment_to_hostel"`
	PaymentMethods  []string `json:"payment_methods"`
}

type UserResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsNewUser bool   `json:"is_new_user"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type HostelResponse struct {
	ID                       int       `json:"id"`
	Username                 string    `json:"username"`
	Name                     string    `json:"name"`
	Street                   string    `json:"street"`
	City                     string    `json:"city"`
	Country                  string    `json:"country"`
	Zip                      string    `json:"zip,omitempty"`
	Phone                    string    `json:"phone,omitempty"`
	Email                    string    `json:"email,omitempty"`
	Website                  string    `json:"website,omitempty"`
	ExperienceWithVolunteers bool      `json:"experience_with_volunteers"`
	Status                   string    `json:"status"`
	StripeAccountID          string    `json:"stripe_account_id,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
}

type GuestResponse struct {
	ID              int      `json:"id"`
	Username        string   `json:"username"`
	PhoneNumber     string   `json:"phone_number,omitempty"`
	Birthday        string   `json:"birthday,omitempty"`
	Country         string   `json:"country,omitempty"`
	Description     string   `json:"description,omitempty"`
	Interests       []string `json:"interests"`
	Languages       []string `json:"languages"`
	GuestPhotos     []string `json:"guest_photos"`
	DigitalNomad    bool     `json:"digital_nomad"`
	Smoker          bool     `json:"smoker"`
	Pets            bool     `json:"pets"`
	ShowProfileAuth bool     `json:"show_profile_auth"`
}

type EventResponse struct {
	ID              int       `json:"id"`
	HostelID        int       `json:"hostel_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	Date            time.Time `json:"date"`
	SpotsAvailable  int       `json:"spots_available"`
	LimitedSpots    bool      `json:"limited_spots"`
	PaidEvent       bool      `json:"paid_event"`
	PaymentToHostel bool      `json:"payment_to_hostel"`
	PaymentMethods  []string  `json:"payment_methods"`
	Status          string    `json:"status"`
}

func toUserResponse(user *db.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsNewUser: user.IsNewUser,
	}
}

func toHostelResponse(hostel *db.Hostel) HostelResponse {
	return HostelResponse{
		ID:                       hostel.ID,
		Username:                 hostel.Username,
		Name:                     hostel.Name,
		Street:                   hostel.Street,
		City:                     hostel.City,
		Country:                  hostel.Country,
		Zip:                      fromNullString(hostel.Zip),
		Phone:                    fromNullString(hostel.Phone),
		Email:                    fromNullString(hostel.Email),
		Website:                  fromNullString(hostel.Website),
		ExperienceWithVolunteers: hostel.ExperienceWithVolunteers,
		Status:                   hostel.Status,
		StripeAccountID:          fromNullString(hostel.StripeAccountID),
		CreatedAt:                hostel.CreatedAt,
	}
}

func toGuestResponse(guest *db.Guest) GuestResponse {
	return GuestResponse{
		ID:              guest.ID,
		Username:        guest.Username,
		PhoneNumber:     fromNullString(guest.PhoneNumber),
		Birthday:        fromNullString(guest.Birthday),
		Country:         fromNullString(guest.Country),
		Description:     fromNullString(guest.Description),
		Interests:       guest.Interests,
		Languages:       guest.Languages,
		GuestPhotos:     guest.GuestPhotos,
		DigitalNomad:    guest.DigitalNomad,
		Smoker:          guest.Smoker,
		Pets:            guest.Pets,
		ShowProfileAuth: guest.ShowProfileAuth,
	}
}

func toEventResponse(event *db.Event) EventResponse {
	resp := EventResponse{
		ID:              event.ID,
		HostelID:        event.HostelID,
		Name:            event.Name,
		Description:     fromNullString(event.Description),
		Date:            event.Date,
		SpotsAvailable:  event.SpotsAvailable,
		LimitedSpots:    event.LimitedSpots,
		PaidEvent:       event.PaidEvent,
		PaymentToHostel: event.PaymentToHostel,
		PaymentMethods:  event.PaymentMethods,
		Status:          event.Status,
	}
	if event.Price.Valid {
		price := event.Price.Float64
		resp.Price = &price
	}
	return resp
}

func fromNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
