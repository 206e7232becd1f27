package db

import (
	"database/sql"
	"time"
)

// Reservation status values. Transitions are monotonic:
// walking in -> in house -> checked out.
const (
	StatusWalkingIn  = "walking in"
	StatusInHouse    = "in house"
	StatusCheckedOut = "checked out"
)

// CanTransition reports whether a reservation may move from one status
// to the next. Only forward, single-step moves are allowed.
func CanTransition(from, to string) bool {
	switch from {
	case StatusWalkingIn:
		return to == StatusInHouse
	case StatusInHouse:
		return to == StatusCheckedOut
	default:
		return false
	}
}

type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash sql.NullString
	GoogleID     sql.NullString
	AppleID      sql.NullString
	Role         string
	IsNewUser    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Guest struct {
	ID              int
	UserID          int
	Username        string
	PhoneNumber     sql.NullString
	Birthday        sql.NullString
	Country         sql.NullString
	Description     sql.NullString
	Interests       []string
	Languages       []string
	GuestPhotos     []string
	DigitalNomad    bool
	Smoker          bool
	Pets            bool
	ShowProfileAuth bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Hostel struct {
	ID                       int
	Username                 string
	Name                     string
	Street                   string
	City                     string
	Country                  string
	Zip                      sql.NullString
	Phone                    sql.NullString
	Email                    sql.NullString
	Website                  sql.NullString
	ExperienceWithVolunteers bool
	Currency                 sql.NullString
	Status                   string
	StripeAccountID          sql.NullString
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

type Room struct {
	ID             int
	HostelID       int
	Name           string
	Type           string
	Capacity       int
	OrganizationBy string
	Beds           []Bed
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Bed struct {
	ID            int
	RoomID        int
	BedNumber     string
	Position      int
	ReservationID sql.NullInt64
}

type Reservation struct {
	ID           int
	Code         string
	HostelID     int
	GuestID      int
	RoomNumber   string
	BedNumber    string
	CheckinDate  time.Time
	CheckoutDate time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Event struct {
	ID              int
	HostelID        int
	Name            string
	Description     sql.NullString
	Price           sql.NullFloat64
	Date            time.Time
	SpotsAvailable  int
	LimitedSpots    bool
	PaidEvent       bool
	PaymentToHostel bool
	PaymentMethods  []string
	Status          string
	CreatedAt       time.Time
}
