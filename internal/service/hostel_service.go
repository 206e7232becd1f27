package service

import (
	"database/sql"

	"hostelia/internal/db"
	"hostelia/internal/errors"
	"hostelia/internal/repository"
	"hostelia/internal/utils"
)

type CreateHostelInput struct {
	Name                     string
	Street                   string
	City                     string
	Country                  string
	Zip                      string
	Phone                    string
	Email                    string
	Website                  string
	ExperienceWithVolunteers bool
}

type HostelService struct {
	hostels repository.HostelRepository
	guests  repository.GuestRepository
}

func NewHostelService(hostels repository.HostelRepository, guests repository.GuestRepository) *HostelService {
	return &HostelService{hostels: hostels, guests: guests}
}

// CreateHostel registers the caller's hostel. A user administers at
// most one hostel; creating again returns the existing one unchanged.
func (s *HostelService) CreateHostel(ownerID int, in CreateHostelInput) (*db.Hostel, bool, error) {
	existing, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if in.Name == "" || in.Street == "" || in.City == "" || in.Country == "" {
		return nil, false, errors.NewValidationError("name, street, city and country are required")
	}

	username, err := utils.GenerateUniqueUsername(in.Name, s.usernameTaken)
	if err != nil {
		return nil, false, err
	}

	hostel := &db.Hostel{
		Username:                 username,
		Name:                     in.Name,
		Street:                   in.Street,
		City:                     in.City,
		Country:                  in.Country,
		Zip:                      nullString(in.Zip),
		Phone:                    nullString(in.Phone),
		Email:                    nullString(in.Email),
		Website:                  nullString(in.Website),
		ExperienceWithVolunteers: in.ExperienceWithVolunteers,
	}
	if err := s.hostels.Create(hostel, ownerID); err != nil {
		return nil, false, err
	}
	return hostel, true, nil
}

func (s *HostelService) GetByOwner(ownerID int) (*db.Hostel, error) {
	hostel, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, errors.NewNotFoundError("hostel not found")
	}
	return hostel, nil
}

// Usernames are shared between hostels and guests, so both namespaces
// are checked.
func (s *HostelService) usernameTaken(username string) (bool, error) {
	taken, err := s.hostels.UsernameExists(username)
	if err != nil || taken {
		return taken, err
	}
	return s.guests.UsernameExists(username)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
