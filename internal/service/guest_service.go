package service

import (
	"hostelia/internal/db"
	"hostelia/internal/errors"
	"hostelia/internal/repository"
	"hostelia/internal/utils"
)

type SaveGuestInput struct {
	PhoneNumber     string
	Birthday        string
	Country         string
	Description     string
	Interests       []string
	Languages       []string
	DigitalNomad    bool
	Smoker          bool
	Pets            bool
	ShowProfileAuth bool
}

type GuestService struct {
	guests  repository.GuestRepository
	users   repository.UserRepository
	hostels repository.HostelRepository
}

func NewGuestService(
	guests repository.GuestRepository,
	users repository.UserRepository,
	hostels repository.HostelRepository,
) *GuestService {
	return &GuestService{guests: guests, users: users, hostels: hostels}
}

// SaveGuest creates the caller's guest profile, or fills it in if it
// exists without a birthday yet. The birthday is write-once: once set
// it cannot change, matching the identity-verification rule.
func (s *GuestService) SaveGuest(userID int, in SaveGuestInput) (*db.Guest, bool, error) {
	guest, err := s.guests.GetByUserID(userID)
	if err != nil {
		return nil, false, err
	}

	if guest != nil {
		if guest.Birthday.Valid && guest.Birthday.String != "" {
			return nil, false, errors.NewValidationError("birthday cannot be updated for existing guest")
		}
		applyGuestInput(guest, in)
		if err := s.guests.Update(guest); err != nil {
			return nil, false, err
		}
		return guest, false, nil
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		return nil, false, errors.NewNotFoundError("user not found")
	}

	username, err := utils.GenerateUniqueUsername(user.Name, s.usernameTaken)
	if err != nil {
		return nil, false, err
	}

	guest = &db.Guest{UserID: userID, Username: username}
	applyGuestInput(guest, in)
	if err := s.guests.Create(guest); err != nil {
		return nil, false, err
	}
	return guest, true, nil
}

func (s *GuestService) GetOwn(userID int) (*db.Guest, error) {
	guest, err := s.guests.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, errors.NewNotFoundError("guest profile not found")
	}
	return guest, nil
}

// Search finds a guest by username. Profiles that have not authorized
// visibility are not returned.
func (s *GuestService) Search(username string) (*db.Guest, error) {
	guest, err := s.guests.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if guest == nil || !guest.ShowProfileAuth {
		return nil, errors.NewNotFoundError("guest not found")
	}
	return guest, nil
}

func (s *GuestService) AddPhoto(userID int, url string) error {
	if url == "" {
		return errors.NewValidationError("photo url is required")
	}
	guest, err := s.GetOwn(userID)
	if err != nil {
		return err
	}
	return s.guests.AddPhoto(guest.ID, url)
}

func (s *GuestService) RemovePhoto(userID int, url string) error {
	if url == "" {
		return errors.NewValidationError("photo url is required")
	}
	guest, err := s.GetOwn(userID)
	if err != nil {
		return err
	}
	return s.guests.RemovePhoto(guest.ID, url)
}

func (s *GuestService) usernameTaken(username string) (bool, error) {
	taken, err := s.guests.UsernameExists(username)
	if err != nil || taken {
		return taken, err
	}
	return s.hostels.UsernameExists(username)
}

func applyGuestInput(guest *db.Guest, in SaveGuestInput) {
	guest.PhoneNumber = nullString(in.PhoneNumber)
	guest.Birthday = nullString(in.Birthday)
	guest.Country = nullString(in.Country)
	guest.Description = nullString(in.Description)
	guest.Interests = in.Interests
	guest.Languages = in.Languages
	guest.DigitalNomad = in.DigitalNomad
	guest.Smoker = in.Smoker
	guest.Pets = in.Pets
	guest.ShowProfileAuth = in.ShowProfileAuth
}
