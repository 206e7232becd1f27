package service

import (
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/account"
	"github.com/stripe/stripe-go/v82/accountlink"

	"hostelia/internal/errors"
	"hostelia/internal/repository"
)

// StripeService handles Stripe Connect onboarding for hostels. Payment
// processing itself happens on the connected account, outside this
// backend.
type StripeService struct {
	hostels repository.HostelRepository
}

func NewStripeService(hostels repository.HostelRepository) *StripeService {
	return &StripeService{hostels: hostels}
}

// CreateOnboardingLink creates a standard connected account for the
// caller's hostel and returns the Stripe-hosted onboarding URL. The
// account id is only stored once onboarding completes (see Finalize).
func (s *StripeService) CreateOnboardingLink(ownerID int) (string, error) {
	hostel, err := s.hostels.FindByOwner(ownerID)
	if err != nil {
		return "", err
	}
	if hostel == nil {
		return "", errors.NewValidationError("hostel does not exist")
	}

	serverAddress := os.Getenv("SERVER_ADDRESS")
	if serverAddress == "" {
		return "", fmt.Errorf("SERVER_ADDRESS not set")
	}

	acct, err := account.New(&stripe.AccountParams{
		Type: stripe.String(string(stripe.AccountTypeStandard)),
	})
	if err != nil {
		return "", fmt.Errorf("error creating stripe account: %w", err)
	}

	link, err := accountlink.New(&stripe.AccountLinkParams{
		Account:    stripe.String(acct.ID),
		RefreshURL: stripe.String(fmt.Sprintf("%s/api/stripe/refresh?hostelId=%d", serverAddress, hostel.ID)),
		ReturnURL:  stripe.String(fmt.Sprintf("%s/api/stripe/success?hostelId=%d&accountId=%s", serverAddress, hostel.ID, acct.ID)),
		Type:       stripe.String("account_onboarding"),
	})
	if err != nil {
		return "", fmt.Errorf("error creating account link: %w", err)
	}
	return link.URL, nil
}

// Finalize stores the connected account id once Stripe redirects the
// owner back from onboarding.
func (s *StripeService) Finalize(hostelID int, accountID string) error {
	if accountID == "" {
		return errors.NewValidationError("accountId is required")
	}
	hostel, err := s.hostels.GetByID(hostelID)
	if err != nil {
		return err
	}
	if hostel == nil {
		return errors.NewNotFoundError("hostel not found")
	}
	return s.hostels.SetStripeAccount(hostelID, accountID)
}
