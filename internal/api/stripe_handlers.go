package api

import (
	"net/http"
	"strconv"

	"hostelia/internal/auth"
	"hostelia/internal/errors"
	"hostelia/internal/service"
)

type StripeHandler struct {
	stripe *service.StripeService
}

func NewStripeHandler(stripe *service.StripeService) *StripeHandler {
	return &StripeHandler{stripe: stripe}
}

func (h *StripeHandler) CreateOnboardingLink(w http.ResponseWriter, r *http.Request) {
	url, err := h.stripe.CreateOnboardingLink(auth.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// OnboardingSuccess is where Stripe redirects the owner after finishing
// onboarding; it persists the connected account id.
func (h *StripeHandler) OnboardingSuccess(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	hostelID, err := strconv.Atoi(query.Get("hostelId"))
	if err != nil {
		writeError(w, errors.NewValidationError("hostelId must be an integer"))
		return
	}
	if err := h.stripe.Finalize(hostelID, query.Get("accountId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "stripe account connected"})
}

// OnboardingRefresh handles Stripe's refresh redirect when an
// onboarding link expires. The client is expected to request a new link.
func (h *StripeHandler) OnboardingRefresh(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "onboarding link expired, request a new one"})
}
