package api

import (
	"net/http"

	"hostelia/internal/auth"
	"hostelia/internal/service"
)

type HostelHandler struct {
	hostels *service.HostelService
}

func NewHostelHandler(hostels *service.HostelService) *HostelHandler {
	return &HostelHandler{hostels: hostels}
}

func (h *HostelHandler) CreateHostel(w http.ResponseWriter, r *http.Request) {
	var req CreateHostelRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	hostel, created, err := h.hostels.CreateHostel(auth.UserID(r), service.CreateHostelInput{
		Name:                     req.Name,
		Street:                   req.Street,
		City:                     req.City,
		Country:                  req.Country,
		Zip:                      req.Zip,
		Phone:                    req.Phone,
		Email:                    req.Email,
		Website:                  req.Website,
		ExperienceWithVolunteers: req.ExperienceWithVolunteers,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toHostelResponse(hostel))
}

func (h *HostelHandler) GetHostel(w http.ResponseWriter, r *http.Request) {
	hostel, err := h.hostels.GetByOwner(auth.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHostelResponse(hostel))
}
