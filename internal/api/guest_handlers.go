package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"hostelia/internal/auth"
	"hostelia/internal/service"
)

type GuestHandler struct {
	guests *service.GuestService
}

func NewGuestHandler(guests *service.GuestService) *GuestHandler {
	return &GuestHandler{guests: guests}
}

func (h *GuestHandler) SaveGuest(w http.ResponseWriter, r *http.Request) {
	var req SaveGuestRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	guest, created, err := h.guests.SaveGuest(auth.UserID(r), service.SaveGuestInput{
		PhoneNumber:     req.PhoneNumber,
		Birthday:        req.Birthday,
		Country:         req.Country,
		Description:     req.Description,
		Interests:       req.Interests,
		Languages:       req.Languages,
		DigitalNomad:    req.DigitalNomad,
		Smoker:          req.Smoker,
		Pets:            req.Pets,
		ShowProfileAuth: req.ShowProfileAuth,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toGuestResponse(guest))
}

func (h *GuestHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	guest, err := h.guests.GetOwn(auth.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGuestResponse(guest))
}

func (h *GuestHandler) SearchGuest(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	guest, err := h.guests.Search(username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGuestResponse(guest))
}

func (h *GuestHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	var req GuestPhotoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.guests.AddPhoto(auth.UserID(r), req.URL); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "photo added"})
}

func (h *GuestHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	var req GuestPhotoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.guests.RemovePhoto(auth.UserID(r), req.URL); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "photo removed"})
}
