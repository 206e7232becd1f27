package api

import (
	"net/http"

	"hostelia/internal/auth"
	"hostelia/internal/entities"
	"hostelia/internal/inventory"
	"hostelia/internal/service"
)

type RoomHandler struct {
	rooms *service.RoomService
}

func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.OrganizationBy == "" {
		req.OrganizationBy = inventory.SchemeLetters
	}

	room, err := h.rooms.CreateRoom(auth.UserID(r), entities.CreateRoomInput{
		Name:           req.Name,
		Type:           req.Type,
		Capacity:       req.Capacity,
		OrganizationBy: req.OrganizationBy,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListRooms(auth.UserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}
