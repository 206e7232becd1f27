package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These cover the request-shape rejections that happen before the
// service layer is consulted; the reservation semantics themselves are
// tested against the service package.
func TestCreateReservationRejectsBadRequests(t *testing.T) {
	handler := NewReservationHandler(nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"guest_id": `},
		{"missing fields", `{"guest_id": 1}`},
		{"bad checkin format", `{"guest_id":1,"room_number":"Dorm 1","bed_number":"A","checkin_date":"01-03-2026","checkout_date":"2026-03-05"}`},
		{"bad checkout format", `{"guest_id":1,"room_number":"Dorm 1","bed_number":"A","checkin_date":"2026-03-01","checkout_date":"tomorrow"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.CreateReservation(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestCreateRoomRequestValidation(t *testing.T) {
	handler := NewRoomHandler(nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"type":"Shared","capacity":4}`},
		{"unknown type", `{"name":"Dorm 1","type":"Penthouse","capacity":4}`},
		{"missing capacity", `{"name":"Dorm 1","type":"Shared"}`},
		{"unknown scheme", `{"name":"Dorm 1","type":"Shared","capacity":4,"organization_by":"roman"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.CreateRoom(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
