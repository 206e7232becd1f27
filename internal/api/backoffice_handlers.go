package api

import (
	"net/http"

	"hostelia/internal/service"
)

type BackofficeHandler struct {
	backoffice *service.BackofficeService
}

func NewBackofficeHandler(backoffice *service.BackofficeService) *BackofficeHandler {
	return &BackofficeHandler{backoffice: backoffice}
}

func (h *BackofficeHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.backoffice.UserStats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *BackofficeHandler) HostelStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.backoffice.HostelStats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
