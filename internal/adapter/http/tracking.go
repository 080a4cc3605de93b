package httpadapter

import (
	"context"
	"net/http"

	"mesa-placements/internal/core/domain"
)

type trackRequest struct {
	BookingID int64 `json:"booking_id"`
}

func (h *Handler) handleTrackImpression(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, h.svc.TrackImpression)
}

func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, h.svc.TrackClick)
}

// track decodes the booking id and records one event. Only bookings that
// are currently rendered can be tracked.
func (h *Handler) track(w http.ResponseWriter, r *http.Request, record func(context.Context, int64) error) {
	var req trackRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if req.BookingID <= 0 {
		h.writeDomainError(w, r, domain.InvalidInputf("booking_id is required"))
		return
	}
	if err := record(r.Context(), req.BookingID); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
