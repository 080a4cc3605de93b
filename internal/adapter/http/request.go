package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-placements/internal/core/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error     string           `json:"error"`
	RequestID string           `json:"request_id,omitempty"`
	Conflict  *conflictPayload `json:"conflict,omitempty"`
}

type conflictPayload struct {
	BookingID int64  `json:"booking_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// decodeJSON reads a single JSON object from the body. Unknown fields are
// rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.InvalidInputf("invalid JSON body: %v", err)
	}
	return nil
}

// pathID parses an int64 path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidInputf("invalid %s %q", name, raw)
	}
	return id, nil
}

// queryDate parses the optional date query parameter, defaulting to today.
// A malformed date is ErrInvalidInput.
func (h *Handler) queryDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return domain.TruncateDate(h.now()), nil
	}
	return domain.ParseDate(raw)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(r.Context(), "encode response", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg, RequestID: middleware.GetReqID(r.Context())})
}

// writeStatus is used by middleware that has no Handler at hand.
func writeStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// writeDomainError maps the domain error taxonomy onto HTTP status codes.
// Store failures are logged and answered with a generic message.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error(), RequestID: middleware.GetReqID(r.Context())}
	var status int
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		resp.Error = domain.ErrConflict.Error()
		var ce *domain.ConflictError
		if errors.As(err, &ce) && ce.BookingID != 0 {
			resp.Conflict = &conflictPayload{
				BookingID: ce.BookingID,
				StartDate: formatDate(ce.Period.Start),
				EndDate:   formatDate(ce.Period.End),
			}
		}
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
		resp.Error = "internal error"
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", resp.RequestID),
			slog.Any("error", err))
	}
	h.writeJSON(w, r, status, resp)
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}
