package httpadapter

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"mesa-placements/internal/core/domain"
	"mesa-placements/internal/core/port"
)

type createBookingRequest struct {
	PlacementID  int64            `json:"placement_id"`
	CampaignName string           `json:"campaign_name"`
	AdImageURL   string           `json:"ad_image_url"`
	AdLinkURL    string           `json:"ad_link_url"`
	Region       string           `json:"region"`
	PostalCode   string           `json:"postal_code"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	MonthlyPrice *decimal.Decimal `json:"monthly_price,omitempty"`
	TotalPrice   *decimal.Decimal `json:"total_price,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type bookingResponse struct {
	ID           int64     `json:"id"`
	AdvertiserID int64     `json:"advertiser_id"`
	PlacementID  int64     `json:"placement_id"`
	CampaignName string    `json:"campaign_name"`
	AdImageURL   string    `json:"ad_image_url"`
	AdLinkURL    string    `json:"ad_link_url"`
	Region       string    `json:"region"`
	PostalCode   string    `json:"postal_code,omitempty"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	MonthlyPrice string    `json:"monthly_price"`
	TotalPrice   string    `json:"total_price"`
	Status       string    `json:"status"`
	Impressions  int64     `json:"impressions"`
	Clicks       int64     `json:"clicks"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type statusChangeResponse struct {
	Booking        bookingResponse `json:"booking"`
	PreviousStatus string          `json:"previous_status"`
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:           b.ID,
		AdvertiserID: b.AdvertiserID,
		PlacementID:  b.PlacementID,
		CampaignName: b.CampaignName,
		AdImageURL:   b.AdImageURL,
		AdLinkURL:    b.AdLinkURL,
		Region:       b.Region,
		PostalCode:   b.PostalCode,
		StartDate:    formatDate(b.Period.Start),
		EndDate:      formatDate(b.Period.End),
		MonthlyPrice: b.MonthlyPrice.StringFixed(2),
		TotalPrice:   b.TotalPrice.StringFixed(2),
		Status:       string(b.Status),
		Impressions:  b.Impressions,
		Clicks:       b.Clicks,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// handleCreateBooking books a placement for the authenticated advertiser.
// Overlapping occupying bookings produce 409 with the blocking booking.
func (h *Handler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	b, err := h.svc.CreateBooking(r.Context(), port.CreateBookingRequest{
		AdvertiserID:       actor.UserID,
		PlacementID:        req.PlacementID,
		CampaignName:       req.CampaignName,
		AdImageURL:         req.AdImageURL,
		AdLinkURL:          req.AdLinkURL,
		Region:             req.Region,
		PostalCode:         req.PostalCode,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		QuotedMonthlyPrice: req.MonthlyPrice,
		QuotedTotalPrice:   req.TotalPrice,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, toBookingResponse(*b))
}

func (h *Handler) handleListBookings(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	bookings, err := h.svc.ListBookings(r.Context(), actor)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

func (h *Handler) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	actor, _ := actorFrom(r.Context())
	b, err := h.svc.GetBooking(r.Context(), actor, id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, toBookingResponse(*b))
}

// handleUpdateBookingStatus moves a booking through its lifecycle. Only
// admins reach it.
func (h *Handler) handleUpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	var req statusRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	change, err := h.svc.UpdateBookingStatus(r.Context(), id, req.Status)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, statusChangeResponse{
		Booking:        toBookingResponse(change.Booking),
		PreviousStatus: string(change.Previous),
	})
}
