package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-placements/internal/core/domain"
)

type platformResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	DisplayName         string `json:"display_name"`
	Active              bool   `json:"is_active"`
	TotalPlacements     int    `json:"total_placements"`
	AvailablePlacements int    `json:"available_placements"`
	BookedPlacements    int    `json:"booked_placements"`
}

type placementResponse struct {
	ID            int64  `json:"id"`
	PlatformID    int64  `json:"platform_id"`
	PlacementType string `json:"placement_type"`
	PositionName  string `json:"position_name"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	BasePrice     string `json:"base_price"`
	Active        bool   `json:"is_active"`
}

type availabilityResponse struct {
	Placement placementResponse `json:"placement"`
	Date      string            `json:"date"`
	Status    string            `json:"status"`
	BookedBy  *conflictPayload  `json:"booked_by,omitempty"`
}

type activeAdResponse struct {
	BookingID     int64  `json:"booking_id"`
	PlacementID   int64  `json:"placement_id"`
	PlacementType string `json:"placement_type"`
	PositionName  string `json:"position_name"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	CampaignName  string `json:"campaign_name"`
	AdImageURL    string `json:"ad_image_url"`
	AdLinkURL     string `json:"ad_link_url"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

func toPlacementResponse(p domain.Placement) placementResponse {
	return placementResponse{
		ID:            p.ID,
		PlatformID:    p.PlatformID,
		PlacementType: string(p.Type),
		PositionName:  p.PositionName,
		Width:         p.Width,
		Height:        p.Height,
		BasePrice:     p.BasePrice.StringFixed(2),
		Active:        p.Active,
	}
}

func toAvailabilityResponse(a domain.PlacementAvailability) availabilityResponse {
	out := availabilityResponse{
		Placement: toPlacementResponse(a.Placement),
		Date:      formatDate(a.Date),
		Status:    string(a.Status),
	}
	if a.Blocking != nil {
		out.BookedBy = &conflictPayload{
			BookingID: a.Blocking.ID,
			StartDate: formatDate(a.Blocking.Period.Start),
			EndDate:   formatDate(a.Blocking.Period.End),
		}
	}
	return out
}

func (h *Handler) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.svc.ListPlatforms(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]platformResponse, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, platformResponse{
			ID:                  p.ID,
			Name:                p.Name,
			DisplayName:         p.DisplayName,
			Active:              p.Active,
			TotalPlacements:     p.TotalPlacements,
			AvailablePlacements: p.AvailablePlacements,
			BookedPlacements:    p.BookedPlacements,
		})
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

// handlePlatformPlacements lists a platform's placements with their
// availability on the date query parameter, today by default.
func (h *Handler) handlePlatformPlacements(w http.ResponseWriter, r *http.Request) {
	day, err := h.queryDate(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	items, err := h.svc.ListPlatformPlacements(r.Context(), chi.URLParam(r, "platform"), day)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]availabilityResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAvailabilityResponse(a))
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

func (h *Handler) handlePlacementAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	day, err := h.queryDate(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	a, err := h.svc.PlacementAvailability(r.Context(), id, day)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, toAvailabilityResponse(*a))
}

// handleActiveAds serves the ads currently running on a platform. It is
// public so that platform embeds can fetch it.
func (h *Handler) handleActiveAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.svc.ActiveAds(r.Context(), chi.URLParam(r, "platform"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]activeAdResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, activeAdResponse{
			BookingID:     ad.Booking.ID,
			PlacementID:   ad.Placement.ID,
			PlacementType: string(ad.Placement.Type),
			PositionName:  ad.Placement.PositionName,
			Width:         ad.Placement.Width,
			Height:        ad.Placement.Height,
			CampaignName:  ad.Booking.CampaignName,
			AdImageURL:    ad.Booking.AdImageURL,
			AdLinkURL:     ad.Booking.AdLinkURL,
			StartDate:     formatDate(ad.Booking.Period.Start),
			EndDate:       formatDate(ad.Booking.Period.End),
		})
	}
	h.writeJSON(w, r, http.StatusOK, out)
}
