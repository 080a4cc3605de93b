package httpadapter

import (
	"net/http"

	"mesa-placements/internal/core/domain"
	"mesa-placements/internal/core/port"
)

type pricingRequest struct {
	PlacementID int64  `json:"placement_id"`
	Region      string `json:"region"`
	Country     string `json:"country"`
	State       string `json:"state"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type pricingResponse struct {
	PlacementID     int64  `json:"placement_id"`
	BasePrice       string `json:"base_price"`
	PriceMultiplier string `json:"price_multiplier"`
	MonthlyPrice    string `json:"monthly_price"`
	DurationDays    int    `json:"duration_days"`
	DurationMonths  int    `json:"duration_months"`
	TotalPrice      string `json:"total_price"`
	Region          string `json:"region"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

func toPricingResponse(p *domain.Pricing) pricingResponse {
	return pricingResponse{
		PlacementID:     p.PlacementID,
		BasePrice:       p.BasePrice.StringFixed(2),
		PriceMultiplier: p.PriceMultiplier.StringFixed(2),
		MonthlyPrice:    p.MonthlyPrice.StringFixed(2),
		DurationDays:    p.DurationDays,
		DurationMonths:  p.DurationMonths,
		TotalPrice:      p.TotalPrice.StringFixed(2),
		Region:          p.Region,
		StartDate:       formatDate(p.Period.Start),
		EndDate:         formatDate(p.Period.End),
	}
}

type regionalPricingResponse struct {
	ID              int64  `json:"id"`
	RegionName      string `json:"region_name"`
	Country         string `json:"country,omitempty"`
	State           string `json:"state,omitempty"`
	PriceMultiplier string `json:"price_multiplier"`
	Description     string `json:"description,omitempty"`
}

func toRegionalPricingResponse(r domain.RegionalPricing) regionalPricingResponse {
	return regionalPricingResponse{
		ID:              r.ID,
		RegionName:      r.RegionName,
		Country:         r.Country,
		State:           r.State,
		PriceMultiplier: r.PriceMultiplier.StringFixed(2),
		Description:     r.Description,
	}
}

// handleCalculatePricing quotes a placement for a region and date range.
func (h *Handler) handleCalculatePricing(w http.ResponseWriter, r *http.Request) {
	var req pricingRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	p, err := h.svc.CalculatePricing(r.Context(), port.PricingRequest{
		PlacementID: req.PlacementID,
		Region:      req.Region,
		Country:     req.Country,
		State:       req.State,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, toPricingResponse(p))
}

// handleRegionalPricing lists the pricing table, or resolves a single row
// when any of the region, country or state query parameters is given.
func (h *Handler) handleRegionalPricing(w http.ResponseWriter, r *http.Request) {
	q := domain.RegionQuery{
		Region:  r.URL.Query().Get("region"),
		Country: r.URL.Query().Get("country"),
		State:   r.URL.Query().Get("state"),
	}
	if !q.Empty() {
		row, err := h.svc.LookupRegionalPricing(r.Context(), q)
		if err != nil {
			h.writeDomainError(w, r, err)
			return
		}
		h.writeJSON(w, r, http.StatusOK, toRegionalPricingResponse(*row))
		return
	}
	rows, err := h.svc.ListRegionalPricing(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]regionalPricingResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRegionalPricingResponse(row))
	}
	h.writeJSON(w, r, http.StatusOK, out)
}
