package analysis

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the full analysis.
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new analysis handlers instance.
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("handler", "analysis").Logger(),
	}
}

// HandleFullAnalysis runs a full analysis from query parameters.
// GET /api/full-analysis?base_price=N&work_type=도로&...
func (h *Handlers) HandleFullAnalysis(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	basePrice, err := strconv.ParseInt(q.Get("base_price"), 10, 64)
	if err != nil || basePrice <= 0 {
		http.Error(w, "base_price must be a positive integer", http.StatusBadRequest)
		return
	}

	// Defaults assume a typical contractor's saving rates so that a bare
	// base_price query still yields a meaningful discounted analysis.
	req := Request{
		BasePrice:         basePrice,
		WorkType:          q.Get("work_type"),
		MaterialDiscount:  queryFloat(q.Get("material_discount"), 10),
		LaborDiscount:     queryFloat(q.Get("labor_discount"), 15),
		EquipmentDiscount: queryFloat(q.Get("equipment_discount"), 10),
		MinProfitRate:     queryFloat(q.Get("min_profit_rate"), 10),
	}

	h.writeJSON(w, h.service.FullAnalysis(req))
}

func queryFloat(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

// writeJSON writes JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
