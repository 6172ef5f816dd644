package costing

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for cost estimation.
type Handlers struct {
	log zerolog.Logger
}

// NewHandlers creates a new costing handlers instance.
func NewHandlers(log zerolog.Logger) *Handlers {
	return &Handlers{
		log: log.With().Str("handler", "costing").Logger(),
	}
}

// HandleCostRatios returns the full ratio reference tables.
// GET /api/cost-ratios
func (h *Handlers) HandleCostRatios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]interface{}{
		"공종별비율": CostRatios,
		"간접비비율": IndirectRatios,
	})
}

// HandleCostRatio returns the ratio entry for one work type.
// GET /api/cost-ratio/{workType}
func (h *Handlers) HandleCostRatio(w http.ResponseWriter, r *http.Request) {
	workType := chi.URLParam(r, "workType")

	ratio, ok := CostRatios[workType]
	if !ok {
		alternatives := WorkTypes()
		sort.Strings(alternatives)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":     "unknown work type: " + workType,
			"available": alternatives,
		})
		return
	}

	h.writeJSON(w, ratio)
}

// HandleCostEstimate runs a full cost estimate from a JSON body.
// POST /api/cost-estimate
func (h *Handlers) HandleCostEstimate(w http.ResponseWriter, r *http.Request) {
	var req CostEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.BasePrice <= 0 {
		http.Error(w, "base_price must be a positive integer", http.StatusBadRequest)
		return
	}

	result := EstimateRoughCost(
		req.BasePrice,
		req.WorkType,
		req.MaterialDiscount,
		req.LaborDiscount,
		req.EquipmentDiscount,
	)

	h.writeJSON(w, result)
}

// HandleQuickEstimate runs a cost estimate from query parameters. Not
// counted against the daily quota.
// GET /api/quick-estimate?base_price=N&work_type=도로
func (h *Handlers) HandleQuickEstimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	basePrice, err := strconv.ParseInt(q.Get("base_price"), 10, 64)
	if err != nil || basePrice <= 0 {
		http.Error(w, "base_price must be a positive integer", http.StatusBadRequest)
		return
	}

	result := EstimateRoughCost(basePrice, q.Get("work_type"), 0, 0, 0)
	h.writeJSON(w, result)
}

// writeJSON writes JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
