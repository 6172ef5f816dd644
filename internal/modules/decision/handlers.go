package decision

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for participation decisions.
type Handlers struct {
	log zerolog.Logger
}

// NewHandlers creates a new decision handlers instance.
func NewHandlers(log zerolog.Logger) *Handlers {
	return &Handlers{
		log: log.With().Str("handler", "decision").Logger(),
	}
}

// HandleDecision scores a bid from a JSON body.
// POST /api/n2b-decision
func (h *Handlers) HandleDecision(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.BasePrice <= 0 {
		http.Error(w, "base_price must be a positive integer", http.StatusBadRequest)
		return
	}
	if req.EstimatedCost <= 0 {
		http.Error(w, "estimated_cost must be a positive integer", http.StatusBadRequest)
		return
	}
	if req.MinProfitRate == 0 {
		req.MinProfitRate = 10
	}

	result := Analyze(
		req.BasePrice,
		req.EstimatedCost,
		req.MinProfitRate,
		req.CompanyStrength,
		req.CompanyWeakness,
	)

	h.writeJSON(w, result)
}

// HandleQuickDecision scores a bid from query parameters. Not counted
// against the daily quota.
// GET /api/quick-decision?base_price=N&estimated_cost=N
func (h *Handlers) HandleQuickDecision(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	basePrice, err := strconv.ParseInt(q.Get("base_price"), 10, 64)
	if err != nil || basePrice <= 0 {
		http.Error(w, "base_price must be a positive integer", http.StatusBadRequest)
		return
	}

	estimatedCost, err := strconv.ParseInt(q.Get("estimated_cost"), 10, 64)
	if err != nil || estimatedCost <= 0 {
		http.Error(w, "estimated_cost must be a positive integer", http.StatusBadRequest)
		return
	}

	minProfitRate := 10.0
	if s := q.Get("min_profit_rate"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			minProfitRate = v
		}
	}

	result := Analyze(basePrice, estimatedCost, minProfitRate, nil, nil)
	h.writeJSON(w, result)
}

// writeJSON writes JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
