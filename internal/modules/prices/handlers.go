package prices

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// SearchRequest is the request body for a price search.
type SearchRequest struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

// Handlers contains HTTP handlers for price search.
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new prices handlers instance.
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("handler", "prices").Logger(),
	}
}

// HandlePriceSearch runs a combined material and market price search.
// POST /api/price-search
func (h *Handlers) HandlePriceSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Keyword == "" {
		http.Error(w, "keyword is required", http.StatusBadRequest)
		return
	}
	if req.Category == "" {
		req.Category = "토목"
	}

	h.writeJSON(w, h.service.Search(req.Keyword, req.Category))
}

// writeJSON writes JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
