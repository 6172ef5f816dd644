package awards

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for award statistics.
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new awards handlers instance.
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("handler", "awards").Logger(),
	}
}

// HandleAwardStats returns winning-rate statistics for a keyword.
// GET /api/award-stats?keyword=도로
func (h *Handlers) HandleAwardStats(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		http.Error(w, "keyword parameter is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.service.Analyze(keyword))
}

// writeJSON writes JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
