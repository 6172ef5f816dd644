package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// PremiumHeader carries the premium access key.
const PremiumHeader = "X-Premium-Key"

// Limiter applies daily usage caps to route groups.
type Limiter struct {
	counter    Counter
	premiumKey string
	log        zerolog.Logger
}

// NewLimiter creates a limiter backed by the given counter. premiumKey is
// the shared secret that upgrades a request to the premium tier; an empty
// key disables the premium tier.
func NewLimiter(counter Counter, premiumKey string, log zerolog.Logger) *Limiter {
	return &Limiter{
		counter:    counter,
		premiumKey: premiumKey,
		log:        log.With().Str("component", "ratelimit").Logger(),
	}
}

// Limit returns middleware that counts each request against the app type's
// daily cap and rejects with 429 once the cap is reached.
func (l *Limiter) Limit(app string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := clientIP(r)
			premium := l.isPremium(r)

			usage, err := l.counter.Increment(clientID, app, premium)
			if err != nil {
				l.log.Warn().
					Str("client", clientID).
					Str("app", app).
					Int("limit", usage.Limit).
					Msg("Daily quota exceeded")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error": err.Error(),
					"usage": usage,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HandleUsage reports the caller's current counters for every app type.
// GET /api/usage
func (l *Limiter) HandleUsage(w http.ResponseWriter, r *http.Request) {
	clientID := clientIP(r)
	premium := l.isPremium(r)

	response := map[string]interface{}{
		"date": time.Now().Format("2006-01-02"),
	}
	for app := range Limits {
		response[app] = l.counter.Peek(clientID, app, premium)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		l.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (l *Limiter) isPremium(r *http.Request) bool {
	return l.premiumKey != "" && r.Header.Get(PremiumHeader) == l.premiumKey
}

// clientIP extracts the client address. The RealIP middleware has already
// folded X-Forwarded-For into RemoteAddr by the time we run.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
