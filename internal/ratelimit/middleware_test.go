package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func testRouter(limiter *Limiter) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(limiter.Limit("bid"))
		r.Post("/bid-match", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	r.Get("/usage", limiter.HandleUsage)
	return r
}

func TestLimit_Returns429AtCap(t *testing.T) {
	limiter := NewLimiter(NewDailyCounter(), "secret", zerolog.Nop())
	router := testRouter(limiter)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/bid-match", nil)
		req.RemoteAddr = "1.2.3.4:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/bid-match", nil)
	req.RemoteAddr = "1.2.3.4:5000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body struct {
		Error string `json:"error"`
		Usage Usage  `json:"usage"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "일일 사용 한도(10회) 초과", body.Error)
	assert.Equal(t, 10, body.Usage.Used)
	assert.Equal(t, 0, body.Usage.Remaining)
}

func TestLimit_PremiumHeaderRaisesCap(t *testing.T) {
	limiter := NewLimiter(NewDailyCounter(), "secret", zerolog.Nop())
	router := testRouter(limiter)

	for i := 0; i < 15; i++ {
		req := httptest.NewRequest(http.MethodPost, "/bid-match", nil)
		req.RemoteAddr = "1.2.3.4:5000"
		req.Header.Set(PremiumHeader, "secret")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}
}

func TestLimit_WrongPremiumKeyStaysNormal(t *testing.T) {
	limiter := NewLimiter(NewDailyCounter(), "secret", zerolog.Nop())
	router := testRouter(limiter)

	var lastCode int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/bid-match", nil)
		req.RemoteAddr = "1.2.3.4:5000"
		req.Header.Set(PremiumHeader, "wrong")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestLimit_ClientsCountedSeparately(t *testing.T) {
	limiter := NewLimiter(NewDailyCounter(), "", zerolog.Nop())
	router := testRouter(limiter)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/bid-match", nil)
		req.RemoteAddr = "1.2.3.4:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
	}

	// A different client is unaffected by the first one's exhaustion.
	req := httptest.NewRequest(http.MethodPost, "/bid-match", nil)
	req.RemoteAddr = "5.6.7.8:5000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleUsage(t *testing.T) {
	limiter := NewLimiter(NewDailyCounter(), "secret", zerolog.Nop())
	router := testRouter(limiter)

	req := httptest.NewRequest(http.MethodPost, "/bid-match", nil)
	req.RemoteAddr = "1.2.3.4:5000"
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/usage", nil)
	req.RemoteAddr = "1.2.3.4:5000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "date")
	assert.Contains(t, body, "cost")
	assert.Contains(t, body, "bid")
	assert.Contains(t, body, "agency")

	var bid Usage
	assert.NoError(t, json.Unmarshal(body["bid"], &bid))
	assert.Equal(t, 1, bid.Used)
	assert.Equal(t, 9, bid.Remaining)
}
