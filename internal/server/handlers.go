package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// handleHealth is a minimal liveness check.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleBanner describes the service and its endpoints.
// GET /
func (s *Server) handleBanner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"service": "입찰 분석 API",
		"version": "1.0",
		"features": []string{
			"원가 추정 (74/26 분해)",
			"참여 판정 (N2B 스코어링)",
			"공고 매칭",
			"단가 검색",
			"낙찰 통계",
		},
		"endpoints": map[string]string{
			"GET /api/cost-ratios":           "공종별 원가 비율표",
			"GET /api/cost-ratio/{workType}": "공종별 비율 조회",
			"POST /api/cost-estimate":        "원가 추정",
			"GET /api/quick-estimate":        "간이 원가 추정",
			"POST /api/n2b-decision":         "참여 판정",
			"GET /api/quick-decision":        "간이 참여 판정",
			"POST /api/price-search":         "자재/시공 단가 검색",
			"POST /api/bid-match":            "공고 매칭",
			"GET /api/award-stats":           "낙찰 통계",
			"GET /api/full-analysis":         "종합 분석",
			"GET /api/profiles":              "샘플 기업 프로필",
			"GET /api/usage":                 "사용량 조회",
		},
	})
}
