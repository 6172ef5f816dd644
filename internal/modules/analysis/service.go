// Package analysis composes the cost estimator and participation scorer
// into one combined bid report.
package analysis

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wisebid/n2b/internal/modules/costing"
	"github.com/wisebid/n2b/internal/modules/decision"
)

// Summary is the human-readable digest of a full analysis.
type Summary struct {
	BasePrice     string `json:"기초금액"`
	EstimatedCost string `json:"예상원가"`
	BubbleRate    string `json:"거품률"`
	Score         string `json:"판정점수"`
	Decision      string `json:"판정"`
	Strategy      string `json:"투찰전략"`
}

// Report is the combined estimate and participation verdict.
type Report struct {
	ReportID    string                     `json:"report_id"`
	GeneratedAt string                     `json:"생성일시"`
	Summary     Summary                    `json:"요약"`
	CostReport  costing.CostEstimateResult `json:"원가분석"`
	Decision    decision.Result            `json:"참여판정"`
	Narrative   decision.Narrative         `json:"n2b"`
}

// Request is the inbound shape for a full analysis.
type Request struct {
	BasePrice         int64    `json:"base_price"`
	WorkType          string   `json:"work_type"`
	MaterialDiscount  float64  `json:"material_discount"`
	LaborDiscount     float64  `json:"labor_discount"`
	EquipmentDiscount float64  `json:"equipment_discount"`
	MinProfitRate     float64  `json:"min_profit_rate"`
	CompanyStrength   []string `json:"company_strength"`
	CompanyWeakness   []string `json:"company_weakness"`
}

// Service runs full analyses.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new analysis service.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("component", "analysis_service").Logger(),
	}
}

// FullAnalysis runs the estimator, feeds its actual total into the scorer
// as the estimated cost, and wraps both in a summarized report.
func (s *Service) FullAnalysis(req Request) Report {
	estimate := costing.EstimateRoughCost(
		req.BasePrice,
		req.WorkType,
		req.MaterialDiscount,
		req.LaborDiscount,
		req.EquipmentDiscount,
	)

	verdict := decision.Analyze(
		req.BasePrice,
		estimate.ActualCost.GrandTotal,
		req.MinProfitRate,
		req.CompanyStrength,
		req.CompanyWeakness,
	)

	report := Report{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Summary: Summary{
			BasePrice:     humanize.Comma(req.BasePrice) + "원",
			EstimatedCost: humanize.Comma(estimate.ActualCost.GrandTotal) + "원",
			BubbleRate:    fmt.Sprintf("%.1f%%", estimate.BubbleRate),
			Score:         fmt.Sprintf("%d점", verdict.Score),
			Decision:      verdict.Decision,
			Strategy:      strategyFor(estimate.BubbleRate),
		},
		CostReport: estimate,
		Decision:   verdict,
		Narrative:  verdict.Narrative,
	}

	s.log.Info().
		Str("report_id", report.ReportID).
		Int64("base_price", req.BasePrice).
		Int("score", verdict.Score).
		Msg("Full analysis complete")

	return report
}

// strategyFor maps the bubble rate to a bid strategy recommendation.
func strategyFor(bubbleRate float64) string {
	switch {
	case bubbleRate >= 25:
		return "공격적 투찰: 낙찰률 85-88% 권장"
	case bubbleRate >= 20:
		return "적정 투찰: 낙찰률 87-90% 권장"
	case bubbleRate >= 15:
		return "보수적 투찰: 낙찰률 89-92% 권장"
	default:
		return "신중 투찰: 원가 재검토 필요"
	}
}
