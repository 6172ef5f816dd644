// Package decision implements the N2B participation verdict: a rule-based
// score over bubble rate, profit rate and qualitative company traits,
// mapped to a five-tier recommendation with a not/but/because narrative.
package decision

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Decision tiers, highest first.
const (
	TierAggressive  = "적극 참여"
	TierRecommended = "참여 권장"
	TierConditional = "조건부 참여"
	TierCaution     = "신중 검토"
	TierWithdraw    = "불참 권장"
)

// Analyze produces the participation verdict for one bid. It never fails;
// zero denominators default the affected rate to 0.
func Analyze(basePrice, estimatedCost int64, minProfitRate float64, strengths, weaknesses []string) Result {
	bubbleRate := 0.0
	if basePrice > 0 {
		bubbleRate = float64(basePrice-estimatedCost) / float64(basePrice) * 100
	}

	potentialProfit := basePrice - estimatedCost
	profitRate := 0.0
	if estimatedCost > 0 {
		profitRate = float64(potentialProfit) / float64(estimatedCost) * 100
	}

	score := 50
	score += bubbleBonus(bubbleRate)
	score += profitBonus(profitRate, minProfitRate)
	score += strengthBonus(strengths)
	score -= weaknessPenalty(weaknesses)

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	decision, recommendation := tierFor(score)

	return Result{
		Decision:       decision,
		Score:          score,
		Recommendation: recommendation,
		Narrative:      buildNarrative(basePrice, estimatedCost, bubbleRate, profitRate, minProfitRate),
		Metrics: Metrics{
			BasePrice:       basePrice,
			EstimatedCost:   estimatedCost,
			BubbleRate:      round1(bubbleRate),
			PotentialProfit: potentialProfit,
			ProfitRate:      round1(profitRate),
			MinProfitRate:   minProfitRate,
		},
		Risks:         buildRisks(bubbleRate, profitRate, strengths),
		Opportunities: buildOpportunities(bubbleRate, strengths),
	}
}

// bubbleBonus awards up to 30 points by bubble-rate band; the highest
// qualifying band wins.
func bubbleBonus(bubbleRate float64) int {
	switch {
	case bubbleRate >= 25:
		return 30
	case bubbleRate >= 20:
		return 25
	case bubbleRate >= 15:
		return 20
	case bubbleRate >= 10:
		return 15
	case bubbleRate >= 5:
		return 10
	default:
		return 0
	}
}

// profitBonus awards up to 20 points relative to the required profit rate;
// a shortfall of more than 5 points penalizes.
func profitBonus(profitRate, minProfitRate float64) int {
	switch {
	case profitRate >= minProfitRate+10:
		return 20
	case profitRate >= minProfitRate+5:
		return 15
	case profitRate >= minProfitRate:
		return 10
	case profitRate >= minProfitRate-5:
		return 5
	default:
		return -10
	}
}

// strengthBonus adds 5 points per strength statement per matched keyword
// group. Matching is case-sensitive substring containment; a statement
// touching several groups stacks.
func strengthBonus(strengths []string) int {
	bonus := 0
	for _, strength := range strengths {
		for _, keywords := range strengthKeywords {
			if containsAny(strength, keywords) {
				bonus += 5
			}
		}
	}
	return bonus
}

// weaknessPenalty subtracts 5 points per weakness statement containing a
// negative keyword.
func weaknessPenalty(weaknesses []string) int {
	penalty := 0
	for _, weakness := range weaknesses {
		if containsAny(weakness, weaknessKeywords) {
			penalty += 5
		}
	}
	return penalty
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func tierFor(score int) (decision, recommendation string) {
	switch {
	case score >= 75:
		return TierAggressive, "수익성 높음, 적극 참여 권장"
	case score >= 60:
		return TierRecommended, "적정 수익 예상, 참여 고려"
	case score >= 45:
		return TierConditional, "원가 재검토 후 참여 결정"
	case score >= 30:
		return TierCaution, "리스크 높음, 신중한 검토 필요"
	default:
		return TierWithdraw, "수익성 낮음, 불참 권장"
	}
}

func buildNarrative(basePrice, estimatedCost int64, bubbleRate, profitRate, minProfitRate float64) Narrative {
	bubbleWord := "부족하여"
	if bubbleRate >= 15 {
		bubbleWord = "충분하여"
	}
	profitPhrase := "로 리스크가 있다"
	if profitRate >= minProfitRate {
		profitPhrase = "로 참여 가치가 있다"
	}

	return Narrative{
		Not: fmt.Sprintf("단순히 기초금액 %s원이 커서 참여하는 것이 아니다", humanize.Comma(basePrice)),
		But: fmt.Sprintf("실제원가 %s원 대비 거품률 %.1f%%가 판단 기준이다", humanize.Comma(estimatedCost), bubbleRate),
		Because: fmt.Sprintf("거품률이 %s 예상수익률 %.1f%%%s",
			bubbleWord, profitRate, profitPhrase),
	}
}

func buildRisks(bubbleRate, profitRate float64, strengths []string) []string {
	risks := []string{}
	if bubbleRate < 10 {
		risks = append(risks, "거품률 낮음 - 경쟁 심화 시 손실 가능")
	}
	if profitRate < 5 {
		risks = append(risks, "수익률 낮음 - 원가 상승 시 손실 가능")
	}
	if len(strengths) == 0 {
		risks = append(risks, "회사 강점 미확인 - 경쟁력 검토 필요")
	}
	return risks
}

func buildOpportunities(bubbleRate float64, strengths []string) []string {
	opportunities := []string{}
	if bubbleRate >= 20 {
		opportunities = append(opportunities, "높은 거품률 - 가격 경쟁력 확보 가능")
	}
	if len(strengths) > 0 {
		named := strengths
		if len(named) > 2 {
			named = named[:2]
		}
		opportunities = append(opportunities, "회사 강점 활용 - "+strings.Join(named, ", "))
	}
	return opportunities
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
