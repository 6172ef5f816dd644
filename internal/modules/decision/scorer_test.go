package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_HighBubbleHighProfit(t *testing.T) {
	// Bubble 30% (+30), profit 42.9% vs required 5% (+20): 50+30+20 = 100.
	result := Analyze(1_000_000_000, 700_000_000, 5, nil, nil)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, TierAggressive, result.Decision)
	assert.Equal(t, "수익성 높음, 적극 참여 권장", result.Recommendation)
	assert.Equal(t, 30.0, result.Metrics.BubbleRate)
	assert.Equal(t, int64(300_000_000), result.Metrics.PotentialProfit)
	assert.Contains(t, result.Narrative.Because, "충분하여")
	assert.Contains(t, result.Narrative.Because, "참여 가치가 있다")
}

func TestAnalyze_NegativeBubble(t *testing.T) {
	// Cost above base price: bubble band 0, profit shortfall beyond 5
	// points (-10): 50+0-10 = 40.
	result := Analyze(1_000_000_000, 1_200_000_000, 5, nil, nil)

	assert.Equal(t, 40, result.Score)
	assert.Equal(t, TierCaution, result.Decision)
	assert.Contains(t, result.Narrative.Because, "부족하여")
	assert.Contains(t, result.Narrative.Because, "리스크가 있다")
}

func TestAnalyze_ScoreFloorsAtZero(t *testing.T) {
	weaknesses := []string{
		"관급 미경험", "기술 인력 부족", "장비 없음", "해당 공종 처음",
		"자금 부족", "실적 없음", "면허 없음", "인력 부족", "경험 부족",
	}

	// 50 + 0 (bubble) - 10 (profit) - 45 (weaknesses) clamps at 0.
	result := Analyze(1_000_000_000, 1_200_000_000, 5, nil, weaknesses)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, TierWithdraw, result.Decision)
}

func TestAnalyze_StrengthStacksAcrossGroups(t *testing.T) {
	// One statement touching the material, labor and equipment groups
	// earns 5 points per group.
	strengths := []string{"자재 직거래, 직영 인력과 장비 보유"}

	base := Analyze(1_000_000_000, 900_000_000, 5, nil, nil)
	boosted := Analyze(1_000_000_000, 900_000_000, 5, strengths, nil)

	assert.Equal(t, base.Score+15, boosted.Score)
}

func TestAnalyze_UnmatchedStrengthEarnsNothing(t *testing.T) {
	base := Analyze(1_000_000_000, 900_000_000, 5, nil, nil)
	boosted := Analyze(1_000_000_000, 900_000_000, 5, []string{"성실한 경영"}, nil)

	assert.Equal(t, base.Score, boosted.Score)
}

func TestAnalyze_ZeroDenominators(t *testing.T) {
	// Both rates default to 0; profit is exactly at min-5 (+5): 50+5 = 55.
	result := Analyze(0, 0, 5, nil, nil)

	assert.Equal(t, 55, result.Score)
	assert.Equal(t, TierConditional, result.Decision)
	assert.Equal(t, 0.0, result.Metrics.BubbleRate)
	assert.Equal(t, 0.0, result.Metrics.ProfitRate)
}

func TestAnalyze_RisksAndOpportunities(t *testing.T) {
	// Low bubble, low profit, no strengths: all three risks fire.
	result := Analyze(1_000_000_000, 980_000_000, 5, nil, nil)

	assert.Len(t, result.Risks, 3)
	assert.Empty(t, result.Opportunities)

	// High bubble with strengths: both opportunities, first two strengths named.
	strengths := []string{"자재 직거래", "직영 인력", "장비 보유"}
	result = Analyze(1_000_000_000, 750_000_000, 5, strengths, nil)

	assert.Empty(t, result.Risks)
	assert.Len(t, result.Opportunities, 2)
	assert.Contains(t, result.Opportunities[1], "자재 직거래, 직영 인력")
	assert.NotContains(t, result.Opportunities[1], "장비 보유")
}

func TestAnalyze_NarrativeFormatsAmounts(t *testing.T) {
	result := Analyze(1_000_000_000, 887_517_567, 5, nil, nil)

	assert.Contains(t, result.Narrative.Not, "1,000,000,000원")
	assert.Contains(t, result.Narrative.But, "887,517,567원")
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		tier  string
	}{
		{100, TierAggressive},
		{75, TierAggressive},
		{74, TierRecommended},
		{60, TierRecommended},
		{59, TierConditional},
		{45, TierConditional},
		{44, TierCaution},
		{30, TierCaution},
		{29, TierWithdraw},
		{0, TierWithdraw},
	}

	for _, tt := range tests {
		decision, _ := tierFor(tt.score)
		assert.Equal(t, tt.tier, decision, "score %d", tt.score)
	}
}

func TestBubbleBonus_Bands(t *testing.T) {
	tests := []struct {
		rate  float64
		bonus int
	}{
		{30, 30}, {25, 30}, {24.9, 25}, {20, 25}, {19.9, 20},
		{15, 20}, {14.9, 15}, {10, 15}, {9.9, 10}, {5, 10},
		{4.9, 0}, {0, 0}, {-10, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bonus, bubbleBonus(tt.rate), "rate %.1f", tt.rate)
	}
}
