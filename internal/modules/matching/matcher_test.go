package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProfile() CompanyProfile {
	return CompanyProfile{
		Name:      "대한로드텍",
		WorkTypes: []string{"도로", "포장"},
		Regions:   []string{"서울", "경기"},
		MinPrice:  100_000_000,
		MaxPrice:  3_000_000_000,
	}
}

func TestMatch_FullScore(t *testing.T) {
	announcements := []Announcement{
		{
			BidNo:     "2025-001",
			Name:      "국도 12호선 도로 보수공사",
			Agency:    "서울지방국토관리청",
			BasePrice: 500_000_000,
			Region:    "서울",
		},
	}

	results, summary := Match(announcements, testProfile())

	assert.Equal(t, 1, summary.TotalFetched)
	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 75, results[0].MatchScore)
	assert.Equal(t, []string{"가격대 적합", "공종 일치 (도로)", "지역 일치 (서울)"}, results[0].MatchReasons)
}

func TestMatch_HardPriceFilter(t *testing.T) {
	// Price outside the range disqualifies even a perfect work type and
	// region match.
	announcements := []Announcement{
		{Name: "도로 확장공사", Region: "서울", BasePrice: 5_000_000_000},
		{Name: "도로 확장공사", Region: "서울", BasePrice: 50_000_000},
	}

	results, summary := Match(announcements, testProfile())

	assert.Equal(t, 2, summary.TotalFetched)
	assert.Equal(t, 0, summary.Matched)
	assert.Empty(t, results)
}

func TestMatch_ZeroPriceSkipsGate(t *testing.T) {
	// No price at all: the price gate is skipped, no price points awarded,
	// but work type + region still clears the cutoff.
	announcements := []Announcement{
		{Name: "포장 정비공사", Region: "경기"},
	}

	results, _ := Match(announcements, testProfile())

	assert.Len(t, results, 1)
	assert.Equal(t, 45, results[0].MatchScore)
	assert.Equal(t, []string{"공종 일치 (포장)", "지역 일치 (경기)"}, results[0].MatchReasons)
}

func TestMatch_EstimatedPriceFallback(t *testing.T) {
	// Base price missing: the estimated price feeds the gate.
	announcements := []Announcement{
		{Name: "하천 정비공사", EstimatedPrice: 10_000_000_000},
	}

	_, summary := Match(announcements, testProfile())

	assert.Equal(t, 0, summary.Matched)
}

func TestMatch_RegionFallsBackToAgency(t *testing.T) {
	announcements := []Announcement{
		{Name: "청사 보수공사", Agency: "경기도청", BasePrice: 200_000_000},
	}

	results, _ := Match(announcements, testProfile())

	assert.Len(t, results, 1)
	assert.Equal(t, 50, results[0].MatchScore)
	assert.Contains(t, results[0].MatchReasons, "지역 일치 (경기)")
}

func TestMatch_BelowCutoffExcluded(t *testing.T) {
	// Region-only match scores 20, under the 25 cutoff.
	announcements := []Announcement{
		{Name: "하천 정비공사", Region: "서울"},
	}

	_, summary := Match(announcements, testProfile())

	assert.Equal(t, 0, summary.Matched)
}

func TestMatch_StableSortPreservesFetchOrder(t *testing.T) {
	announcements := []Announcement{
		{BidNo: "A", Name: "도로공사", Region: "서울", BasePrice: 200_000_000}, // 75
		{BidNo: "B", Name: "포장공사", BasePrice: 300_000_000},              // 55
		{BidNo: "C", Name: "도로공사", BasePrice: 400_000_000},              // 55
		{BidNo: "D", Name: "포장공사", Region: "경기", BasePrice: 500_000_000}, // 75
	}

	results, _ := Match(announcements, testProfile())

	order := make([]string, 0, len(results))
	for _, r := range results {
		order = append(order, r.Announcement.BidNo)
	}

	// Ties keep fetch order: A before D at 75, B before C at 55.
	assert.Equal(t, []string{"A", "D", "B", "C"}, order)
}

func TestProfileByName(t *testing.T) {
	profile, err := ProfileByName("대한로드텍")

	assert.NoError(t, err)
	assert.Equal(t, "대한로드텍", profile.Name)
}

func TestProfileByName_UnknownNamesAlternatives(t *testing.T) {
	_, err := ProfileByName("없는회사")

	assert.Error(t, err)
	for _, name := range ProfileNames() {
		assert.Contains(t, err.Error(), name)
	}
}
