package costing

import "math"

// Fixed design-price structure assumptions. The published base price is
// treated as direct construction cost plus an aggregate 26% indirect
// layer (insurance, management fee, profit).
const (
	directCostRatio   = 0.74
	indirectCostRatio = 0.26
)

// EstimateRoughCost derives an approximate internal cost from the published
// base price. The direct cost is reversed out of the base price, split by
// the work-type ratio table, then each category is reduced by the
// contractor's saving rate. The indirect layer shrinks proportionally with
// the direct-cost reduction.
//
// All monetary intermediates truncate toward zero; reproducing the
// published figures depends on this exact truncation order.
func EstimateRoughCost(basePrice int64, workType string, materialDiscount, laborDiscount, equipmentDiscount float64) CostEstimateResult {
	if workType == "" {
		workType = DefaultWorkType
	}
	ratios := RatioFor(workType)

	// Reverse the design-price structure: direct cost is ~74% of base price.
	estimatedDirect := int64(float64(basePrice) * directCostRatio)

	materialCost := estimatedDirect * int64(ratios.Material) / 100
	laborCost := estimatedDirect * int64(ratios.Labor) / 100
	equipmentCost := estimatedDirect * int64(ratios.Overhead) / 100

	standard := CostBreakdown{
		Material:    materialCost,
		Labor:       laborCost,
		Overhead:    equipmentCost,
		DirectTotal: estimatedDirect,
		Indirect:    int64(float64(basePrice) * indirectCostRatio),
		GrandTotal:  basePrice,
	}

	// Apply per-category saving rates independently.
	actualMaterial := int64(float64(materialCost) * (1 - materialDiscount/100))
	actualLabor := int64(float64(laborCost) * (1 - laborDiscount/100))
	actualEquipment := int64(float64(equipmentCost) * (1 - equipmentDiscount/100))
	actualDirect := actualMaterial + actualLabor + actualEquipment

	// Indirect cost scales with the direct-cost reduction.
	directReductionRate := 1.0
	if estimatedDirect > 0 {
		directReductionRate = float64(actualDirect) / float64(estimatedDirect)
	}
	actualIndirect := int64(float64(basePrice) * indirectCostRatio * directReductionRate)

	actualTotal := actualDirect + actualIndirect

	actual := CostBreakdown{
		Material:    actualMaterial,
		Labor:       actualLabor,
		Overhead:    actualEquipment,
		DirectTotal: actualDirect,
		Indirect:    actualIndirect,
		GrandTotal:  actualTotal,
	}

	bubbleRate := 0.0
	if basePrice > 0 {
		bubbleRate = float64(basePrice-actualTotal) / float64(basePrice) * 100
	}

	return CostEstimateResult{
		BasePrice:       basePrice,
		WorkType:        workType,
		WorkDescription: ratios.Description,
		Ratios: RatioPercents{
			Material: ratios.Material,
			Labor:    ratios.Labor,
			Overhead: ratios.Overhead,
		},
		Discounts: DiscountPercents{
			Material: materialDiscount,
			Labor:    laborDiscount,
			Overhead: equipmentDiscount,
		},
		StandardCost: standard,
		ActualCost:   actual,
		Savings:      standard.GrandTotal - actual.GrandTotal,
		BubbleRate:   round1(bubbleRate),
		Strategy:     buildStrategy(basePrice, actualTotal),
	}
}

// buildStrategy computes the bid-range recommendation. The expected award
// price falls within +-3% of the base price; the minimum sensible bid adds
// a 5% margin on cost; the recommended rate adds a 10% margin and is
// clamped into [75, 95].
func buildStrategy(basePrice, actualTotal int64) BidStrategy {
	minExpected := int64(float64(basePrice) * 0.97)
	maxExpected := int64(float64(basePrice) * 1.03)

	minBid := int64(float64(actualTotal) * 1.05)

	recommendedRate := 88.0
	if basePrice > 0 {
		recommendedRate = float64(actualTotal)/float64(basePrice)*100 + 10
	}
	recommendedRate = math.Min(recommendedRate, 95)
	recommendedRate = math.Max(recommendedRate, 75)

	return BidStrategy{
		ExpectedPriceRange: PriceRange{Min: minExpected, Max: maxExpected},
		MinBidPrice:        minBid,
		RecommendedRate:    round1(recommendedRate),
		RecommendedPrice:   int64(float64(basePrice) * recommendedRate / 100),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
