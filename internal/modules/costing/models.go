package costing

// CostBreakdown is an integer-valued monetary record of one cost side
// (standard or actual). Direct total is the sum of the three categories;
// grand total adds the indirect portion.
type CostBreakdown struct {
	Material    int64 `json:"재료비"`
	Labor       int64 `json:"노무비"`
	Overhead    int64 `json:"경비"`
	DirectTotal int64 `json:"직접공사비"`
	Indirect    int64 `json:"간접비"`
	GrandTotal  int64 `json:"합계"`
}

// RatioPercents echoes the ratio table entry used for an estimate.
type RatioPercents struct {
	Material int `json:"재료비"`
	Labor    int `json:"노무비"`
	Overhead int `json:"경비"`
}

// DiscountPercents echoes the per-category saving rates applied.
type DiscountPercents struct {
	Material float64 `json:"재료비"`
	Labor    float64 `json:"노무비"`
	Overhead float64 `json:"경비"`
}

// PriceRange is the expected award price window around the base price.
type PriceRange struct {
	Min int64 `json:"최저"`
	Max int64 `json:"최고"`
}

// BidStrategy is the bid-range recommendation derived from an estimate.
type BidStrategy struct {
	ExpectedPriceRange PriceRange `json:"예정가격범위"`
	MinBidPrice        int64      `json:"최저투찰가"`
	RecommendedRate    float64    `json:"권장투찰률"`
	RecommendedPrice   int64      `json:"권장투찰가"`
}

// CostEstimateResult is the full rough-cost estimate for one base price.
// Field names mirror the public API contract.
type CostEstimateResult struct {
	BasePrice       int64            `json:"기초금액"`
	WorkType        string           `json:"공종"`
	WorkDescription string           `json:"공종설명"`
	Ratios          RatioPercents    `json:"비율"`
	Discounts       DiscountPercents `json:"절감률"`
	StandardCost    CostBreakdown    `json:"표준원가"`
	ActualCost      CostBreakdown    `json:"실제원가"`
	Savings         int64            `json:"절감금액"`
	BubbleRate      float64          `json:"거품률"`
	Strategy        BidStrategy      `json:"투찰분석"`
}

// CostEstimateRequest is the inbound shape for cost estimation.
type CostEstimateRequest struct {
	BasePrice         int64   `json:"base_price"`
	WorkType          string  `json:"work_type"`
	MaterialDiscount  float64 `json:"material_discount"`
	LaborDiscount     float64 `json:"labor_discount"`
	EquipmentDiscount float64 `json:"equipment_discount"`
}
