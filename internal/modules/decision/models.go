package decision

// Narrative is the three-part not/but/because justification for a
// participation decision.
type Narrative struct {
	Not     string `json:"not"`
	But     string `json:"but"`
	Because string `json:"because"`
}

// Metrics holds the numeric indicators behind a decision.
type Metrics struct {
	BasePrice       int64   `json:"기초금액"`
	EstimatedCost   int64   `json:"예상원가"`
	BubbleRate      float64 `json:"거품률"`
	PotentialProfit int64   `json:"예상수익"`
	ProfitRate      float64 `json:"수익률"`
	MinProfitRate   float64 `json:"요구수익률"`
}

// Result is the full participation verdict for one bid.
type Result struct {
	Decision       string    `json:"decision"`
	Score          int       `json:"score"`
	Recommendation string    `json:"recommendation"`
	Narrative      Narrative `json:"n2b"`
	Metrics        Metrics   `json:"분석"`
	Risks          []string  `json:"risks"`
	Opportunities  []string  `json:"opportunities"`
}

// Request is the inbound shape for a participation decision.
type Request struct {
	BasePrice       int64    `json:"base_price"`
	EstimatedCost   int64    `json:"estimated_cost"`
	WorkType        string   `json:"work_type"`
	MinProfitRate   float64  `json:"min_profit_rate"`
	CompanyStrength []string `json:"company_strength"`
	CompanyWeakness []string `json:"company_weakness"`
}
