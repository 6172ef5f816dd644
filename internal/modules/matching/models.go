package matching

// Announcement is a bid announcement fetched from the public procurement
// service. Read-only once fetched.
type Announcement struct {
	BidNo          string `json:"bid_no"`
	Name           string `json:"name"`
	Agency         string `json:"agency"`
	EstimatedPrice int64  `json:"estimated_price"`
	BasePrice      int64  `json:"base_price"`
	Method         string `json:"method"`
	Deadline       string `json:"deadline"`
	Region         string `json:"region"`
	URL            string `json:"url"`
	BidType        string `json:"bid_type"`
}

// CompanyProfile describes what a company can bid on: acceptable price
// range, work-type keywords and operating regions.
type CompanyProfile struct {
	Name         string   `json:"name"`
	BusinessType string   `json:"business_type"`
	WorkTypes    []string `json:"work_types"`
	Regions      []string `json:"regions"`
	MinPrice     int64    `json:"min_price"`
	MaxPrice     int64    `json:"max_price"`
	Licenses     []string `json:"licenses"`
	Experience   []string `json:"experience"`
}

// MatchResult pairs an announcement with its match score and the ordered
// list of reasons that produced it.
type MatchResult struct {
	Announcement Announcement `json:"announcement"`
	MatchScore   int          `json:"match_score"`
	MatchReasons []string     `json:"match_reasons"`
}

// Summary reports how many announcements were fetched vs kept.
type Summary struct {
	TotalFetched int `json:"total_fetched"`
	Matched      int `json:"matched"`
}
