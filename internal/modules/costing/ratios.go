package costing

// Ratio describes how direct construction cost splits into material,
// labor and equipment expense for one work type. The three percentages
// sum to 100 for every entry.
type Ratio struct {
	Material    int    `json:"재료비"`
	Labor       int    `json:"노무비"`
	Overhead    int    `json:"경비"`
	Description string `json:"description"`
}

// DefaultWorkType is the catch-all category used when a work type is not
// present in the ratio table.
const DefaultWorkType = "기타"

// CostRatios is the standard cost composition table keyed by work type.
// Values follow published design-price conventions and are loaded once at
// startup; the table is never mutated.
var CostRatios = map[string]Ratio{
	"도로":     {Material: 55, Labor: 25, Overhead: 20, Description: "도로포장, 아스팔트"},
	"토목":     {Material: 40, Labor: 35, Overhead: 25, Description: "토공, 기초"},
	"건축":     {Material: 50, Labor: 30, Overhead: 20, Description: "건물 신축/개보수"},
	"설비":     {Material: 60, Labor: 25, Overhead: 15, Description: "기계설비, 배관"},
	"전기":     {Material: 55, Labor: 30, Overhead: 15, Description: "전기, 통신"},
	"조경":     {Material: 45, Labor: 35, Overhead: 20, Description: "조경, 식재"},
	"상하수도":   {Material: 50, Labor: 30, Overhead: 20, Description: "상하수도, 관로"},
	"포장":     {Material: 55, Labor: 25, Overhead: 20, Description: "포장 전문"},
	"철근콘크리트": {Material: 50, Labor: 35, Overhead: 15, Description: "RC 구조물"},
	"철골":     {Material: 60, Labor: 25, Overhead: 15, Description: "철골 구조물"},
	"기타":     {Material: 50, Labor: 30, Overhead: 20, Description: "일반 공사"},
}

// IndirectRatios lists the statutory indirect-cost components as
// percentages of direct construction cost. Exposed by the ratio endpoints
// for reference; the estimator itself uses the aggregate 26% assumption.
var IndirectRatios = map[string]float64{
	"간접노무비":  12.0, // 직접노무비의 12%
	"산재보험료":  3.7,
	"고용보험료":  1.05,
	"건강보험료":  3.545,
	"연금보험료":  4.5,
	"퇴직공제부금": 2.3,
	"안전관리비":  1.97, // 공사 규모별 상이
	"환경보전비":  0.5,
	"일반관리비":  6.0,  // 직접공사비의 6%
	"이윤":     15.0, // 직접공사비+일반관리비의 15%
}

// RatioFor returns the ratio entry for a work type, falling back to the
// catch-all category for unknown keys. Never an error.
func RatioFor(workType string) Ratio {
	if r, ok := CostRatios[workType]; ok {
		return r
	}
	return CostRatios[DefaultWorkType]
}

// WorkTypes returns the list of known work type keys.
func WorkTypes() []string {
	keys := make([]string, 0, len(CostRatios))
	for k := range CostRatios {
		keys = append(keys, k)
	}
	return keys
}
