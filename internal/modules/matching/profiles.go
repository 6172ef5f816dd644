package matching

import (
	"fmt"
	"strings"
)

// SampleProfiles is the fixed set of demo company profiles offered when a
// caller does not supply their own. Loaded at startup, never mutated.
var SampleProfiles = []CompanyProfile{
	{
		Name:         "대한로드텍",
		BusinessType: "전문건설",
		WorkTypes:    []string{"도로", "포장", "아스팔트"},
		Regions:      []string{"서울", "경기", "인천"},
		MinPrice:     100_000_000,
		MaxPrice:     3_000_000_000,
		Licenses:     []string{"포장공사업", "토공사업"},
		Experience:   []string{"국도 보수공사 12건", "시도 포장공사 8건"},
	},
	{
		Name:         "한빛종합건설",
		BusinessType: "종합건설",
		WorkTypes:    []string{"건축", "토목", "철근콘크리트"},
		Regions:      []string{"부산", "경남", "울산"},
		MinPrice:     500_000_000,
		MaxPrice:     10_000_000_000,
		Licenses:     []string{"건축공사업", "토목공사업"},
		Experience:   []string{"공공청사 신축 3건", "하천 정비공사 5건"},
	},
	{
		Name:         "그린환경조경",
		BusinessType: "전문건설",
		WorkTypes:    []string{"조경", "상하수도", "식재"},
		Regions:      []string{"대전", "세종", "충남"},
		MinPrice:     50_000_000,
		MaxPrice:     1_500_000_000,
		Licenses:     []string{"조경식재공사업", "상하수도설비공사업"},
		Experience:   []string{"근린공원 조성 6건", "가로수 식재 10건"},
	},
}

// ErrProfileNotFound reports an unknown profile name along with the valid
// alternatives so the caller can correct the request.
type ErrProfileNotFound struct {
	Name string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("company profile %q not found (available: %s)",
		e.Name, strings.Join(ProfileNames(), ", "))
}

// ProfileByName looks up a sample profile by exact name.
func ProfileByName(name string) (CompanyProfile, error) {
	for _, p := range SampleProfiles {
		if p.Name == name {
			return p, nil
		}
	}
	return CompanyProfile{}, &ErrProfileNotFound{Name: name}
}

// ProfileNames lists the sample profile names.
func ProfileNames() []string {
	names := make([]string, 0, len(SampleProfiles))
	for _, p := range SampleProfiles {
		names = append(names, p.Name)
	}
	return names
}
