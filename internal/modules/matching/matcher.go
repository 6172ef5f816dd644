// Package matching scores bid announcements against a company profile.
package matching

import (
	"fmt"
	"sort"
	"strings"
)

// Match score weights and the inclusion cutoff.
const (
	priceScore    = 30
	workTypeScore = 25
	regionScore   = 20
	minMatchScore = 25
)

// Match filters and scores announcements against a company profile.
//
// An announcement with a non-zero price outside the profile's price range
// is excluded outright, regardless of other criteria. An announcement
// without any price skips the price gate entirely. Kept announcements are
// sorted by score descending; ties preserve fetch order.
func Match(announcements []Announcement, profile CompanyProfile) ([]MatchResult, Summary) {
	results := make([]MatchResult, 0, len(announcements))

	for _, ann := range announcements {
		price := ann.BasePrice
		if price == 0 {
			price = ann.EstimatedPrice
		}

		score := 0
		reasons := []string{}

		if price != 0 {
			if price < profile.MinPrice || price > profile.MaxPrice {
				// Hard filter: out-of-range price disqualifies no matter
				// how strong the other matches are.
				continue
			}
			score += priceScore
			reasons = append(reasons, "가격대 적합")
		}

		if kw := firstContained(profile.WorkTypes, ann.Name); kw != "" {
			score += workTypeScore
			reasons = append(reasons, fmt.Sprintf("공종 일치 (%s)", kw))
		}

		regionField := ann.Region
		if regionField == "" {
			regionField = ann.Agency
		}
		if kw := firstContained(profile.Regions, regionField); kw != "" {
			score += regionScore
			reasons = append(reasons, fmt.Sprintf("지역 일치 (%s)", kw))
		}

		if score >= minMatchScore {
			results = append(results, MatchResult{
				Announcement: ann,
				MatchScore:   score,
				MatchReasons: reasons,
			})
		}
	}

	// Stable sort keeps the original fetch order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results, Summary{TotalFetched: len(announcements), Matched: len(results)}
}

// firstContained returns the first keyword contained in the field, or ""
// when none match. Matching is case-sensitive substring containment and
// short-circuits on the first hit.
func firstContained(keywords []string, field string) string {
	for _, kw := range keywords {
		if strings.Contains(field, kw) {
			return kw
		}
	}
	return ""
}
