package matching

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/wisebid/n2b/internal/modules/costing"
	"github.com/wisebid/n2b/internal/modules/decision"
)

// AnnouncementFetcher supplies current bid announcements for a keyword.
// Satisfied by the g2b client; the indirection keeps handlers testable
// without the network.
type AnnouncementFetcher interface {
	FetchAnnouncements(keyword, bidType string) []Announcement
}

// MatchRequest is the request body for a bid match. Callers either name a
// sample profile or supply a full profile inline.
type MatchRequest struct {
	Keyword     string          `json:"keyword"`
	BidType     string          `json:"bid_type"`
	ProfileName string          `json:"profile_name"`
	Profile     *CompanyProfile `json:"company_profile"`
}

// MatchReport is one matched announcement with its combined cost and
// participation report attached.
type MatchReport struct {
	Announcement Announcement        `json:"공고"`
	MatchScore   int                 `json:"매칭점수"`
	MatchReasons []string            `json:"매칭사유"`
	BubbleRate   float64             `json:"거품률"`
	Strategy     costing.BidStrategy `json:"투찰분석"`
	Decision     decision.Result     `json:"참여판정"`
}

// MatchResponse is the full bid-match result.
type MatchResponse struct {
	Keyword     string        `json:"keyword"`
	CompanyName string        `json:"기업명"`
	Summary     Summary       `json:"요약"`
	Matches     []MatchReport `json:"매칭결과"`
}

// Handlers contains HTTP handlers for bid matching.
type Handlers struct {
	fetcher AnnouncementFetcher
	log     zerolog.Logger
}

// NewHandlers creates a new matching handlers instance.
func NewHandlers(fetcher AnnouncementFetcher, log zerolog.Logger) *Handlers {
	return &Handlers{
		fetcher: fetcher,
		log:     log.With().Str("handler", "matching").Logger(),
	}
}

// HandleBidMatch fetches announcements and matches them against a company
// profile, attaching a combined report to every match.
// POST /api/bid-match
func (h *Handlers) HandleBidMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.resolveProfile(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	keyword := req.Keyword
	if keyword == "" && len(profile.WorkTypes) > 0 {
		keyword = profile.WorkTypes[0]
	}

	announcements := h.fetcher.FetchAnnouncements(keyword, req.BidType)
	matches, summary := Match(announcements, profile)

	reports := make([]MatchReport, 0, len(matches))
	for _, m := range matches {
		reports = append(reports, buildMatchReport(m, profile))
	}

	h.log.Info().
		Str("keyword", keyword).
		Str("company", profile.Name).
		Int("fetched", summary.TotalFetched).
		Int("matched", summary.Matched).
		Msg("Bid match complete")

	h.writeJSON(w, MatchResponse{
		Keyword:     keyword,
		CompanyName: profile.Name,
		Summary:     summary,
		Matches:     reports,
	})
}

// HandleGetProfiles returns the sample company profiles.
// GET /api/profiles
func (h *Handlers) HandleGetProfiles(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, SampleProfiles)
}

// HandleGetProfileByName returns one sample profile.
// GET /api/profiles/{name}
func (h *Handlers) HandleGetProfileByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	profile, err := ProfileByName(name)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":     err.Error(),
			"available": ProfileNames(),
		})
		return
	}

	h.writeJSON(w, profile)
}

// resolveProfile picks the profile from the request: inline profile wins,
// then a named sample profile, then the first sample profile.
func (h *Handlers) resolveProfile(req MatchRequest) (CompanyProfile, error) {
	if req.Profile != nil {
		return *req.Profile, nil
	}
	if req.ProfileName != "" {
		return ProfileByName(req.ProfileName)
	}
	return SampleProfiles[0], nil
}

// buildMatchReport attaches a cost estimate and participation verdict to
// one matched announcement.
func buildMatchReport(m MatchResult, profile CompanyProfile) MatchReport {
	price := m.Announcement.BasePrice
	if price == 0 {
		price = m.Announcement.EstimatedPrice
	}

	workType := firstContained(profile.WorkTypes, m.Announcement.Name)

	estimate := costing.EstimateRoughCost(price, workType, 0, 0, 0)
	verdict := decision.Analyze(price, estimate.ActualCost.GrandTotal, 10, profile.Experience, nil)

	return MatchReport{
		Announcement: m.Announcement,
		MatchScore:   m.MatchScore,
		MatchReasons: m.MatchReasons,
		BubbleRate:   estimate.BubbleRate,
		Strategy:     estimate.Strategy,
		Decision:     verdict,
	}
}

// writeJSON writes JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
