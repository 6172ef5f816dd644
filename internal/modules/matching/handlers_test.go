package matching

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	announcements []Announcement
	gotKeyword    string
	gotBidType    string
}

func (s *stubFetcher) FetchAnnouncements(keyword, bidType string) []Announcement {
	s.gotKeyword = keyword
	s.gotBidType = bidType
	return s.announcements
}

func newTestRouter(fetcher AnnouncementFetcher) *chi.Mux {
	h := NewHandlers(fetcher, zerolog.Nop())
	r := chi.NewRouter()
	r.Post("/bid-match", h.HandleBidMatch)
	r.Get("/profiles", h.HandleGetProfiles)
	r.Get("/profiles/{name}", h.HandleGetProfileByName)
	return r
}

func TestHandleBidMatch(t *testing.T) {
	fetcher := &stubFetcher{announcements: []Announcement{
		{BidNo: "2025-001", Name: "국도 도로 보수공사", Region: "서울", BasePrice: 500_000_000},
		{BidNo: "2025-002", Name: "하천 정비공사", Region: "제주", BasePrice: 5_000_000_000},
	}}
	router := newTestRouter(fetcher)

	body := `{"keyword": "도로", "profile_name": "대한로드텍"}`
	req := httptest.NewRequest(http.MethodPost, "/bid-match", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "도로", fetcher.gotKeyword)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "대한로드텍", resp.CompanyName)
	assert.Equal(t, 2, resp.Summary.TotalFetched)
	assert.Equal(t, 1, resp.Summary.Matched)
	require.Len(t, resp.Matches, 1)

	match := resp.Matches[0]
	assert.Equal(t, "2025-001", match.Announcement.BidNo)
	assert.Equal(t, 75, match.MatchScore)
	// Each match carries the combined cost and participation report,
	// scored against the standard 10% profit requirement.
	assert.NotZero(t, match.Strategy.RecommendedRate)
	assert.NotEmpty(t, match.Decision.Decision)
	assert.Equal(t, 10.0, match.Decision.Metrics.MinProfitRate)
}

func TestHandleBidMatch_DefaultsKeywordFromProfile(t *testing.T) {
	fetcher := &stubFetcher{}
	router := newTestRouter(fetcher)

	req := httptest.NewRequest(http.MethodPost, "/bid-match", strings.NewReader(`{"profile_name": "대한로드텍"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "도로", fetcher.gotKeyword)
}

func TestHandleBidMatch_InlineProfile(t *testing.T) {
	fetcher := &stubFetcher{announcements: []Announcement{
		{Name: "태양광 설치공사", BasePrice: 200_000_000, Region: "광주"},
	}}
	router := newTestRouter(fetcher)

	body := `{
		"keyword": "태양광",
		"company_profile": {
			"name": "미래에너지",
			"work_types": ["태양광"],
			"regions": ["광주"],
			"min_price": 50000000,
			"max_price": 1000000000
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/bid-match", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "미래에너지", resp.CompanyName)
	assert.Equal(t, 1, resp.Summary.Matched)
}

func TestHandleBidMatch_UnknownProfile(t *testing.T) {
	router := newTestRouter(&stubFetcher{})

	req := httptest.NewRequest(http.MethodPost, "/bid-match", strings.NewReader(`{"profile_name": "없는회사"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetProfiles(t *testing.T) {
	router := newTestRouter(&stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profiles []CompanyProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
	assert.Len(t, profiles, len(SampleProfiles))
}

func TestHandleGetProfileByName_NotFound(t *testing.T) {
	router := newTestRouter(&stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/profiles/없는회사", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error     string   `json:"error"`
		Available []string `json:"available"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ProfileNames(), body.Available)
}
