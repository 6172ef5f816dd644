package awards

import (
	"github.com/rs/zerolog"

	"github.com/wisebid/n2b/internal/clients/g2b"
)

// Service fetches historical award results and reports winning-rate
// statistics for a keyword.
type Service struct {
	client *g2b.Client
	log    zerolog.Logger
}

// NewService creates a new awards service.
func NewService(client *g2b.Client, log zerolog.Logger) *Service {
	return &Service{
		client: client,
		log:    log.With().Str("component", "awards_service").Logger(),
	}
}

// Result pairs the statistics report with the records that produced it.
type Result struct {
	Keyword string            `json:"keyword"`
	Report  Report            `json:"통계"`
	Records []g2b.AwardResult `json:"낙찰사례"`
}

// Analyze fetches award results for a keyword and computes the report.
// The client's failure contract means a failed fetch looks like "no
// results" here; the report is zero-valued in that case.
func (s *Service) Analyze(keyword string) Result {
	records := s.client.FetchAwardResults(keyword)

	rates := make([]float64, 0, len(records))
	for _, rec := range records {
		if rate, ok := WinningRate(rec.WinningBid, rec.EstimatedPrice); ok {
			rates = append(rates, rate)
		}
	}

	s.log.Debug().
		Str("keyword", keyword).
		Int("records", len(records)).
		Int("usable", len(rates)).
		Msg("Computed award statistics")

	return Result{
		Keyword: keyword,
		Report:  Analyze(rates),
		Records: records,
	}
}
