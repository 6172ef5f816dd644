// Package prices aggregates published material unit prices and surveyed
// market construction prices into one keyword search.
package prices

import (
	"github.com/rs/zerolog"

	"github.com/wisebid/n2b/internal/clients/pricing"
)

// SearchResult is the combined price lookup for one keyword.
type SearchResult struct {
	Keyword        string                  `json:"keyword"`
	MaterialPrices []pricing.MaterialPrice `json:"자재단가"`
	MarketPrices   []pricing.MarketPrice   `json:"시공단가"`
	Total          int                     `json:"total"`
}

// Service runs price searches against the pricing client.
type Service struct {
	client *pricing.Client
	log    zerolog.Logger
}

// NewService creates a new price search service.
func NewService(client *pricing.Client, log zerolog.Logger) *Service {
	return &Service{
		client: client,
		log:    log.With().Str("component", "prices_service").Logger(),
	}
}

// Search looks up material and market prices for a keyword in a category.
// Either source failing contributes an empty list; the search itself never
// fails.
func (s *Service) Search(keyword, category string) SearchResult {
	materials := s.client.FetchMaterialPrices(keyword, category)
	markets := s.client.FetchMarketPrices(keyword, category)

	s.log.Debug().
		Str("keyword", keyword).
		Str("category", category).
		Int("materials", len(materials)).
		Int("markets", len(markets)).
		Msg("Price search complete")

	return SearchResult{
		Keyword:        keyword,
		MaterialPrices: materials,
		MarketPrices:   markets,
		Total:          len(materials) + len(markets),
	}
}
