// Package pricing provides material and market construction price lookups
// against the public procurement price information service.
package pricing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/wisebid/n2b/internal/clientdata"
	"github.com/wisebid/n2b/internal/clients/openapi"
)

// MaterialPrice is one published facility-material unit price.
type MaterialPrice struct {
	Name   string `json:"name"`
	Spec   string `json:"spec"`
	Unit   string `json:"unit"`
	Price  int64  `json:"price"`
	Date   string `json:"date"`
	Region string `json:"region"`
}

// MarketPrice is one surveyed market construction unit price.
type MarketPrice struct {
	Name  string `json:"name"`
	Spec  string `json:"spec"`
	Unit  string `json:"unit"`
	Price int64  `json:"price"`
	Date  string `json:"date"`
	Type  string `json:"type"`
}

// Endpoint maps per price category. Unknown categories fall back to 토목.
var (
	materialEndpoints = map[string]string{
		"토목": "getCmmnFcltyMtrlCivilInfo",
		"건축": "getCmmnFcltyMtrlBldgInfo",
		"기계": "getCmmnFcltyMtrlMachInfo",
		"전기": "getCmmnFcltyMtrlElcInfo",
	}
	marketEndpoints = map[string]string{
		"토목": "getMrktCnsttnPrcCivilInfo",
		"건축": "getMrktCnsttnPrcBldgInfo",
		"기계": "getMrktCnsttnPrcMachInfo",
	}
)

// Client for the 조달청 price information service.
//
// The failure contract is "empty, never error": any network, status or
// parse problem degrades to an empty result list after trying the stale
// cache. Callers must treat "no data" and "fetch failed" identically.
type Client struct {
	baseURL    string
	serviceKey string
	client     *http.Client
	log        zerolog.Logger
	cacheRepo  *clientdata.Repository
}

// NewClient creates a new price information client.
// cacheRepo is optional - if nil, caching is disabled.
func NewClient(serviceKey string, timeout time.Duration, cacheRepo *clientdata.Repository, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    "http://apis.data.go.kr/1230000/PriceInfoService",
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: timeout},
		log:        log.With().Str("client", "pricing").Logger(),
		cacheRepo:  cacheRepo,
	}
}

// FetchMaterialPrices returns facility-material prices for a keyword.
func (c *Client) FetchMaterialPrices(keyword, category string) []MaterialPrice {
	endpoint, ok := materialEndpoints[category]
	if !ok {
		endpoint = materialEndpoints["토목"]
	}

	cacheKey := category + ":" + keyword

	var cached []MaterialPrice
	if c.cacheRepo != nil {
		if fresh, err := c.cacheRepo.GetIfFresh("material_prices", cacheKey, &cached); err == nil && fresh {
			c.log.Debug().Str("keyword", keyword).Int("count", len(cached)).Msg("Cache hit")
			return cached
		}
	}

	items, err := c.fetchItems(endpoint, keyword)
	if err != nil {
		// API failed - stale cached data is better than no data.
		if c.cacheRepo != nil {
			var stale []MaterialPrice
			if found, cacheErr := c.cacheRepo.Get("material_prices", cacheKey, &stale); cacheErr == nil && found {
				c.log.Warn().Err(err).Str("keyword", keyword).Msg("API failed, using stale cached prices")
				return stale
			}
		}
		c.log.Warn().Err(err).Str("keyword", keyword).Msg("Material price lookup failed")
		return []MaterialPrice{}
	}

	results := make([]MaterialPrice, 0, len(items))
	for _, item := range items {
		results = append(results, MaterialPrice{
			Name:   item.ProductName,
			Spec:   item.ProductDetail,
			Unit:   item.Unit,
			Price:  int64(item.Price),
			Date:   item.RegisteredAt,
			Region: defaultString(item.SupplyArea, "전국"),
		})
	}

	if c.cacheRepo != nil {
		if err := c.cacheRepo.Store("material_prices", cacheKey, results, clientdata.TTLMaterialPrices); err != nil {
			c.log.Warn().Err(err).Str("keyword", keyword).Msg("Failed to cache material prices")
		}
	}

	c.log.Info().Str("keyword", keyword).Int("count", len(results)).Msg("Fetched material prices")
	return results
}

// FetchMarketPrices returns market construction prices for a keyword.
func (c *Client) FetchMarketPrices(keyword, category string) []MarketPrice {
	endpoint, ok := marketEndpoints[category]
	if !ok {
		endpoint = marketEndpoints["토목"]
	}

	cacheKey := category + ":" + keyword

	var cached []MarketPrice
	if c.cacheRepo != nil {
		if fresh, err := c.cacheRepo.GetIfFresh("market_prices", cacheKey, &cached); err == nil && fresh {
			c.log.Debug().Str("keyword", keyword).Int("count", len(cached)).Msg("Cache hit")
			return cached
		}
	}

	items, err := c.fetchItems(endpoint, keyword)
	if err != nil {
		if c.cacheRepo != nil {
			var stale []MarketPrice
			if found, cacheErr := c.cacheRepo.Get("market_prices", cacheKey, &stale); cacheErr == nil && found {
				c.log.Warn().Err(err).Str("keyword", keyword).Msg("API failed, using stale cached prices")
				return stale
			}
		}
		c.log.Warn().Err(err).Str("keyword", keyword).Msg("Market price lookup failed")
		return []MarketPrice{}
	}

	results := make([]MarketPrice, 0, len(items))
	for _, item := range items {
		results = append(results, MarketPrice{
			Name:  item.WorkName,
			Spec:  item.WorkDetail,
			Unit:  item.Unit,
			Price: int64(item.MarketPrice),
			Date:  item.AppliedAt,
			Type:  "시공가격",
		})
	}

	if c.cacheRepo != nil {
		if err := c.cacheRepo.Store("market_prices", cacheKey, results, clientdata.TTLMarketPrices); err != nil {
			c.log.Warn().Err(err).Str("keyword", keyword).Msg("Failed to cache market prices")
		}
	}

	c.log.Info().Str("keyword", keyword).Int("count", len(results)).Msg("Fetched market prices")
	return results
}

// priceItem covers both material and market price records; the service
// uses different field names per endpoint family.
type priceItem struct {
	ProductName   string            `json:"prdctClsfcNoNm"`
	ProductDetail string            `json:"dtilPrdctClsfcNoNm"`
	WorkName      string            `json:"wrkDivNm"`
	WorkDetail    string            `json:"wrkDtlDivNm"`
	Unit          string            `json:"unt"`
	Price         openapi.FlexInt64 `json:"prc"`
	MarketPrice   openapi.FlexInt64 `json:"mrktPrc"`
	RegisteredAt  string            `json:"rgstDt"`
	AppliedAt     string            `json:"applyDt"`
	SupplyArea    string            `json:"splyAreaNm"`
}

func (c *Client) fetchItems(endpoint, keyword string) ([]priceItem, error) {
	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("numOfRows", "20")
	params.Set("pageNo", "1")
	params.Set("type", "json")
	params.Set("prdctClsfcNoNm", keyword)

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	resp, err := c.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Response struct {
			Body struct {
				Items json.RawMessage `json:"items"`
			} `json:"body"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	items, err := openapi.DecodeItems[priceItem](envelope.Response.Body.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
