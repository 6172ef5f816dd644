// Package g2b provides bid announcement and award result lookups against
// the 나라장터 public procurement services.
package g2b

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/wisebid/n2b/internal/clientdata"
	"github.com/wisebid/n2b/internal/clients/openapi"
	"github.com/wisebid/n2b/internal/modules/matching"
)

// AwardResult is one historical winning-bid record.
type AwardResult struct {
	BidNo          string `json:"bid_no"`
	Name           string `json:"name"`
	Winner         string `json:"winner"`
	WinningBid     int64  `json:"winning_bid"`
	EstimatedPrice int64  `json:"estimated_price"`
	OpenedAt       string `json:"opened_at"`
}

// Announcement list endpoints per bid type. Unknown types fall back to
// construction.
var announcementEndpoints = map[string]string{
	"공사": "getBidPblancListInfoCnstwkPPSSrch",
	"용역": "getBidPblancListInfoServcPPSSrch",
	"물품": "getBidPblancListInfoThngPPSSrch",
}

// Client for the 나라장터 bid information services.
//
// Same failure contract as the pricing client: any failure degrades to an
// empty result list after trying the stale cache.
type Client struct {
	announceURL string
	awardURL    string
	serviceKey  string
	client      *http.Client
	log         zerolog.Logger
	cacheRepo   *clientdata.Repository
}

// NewClient creates a new bid information client.
// cacheRepo is optional - if nil, caching is disabled.
func NewClient(serviceKey string, timeout time.Duration, cacheRepo *clientdata.Repository, log zerolog.Logger) *Client {
	return &Client{
		announceURL: "http://apis.data.go.kr/1230000/BidPublicInfoService04",
		awardURL:    "http://apis.data.go.kr/1230000/ScsbidInfoService01",
		serviceKey:  serviceKey,
		client:      &http.Client{Timeout: timeout},
		log:         log.With().Str("client", "g2b").Logger(),
		cacheRepo:   cacheRepo,
	}
}

// FetchAnnouncements returns current bid announcements matching a keyword.
func (c *Client) FetchAnnouncements(keyword, bidType string) []matching.Announcement {
	endpoint, ok := announcementEndpoints[bidType]
	if !ok {
		bidType = "공사"
		endpoint = announcementEndpoints[bidType]
	}

	cacheKey := bidType + ":" + keyword

	var cached []matching.Announcement
	if c.cacheRepo != nil {
		if fresh, err := c.cacheRepo.GetIfFresh("announcements", cacheKey, &cached); err == nil && fresh {
			c.log.Debug().Str("keyword", keyword).Int("count", len(cached)).Msg("Cache hit")
			return cached
		}
	}

	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("numOfRows", "20")
	params.Set("pageNo", "1")
	params.Set("type", "json")
	params.Set("bidNtceNm", keyword)

	items, err := fetchItems[announcementItem](c, c.announceURL, endpoint, params)
	if err != nil {
		if c.cacheRepo != nil {
			var stale []matching.Announcement
			if found, cacheErr := c.cacheRepo.Get("announcements", cacheKey, &stale); cacheErr == nil && found {
				c.log.Warn().Err(err).Str("keyword", keyword).Msg("API failed, using stale cached announcements")
				return stale
			}
		}
		c.log.Warn().Err(err).Str("keyword", keyword).Msg("Announcement lookup failed")
		return []matching.Announcement{}
	}

	results := make([]matching.Announcement, 0, len(items))
	for _, item := range items {
		results = append(results, matching.Announcement{
			BidNo:          item.BidNo,
			Name:           item.Name,
			Agency:         item.Agency,
			EstimatedPrice: int64(item.EstimatedPrice),
			BasePrice:      int64(item.BasePrice),
			Method:         item.Method,
			Deadline:       item.Deadline,
			Region:         item.Region,
			URL:            item.DetailURL,
			BidType:        bidType,
		})
	}

	if c.cacheRepo != nil {
		if err := c.cacheRepo.Store("announcements", cacheKey, results, clientdata.TTLAnnouncements); err != nil {
			c.log.Warn().Err(err).Str("keyword", keyword).Msg("Failed to cache announcements")
		}
	}

	c.log.Info().Str("keyword", keyword).Int("count", len(results)).Msg("Fetched announcements")
	return results
}

// FetchAwardResults returns historical winning-bid records for a keyword.
func (c *Client) FetchAwardResults(keyword string) []AwardResult {
	cacheKey := keyword

	var cached []AwardResult
	if c.cacheRepo != nil {
		if fresh, err := c.cacheRepo.GetIfFresh("award_results", cacheKey, &cached); err == nil && fresh {
			c.log.Debug().Str("keyword", keyword).Int("count", len(cached)).Msg("Cache hit")
			return cached
		}
	}

	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("numOfRows", "50")
	params.Set("pageNo", "1")
	params.Set("type", "json")
	params.Set("bidNtceNm", keyword)

	items, err := fetchItems[awardItem](c, c.awardURL, "getScsbidListSttusCnstwk", params)
	if err != nil {
		if c.cacheRepo != nil {
			var stale []AwardResult
			if found, cacheErr := c.cacheRepo.Get("award_results", cacheKey, &stale); cacheErr == nil && found {
				c.log.Warn().Err(err).Str("keyword", keyword).Msg("API failed, using stale cached award results")
				return stale
			}
		}
		c.log.Warn().Err(err).Str("keyword", keyword).Msg("Award result lookup failed")
		return []AwardResult{}
	}

	results := make([]AwardResult, 0, len(items))
	for _, item := range items {
		results = append(results, AwardResult{
			BidNo:          item.BidNo,
			Name:           item.Name,
			Winner:         item.Winner,
			WinningBid:     int64(item.WinningBid),
			EstimatedPrice: int64(item.EstimatedPrice),
			OpenedAt:       item.OpenedAt,
		})
	}

	if c.cacheRepo != nil {
		if err := c.cacheRepo.Store("award_results", cacheKey, results, clientdata.TTLAwardResults); err != nil {
			c.log.Warn().Err(err).Str("keyword", keyword).Msg("Failed to cache award results")
		}
	}

	c.log.Info().Str("keyword", keyword).Int("count", len(results)).Msg("Fetched award results")
	return results
}

type announcementItem struct {
	BidNo          string            `json:"bidNtceNo"`
	Name           string            `json:"bidNtceNm"`
	Agency         string            `json:"ntceInsttNm"`
	EstimatedPrice openapi.FlexInt64 `json:"presmptPrce"`
	BasePrice      openapi.FlexInt64 `json:"bssamt"`
	Method         string            `json:"bidMethdNm"`
	Deadline       string            `json:"bidClseDt"`
	Region         string            `json:"prtcptLmtRgnNm"`
	DetailURL      string            `json:"bidNtceDtlUrl"`
}

type awardItem struct {
	BidNo          string            `json:"bidNtceNo"`
	Name           string            `json:"bidNtceNm"`
	Winner         string            `json:"bidwinnrNm"`
	WinningBid     openapi.FlexInt64 `json:"sucsfbidAmt"`
	EstimatedPrice openapi.FlexInt64 `json:"presmptPrce"`
	OpenedAt       string            `json:"opengDt"`
}

func fetchItems[T any](c *Client, baseURL, endpoint string, params url.Values) ([]T, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", baseURL, endpoint, params.Encode())

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

	items, err := openapi.DecodeItems[T](envelope.Response.Body.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}
