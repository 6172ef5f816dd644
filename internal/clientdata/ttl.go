package clientdata

import "time"

// Cache TTLs per data category.
//
// Government price records are refreshed monthly at the source, so a long
// TTL is safe. Bid announcements change daily; award results are historical
// and effectively immutable but we still expire them to pick up corrections.
const (
	TTLMaterialPrices = 7 * 24 * time.Hour
	TTLMarketPrices   = 7 * 24 * time.Hour
	TTLAnnouncements  = 6 * time.Hour
	TTLAwardResults   = 3 * 24 * time.Hour
)
