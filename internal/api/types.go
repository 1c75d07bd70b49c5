package api

// ItemPrice holds the four averaged fields for one item in one bucket.
// A nil field means the item saw no trades on that side of the bucket;
// the distinction from zero is load-bearing and must survive reshaping.
type ItemPrice struct {
	AvgHighPrice    *int64 `json:"avgHighPrice"`
	HighPriceVolume *int64 `json:"highPriceVolume"`
	AvgLowPrice     *int64 `json:"avgLowPrice"`
	LowPriceVolume  *int64 `json:"lowPriceVolume"`
}

// PricesResponse from GET /{timestep}?timestamp={epoch}
type PricesResponse struct {
	Data map[string]ItemPrice `json:"data"`
}

// LatestPrice holds an item's most recent trades from GET /latest.
type LatestPrice struct {
	High     *int64 `json:"high"`
	HighTime *int64 `json:"highTime"`
	Low      *int64 `json:"low"`
	LowTime  *int64 `json:"lowTime"`
}

// LatestResponse from GET /latest
type LatestResponse struct {
	Data map[string]LatestPrice `json:"data"`
}

// MappingItem is one entry of the GET /mapping array.
type MappingItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Examine  string `json:"examine"`
	Members  bool   `json:"members"`
	LowAlch  int64  `json:"lowalch"`
	HighAlch int64  `json:"highalch"`
	Limit    int64  `json:"limit"`
	Value    int64  `json:"value"`
	Icon     string `json:"icon"`
}
