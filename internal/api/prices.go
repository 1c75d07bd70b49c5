package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/osrstools/ge-seer/internal/timegrid"
)

// GetPrices fetches the averaged prices for one (timestep, instant)
// bucket. The instant must already be resolved onto the time grid; this
// method does not validate alignment.
func (c *Client) GetPrices(ctx context.Context, step timegrid.Timestep, instant int64) (*PricesResponse, error) {
	query := url.Values{}
	query.Set("timestamp", strconv.FormatInt(instant, 10))

	var resp PricesResponse
	if err := c.get(ctx, "/"+step.String(), query, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched prices",
		"timestep", step,
		"time", instant,
		"items", len(resp.Data),
	)

	return &resp, nil
}

// GetLatest fetches the instantaneous high/low prices for all items.
func (c *Client) GetLatest(ctx context.Context) (*LatestResponse, error) {
	var resp LatestResponse
	if err := c.get(ctx, "/latest", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
