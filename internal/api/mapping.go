package api

import "context"

// GetMapping fetches the item metadata list. Unlike the price endpoints
// the response is a bare JSON array, not wrapped in a data field.
func (c *Client) GetMapping(ctx context.Context) ([]MappingItem, error) {
	var items []MappingItem
	if err := c.get(ctx, "/mapping", nil, &items); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched item mapping", "items", len(items))

	return items, nil
}
