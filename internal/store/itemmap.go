package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/osrstools/ge-seer/internal/api"
)

// ItemMapFileName is the on-disk cache of the item-ID-to-name mapping.
const ItemMapFileName = "item_map.json"

// LoadItemMap returns the item-ID-to-name mapping. The first call fetches
// it from the API and caches it under the data directory; later calls
// read the cached file. forceRefresh re-fetches even when the cache
// exists.
func LoadItemMap(ctx context.Context, client *api.Client, dataDir string, forceRefresh bool) (map[string]string, error) {
	path := filepath.Join(dataDir, ItemMapFileName)

	if _, err := os.Stat(path); forceRefresh || os.IsNotExist(err) {
		items, err := client.GetMapping(ctx)
		if err != nil {
			return nil, err
		}

		itemMap := make(map[string]string, len(items))
		for _, item := range items {
			itemMap[strconv.FormatInt(item.ID, 10)] = item.Name
		}

		data, err := json.MarshalIndent(itemMap, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("encode item map: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write item map cache: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item map cache: %w", err)
	}

	var itemMap map[string]string
	if err := json.Unmarshal(data, &itemMap); err != nil {
		return nil, fmt.Errorf("decode item map cache: %w", err)
	}
	return itemMap, nil
}
