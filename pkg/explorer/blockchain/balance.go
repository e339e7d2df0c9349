package blockchain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// GetBalances fetches the raw balance entry for every requested key. Entries
// are returned undecoded so that a malformed entry for one key can be skipped
// by the caller without failing the rest.
func (s *service) GetBalances(
	ctx context.Context, keys []string,
) (map[string]json.RawMessage, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("at least one key is required")
	}

	balances := make(map[string]json.RawMessage)
	var mtx sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, chunk := range chunkKeys(keys, maxKeysPerRequest) {
		chunk := chunk
		g.Go(func() error {
			body, err := s.get(ctx, "/balance", activeParam(chunk))
			if err != nil {
				return fmt.Errorf("fetch balances: %w", err)
			}

			var entries map[string]json.RawMessage
			if err := json.Unmarshal(body, &entries); err != nil {
				return fmt.Errorf("decode balances: %w", err)
			}

			mtx.Lock()
			for key, entry := range entries {
				balances[key] = entry
			}
			mtx.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return balances, nil
}
