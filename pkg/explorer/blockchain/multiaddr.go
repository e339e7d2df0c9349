package blockchain

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/pocketbtc/utxo-engine/pkg/explorer"
)

// GetMultiAddress fetches the first page of transactions touching the given
// keys, capped at txLimit entries, plus per-key summaries and the latest
// block height. Key sets beyond the per-call cap are fetched in chunks and
// merged, transactions sorted by time descending and re-truncated to the
// page size.
func (s *service) GetMultiAddress(
	ctx context.Context, keys []string, txLimit int,
) (*explorer.MultiAddress, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("at least one key is required")
	}
	if txLimit <= 0 {
		return nil, fmt.Errorf("transaction limit must be greater than zero")
	}

	merged := &explorer.MultiAddress{}
	for _, chunk := range chunkKeys(keys, maxKeysPerRequest) {
		query := activeParam(chunk)
		query.Set("n", strconv.Itoa(txLimit))

		body, err := s.get(ctx, "/multiaddr", query)
		if err != nil {
			return nil, fmt.Errorf("fetch multiaddr: %w", err)
		}

		var page explorer.MultiAddress
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode multiaddr: %w", err)
		}

		merged.Addresses = append(merged.Addresses, page.Addresses...)
		merged.Transactions = append(merged.Transactions, page.Transactions...)
		if page.Info.LatestBlock.Height > merged.Info.LatestBlock.Height {
			merged.Info = page.Info
		}
	}

	sort.SliceStable(merged.Transactions, func(i, j int) bool {
		return merged.Transactions[i].Time > merged.Transactions[j].Time
	})
	if len(merged.Transactions) > txLimit {
		merged.Transactions = merged.Transactions[:txLimit]
	}

	return merged, nil
}
