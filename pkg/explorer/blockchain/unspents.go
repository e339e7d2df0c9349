package blockchain

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pocketbtc/utxo-engine/pkg/explorer"
)

type unspentsResponse struct {
	UnspentOutputs []explorer.UnspentOutput `json:"unspent_outputs"`
}

// GetUnspentOutputs fetches the unspent outputs of the union of the given
// keys. The response is decoded all-or-nothing: a single malformed entry
// rejects the whole fetch, a partially decoded unspent set is unsafe to
// spend from.
func (s *service) GetUnspentOutputs(
	ctx context.Context, keys []string,
) ([]explorer.UnspentOutput, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("at least one key is required")
	}

	chunks := chunkKeys(keys, maxKeysPerRequest)
	perChunk := make([][]explorer.UnspentOutput, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			body, err := s.get(ctx, "/unspent", activeParam(chunk))
			if err != nil {
				return fmt.Errorf("fetch unspents: %w", err)
			}

			var res unspentsResponse
			if err := json.Unmarshal(body, &res); err != nil {
				return fmt.Errorf("decode unspents: %w", err)
			}

			perChunk[i] = res.UnspentOutputs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Flatten in chunk order so identical key sets always yield the same
	// ordering.
	unspents := make([]explorer.UnspentOutput, 0)
	for _, outs := range perChunk {
		unspents = append(unspents, outs...)
	}
	return unspents, nil
}
