package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
	"github.com/pocketbtc/utxo-engine/pkg/cache"
	"github.com/pocketbtc/utxo-engine/pkg/explorer"
)

const defaultUnspentCacheExpiry = time.Minute

// UnspentService fetches unspent outputs from the explorer and keeps a short
// lived cache so repeated lookups within a session do not hammer the remote.
type UnspentService struct {
	chain    domain.Chain
	explorer explorer.Service
	cache    *cache.Cache[[]domain.UnspentOutput]
}

func NewUnspentService(
	chain domain.Chain, explorerSvc explorer.Service, cacheExpiry time.Duration,
) (*UnspentService, error) {
	if explorerSvc == nil {
		return nil, fmt.Errorf("missing explorer service")
	}
	if cacheExpiry <= 0 {
		cacheExpiry = defaultUnspentCacheExpiry
	}
	return &UnspentService{
		chain:    chain,
		explorer: explorerSvc,
		cache: cache.New[[]domain.UnspentOutput](
			fmt.Sprintf("%s-unspent-outputs", strings.ToLower(chain.Ticker)),
			cacheExpiry,
		),
	}, nil
}

// UnspentOutputs returns the unspent outputs of the given keys. Unlike
// balance aggregation, a single undecodable output fails the whole call: a
// spend plan built on a partial coin set would silently overpay fees.
func (s *UnspentService) UnspentOutputs(
	ctx context.Context, keys []string,
) ([]domain.UnspentOutput, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cacheKey := lookupCacheKey(keys)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached, nil
	}

	raw, err := s.explorer.GetUnspentOutputs(ctx, keys)
	if err != nil {
		return nil, err
	}

	utxos := make([]domain.UnspentOutput, 0, len(raw))
	for _, entry := range raw {
		utxo, err := domain.NewUnspentOutput(
			entry.TxHash,
			entry.Index,
			entry.Value,
			entry.Script,
			entry.Confirmations,
			xpubFromEntry(entry),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDecode, err)
		}
		utxos = append(utxos, utxo)
	}

	// A lookup raced with cancellation must not poison the cache.
	if ctx.Err() == nil {
		s.cache.Set(cacheKey, utxos)
	}

	log.WithFields(log.Fields{
		"chain": s.chain.Name,
		"count": len(utxos),
	}).Debug("fetched unspent outputs")

	return utxos, nil
}

// FlushCache drops all cached unspent sets, forcing the next lookup to hit
// the explorer.
func (s *UnspentService) FlushCache() {
	s.cache.Flush()
}

func xpubFromEntry(entry explorer.UnspentOutput) string {
	if entry.XPub == nil {
		return ""
	}
	return entry.XPub.M
}

func lookupCacheKey(keys []string) string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}
