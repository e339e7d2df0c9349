package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
	"github.com/pocketbtc/utxo-engine/pkg/cache"
	"github.com/pocketbtc/utxo-engine/pkg/explorer"
)

// historyPageSize is the number of transactions requested per multi-address
// lookup. Single-tx lookups scan this first page only; a transaction older
// than the page is reported as not found.
const historyPageSize = 50

// HistoryService fetches and converts the wallet's transaction history,
// caching the raw multi-address page for the session's cache lifetime.
type HistoryService struct {
	chain    domain.Chain
	explorer explorer.Service
	cache    *cache.Cache[*explorer.MultiAddress]
}

func NewHistoryService(
	chain domain.Chain, explorerSvc explorer.Service, cacheExpiry time.Duration,
) (*HistoryService, error) {
	if explorerSvc == nil {
		return nil, fmt.Errorf("missing explorer service")
	}
	if cacheExpiry <= 0 {
		cacheExpiry = defaultUnspentCacheExpiry
	}
	return &HistoryService{
		chain:    chain,
		explorer: explorerSvc,
		cache: cache.New[*explorer.MultiAddress](
			fmt.Sprintf("%s-multiaddress", strings.ToLower(chain.Ticker)),
			cacheExpiry,
		),
	}, nil
}

// Transactions returns the first page of history for the given keys, newest
// first.
func (s *HistoryService) Transactions(
	ctx context.Context, keys []string,
) ([]domain.HistoricalTransaction, error) {
	page, err := s.page(ctx, keys)
	if err != nil {
		return nil, err
	}

	own := ownKeySet(keys)
	tip := page.Info.LatestBlock.Height
	txs := make([]domain.HistoricalTransaction, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		txs = append(txs, s.convertTransaction(tx, own, tip))
	}
	return txs, nil
}

// Transaction looks up a single transaction by hash within the first history
// page. It returns domain.ErrTransactionNotFound when the hash is unknown or
// has already rolled off the page.
func (s *HistoryService) Transaction(
	ctx context.Context, keys []string, id string,
) (*domain.HistoricalTransaction, error) {
	page, err := s.page(ctx, keys)
	if err != nil {
		return nil, err
	}

	own := ownKeySet(keys)
	tip := page.Info.LatestBlock.Height
	for _, tx := range page.Transactions {
		if tx.Hash == id {
			converted := s.convertTransaction(tx, own, tip)
			return &converted, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// FlushCache drops the cached history pages.
func (s *HistoryService) FlushCache() {
	s.cache.Flush()
}

func (s *HistoryService) page(
	ctx context.Context, keys []string,
) (*explorer.MultiAddress, error) {
	if len(keys) == 0 {
		return &explorer.MultiAddress{}, nil
	}

	cacheKey := lookupCacheKey(keys)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached, nil
	}

	page, err := s.explorer.GetMultiAddress(ctx, keys, historyPageSize)
	if err != nil {
		return nil, err
	}

	if ctx.Err() == nil {
		s.cache.Set(cacheKey, page)
	}

	log.WithFields(log.Fields{
		"chain": s.chain.Name,
		"count": len(page.Transactions),
	}).Debug("fetched transaction history page")

	return page, nil
}

func (s *HistoryService) convertTransaction(
	tx explorer.Transaction, own map[string]struct{}, tip uint64,
) domain.HistoricalTransaction {
	direction := domain.TxDirectionCredit
	amount := tx.Result
	if amount < 0 {
		direction = domain.TxDirectionDebit
		amount = -amount
	}

	var confirmations uint32
	if tx.BlockHeight > 0 && tx.BlockHeight <= tip {
		confirmations = uint32(tip - tx.BlockHeight + 1)
	}

	from := counterpartyLeg(inputLegs(tx.Inputs), own, direction == domain.TxDirectionCredit)
	to := counterpartyLeg(tx.Outputs, own, direction == domain.TxDirectionDebit)

	return domain.HistoricalTransaction{
		ID:                    tx.Hash,
		Direction:             direction,
		Amount:                btcutil.Amount(amount),
		Fee:                   btcutil.Amount(tx.Fee),
		CreatedAt:             time.Unix(tx.Time, 0).UTC(),
		Confirmations:         confirmations,
		RequiredConfirmations: s.chain.RequiredConfirmations,
		From:                  from,
		To:                    to,
	}
}

func inputLegs(inputs []explorer.TxInput) []explorer.TxOutput {
	legs := make([]explorer.TxOutput, 0, len(inputs))
	for _, in := range inputs {
		legs = append(legs, in.PrevOut)
	}
	return legs
}

// counterpartyLeg picks the address to show as the From/To label: the first
// external leg when the counterparty is external, otherwise the first own
// leg (self transfers and change fall back to the wallet's own address).
func counterpartyLeg(
	legs []explorer.TxOutput, own map[string]struct{}, preferExternal bool,
) string {
	var firstOwn, firstExternal string
	for _, leg := range legs {
		if legIsOwn(leg, own) {
			if firstOwn == "" {
				firstOwn = legLabel(leg)
			}
		} else if firstExternal == "" && leg.Address != "" {
			firstExternal = leg.Address
		}
	}
	if preferExternal && firstExternal != "" {
		return firstExternal
	}
	if firstOwn != "" {
		return firstOwn
	}
	return firstExternal
}

func legIsOwn(leg explorer.TxOutput, own map[string]struct{}) bool {
	if leg.XPub != nil {
		if _, ok := own[leg.XPub.M]; ok {
			return true
		}
	}
	if leg.Address != "" {
		if _, ok := own[leg.Address]; ok {
			return true
		}
	}
	return false
}

func legLabel(leg explorer.TxOutput) string {
	if leg.Address != "" {
		return leg.Address
	}
	if leg.XPub != nil {
		return leg.XPub.M
	}
	return ""
}

func ownKeySet(keys []string) map[string]struct{} {
	own := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		own[key] = struct{}{}
	}
	return own
}
