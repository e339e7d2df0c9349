package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
	"github.com/pocketbtc/utxo-engine/pkg/explorer"
)

// BalanceService aggregates per-key balances reported by the explorer into
// wallet and account totals.
type BalanceService struct {
	chain    domain.Chain
	explorer explorer.Service
}

func NewBalanceService(
	chain domain.Chain, explorerSvc explorer.Service,
) (*BalanceService, error) {
	if explorerSvc == nil {
		return nil, fmt.Errorf("missing explorer service")
	}
	return &BalanceService{chain: chain, explorer: explorerSvc}, nil
}

// WalletBalance fetches and aggregates the balances of the given keys.
// Entries that fail to decode, or that report a negative balance, are skipped
// rather than failing the whole aggregation.
func (s *BalanceService) WalletBalance(
	ctx context.Context, keys []string,
) (domain.WalletBalance, error) {
	if len(keys) == 0 {
		return domain.NewWalletBalance(nil), nil
	}

	raw, err := s.explorer.GetBalances(ctx, keys)
	if err != nil {
		return domain.WalletBalance{}, err
	}

	balances := make(map[string]domain.AddressBalance, len(raw))
	for key, entry := range raw {
		var decoded explorer.BalanceEntry
		if err := json.Unmarshal(entry, &decoded); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"chain": s.chain.Name,
				"key":   key,
			}).Debug("skipping undecodable balance entry")
			continue
		}
		if decoded.FinalBalance < 0 {
			log.WithFields(log.Fields{
				"chain": s.chain.Name,
				"key":   key,
			}).Debug("skipping negative balance entry")
			continue
		}

		balances[key] = domain.AddressBalance{
			FinalBalance:  btcutil.Amount(decoded.FinalBalance),
			TxCount:       decoded.TxCount,
			TotalReceived: btcutil.Amount(decoded.TotalReceived),
		}
	}

	return domain.NewWalletBalance(balances), nil
}

// AccountBalance returns the summed balance over an account's keys, with
// ok=false when the explorer has no entry for any of them (a freshly created,
// never-funded account).
func (s *BalanceService) AccountBalance(
	ctx context.Context, account domain.Account,
) (btcutil.Amount, bool, error) {
	wallet, err := s.WalletBalance(ctx, account.Keys())
	if err != nil {
		return 0, false, err
	}

	var (
		total btcutil.Amount
		found bool
	)
	for _, key := range account.Keys() {
		if entry, ok := wallet.Balance(key); ok {
			total += entry.FinalBalance
			found = true
		}
	}
	return total, found, nil
}
