package domain

import (
	"math"

	"github.com/btcsuite/btcd/btcutil"
)

// AddressBalance is the balance summary the indexer reports for a single
// address or xpub.
type AddressBalance struct {
	FinalBalance  btcutil.Amount
	TxCount       uint64
	TotalReceived btcutil.Amount
}

// WalletBalance aggregates per-key balances into a wallet total. It is built
// once from a decoded remote response and read-only afterwards.
type WalletBalance struct {
	balances map[string]AddressBalance
}

func NewWalletBalance(balances map[string]AddressBalance) WalletBalance {
	if balances == nil {
		balances = map[string]AddressBalance{}
	}
	return WalletBalance{balances: balances}
}

// Balance returns the individual balance recorded for the given key, with
// ok=false for keys with no entry, e.g. a freshly created never-funded
// account.
func (b WalletBalance) Balance(key string) (AddressBalance, bool) {
	entry, ok := b.balances[key]
	return entry, ok
}

// Total is the exact integer sum of the final balances over all keys.
// Summation is done in int64 minor units, no floating point is involved. An
// overflow fails closed to zero rather than wrapping.
func (b WalletBalance) Total() btcutil.Amount {
	var total int64
	for _, entry := range b.balances {
		v := int64(entry.FinalBalance)
		if v > math.MaxInt64-total {
			return 0
		}
		total += v
	}
	return btcutil.Amount(total)
}
