package domain_test

import (
	"math"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
)

func TestWalletBalanceTotal(t *testing.T) {
	t.Parallel()

	balance := domain.NewWalletBalance(map[string]domain.AddressBalance{
		"xpub-a": {FinalBalance: 15000, TxCount: 3, TotalReceived: 20000},
		"xpub-b": {FinalBalance: 5000, TxCount: 1, TotalReceived: 5000},
		"xpub-c": {},
	})

	require.Equal(t, btcutil.Amount(20000), balance.Total())
}

func TestWalletBalanceSubscript(t *testing.T) {
	t.Parallel()

	balance := domain.NewWalletBalance(map[string]domain.AddressBalance{
		"xpub-a": {FinalBalance: 15000},
	})

	entry, ok := balance.Balance("xpub-a")
	require.True(t, ok)
	require.Equal(t, btcutil.Amount(15000), entry.FinalBalance)

	// A freshly created, never funded account has no entry at all.
	_, ok = balance.Balance("xpub-unfunded")
	require.False(t, ok)
}

func TestWalletBalanceOverflowFailsClosed(t *testing.T) {
	t.Parallel()

	balance := domain.NewWalletBalance(map[string]domain.AddressBalance{
		"xpub-a": {FinalBalance: btcutil.Amount(math.MaxInt64)},
		"xpub-b": {FinalBalance: 1},
	})

	require.Zero(t, balance.Total())
}

func TestWalletBalanceEmpty(t *testing.T) {
	t.Parallel()

	require.Zero(t, domain.NewWalletBalance(nil).Total())
}
