package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
)

func TestWalletBalanceSkipsBadEntries(t *testing.T) {
	explorerSvc := &mockExplorer{}
	explorerSvc.On("GetBalances", mock.Anything, mock.Anything).Return(
		map[string]json.RawMessage{
			"xpub1": json.RawMessage(`{"final_balance":150000,"n_tx":3,"total_received":200000}`),
			"xpub2": json.RawMessage(`"not an object"`),
			"xpub3": json.RawMessage(`{"final_balance":-1,"n_tx":0,"total_received":0}`),
		}, nil,
	)

	svc, err := NewBalanceService(domain.Bitcoin, explorerSvc)
	require.NoError(t, err)

	wallet, err := svc.WalletBalance(
		context.Background(), []string{"xpub1", "xpub2", "xpub3"},
	)
	require.NoError(t, err)

	entry, ok := wallet.Balance("xpub1")
	require.True(t, ok)
	require.Equal(t, btcutil.Amount(150000), entry.FinalBalance)
	require.Equal(t, uint64(3), entry.TxCount)

	_, ok = wallet.Balance("xpub2")
	require.False(t, ok)
	_, ok = wallet.Balance("xpub3")
	require.False(t, ok)

	require.Equal(t, btcutil.Amount(150000), wallet.Total())
}

func TestWalletBalanceEmptyKeys(t *testing.T) {
	explorerSvc := &mockExplorer{}

	svc, err := NewBalanceService(domain.Bitcoin, explorerSvc)
	require.NoError(t, err)

	wallet, err := svc.WalletBalance(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, wallet.Total())
	explorerSvc.AssertNotCalled(t, "GetBalances")
}

func TestAccountBalance(t *testing.T) {
	account := domain.Account{
		Index: 0,
		Label: "Private Key Wallet",
		XPubs: []domain.XPub{
			{Key: "xpub1", Type: domain.DerivationLegacy},
			{Key: "xpub2", Type: domain.DerivationSegwit},
		},
	}

	t.Run("sums over all keys", func(t *testing.T) {
		explorerSvc := &mockExplorer{}
		explorerSvc.On("GetBalances", mock.Anything, mock.Anything).Return(
			map[string]json.RawMessage{
				"xpub1": json.RawMessage(`{"final_balance":100,"n_tx":1,"total_received":100}`),
				"xpub2": json.RawMessage(`{"final_balance":250,"n_tx":2,"total_received":250}`),
			}, nil,
		)

		svc, err := NewBalanceService(domain.Bitcoin, explorerSvc)
		require.NoError(t, err)

		total, ok, err := svc.AccountBalance(context.Background(), account)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, btcutil.Amount(350), total)
	})

	t.Run("never funded account", func(t *testing.T) {
		explorerSvc := &mockExplorer{}
		explorerSvc.On("GetBalances", mock.Anything, mock.Anything).Return(
			map[string]json.RawMessage{}, nil,
		)

		svc, err := NewBalanceService(domain.Bitcoin, explorerSvc)
		require.NoError(t, err)

		total, ok, err := svc.AccountBalance(context.Background(), account)
		require.NoError(t, err)
		require.False(t, ok)
		require.Zero(t, total)
	})
}
