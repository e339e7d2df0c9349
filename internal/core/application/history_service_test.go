package application

import (
	"context"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
	"github.com/pocketbtc/utxo-engine/pkg/explorer"
)

func testMultiAddressPage() *explorer.MultiAddress {
	return &explorer.MultiAddress{
		Transactions: []explorer.Transaction{
			{
				// Fresh debit, one confirmation at tip height 700000.
				Hash:        testHash(10),
				Result:      -150000,
				Fee:         10000,
				Time:        1700000200,
				BlockHeight: 700000,
				Inputs: []explorer.TxInput{
					{PrevOut: explorer.TxOutput{
						Address: "1OwnAddr", Value: 200000,
						XPub: &explorer.XPubInfo{M: "xpub1", Path: "M/0/1"},
					}},
				},
				Outputs: []explorer.TxOutput{
					{Address: "1Recipient", Value: 140000},
					{Address: "1OwnChange", Value: 50000,
						XPub: &explorer.XPubInfo{M: "xpub1", Path: "M/1/4"}},
				},
			},
			{
				// Confirmed credit from an external sender.
				Hash:        testHash(11),
				Result:      300000,
				Fee:         5000,
				Time:        1700000100,
				BlockHeight: 699990,
				Inputs: []explorer.TxInput{
					{PrevOut: explorer.TxOutput{Address: "1Sender", Value: 305000}},
				},
				Outputs: []explorer.TxOutput{
					{Address: "1OwnAddr", Value: 300000,
						XPub: &explorer.XPubInfo{M: "xpub1", Path: "M/0/2"}},
				},
			},
			{
				// Still in the mempool.
				Hash:        testHash(12),
				Result:      25000,
				Fee:         1200,
				Time:        1700000300,
				BlockHeight: 0,
				Inputs: []explorer.TxInput{
					{PrevOut: explorer.TxOutput{Address: "1Sender", Value: 26200}},
				},
				Outputs: []explorer.TxOutput{
					{Address: "1OwnAddr", Value: 25000,
						XPub: &explorer.XPubInfo{M: "xpub1", Path: "M/0/3"}},
				},
			},
		},
		Info: explorer.ChainInfo{
			LatestBlock: explorer.LatestBlock{Height: 700000},
		},
	}
}

func TestTransactions(t *testing.T) {
	explorerSvc := &mockExplorer{}
	explorerSvc.On("GetMultiAddress", mock.Anything, mock.Anything, historyPageSize).
		Return(testMultiAddressPage(), nil)

	svc, err := NewHistoryService(domain.Bitcoin, explorerSvc, time.Minute)
	require.NoError(t, err)

	txs, err := svc.Transactions(context.Background(), []string{"xpub1"})
	require.NoError(t, err)
	require.Len(t, txs, 3)

	debit := txs[0]
	require.Equal(t, domain.TxDirectionDebit, debit.Direction)
	require.Equal(t, btcutil.Amount(150000), debit.Amount)
	require.Equal(t, btcutil.Amount(10000), debit.Fee)
	require.Equal(t, uint32(1), debit.Confirmations)
	require.Equal(t, uint32(3), debit.RequiredConfirmations)
	require.False(t, debit.IsConfirmed())
	require.Equal(t, domain.TxStatePending, debit.Status().State)
	require.Equal(t, "1OwnAddr", debit.From)
	require.Equal(t, "1Recipient", debit.To)
	require.Equal(t, time.Unix(1700000200, 0).UTC(), debit.CreatedAt)

	credit := txs[1]
	require.Equal(t, domain.TxDirectionCredit, credit.Direction)
	require.Equal(t, btcutil.Amount(300000), credit.Amount)
	require.Equal(t, uint32(11), credit.Confirmations)
	require.True(t, credit.IsConfirmed())
	require.Equal(t, domain.TxStateCompleted, credit.Status().State)
	require.Equal(t, "1Sender", credit.From)
	require.Equal(t, "1OwnAddr", credit.To)

	pending := txs[2]
	require.Zero(t, pending.Confirmations)
	require.False(t, pending.IsConfirmed())
}

func TestTransactionsCached(t *testing.T) {
	explorerSvc := &mockExplorer{}
	explorerSvc.On("GetMultiAddress", mock.Anything, mock.Anything, historyPageSize).
		Return(testMultiAddressPage(), nil)

	svc, err := NewHistoryService(domain.Bitcoin, explorerSvc, time.Minute)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.Transactions(ctx, []string{"xpub1"})
	require.NoError(t, err)
	_, err = svc.Transaction(ctx, []string{"xpub1"}, testHash(11))
	require.NoError(t, err)

	explorerSvc.AssertNumberOfCalls(t, "GetMultiAddress", 1)
}

func TestTransactionByID(t *testing.T) {
	explorerSvc := &mockExplorer{}
	explorerSvc.On("GetMultiAddress", mock.Anything, mock.Anything, historyPageSize).
		Return(testMultiAddressPage(), nil)

	svc, err := NewHistoryService(domain.Bitcoin, explorerSvc, time.Minute)
	require.NoError(t, err)

	tx, err := svc.Transaction(context.Background(), []string{"xpub1"}, testHash(11))
	require.NoError(t, err)
	require.Equal(t, testHash(11), tx.ID)
	require.Equal(t, domain.TxDirectionCredit, tx.Direction)
}

func TestTransactionNotFound(t *testing.T) {
	explorerSvc := &mockExplorer{}
	explorerSvc.On("GetMultiAddress", mock.Anything, mock.Anything, historyPageSize).
		Return(testMultiAddressPage(), nil)

	svc, err := NewHistoryService(domain.Bitcoin, explorerSvc, time.Minute)
	require.NoError(t, err)

	_, err = svc.Transaction(context.Background(), []string{"xpub1"}, testHash(99))
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
