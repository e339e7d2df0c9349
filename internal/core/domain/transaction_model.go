package domain

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// TxDirection tells whether a historical transaction credited or debited the
// wallet, determined by comparing its counterparties against the wallet's own
// keys.
type TxDirection int

const (
	TxDirectionCredit TxDirection = iota
	TxDirectionDebit
)

func (d TxDirection) String() string {
	if d == TxDirectionDebit {
		return "debit"
	}
	return "credit"
}

// TxState is the confirmation state of a historical transaction.
type TxState int

const (
	TxStatePending TxState = iota
	TxStateCompleted
)

// TxStatus carries the state plus the confirmation progress used by activity
// displays while a transaction is pending.
type TxStatus struct {
	State   TxState
	Current uint32
	Total   uint32
}

// HistoricalTransaction is one entry of the wallet's transaction history.
// Pages are fetched immutable from the indexer and replaced wholesale on
// re-fetch, never mutated.
type HistoricalTransaction struct {
	ID                    string
	Direction             TxDirection
	Amount                btcutil.Amount
	Fee                   btcutil.Amount
	CreatedAt             time.Time
	Confirmations         uint32
	RequiredConfirmations uint32
	From                  string
	To                    string
}

// IsConfirmed returns whether the transaction reached the chain's required
// confirmation count.
func (t HistoricalTransaction) IsConfirmed() bool {
	return t.Confirmations >= t.RequiredConfirmations
}

// Status classifies the transaction as completed or pending with its current
// progress.
func (t HistoricalTransaction) Status() TxStatus {
	if t.IsConfirmed() {
		return TxStatus{
			State:   TxStateCompleted,
			Current: t.Confirmations,
			Total:   t.RequiredConfirmations,
		}
	}
	return TxStatus{
		State:   TxStatePending,
		Current: t.Confirmations,
		Total:   t.RequiredConfirmations,
	}
}
