package domain

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// UnspentKey is the ID of an UnspentOutput, composed by its txid and vout.
type UnspentKey struct {
	TxHash string
	Index  uint32
}

// UnspentOutput is a spendable output as reported by the remote indexer.
// Values are immutable once constructed: the unspent set held in the cache is
// only ever replaced wholesale, never patched in place.
type UnspentOutput struct {
	TxHash        string
	Index         uint32
	Value         btcutil.Amount
	Script        string
	ScriptType    ScriptType
	Confirmations uint32
	XPub          string
}

// NewUnspentOutput validates and builds an UnspentOutput. The script type is
// derived from the locking script here, exactly once.
func NewUnspentOutput(
	txHash string, index uint32, value int64, script string,
	confirmations uint32, xpub string,
) (UnspentOutput, error) {
	if _, err := chainhash.NewHashFromStr(txHash); err != nil {
		return UnspentOutput{}, ErrInvalidTxHash
	}
	if value < 0 {
		return UnspentOutput{}, ErrNegativeValue
	}

	return UnspentOutput{
		TxHash:        txHash,
		Index:         index,
		Value:         btcutil.Amount(value),
		Script:        script,
		ScriptType:    ParseScriptType(script),
		Confirmations: confirmations,
		XPub:          xpub,
	}, nil
}

// Key returns the UnspentKey of the current output.
func (u UnspentOutput) Key() UnspentKey {
	return UnspentKey{TxHash: u.TxHash, Index: u.Index}
}

// SpendPlan is the outcome of a coin selection: the inputs to sign, the fee
// the assembled transaction pays and the value returned to the wallet as
// change. TotalInputValue always equals target + FeePaid + ChangeValue.
type SpendPlan struct {
	SelectedInputs  []UnspentOutput
	TotalInputValue btcutil.Amount
	FeePaid         btcutil.Amount
	ChangeValue     btcutil.Amount
}

// Spendable is the portion of the selected input value that reaches the
// destination, i.e. everything that is neither fee nor change.
func (p SpendPlan) Spendable() btcutil.Amount {
	return p.TotalInputValue - p.FeePaid - p.ChangeValue
}
