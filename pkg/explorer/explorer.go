// Package explorer defines the interface to a remote blockchain-indexer
// service: per-key balances, unspent outputs and paged transaction history
// for a set of addresses or xpubs. Implementations own transport concerns
// (timeouts, pacing, circuit breaking), callers own retry policy.
package explorer

import (
	"context"
	"encoding/json"
)

// Service is the remote lookup client consumed by the engine. Keys are
// addresses or xpub strings, exactly as accepted by the indexer.
type Service interface {
	// GetBalances returns the raw balance entry for each requested key. The
	// entries are left undecoded on purpose: a malformed entry for one key
	// must not fail the lookup for the others, so decoding is per-entry and
	// belongs to the caller.
	GetBalances(ctx context.Context, keys []string) (map[string]json.RawMessage, error)
	// GetUnspentOutputs fetches the unspent outputs of the union of the given
	// keys.
	GetUnspentOutputs(ctx context.Context, keys []string) ([]UnspentOutput, error)
	// GetMultiAddress fetches the first page of transactions touching the
	// given keys, at most txLimit entries, together with per-key balance
	// summaries and the latest block height.
	GetMultiAddress(ctx context.Context, keys []string, txLimit int) (*MultiAddress, error)
}

// BalanceEntry is the decoded form of one GetBalances entry.
type BalanceEntry struct {
	FinalBalance  int64  `json:"final_balance"`
	TxCount       uint64 `json:"n_tx"`
	TotalReceived int64  `json:"total_received"`
}

// UnspentOutput is one entry of an unspent-outputs response.
type UnspentOutput struct {
	TxHash        string    `json:"tx_hash_big_endian"`
	Index         uint32    `json:"tx_output_n"`
	Value         int64     `json:"value"`
	Script        string    `json:"script"`
	Confirmations uint32    `json:"confirmations"`
	XPub          *XPubInfo `json:"xpub,omitempty"`
}

// XPubInfo ties an output or transaction leg to the account key it was
// derived from.
type XPubInfo struct {
	M    string `json:"m"`
	Path string `json:"path"`
}

// MultiAddress is the decoded multi-address response.
type MultiAddress struct {
	Addresses    []AddressSummary `json:"addresses"`
	Transactions []Transaction    `json:"txs"`
	Info         ChainInfo        `json:"info"`
}

// AddressSummary is the balance summary of one key within a multi-address
// response.
type AddressSummary struct {
	Address       string `json:"address"`
	FinalBalance  int64  `json:"final_balance"`
	TxCount       uint64 `json:"n_tx"`
	TotalReceived int64  `json:"total_received"`
}

// Transaction is one history entry of a multi-address response. Result is
// the net effect of the transaction on the queried wallet, negative for
// debits.
type Transaction struct {
	Hash        string     `json:"hash"`
	Result      int64      `json:"result"`
	Fee         int64      `json:"fee"`
	Time        int64      `json:"time"`
	BlockHeight uint64     `json:"block_height"`
	Inputs      []TxInput  `json:"inputs"`
	Outputs     []TxOutput `json:"out"`
}

// TxInput carries the previous output a transaction input spends.
type TxInput struct {
	PrevOut TxOutput `json:"prev_out"`
}

// TxOutput is a transaction output leg.
type TxOutput struct {
	Address string    `json:"addr"`
	Value   int64     `json:"value"`
	XPub    *XPubInfo `json:"xpub,omitempty"`
}

// ChainInfo carries chain-tip metadata of a multi-address response.
type ChainInfo struct {
	LatestBlock LatestBlock `json:"latest_block"`
}

// LatestBlock is the indexer's current chain tip.
type LatestBlock struct {
	Height uint64 `json:"height"`
}
