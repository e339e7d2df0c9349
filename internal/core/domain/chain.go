package domain

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// Chain identifies a supported UTXO chain and carries its consensus-level
// constants: the number of confirmations after which a transaction is
// considered final, the dust threshold for change outputs and the byte-weight
// table used for fee estimation. Chains are resolved once at construction and
// passed around by value, they are never branched on by name at runtime.
type Chain struct {
	Name                  string
	Ticker                string
	RequiredConfirmations uint32
	DustThreshold         btcutil.Amount
	ChangeScriptType      ScriptType
	Sizes                 TxSizeTable
}

var (
	// Bitcoin mainnet. Change goes to a native segwit output.
	Bitcoin = Chain{
		Name:                  "bitcoin",
		Ticker:                "BTC",
		RequiredConfirmations: 3,
		DustThreshold:         546,
		ChangeScriptType:      ScriptTypeP2WPKH,
		Sizes:                 defaultSizeTable,
	}

	// BitcoinCash shares the UTXO model but has no segwit, so change is
	// always a legacy P2PKH output.
	BitcoinCash = Chain{
		Name:                  "bitcoincash",
		Ticker:                "BCH",
		RequiredConfirmations: 3,
		DustThreshold:         546,
		ChangeScriptType:      ScriptTypeP2PKH,
		Sizes:                 defaultSizeTable,
	}
)

// ChainFromName parses a chain identifier as found in config or CLI flags.
func ChainFromName(name string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Bitcoin.Name, "btc":
		return Bitcoin, nil
	case BitcoinCash.Name, "bch":
		return BitcoinCash, nil
	default:
		return Chain{}, fmt.Errorf("unknown chain %q", name)
	}
}
