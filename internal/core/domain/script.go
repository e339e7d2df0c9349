package domain

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/txscript"
)

// ScriptType is the standard locking-script class of an output. It determines
// the marginal byte weight an input of that type adds to a transaction and
// therefore its spend cost.
type ScriptType int

const (
	ScriptTypeUnknown ScriptType = iota
	ScriptTypeP2PKH
	ScriptTypeP2WPKH
	ScriptTypeP2SH
)

func (t ScriptType) String() string {
	switch t {
	case ScriptTypeP2PKH:
		return "P2PKH"
	case ScriptTypeP2WPKH:
		return "P2WPKH"
	case ScriptTypeP2SH:
		return "P2SH"
	default:
		return "Unknown"
	}
}

// ParseScriptType classifies a hex-encoded locking script by pattern-matching
// its bytes. Scripts that are not one of the standard classes, or that fail
// to decode, classify as ScriptTypeUnknown rather than erroring, an output
// with an unrecognized script is still spendable, just priced conservatively.
func ParseScriptType(scriptHex string) ScriptType {
	script, err := hex.DecodeString(scriptHex)
	if err != nil || len(script) == 0 {
		return ScriptTypeUnknown
	}

	switch txscript.GetScriptClass(script) {
	case txscript.PubKeyHashTy:
		return ScriptTypeP2PKH
	case txscript.WitnessV0PubKeyHashTy:
		return ScriptTypeP2WPKH
	case txscript.ScriptHashTy:
		return ScriptTypeP2SH
	default:
		return ScriptTypeUnknown
	}
}
