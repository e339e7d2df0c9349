package domain

import (
	"github.com/shopspring/decimal"
)

// TxSizeTable holds the byte weights used to price a transaction: a fixed
// per-transaction overhead plus one entry per script type for inputs and
// outputs. Segwit weights are fractional because of the witness discount and
// must not be rounded before the final fee computation.
type TxSizeTable struct {
	Overhead decimal.Decimal
	inputs   map[ScriptType]decimal.Decimal
	outputs  map[ScriptType]decimal.Decimal
}

var defaultSizeTable = TxSizeTable{
	// version + locktime + in/out counts
	Overhead: decimal.NewFromInt(10),
	inputs: map[ScriptType]decimal.Decimal{
		ScriptTypeP2PKH:  decimal.NewFromInt(148),
		ScriptTypeP2WPKH: decimal.NewFromFloat(67.75),
	},
	outputs: map[ScriptType]decimal.Decimal{
		ScriptTypeP2PKH:  decimal.NewFromInt(34),
		ScriptTypeP2WPKH: decimal.NewFromInt(31),
		ScriptTypeP2SH:   decimal.NewFromInt(32),
	},
}

// InputSize returns the marginal size an input of the given type adds to a
// transaction. Types without a specific entry are priced at the largest known
// input weight.
func (t TxSizeTable) InputSize(st ScriptType) decimal.Decimal {
	if size, ok := t.inputs[st]; ok {
		return size
	}
	largest := decimal.Zero
	for _, size := range t.inputs {
		if size.GreaterThan(largest) {
			largest = size
		}
	}
	return largest
}

// OutputSize returns the size an output of the given type adds to a
// transaction, falling back to the largest known output weight.
func (t TxSizeTable) OutputSize(st ScriptType) decimal.Decimal {
	if size, ok := t.outputs[st]; ok {
		return size
	}
	largest := decimal.Zero
	for _, size := range t.outputs {
		if size.GreaterThan(largest) {
			largest = size
		}
	}
	return largest
}

// TxSize returns the estimated size in bytes of a transaction spending the
// given input types into the given output types.
func (t TxSizeTable) TxSize(ins, outs []ScriptType) decimal.Decimal {
	size := t.Overhead
	for _, st := range ins {
		size = size.Add(t.InputSize(st))
	}
	for _, st := range outs {
		size = size.Add(t.OutputSize(st))
	}
	return size
}
