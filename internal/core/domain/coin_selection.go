package domain

import (
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// CoinSortStrategy decides the order in which candidate outputs are drawn.
type CoinSortStrategy int

const (
	// DescentDraw selects largest-effective-value first. It minimizes the
	// number of inputs, and therefore the fee, for typical UTXO distributions
	// and is the default.
	DescentDraw CoinSortStrategy = iota
	// AscentDraw selects smallest first, consolidating small outputs at the
	// cost of a higher fee.
	AscentDraw
)

// CoinSelectionInputs are the parameters of a single selection round over a
// fixed snapshot of unspent outputs. Selection is referentially transparent:
// the same inputs always produce the same SpendPlan.
type CoinSelectionInputs struct {
	// Target is the payment amount, excluding fee.
	Target btcutil.Amount
	// FeePerByte is the fee rate in minor units per byte.
	FeePerByte uint64
	// Coins is the candidate unspent set.
	Coins []UnspentOutput
	// TargetScriptType is the script type of the destination output.
	TargetScriptType ScriptType
	// ChangeScriptType is the script type of the change output, if one is
	// created.
	ChangeScriptType ScriptType
	Strategy         CoinSortStrategy
}

// EffectiveValue is the value of an output net of the marginal fee it costs
// to spend it at the given rate, rounded to the nearest minor unit (half away
// from zero) and floored at zero. An output that costs more to spend than it
// is worth has effective value exactly zero and is excluded from selection
// rather than penalizing the total. At a zero fee rate the effective value
// equals the raw value.
func (c Chain) EffectiveValue(u UnspentOutput, feePerByte uint64) btcutil.Amount {
	spendCost := decimal.NewFromInt(int64(feePerByte)).Mul(c.Sizes.InputSize(u.ScriptType))
	effective := decimal.NewFromInt(int64(u.Value)).Sub(spendCost).Round(0)
	if effective.IsNegative() {
		return 0
	}
	return btcutil.Amount(effective.IntPart())
}

type effectiveCoin struct {
	UnspentOutput
	effective btcutil.Amount
}

// SelectCoins picks a subset of the candidate outputs covering the target
// amount plus the fee of the assembled transaction.
//
// Outputs with zero effective value are discarded up front. The remaining
// candidates are drawn per the sorting strategy until the accumulated raw
// value covers target plus the fee of the selection without a change output.
// The change value is then computed against the fee of the transaction
// including a change output; change below the dust threshold, or below what
// it would cost to create and later spend the change output itself, is folded
// into the fee instead of producing an uneconomical output.
func SelectCoins(chain Chain, in CoinSelectionInputs) (*SpendPlan, error) {
	if in.Target <= 0 {
		return nil, ErrInvalidTargetAmount
	}

	candidates := effectiveCandidates(chain, in.Coins, in.FeePerByte, in.Strategy)
	feeRate := decimal.NewFromInt(int64(in.FeePerByte))
	outsNoChange := []ScriptType{in.TargetScriptType}

	var (
		selected      []UnspentOutput
		selectedTypes []ScriptType
		total         btcutil.Amount
		covered       bool
	)
	for _, c := range candidates {
		selected = append(selected, c.UnspentOutput)
		selectedTypes = append(selectedTypes, c.ScriptType)
		total += c.Value

		fee := feeForSize(chain.Sizes.TxSize(selectedTypes, outsNoChange), feeRate)
		if total >= in.Target+fee {
			covered = true
			break
		}
	}
	if !covered {
		return nil, ErrInsufficientFunds
	}

	outsWithChange := []ScriptType{in.TargetScriptType, in.ChangeScriptType}
	feePaid := feeForSize(chain.Sizes.TxSize(selectedTypes, outsWithChange), feeRate)
	change := total - in.Target - feePaid

	// A change output is only worth creating if it exceeds both the dust
	// threshold and the cost of creating plus eventually spending it.
	costOfChange := feeForSize(
		chain.Sizes.OutputSize(in.ChangeScriptType).Add(chain.Sizes.InputSize(in.ChangeScriptType)),
		feeRate,
	)
	minChange := chain.DustThreshold
	if costOfChange > minChange {
		minChange = costOfChange
	}
	if change < minChange {
		feePaid = total - in.Target
		change = 0
	}

	return &SpendPlan{
		SelectedInputs:  selected,
		TotalInputValue: total,
		FeePaid:         feePaid,
		ChangeValue:     change,
	}, nil
}

// SelectAllCoins builds the plan that sweeps every output with a positive
// effective value into a single destination output. An empty candidate set,
// or one where no output is worth spending at the given rate, yields an empty
// plan rather than an error.
func SelectAllCoins(
	chain Chain, coins []UnspentOutput, feePerByte uint64, outputType ScriptType,
) *SpendPlan {
	candidates := effectiveCandidates(chain, coins, feePerByte, DescentDraw)
	if len(candidates) == 0 {
		return &SpendPlan{}
	}

	var (
		selected      []UnspentOutput
		selectedTypes []ScriptType
		total         btcutil.Amount
	)
	for _, c := range candidates {
		selected = append(selected, c.UnspentOutput)
		selectedTypes = append(selectedTypes, c.ScriptType)
		total += c.Value
	}

	feeRate := decimal.NewFromInt(int64(feePerByte))
	fee := feeForSize(chain.Sizes.TxSize(selectedTypes, []ScriptType{outputType}), feeRate)
	if fee >= total {
		return &SpendPlan{}
	}

	return &SpendPlan{
		SelectedInputs:  selected,
		TotalInputValue: total,
		FeePaid:         fee,
	}
}

func effectiveCandidates(
	chain Chain, coins []UnspentOutput, feePerByte uint64, strategy CoinSortStrategy,
) []effectiveCoin {
	candidates := make([]effectiveCoin, 0, len(coins))
	for _, coin := range coins {
		effective := chain.EffectiveValue(coin, feePerByte)
		if effective == 0 {
			continue
		}
		candidates = append(candidates, effectiveCoin{coin, effective})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.effective != b.effective {
			if strategy == AscentDraw {
				return a.effective < b.effective
			}
			return a.effective > b.effective
		}
		// Deterministic tie-break so that identical snapshots always yield
		// identical plans.
		if a.TxHash != b.TxHash {
			return a.TxHash < b.TxHash
		}
		return a.Index < b.Index
	})

	return candidates
}

// feeForSize prices a transaction of the given fractional byte size, rounding
// the fee up to the next whole minor unit.
func feeForSize(size, feeRate decimal.Decimal) btcutil.Amount {
	return btcutil.Amount(feeRate.Mul(size).Ceil().IntPart())
}
