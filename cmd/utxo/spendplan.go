package main

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
)

var spendplan = cli.Command{
	Name:  "spendplan",
	Usage: "select the coins covering a target amount plus fees",
	Flags: []cli.Flag{
		xpubFlag,
		chainFlag,
		&cli.Int64Flag{
			Name:     "amount",
			Usage:    "the payment amount in satoshis, excluding fees",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "fee-per-byte",
			Usage: "the fee rate in satoshis per byte",
		},
		&cli.BoolFlag{
			Name:  "ascent",
			Usage: "draw smallest outputs first instead of largest",
		},
	},
	Action: spendplanAction,
}

func spendplanAction(ctx *cli.Context) error {
	engine, cleanup, err := getEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	strategy := domain.DescentDraw
	if ctx.Bool("ascent") {
		strategy = domain.AscentDraw
	}

	plan, err := engine.BuildSpendPlan(
		context.Background(),
		btcutil.Amount(ctx.Int64("amount")),
		feePerByte(ctx),
		strategy,
	)
	if err != nil {
		return err
	}

	printSpendPlan(plan)

	return nil
}

func printSpendPlan(plan *domain.SpendPlan) {
	inputs := make([]map[string]interface{}, 0, len(plan.SelectedInputs))
	for _, u := range plan.SelectedInputs {
		inputs = append(inputs, map[string]interface{}{
			"tx_hash": u.TxHash,
			"index":   u.Index,
			"value":   int64(u.Value),
		})
	}

	printJSON(map[string]interface{}{
		"inputs":    inputs,
		"total":     int64(plan.TotalInputValue),
		"fee":       int64(plan.FeePaid),
		"change":    int64(plan.ChangeValue),
		"spendable": int64(plan.Spendable()),
	})
}
