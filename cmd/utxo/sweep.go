package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var sweep = cli.Command{
	Name:  "sweep",
	Usage: "plan spending every economical output to a single destination",
	Flags: []cli.Flag{
		xpubFlag,
		chainFlag,
		&cli.Uint64Flag{
			Name:  "fee-per-byte",
			Usage: "the fee rate in satoshis per byte",
		},
	},
	Action: sweepAction,
}

func sweepAction(ctx *cli.Context) error {
	engine, cleanup, err := getEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	plan, err := engine.SweepPlan(context.Background(), feePerByte(ctx))
	if err != nil {
		return err
	}

	printSpendPlan(plan)

	return nil
}
