package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:   "balance",
	Usage:  "get the confirmed balance of the wallet in satoshis",
	Flags:  []cli.Flag{xpubFlag, chainFlag},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	engine, cleanup, err := getEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	total, err := engine.TotalBalance(context.Background())
	if err != nil {
		return err
	}

	printJSON(map[string]interface{}{
		"chain":   engine.Chain().Name,
		"balance": int64(total),
	})

	return nil
}
