package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
)

var transactions = cli.Command{
	Name:   "history",
	Usage:  "get the most recent transactions of the wallet",
	Flags:  []cli.Flag{xpubFlag, chainFlag},
	Action: transactionsAction,
}

var transaction = cli.Command{
	Name:  "tx",
	Usage: "look up one wallet transaction by hash",
	Flags: []cli.Flag{
		xpubFlag,
		chainFlag,
		&cli.StringFlag{
			Name:     "hash",
			Usage:    "the transaction hash to look up",
			Required: true,
		},
	},
	Action: transactionAction,
}

func transactionsAction(ctx *cli.Context) error {
	engine, cleanup, err := getEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	txs, err := engine.Transactions(context.Background())
	if err != nil {
		return err
	}

	list := make([]map[string]interface{}, 0, len(txs))
	for _, tx := range txs {
		list = append(list, transactionJSON(tx))
	}

	printJSON(list)

	return nil
}

func transactionAction(ctx *cli.Context) error {
	engine, cleanup, err := getEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	tx, err := engine.Transaction(context.Background(), ctx.String("hash"))
	if err != nil {
		return err
	}

	printJSON(transactionJSON(*tx))

	return nil
}

func transactionJSON(tx domain.HistoricalTransaction) map[string]interface{} {
	status := tx.Status()
	state := "completed"
	if status.State == domain.TxStatePending {
		state = fmt.Sprintf(
			"pending (%d of %d confirmations)", status.Current, status.Total,
		)
	}

	return map[string]interface{}{
		"hash":       tx.ID,
		"direction":  tx.Direction.String(),
		"amount":     int64(tx.Amount),
		"fee":        int64(tx.Fee),
		"created_at": tx.CreatedAt,
		"status":     state,
		"from":       tx.From,
		"to":         tx.To,
	}
}
