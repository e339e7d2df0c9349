package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var utxos = cli.Command{
	Name:   "utxos",
	Usage:  "get a list of all unspent outputs of the wallet",
	Flags:  []cli.Flag{xpubFlag, chainFlag},
	Action: utxosAction,
}

func utxosAction(ctx *cli.Context) error {
	engine, cleanup, err := getEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	unspents, err := engine.FetchUnspentOutputs(context.Background())
	if err != nil {
		return err
	}

	list := make([]map[string]interface{}, 0, len(unspents))
	for _, u := range unspents {
		list = append(list, map[string]interface{}{
			"tx_hash":       u.TxHash,
			"index":         u.Index,
			"value":         int64(u.Value),
			"script_type":   u.ScriptType.String(),
			"confirmations": u.Confirmations,
		})
	}

	printJSON(list)

	return nil
}
