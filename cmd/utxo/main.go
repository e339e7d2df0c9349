package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/pocketbtc/utxo-engine/internal/config"
	"github.com/pocketbtc/utxo-engine/internal/core/application"
	"github.com/pocketbtc/utxo-engine/internal/core/domain"
)

var chainFlag = &cli.StringFlag{
	Name:  "chain",
	Usage: "the chain to operate on, either 'bitcoin' or 'bitcoincash'",
}

var xpubFlag = &cli.StringSliceFlag{
	Name:     "xpub",
	Usage:    "an extended public key of the wallet, repeatable",
	Required: true,
}

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "utxo CLI"
	app.Usage = "Command line interface for the utxo balance and spend engine"
	app.Commands = append(
		app.Commands,
		&balance,
		&utxos,
		&spendplan,
		&sweep,
		&transactions,
		&transaction,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// getEngine builds a single-account engine over the xpubs given on the
// command line. The CLI is stateless: every invocation is its own session.
func getEngine(ctx *cli.Context) (*application.Engine, func(), error) {
	chain := config.GetChain()
	if name := ctx.String("chain"); name != "" {
		parsed, err := domain.ChainFromName(name)
		if err != nil {
			return nil, nil, err
		}
		chain = parsed
	}

	xpubs := make([]domain.XPub, 0, len(ctx.StringSlice("xpub")))
	for _, key := range ctx.StringSlice("xpub") {
		xpubs = append(xpubs, domain.XPub{Key: key})
	}
	accounts := []domain.Account{{Index: 0, Label: "default", XPubs: xpubs}}

	explorerSvc, err := config.GetExplorer()
	if err != nil {
		return nil, nil, err
	}

	engine, err := application.NewEngine(
		chain, accounts, explorerSvc, config.GetCacheExpiry(),
	)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { engine.Close() }

	return engine, cleanup, nil
}

func feePerByte(ctx *cli.Context) uint64 {
	if rate := ctx.Uint64("fee-per-byte"); rate > 0 {
		return rate
	}
	return config.GetUint(config.FeePerByteKey)
}

func printJSON(resp interface{}) {
	jsonStr, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to encode response: ", err)
		return
	}

	fmt.Println(string(jsonStr))
}

func fatal(err error) {
	log.WithError(err).Fatal("command failed")
}
