// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/Floria/go/logger"
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "floria",
		Usage:     "Floria transaction execution engine",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&RunCmd,
			&BenchCmd,
			&RevisionsCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	callFlag = cli.BoolFlag{
		Name:  "call",
		Usage: "simulate the transactions without persisting their effects",
	}
	revisionFlag = cli.StringFlag{
		Name:  "revision",
		Usage: "run all blocks with the given revision, overriding the scenario",
	}
	chainIdFlag = cli.Uint64Flag{
		Name:  "chain-id",
		Usage: "chain ID to run transactions on, overriding the scenario",
	}
	codeCacheFlag = cli.IntFlag{
		Name:  "code-cache",
		Usage: "number of contract codes retained by the interpreter; negative values disable the cache",
	}
	processorFlag = cli.StringFlag{
		Name:  "processor",
		Usage: "name of the transaction processor to use",
		Value: "floria",
	}
)

// readOptions collects the options shared by all scenario commands.
func readOptions(context *cli.Context) (options, error) {
	res := options{
		processor: context.String(processorFlag.Name),
		call:      context.Bool(callFlag.Name),
		codeCache: context.Int(codeCacheFlag.Name),
		log:       logger.NewLoggerTo(os.Stderr, context.String(logger.LogLevelFlag.Name), "floria"),
	}
	if context.IsSet(chainIdFlag.Name) {
		chainID := context.Uint64(chainIdFlag.Name)
		res.chainID = &chainID
	}
	if name := context.String(revisionFlag.Name); name != "" {
		revision, err := transit.ParseRevision(name)
		if err != nil {
			return options{}, err
		}
		res.revision = &revision
	}
	return res, nil
}
