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
	"encoding/json"
	"fmt"
	"io"

	"github.com/Fantom-foundation/Floria/go/logger"
	"github.com/Fantom-foundation/Floria/go/tracer"
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run the transactions of a JSON scenario and print their receipts",
	ArgsUsage: "<scenario.json>",
	Flags: []cli.Flag{
		&callFlag,
		&revisionFlag,
		&chainIdFlag,
		&codeCacheFlag,
		&processorFlag,
		&logger.LogLevelFlag,
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the world state after the last transaction",
		},
	},
}

func doRun(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one scenario file")
	}
	scenario, err := LoadScenario(context.Args().First())
	if err != nil {
		return err
	}
	opts, err := readOptions(context)
	if err != nil {
		return err
	}
	return runAndPrint(context.App.Writer, scenario, opts, context.Bool("dump"))
}

func runAndPrint(out io.Writer, scenario *Scenario, opts options, dump bool) error {
	observer := transit.Observer(transit.NoopObserver{})
	if opts.log != nil {
		observer = tracer.NewLoggingObserver(opts.log)
	}
	receipts, engine, err := runScenario(scenario, opts, observer)
	if err != nil {
		return err
	}
	for i, receipt := range receipts {
		printReceipt(out, i, receipt)
	}
	if !dump {
		return nil
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(engine.world.Dump())
}

func printReceipt(out io.Writer, index int, receipt transit.Receipt) {
	status := "success"
	if !receipt.Success {
		status = fmt.Sprintf("failed: %v", receipt.Err)
	}
	fmt.Fprintf(out, "tx %d: %s, recipient %v, gas used %d", index, status, receipt.Recipient, receipt.GasUsed)
	if receipt.ContractAddress != nil {
		fmt.Fprintf(out, ", contract %v", *receipt.ContractAddress)
	}
	if len(receipt.Output) > 0 {
		fmt.Fprintf(out, ", output 0x%x", []byte(receipt.Output))
	}
	if len(receipt.Logs) > 0 {
		fmt.Fprintf(out, ", %d logs", len(receipt.Logs))
	}
	fmt.Fprintln(out)
}

var RevisionsCmd = cli.Command{
	Action: func(context *cli.Context) error {
		for _, revision := range transit.GetAllKnownRevisions() {
			fmt.Fprintln(context.App.Writer, revision)
		}
		return nil
	},
	Name:  "revisions",
	Usage: "List the supported revisions",
}
