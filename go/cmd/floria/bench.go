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
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Fantom-foundation/Floria/go/examples"
	"github.com/Fantom-foundation/Floria/go/logger"
	"github.com/Fantom-foundation/Floria/go/state"
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var BenchCmd = cli.Command{
	Action:    doBench,
	Name:      "bench",
	Usage:     "Measure the throughput of running a JSON scenario repeatedly",
	ArgsUsage: "[<scenario.json>]",
	Flags: []cli.Flag{
		&callFlag,
		&revisionFlag,
		&chainIdFlag,
		&codeCacheFlag,
		&processorFlag,
		&logger.LogLevelFlag,
		&cli.StringFlag{
			Name:  "example",
			Usage: "benchmark a built-in example contract instead of a scenario file",
		},
		&cli.IntFlag{
			Name:  "argument",
			Usage: "argument passed to the example contract",
			Value: 10,
		},
		&cli.IntFlag{
			Name:  "jobs",
			Usage: "number of scenario instances run simultaneously",
			Value: runtime.NumCPU(),
		},
		&cli.IntFlag{
			Name:  "iterations",
			Usage: "number of times each job runs the scenario",
			Value: 100,
		},
	},
}

func doBench(context *cli.Context) error {
	var scenario *Scenario
	if name := context.String("example"); name != "" {
		example, err := examples.GetExample(name)
		if err != nil {
			return err
		}
		scenario = exampleScenario(example, context.Int("argument"), 100)
	} else {
		if context.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one scenario file or an example")
		}
		var err error
		scenario, err = LoadScenario(context.Args().First())
		if err != nil {
			return err
		}
	}
	opts, err := readOptions(context)
	if err != nil {
		return err
	}
	jobs := context.Int("jobs")
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	return bench(context.App.Writer, scenario, opts, jobs, context.Int("iterations"))
}

// bench runs the scenario the given number of iterations in each of the given
// number of parallel jobs. Every run starts from a fresh world state.
func bench(out io.Writer, scenario *Scenario, opts options, jobs, iterations int) error {
	var executed atomic.Int64
	start := time.Now()

	var group errgroup.Group
	for i := 0; i < jobs; i++ {
		group.Go(func() error {
			for j := 0; j < iterations; j++ {
				receipts, _, err := runScenario(scenario, opts, transit.NoopObserver{})
				if err != nil {
					return err
				}
				executed.Add(int64(len(receipts)))
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	duration := time.Since(start)
	rate := float64(executed.Load()) / duration.Seconds()
	fmt.Fprintf(out, "Executed %d transactions in %v using %d jobs, ~%s tx/s\n",
		executed.Load(), duration.Round(time.Millisecond), jobs, unitconv.FormatPrefix(rate, unitconv.SI, 0))
	return nil
}

// exampleScenario creates a scenario calling the given example contract the
// given number of times.
func exampleScenario(example examples.Example, argument int, calls int) *Scenario {
	sender := transit.Address{1}
	contract := transit.Address{2}
	revision := transit.R13_Cancun
	scenario := &Scenario{
		Revision: &revision,
		Pre: state.WorldState{
			sender:   {},
			contract: {Code: example.Code},
		},
		Block: transit.BlockContext{
			Number:   1,
			GasLimit: 1 << 50,
		},
	}
	for i := 0; i < calls; i++ {
		tx := example.Transaction(sender, contract, uint64(i), 10_000_000, argument)
		scenario.Transactions = append(scenario.Transactions, tx)
	}
	return scenario
}
