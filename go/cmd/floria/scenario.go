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
	"os"

	"github.com/Fantom-foundation/Floria/go/interpreter/geth"
	"github.com/Fantom-foundation/Floria/go/logger"
	_ "github.com/Fantom-foundation/Floria/go/processor/floria"
	"github.com/Fantom-foundation/Floria/go/signer"
	"github.com/Fantom-foundation/Floria/go/state"
	"github.com/Fantom-foundation/Floria/go/transit"
)

// Scenario is a block of transactions to be run on a given pre-state.
type Scenario struct {
	Revision     *transit.Revision      `json:"revision,omitempty"` // if nil, mainnet activations are used
	ChainID      uint64                 `json:"chainId"`
	Pre          state.WorldState       `json:"pre"`
	Block        transit.BlockContext   `json:"block"`
	Transactions []*transit.Transaction `json:"transactions"`
}

// LoadScenario reads a scenario from the given JSON file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := &Scenario{}
	if err := json.Unmarshal(data, res); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	return res, nil
}

type options struct {
	processor string
	call      bool
	revision  *transit.Revision
	chainID   *uint64
	codeCache int
	log       logger.Logger
}

func (o options) spec(scenario *Scenario) transit.SpecProvider {
	chainID := scenario.ChainID
	if o.chainID != nil {
		chainID = *o.chainID
	}
	revision := scenario.Revision
	if o.revision != nil {
		revision = o.revision
	}
	if revision != nil {
		return transit.SingleRevision(chainID, *revision)
	}
	schedule := transit.MainnetSchedule
	schedule.ChainID = chainID
	return schedule
}

// engine bundles a processor with the world state it operates on.
type engine struct {
	world     *state.World
	processor transit.Processor
	recoverer *signer.Recoverer
	call      bool
}

func newEngine(scenario *Scenario, opts options) (*engine, error) {
	spec := opts.spec(scenario)
	world := state.NewWorld(scenario.Pre)
	interpreter, err := geth.NewInterpreter(world.Accounts, world.Storage, geth.Config{CodeCacheSize: opts.codeCache})
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}
	factory := transit.GetProcessorFactory(opts.processor)
	if factory == nil {
		return nil, fmt.Errorf("unknown processor %q", opts.processor)
	}
	recoverer := signer.NewRecoverer(spec.RulesFor(scenario.Block.Number).ChainID)
	return &engine{
		world: world,
		processor: factory(transit.Environment{
			Spec:        spec,
			State:       world.Accounts,
			Storage:     world.Storage,
			Interpreter: interpreter,
			Recoverer:   recoverer,
			Log:         opts.log,
		}),
		recoverer: recoverer,
		call:      opts.call,
	}, nil
}

// execute runs a single transaction in the given block. Transactions
// without a declared sender get it recovered from their signature.
func (e *engine) execute(tx *transit.Transaction, block *transit.BlockContext, observer transit.Observer) (transit.Receipt, error) {
	if tx.Sender == nil && tx.Signature != nil {
		sender, err := e.recoverer.RecoverSenderAddress(tx, false)
		if err != nil {
			return transit.Receipt{}, err
		}
		tx.Sender = sender
	}
	if e.call {
		return e.processor.CallAndRestore(tx, block, observer)
	}
	return e.processor.Execute(tx, block, observer)
}

// runScenario executes all transactions of the scenario on a fresh world
// state and returns the receipts and the world state after the block.
func runScenario(scenario *Scenario, opts options, observer transit.Observer) ([]transit.Receipt, *engine, error) {
	engine, err := newEngine(scenario, opts)
	if err != nil {
		return nil, nil, err
	}
	block := scenario.Block
	receipts := make([]transit.Receipt, 0, len(scenario.Transactions))
	for i, cur := range scenario.Transactions {
		tx := *cur
		receipt, err := engine.execute(&tx, &block, observer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to execute transaction %d: %w", i, err)
		}
		receipts = append(receipts, receipt)
	}
	return receipts, engine, nil
}
