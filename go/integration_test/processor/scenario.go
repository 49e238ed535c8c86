// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package processor

import (
	"bytes"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Floria/go/interpreter/geth"
	"github.com/Fantom-foundation/Floria/go/logger"
	_ "github.com/Fantom-foundation/Floria/go/processor/floria"
	"github.com/Fantom-foundation/Floria/go/state"
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/core/vm"
)

const (
	chainID       = 250
	sufficientGas = transit.Gas(1_000_000)
)

// Scenario represents a test scenario for a transaction processor. A scenario
// consists of a world state before and after the operation, a transaction to
// be executed, block parameters, and the expected receipt.
type Scenario struct {
	Revision    transit.Revision
	Before      state.WorldState
	After       state.WorldState
	Block       transit.BlockContext
	Transaction transit.Transaction
	Receipt     transit.Receipt
}

// Run executes the scenario's transaction on the named processor and checks
// the resulting world state and receipt.
func (s *Scenario) Run(t *testing.T, processorName string) {
	t.Helper()
	setup := newSetup(t, processorName, s.Revision, s.Before)
	block := s.Block
	tx := s.Transaction
	receipt, err := setup.processor.Execute(&tx, &block, transit.NoopObserver{})
	if err != nil {
		t.Fatalf("failed to run transaction: %v", err)
	}

	if want, got := s.After, setup.world.Dump(); !want.Equal(got) {
		diff := strings.Join(want.Diff(got), "\n\t")
		t.Errorf("unexpected world state after the operation: \n\t%v", diff)
	}

	if want, got := s.Receipt.Success, receipt.Success; want != got {
		t.Errorf("unexpected success, want %v, got %v (%v)", want, got, receipt.Err)
	}
	if want, got := s.Receipt.GasUsed, receipt.GasUsed; want != got {
		t.Errorf("unexpected gas used, want %v, got %v", want, got)
	}
	if want, got := s.Receipt.Output, receipt.Output; !bytes.Equal(want, got) {
		t.Errorf("unexpected output, want %x, got %x", want, got)
	}
	if want, got := s.Receipt.ContractAddress, receipt.ContractAddress; (want == nil) != (got == nil) || (want != nil && *want != *got) {
		t.Errorf("unexpected created contract address, want %v, got %v", want, got)
	}
	if want, got := len(s.Receipt.Logs), len(receipt.Logs); want != got {
		t.Fatalf("unexpected number of logs, want %d, got %d", want, got)
	}
	for i, want := range s.Receipt.Logs {
		got := receipt.Logs[i]
		if want.Address != got.Address {
			t.Errorf("unexpected log address, want %v, got %v", want.Address, got.Address)
		}
		if !slices.Equal(want.Topics, got.Topics) {
			t.Errorf("unexpected log topics, want %v, got %v", want.Topics, got.Topics)
		}
		if !bytes.Equal(want.Data, got.Data) {
			t.Errorf("unexpected log data, want %x, got %x", want.Data, got.Data)
		}
	}
}

// setup bundles a world and a processor operating on it.
type setup struct {
	world     *state.World
	processor transit.Processor
}

func newSetup(t testing.TB, processorName string, revision transit.Revision, before state.WorldState) setup {
	t.Helper()
	world := state.NewWorld(before)
	interpreter, err := geth.NewInterpreter(world.Accounts, world.Storage, geth.Config{})
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	processor := transit.GetProcessor(processorName, transit.Environment{
		Spec:        transit.SingleRevision(chainID, revision),
		State:       world.Accounts,
		Storage:     world.Storage,
		Interpreter: interpreter,
		Log:         logger.ForModule("critical", "integration-test"),
	})
	if processor == nil {
		t.Fatalf("unknown processor %q", processorName)
	}
	return setup{world: world, processor: processor}
}

func getProcessorNames() []string {
	names := []string{}
	for name := range transit.GetAllRegisteredProcessorFactories() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// newBlock returns block parameters leaving room for any transaction.
func newBlock() transit.BlockContext {
	return transit.BlockContext{
		Number:      1,
		GasLimit:    1 << 50,
		Beneficiary: transit.Address{0xBE},
	}
}

func forEachProcessor(t *testing.T, revisions []transit.Revision, test func(*testing.T, string, transit.Revision)) {
	for _, name := range getProcessorNames() {
		for _, revision := range revisions {
			t.Run(fmt.Sprintf("%s/%v", name, revision), func(t *testing.T) {
				test(t, name, revision)
			})
		}
	}
}

// pushToStack produces code pushing the given values such that the first
// value ends up on top of the stack.
func pushToStack(values []*big.Int) []byte {
	code := []byte{}
	for i := len(values) - 1; i >= 0; i-- {
		valueBytes := values[i].Bytes()
		if len(valueBytes) == 0 {
			valueBytes = []byte{0}
		}
		push := vm.PUSH1 + vm.OpCode(len(valueBytes)-1)
		code = append(code, byte(push))
		code = append(code, valueBytes...)
	}
	return code
}

// returnWord is code returning the first word of the memory.
var returnWord = []byte{
	byte(vm.PUSH1), 32,
	byte(vm.PUSH1), 0,
	byte(vm.RETURN),
}

func word(value byte) transit.Data {
	res := make(transit.Data, 32)
	res[31] = value
	return res
}
