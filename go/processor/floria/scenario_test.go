// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package floria

import (
	"testing"

	"github.com/Fantom-foundation/Floria/go/logger"
	"github.com/Fantom-foundation/Floria/go/state"
	"github.com/Fantom-foundation/Floria/go/transit"
)

// testInterpreter is a scripted interpreter. Like real interpreters, it
// credits the transferred value to the executing account before running the
// script. Without a script, frames succeed without using any gas.
type testInterpreter struct {
	world  *state.World
	script func(*transit.CallState, *state.World) *transit.Substate
	runs   int
}

func (i *testInterpreter) Run(callState *transit.CallState, _ transit.Observer) (*transit.Substate, error) {
	i.runs++
	env := callState.Env
	accounts := i.world.Accounts
	if callState.Kind == transit.Create {
		accounts.CreateAccount(env.ExecutingAccount, accounts.GetBalance(env.ExecutingAccount))
		if callState.Rules.IsEip158Enabled {
			accounts.SetNonce(env.ExecutingAccount, 1)
		}
	}
	accounts.AddToBalance(env.ExecutingAccount, env.TransferValue, callState.Rules)
	if i.script == nil {
		return &transit.Substate{GasLeft: callState.GasAvailable}, nil
	}
	return i.script(callState, i.world), nil
}

func (i *testInterpreter) GetCachedCodeInfo(address transit.Address, _ transit.ForkRules) transit.Code {
	return i.world.Accounts.GetCode(address)
}

// testRecoverer recovers a fixed sender.
type testRecoverer struct {
	sender *transit.Address
}

func (r testRecoverer) RecoverSenderAddress(*transit.Transaction, bool) (*transit.Address, error) {
	return r.sender, nil
}

type scenarioSetup struct {
	world       *state.World
	interpreter *testInterpreter
	processor   transit.Processor
}

func newScenario(revision transit.Revision, pre state.WorldState, script func(*transit.CallState, *state.World) *transit.Substate) *scenarioSetup {
	return newScenarioWithSpec(transit.SingleRevision(1, revision), pre, script)
}

func newScenarioWithSpec(spec transit.SpecProvider, pre state.WorldState, script func(*transit.CallState, *state.World) *transit.Substate) *scenarioSetup {
	world := state.NewWorld(pre)
	interpreter := &testInterpreter{world: world, script: script}
	processor := NewProcessor(transit.Environment{
		Spec:        spec,
		State:       world.Accounts,
		Storage:     world.Storage,
		Interpreter: interpreter,
		Recoverer:   testRecoverer{},
		Log:         logger.ForModule("critical", "floria-test"),
	})
	return &scenarioSetup{world: world, interpreter: interpreter, processor: processor}
}

var (
	sender      = transit.Address{0x51}
	receiver    = transit.Address{0x52}
	beneficiary = transit.Address{0xBE}
)

func newBlock() *transit.BlockContext {
	return &transit.BlockContext{
		Number:      10,
		GasLimit:    30_000_000,
		Beneficiary: beneficiary,
	}
}

func newTransfer(gasLimit transit.Gas, price uint64) *transit.Transaction {
	return &transit.Transaction{
		Type:      transit.LegacyTxType,
		Sender:    &sender,
		Recipient: &receiver,
		GasLimit:  gasLimit,
		GasPrice:  transit.NewValue(price),
	}
}

func checkWorld(t *testing.T, world *state.World, want state.WorldState) {
	t.Helper()
	if got := world.Dump(); !want.Equal(got) {
		t.Errorf("unexpected world state, differences: %v", want.Diff(got))
	}
}
