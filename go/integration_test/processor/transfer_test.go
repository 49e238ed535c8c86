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
	"testing"

	"github.com/Fantom-foundation/Floria/go/state"
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/core/vm"
)

func TestProcessor_CallValueTransfersAreHandledCorrectly(t *testing.T) {
	for callName, call := range callTypes() {
		revisions := []transit.Revision{transit.R10_London, transit.R13_Cancun}
		forEachProcessor(t, revisions, func(t *testing.T, name string, revision transit.Revision) {
			t.Run(callName, func(t *testing.T) {
				value := transit.NewValue(42)

				code0 := pushCallArguments(call, sufficientGas, value, third)
				code0 = append(code0, byte(call.op))
				code0 = append(code0, returnWord...)

				// return the call value
				code1 := []byte{
					byte(vm.CALLVALUE),
					byte(vm.PUSH1), 0,
					byte(vm.MSTORE),
				}
				code1 = append(code1, returnWord...)

				setup := newSetup(t, name, revision, state.WorldState{
					sender:   {Balance: transit.NewValue(100)},
					receiver: {Code: code0},
					third:    {Code: code1},
				})
				block := newBlock()
				receipt, err := setup.processor.Execute(&transit.Transaction{
					Sender:    &sender,
					Recipient: &receiver,
					GasLimit:  sufficientGas,
					Value:     value,
				}, &block, transit.NoopObserver{})
				if err != nil || !receipt.Success {
					t.Fatalf("execution failed: %v, %v", err, receipt.Err)
				}

				value0, value1 := value, transit.Value{}
				callValue := word(42)
				switch call.op {
				case vm.CALL:
					value0, value1 = transit.Value{}, value
				case vm.STATICCALL:
					callValue = word(0)
				}

				if got := receipt.Output; string(callValue) != string(got) {
					t.Errorf("unexpected call value, wanted %x, got %x", callValue, got)
				}
				accounts := setup.world.Accounts
				if want, got := transit.NewValue(58), accounts.GetBalance(sender); want != got {
					t.Errorf("unexpected sender balance, wanted %v, got %v", want, got)
				}
				if want, got := value0, accounts.GetBalance(receiver); want != got {
					t.Errorf("unexpected receiver balance, wanted %v, got %v", want, got)
				}
				if want, got := value1, accounts.GetBalance(third); want != got {
					t.Errorf("unexpected callee balance, wanted %v, got %v", want, got)
				}
			})
		})
	}
}

func TestProcessor_CallsWithInsufficientBalanceAreHandledCorrectly(t *testing.T) {
	for callName, call := range callTypes() {
		forEachProcessor(t, []transit.Revision{transit.R13_Cancun}, func(t *testing.T, name string, revision transit.Revision) {
			t.Run(callName, func(t *testing.T) {
				const checkValue = 55
				receiverBalance := transit.NewValue(24)

				code0 := pushCallArguments(call, sufficientGas, transit.NewValue(42), third)
				code0 = append(code0, byte(call.op))
				code0 = append(code0, returnWord...)

				code1 := []byte{
					byte(vm.PUSH1), checkValue,
					byte(vm.PUSH1), 0,
					byte(vm.MSTORE),
				}
				code1 = append(code1, returnWord...)

				setup := newSetup(t, name, revision, state.WorldState{
					sender:   {},
					receiver: {Balance: receiverBalance, Code: code0},
					third:    {Code: code1},
				})
				block := newBlock()
				receipt, err := setup.processor.Execute(&transit.Transaction{
					Sender:    &sender,
					Recipient: &receiver,
					GasLimit:  sufficientGas,
				}, &block, transit.NoopObserver{})
				if err != nil || !receipt.Success {
					t.Fatalf("execution failed: %v, %v", err, receipt.Err)
				}

				// calls without value transfer are not affected by the missing balance
				want := word(0)
				if !call.hasValue {
					want = word(checkValue)
				}
				if got := receipt.Output; string(want) != string(got) {
					t.Errorf("unexpected output, wanted %x, got %x", want, got)
				}
				if want, got := receiverBalance, setup.world.Accounts.GetBalance(receiver); want != got {
					t.Errorf("receiver balance should not be updated, wanted %v, got %v", want, got)
				}
				if got := setup.world.Accounts.GetBalance(third); !got.IsZero() {
					t.Errorf("callee balance should not be updated, got %v", got)
				}
			})
		})
	}
}

func TestProcessor_TransferToSelf(t *testing.T) {
	tests := map[string]struct {
		value   transit.Value
		success bool
	}{
		"sufficient balance": {
			value:   transit.NewValue(100),
			success: true,
		},
		"insufficient balance": {
			value:   transit.NewValue(10000),
			success: false,
		},
	}
	for testName, test := range tests {
		forEachProcessor(t, []transit.Revision{transit.R13_Cancun}, func(t *testing.T, name string, revision transit.Revision) {
			t.Run(testName, func(t *testing.T) {
				senderBalance := transit.NewValue(1000)
				setup := newSetup(t, name, revision, state.WorldState{
					sender: {Balance: senderBalance},
				})
				block := newBlock()
				receipt, err := setup.processor.Execute(&transit.Transaction{
					Sender:    &sender,
					Recipient: &sender,
					GasLimit:  sufficientGas,
					Value:     test.value,
				}, &block, transit.NoopObserver{})
				if err != nil {
					t.Fatalf("execution failed with error %v", err)
				}
				if want, got := test.success, receipt.Success; want != got {
					t.Errorf("unexpected success, wanted %v, got %v", want, got)
				}
				if want, got := senderBalance, setup.world.Accounts.GetBalance(sender); want != got {
					t.Errorf("sender balance should not be updated, wanted %v, got %v", want, got)
				}
			})
		})
	}
}
