// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"errors"
	"testing"

	"github.com/Fantom-foundation/Floria/go/transit"
	"go.uber.org/mock/gomock"
)

func TestExamples_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, example := range GetAllExamples() {
		if seen[example.Name] {
			t.Errorf("duplicate example name %q", example.Name)
		}
		seen[example.Name] = true
		if len(example.Code) == 0 {
			t.Errorf("example %q has no code", example.Name)
		}
		got, err := GetExample(example.Name)
		if err != nil {
			t.Fatalf("failed to resolve example %q: %v", example.Name, err)
		}
		if got.Name != example.Name {
			t.Errorf("resolved wrong example, wanted %q, got %q", example.Name, got.Name)
		}
	}
	if _, err := GetExample("unknown"); err == nil {
		t.Errorf("resolving an unknown example should fail")
	}
}

func TestExamples_AnalysisCodeHasMaximumSize(t *testing.T) {
	for _, example := range []Example{
		GetJumpdestAnalysisExample(),
		GetStopAnalysisExample(),
		GetPush1AnalysisExample(),
	} {
		if want, got := 0x6000, len(example.Code); want != got {
			t.Errorf("unexpected code size of %s, wanted %d, got %d", example.Name, want, got)
		}
	}
}

func TestExample_TransactionEncodesArgument(t *testing.T) {
	example := GetArithmeticExample()
	sender := transit.Address{1}
	contract := transit.Address{2}
	tx := example.Transaction(sender, contract, 7, 100_000, 0x01020304)

	if tx.Sender == nil || *tx.Sender != sender {
		t.Errorf("unexpected sender: %v", tx.Sender)
	}
	if tx.Recipient == nil || *tx.Recipient != contract {
		t.Errorf("unexpected recipient: %v", tx.Recipient)
	}
	if want, got := uint64(7), tx.Nonce; want != got {
		t.Errorf("unexpected nonce, wanted %d, got %d", want, got)
	}
	if want, got := 36, len(tx.Input); want != got {
		t.Fatalf("unexpected input length, wanted %d, got %d", want, got)
	}
	if want, got := (transit.Data{0xCC, 0x82, 0x1C, 0x09}), tx.Input[:4]; string(want) != string(got) {
		t.Errorf("unexpected selector, wanted %x, got %x", want, got)
	}
	if want, got := (transit.Data{1, 2, 3, 4}), tx.Input[32:]; string(want) != string(got) {
		t.Errorf("unexpected argument encoding, wanted %x, got %x", want, got)
	}
}

func TestExample_RunOnDecodesOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor := transit.NewMockProcessor(ctrl)

	example := GetStaticOverheadExample()
	tx := example.Transaction(transit.Address{1}, transit.Address{2}, 0, 100_000, 42)
	block := &transit.BlockContext{}

	output := make(transit.Data, 32)
	output[31] = 42
	processor.EXPECT().Execute(tx, block, gomock.Any()).Return(transit.Receipt{
		Success: true,
		GasUsed: 21500,
		Output:  output,
	}, nil)

	result, err := example.RunOn(processor, block, tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := 42, result.Result; want != got {
		t.Errorf("unexpected result, wanted %d, got %d", want, got)
	}
	if want, got := transit.Gas(21500), result.GasUsed; want != got {
		t.Errorf("unexpected gas used, wanted %d, got %d", want, got)
	}
}

func TestExample_RunOnReportsFailures(t *testing.T) {
	example := GetStaticOverheadExample()
	tx := example.Transaction(transit.Address{1}, transit.Address{2}, 0, 100_000, 42)
	block := &transit.BlockContext{}
	injected := errors.New("injected")

	tests := map[string]struct {
		receipt transit.Receipt
		err     error
	}{
		"processor error": {
			err: injected,
		},
		"failed execution": {
			receipt: transit.Receipt{Err: transit.ErrOutOfGas},
		},
		"malformed output": {
			receipt: transit.Receipt{Success: true, Output: transit.Data{1, 2, 3}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			processor := transit.NewMockProcessor(ctrl)
			processor.EXPECT().Execute(tx, block, gomock.Any()).Return(test.receipt, test.err)
			if _, err := example.RunOn(processor, block, tx); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestExample_ReferenceFunctions(t *testing.T) {
	for _, example := range GetAllExamples() {
		if example.Name == "arithmetic" || example.Name == "sha3" {
			continue
		}
		for _, x := range []int{0, 1, 17} {
			if want, got := x, example.RunReference(x); want != got {
				t.Errorf("unexpected reference result of %s(%d): %d", example.Name, x, got)
			}
		}
	}
	sha3 := GetSha3Example()
	if want, got := 0, sha3.RunReference(0); want != got {
		t.Errorf("unexpected sha3 reference result, wanted %d, got %d", want, got)
	}
	arithmetic := GetArithmeticExample()
	if want, got := 0, arithmetic.RunReference(0); want != got {
		t.Errorf("unexpected arithmetic reference result, wanted %d, got %d", want, got)
	}
}
