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
	"encoding/hex"
	"fmt"

	"github.com/Fantom-foundation/Floria/go/transit"
)

// Example is a contract with an entry point of a (int)->int signature,
// accompanied by a native function computing the same result.
type Example struct {
	Name      string
	Code      transit.Code
	function  uint32        // selector of the entry point
	reference func(int) int // computes the expected result
}

// Result is the outcome of running an example as a transaction.
type Result struct {
	Result  int
	GasUsed transit.Gas
}

// GetAllExamples lists all known examples.
func GetAllExamples() []Example {
	return []Example{
		GetArithmeticExample(),
		GetSha3Example(),
		GetGasBurnerExample(),
		GetStaticOverheadExample(),
		GetJumpdestAnalysisExample(),
		GetStopAnalysisExample(),
		GetPush1AnalysisExample(),
		GetPush32AnalysisExample(),
	}
}

// GetExample resolves an example by its name.
func GetExample(name string) (Example, error) {
	for _, example := range GetAllExamples() {
		if example.Name == name {
			return example, nil
		}
	}
	return Example{}, fmt.Errorf("unknown example: %q", name)
}

// Transaction creates a transaction calling the example's entry point,
// expected to be deployed at the given contract address.
func (e *Example) Transaction(sender, contract transit.Address, nonce uint64, gasLimit transit.Gas, argument int) *transit.Transaction {
	return &transit.Transaction{
		Type:      transit.LegacyTxType,
		Nonce:     nonce,
		GasLimit:  gasLimit,
		Sender:    &sender,
		Recipient: &contract,
		Input:     encodeArgument(e.function, argument),
	}
}

// RunOn executes the given transaction, which needs to be created by this
// example's Transaction method, and decodes the result.
func (e *Example) RunOn(processor transit.Processor, block *transit.BlockContext, tx *transit.Transaction) (Result, error) {
	receipt, err := processor.Execute(tx, block, transit.NoopObserver{})
	if err != nil {
		return Result{}, err
	}
	if !receipt.Success {
		return Result{}, fmt.Errorf("execution of %s failed: %w", e.Name, receipt.Err)
	}
	result, err := decodeOutput(receipt.Output)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Result:  result,
		GasUsed: receipt.GasUsed,
	}, nil
}

// RunReference runs the reference function of this example to produce the expected result.
func (e *Example) RunReference(argument int) int {
	return e.reference(argument)
}

func encodeArgument(function uint32, arg int) transit.Data {
	// the selector is followed by the argument padded to 32 bytes
	data := make(transit.Data, 4+32)

	data[0] = byte(function >> 24)
	data[1] = byte(function >> 16)
	data[2] = byte(function >> 8)
	data[3] = byte(function)

	data[4+28] = byte(arg >> 24)
	data[5+28] = byte(arg >> 16)
	data[6+28] = byte(arg >> 8)
	data[7+28] = byte(arg)

	return data
}

func decodeOutput(output transit.Data) (int, error) {
	if len(output) != 32 {
		return 0, fmt.Errorf("unexpected length of output; wanted 32, got %d", len(output))
	}
	return (int(output[28]) << 24) | (int(output[29]) << 16) | (int(output[30]) << 8) | (int(output[31]) << 0), nil
}

func mustDecodeHex(code string) []byte {
	res, err := hex.DecodeString(code)
	if err != nil {
		panic(fmt.Sprintf("invalid example code: %v", err))
	}
	return res
}
