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
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/params"
)

// generateAnalysisCode produces a contract of maximum size consisting mostly
// of the given filler, which is jumped over. Running it returns its argument.
// The cost of running it is dominated by the analysis of the code.
func generateAnalysisCode(filler []byte) []byte {
	initCode := []byte{
		// Parse the input parameter.
		byte(vm.PUSH1), 4,
		byte(vm.CALLDATALOAD),

		// Store result (input) in memory[0].
		byte(vm.PUSH1), 0,
		byte(vm.MSTORE),

		// Jump over filler code (destination is a placeholder).
		byte(vm.PUSH2), 0xFF, 0xFF,
		byte(vm.JUMP),
	}

	endingCode := []byte{
		byte(vm.JUMPDEST),

		// Return the result from memory[0].
		byte(vm.PUSH1), 32,
		byte(vm.PUSH1), 0,
		byte(vm.RETURN),
	}

	maxFillerCodeLength := params.MaxCodeSize - len(initCode) - len(endingCode)
	fillerCode := []byte{}
	for i := 0; i < maxFillerCodeLength/len(filler); i++ {
		fillerCode = append(fillerCode, filler...)
	}

	jumpdest := len(initCode) + len(fillerCode)
	initCode[7] = byte(jumpdest >> 8)
	initCode[8] = byte(jumpdest)

	code := append(initCode, fillerCode...)
	return append(code, endingCode...)
}

func newAnalysisExample(name string, filler []byte) Example {
	return Example{
		Name:      name,
		Code:      generateAnalysisCode(filler),
		reference: identity,
	}
}

func GetJumpdestAnalysisExample() Example {
	return newAnalysisExample("jumpdest", []byte{byte(vm.JUMPDEST)})
}

func GetStopAnalysisExample() Example {
	return newAnalysisExample("stop", []byte{byte(vm.STOP)})
}

func GetPush1AnalysisExample() Example {
	return newAnalysisExample("push1", []byte{byte(vm.PUSH1), 0})
}

func GetPush32AnalysisExample() Example {
	return newAnalysisExample("push32", append([]byte{byte(vm.PUSH32)}, make([]byte, 32)...))
}

func identity(x int) int {
	return x
}
