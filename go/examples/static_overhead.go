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
)

// GetStaticOverheadExample provides a minimal contract echoing its argument.
// Running it is dominated by the fixed costs of executing a transaction:
// intrinsic gas, account access, and the set-up of the interpreter.
func GetStaticOverheadExample() Example {
	code := []byte{
		byte(vm.PUSH1), 4, // size
		byte(vm.PUSH1), 32, // offset
		byte(vm.PUSH1), 28, // destOffset
		byte(vm.CALLDATACOPY), // copy the low 4 bytes of the argument into memory
		byte(vm.PUSH1), 32,
		byte(vm.PUSH1), 0,
		byte(vm.RETURN),
	}

	return Example{
		Name:      "static_overhead",
		Code:      code,
		reference: identity,
	}
}
