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
	"fmt"
	"math"

	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/params"
)

// IntrinsicGas computes the gas charged for a transaction before any code is
// executed. It covers the base cost, the payload, init code metering for
// creations, and the declared access list.
func IntrinsicGas(tx *transit.Transaction, rules transit.ForkRules) (transit.Gas, error) {
	isCreation := tx.IsContractCreation()

	var gas uint64 = params.TxGas
	if isCreation && rules.ChargeForTopLevelCreate {
		gas = params.TxGasContractCreation
	}

	dataLen := uint64(len(tx.Input))
	if dataLen > 0 {
		nonZeroBytes := uint64(0)
		for _, b := range tx.Input {
			if b != 0 {
				nonZeroBytes++
			}
		}
		zeroBytes := dataLen - nonZeroBytes

		nonZeroGas := params.TxDataNonZeroGasFrontier
		if rules.IsEip2028Enabled {
			nonZeroGas = params.TxDataNonZeroGasEIP2028
		}
		if (math.MaxInt64-gas)/nonZeroGas < nonZeroBytes {
			return 0, fmt.Errorf("%w: %d non-zero payload bytes", transit.ErrGasUintOverflow, nonZeroBytes)
		}
		gas += nonZeroBytes * nonZeroGas

		if (math.MaxInt64-gas)/params.TxDataZeroGas < zeroBytes {
			return 0, fmt.Errorf("%w: %d zero payload bytes", transit.ErrGasUintOverflow, zeroBytes)
		}
		gas += zeroBytes * params.TxDataZeroGas

		if isCreation && rules.IsEip3860Enabled {
			words := (dataLen + 31) / 32
			if (math.MaxInt64-gas)/params.InitCodeWordGas < words {
				return 0, fmt.Errorf("%w: %d init code words", transit.ErrGasUintOverflow, words)
			}
			gas += words * params.InitCodeWordGas
		}
	}

	if rules.UseTxAccessLists && len(tx.AccessList) > 0 {
		addresses := uint64(len(tx.AccessList))
		keys := uint64(tx.StorageKeyCount())
		if (math.MaxInt64-gas)/params.TxAccessListAddressGas < addresses {
			return 0, fmt.Errorf("%w: %d access list addresses", transit.ErrGasUintOverflow, addresses)
		}
		gas += addresses * params.TxAccessListAddressGas
		if (math.MaxInt64-gas)/params.TxAccessListStorageKeyGas < keys {
			return 0, fmt.Errorf("%w: %d access list keys", transit.ErrGasUintOverflow, keys)
		}
		gas += keys * params.TxAccessListStorageKeyGas
	}
	return transit.Gas(gas), nil
}
