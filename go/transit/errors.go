// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package transit

// ConstError is a error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// Reasons for rejecting a transaction before any gas beyond the nominal
// block charge is spent.
const (
	ErrMinerPremiumNegative      = ConstError("miner premium is negative")
	ErrSenderNotSpecified        = ConstError("sender not specified")
	ErrGasLimitBelowIntrinsicGas = ConstError("gas limit below intrinsic gas")
	ErrBlockGasLimitExceeded     = ConstError("block gas limit exceeded")
	ErrSenderAccountDoesNotExist = ConstError("sender account does not exist")
	ErrInsufficientSenderBalance = ConstError("insufficient sender balance")
	ErrWrongTransactionNonce     = ConstError("wrong transaction nonce")
)

// Failures detected after the gas reservation. They roll back to the
// post-reservation snapshot while the gas is still consumed.
const (
	ErrContractCollision = ConstError("contract address collision")
	ErrOutOfGas          = ConstError("out of gas")
	ErrInvalidCode       = ConstError("invalid code")
	ErrExecutionReverted = ConstError("execution reverted")
	ErrExecutionFailed   = ConstError("execution failed")
	ErrGasUintOverflow   = ConstError("gas uint64 overflow")

	ErrInsufficientBalanceForTransfer = ConstError("insufficient balance for transfer")
)
