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
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/params"
)

// DestroyRefund is the refund granted per destroyed account.
func DestroyRefund(rules transit.ForkRules) transit.Gas {
	if rules.IsEip3529Enabled {
		return 0
	}
	return transit.Gas(params.SelfdestructRefundGas)
}

// ClaimableRefund caps the accumulated refund by a fraction of the spent gas.
func ClaimableRefund(spentGas, totalRefund transit.Gas, rules transit.ForkRules) transit.Gas {
	quotient := transit.Gas(params.RefundQuotient)
	if rules.IsEip3529Enabled {
		quotient = transit.Gas(params.RefundQuotientEIP3529)
	}
	return min(totalRefund, spentGas/quotient)
}

// refund credits the unspent gas and the claimable refund to the sender and
// returns the gas spent by the transaction. Failed executions forfeit the
// full gas limit; reverted ones only keep their unspent gas.
func (e *execution) refund(unspentGas transit.Gas, substate *transit.Substate) transit.Gas {
	spentGas := e.tx.GasLimit
	if substate.IsError {
		return spentGas
	}
	spentGas -= unspentGas

	refund := transit.Gas(0)
	if !substate.ShouldRevert {
		total := substate.Refund + transit.Gas(len(substate.DestroyList))*DestroyRefund(e.rules)
		refund = ClaimableRefund(spentGas, total, e.rules)
	}

	e.log.Debugf("Refunding unused gas of %d and refund of %d", unspentGas, refund)
	e.state.AddToBalance(e.sender, e.gasPrice.Scale(uint64(unspentGas+refund)), e.rules)
	return spentGas - refund
}
