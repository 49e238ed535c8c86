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

import "github.com/Fantom-foundation/Floria/go/transit"

// EffectiveGasPrice computes the price per gas paid by the sender. Once the
// fee market is active, dynamic-fee transactions pay the base fee plus their
// premium, capped by the fee cap. All other transactions pay their declared
// price.
func EffectiveGasPrice(tx *transit.Transaction, baseFee transit.Value, rules transit.ForkRules) transit.Value {
	if !rules.IsEip1559Enabled || !tx.IsEip1559() {
		return tx.MaxPriorityFeePerGas()
	}
	price, overflow := transit.Add(baseFee, tx.GasPremium)
	if overflow {
		return tx.FeeCap
	}
	return transit.Min(tx.FeeCap, price)
}

// PriorityFeePerGas computes the share of the gas price credited to the block
// beneficiary. Fee-exempt transactions with a fee cap below the base fee pay
// no premium. For all others the premium is limited by the headroom between
// the fee cap and the base fee.
func PriorityFeePerGas(tx *transit.Transaction, baseFee transit.Value, isFree bool) transit.Value {
	feeCap := tx.MaxFeePerGas()
	if isFree && feeCap.Cmp(baseFee) < 0 {
		return transit.Value{}
	}
	headroom, underflow := transit.Sub(feeCap, baseFee)
	if underflow {
		return transit.Value{}
	}
	return transit.Min(tx.MaxPriorityFeePerGas(), headroom)
}
