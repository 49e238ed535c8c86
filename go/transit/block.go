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

// ElasticityMultiplier bounds the maximum gas limit a fee-market block may
// have relative to its target.
const ElasticityMultiplier = 2

// BlockContext describes the block a transaction is executed in. The block is
// owned by the caller; processors only increment GasUsed, which accumulates
// the gas spent by all transactions of the block processed so far.
type BlockContext struct {
	Number      int64   `json:"number"`
	Timestamp   int64   `json:"timestamp"`
	BaseFee     Value   `json:"baseFee"`
	GasLimit    Gas     `json:"gasLimit"`
	GasUsed     Gas     `json:"gasUsed"`
	Beneficiary Address `json:"coinbase"`
	PrevRandao  Hash    `json:"prevRandao"`
}

// ActualGasLimit returns the gas available to the block under the given rules.
// On the block activating the fee market, the gas limit of the parent is
// scaled to the new elastic limit.
func (b *BlockContext) ActualGasLimit(rules ForkRules) Gas {
	if rules.IsEip1559Enabled && b.Number == rules.Eip1559TransitionBlock {
		return b.GasLimit * ElasticityMultiplier
	}
	return b.GasLimit
}

// RemainingGas is the gas that can still be allotted to transactions of the block.
func (b *BlockContext) RemainingGas(rules ForkRules) Gas {
	return b.ActualGasLimit(rules) - b.GasUsed
}
