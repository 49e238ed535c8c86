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
)

var (
	sender   = transit.Address{1}
	receiver = transit.Address{2}
	third    = transit.Address{3}
)

func TestProcessor_LegacyTransferPaysDeclaredPrice(t *testing.T) {
	forEachProcessor(t, []transit.Revision{transit.R09_Berlin}, func(t *testing.T, name string, revision transit.Revision) {
		block := newBlock()
		scenario := Scenario{
			Revision: revision,
			Before: state.WorldState{
				sender: {Balance: transit.NewValue(100_000)},
			},
			After: state.WorldState{
				sender:            {Balance: transit.NewValue(100_000 - 21_000*2 - 10), Nonce: 1},
				receiver:          {Balance: transit.NewValue(10)},
				block.Beneficiary: {Balance: transit.NewValue(21_000 * 2)},
			},
			Block: block,
			Transaction: transit.Transaction{
				Type:      transit.LegacyTxType,
				Sender:    &sender,
				Recipient: &receiver,
				GasLimit:  30_000,
				GasPrice:  transit.NewValue(2),
				Value:     transit.NewValue(10),
			},
			Receipt: transit.Receipt{
				Success: true,
				GasUsed: 21_000,
			},
		}
		scenario.Run(t, name)
	})
}

func TestProcessor_DynamicFeeTransferBurnsBaseFee(t *testing.T) {
	revisions := []transit.Revision{transit.R10_London, transit.R13_Cancun}
	forEachProcessor(t, revisions, func(t *testing.T, name string, revision transit.Revision) {
		block := newBlock()
		block.BaseFee = transit.NewValue(7)
		scenario := Scenario{
			Revision: revision,
			Before: state.WorldState{
				sender: {Balance: transit.NewValue(1_000_000)},
			},
			After: state.WorldState{
				// the sender pays base fee plus premium, only the premium goes to the beneficiary
				sender:            {Balance: transit.NewValue(1_000_000 - 21_000*9 - 5), Nonce: 1},
				receiver:          {Balance: transit.NewValue(5)},
				block.Beneficiary: {Balance: transit.NewValue(21_000 * 2)},
			},
			Block: block,
			Transaction: transit.Transaction{
				Type:       transit.DynamicFeeTxType,
				Sender:     &sender,
				Recipient:  &receiver,
				GasLimit:   50_000,
				FeeCap:     transit.NewValue(10),
				GasPremium: transit.NewValue(2),
				Value:      transit.NewValue(5),
			},
			Receipt: transit.Receipt{
				Success: true,
				GasUsed: 21_000,
			},
		}
		scenario.Run(t, name)
	})
}

func TestProcessor_FeeCapBelowBaseFeeIsRejected(t *testing.T) {
	forEachProcessor(t, []transit.Revision{transit.R10_London}, func(t *testing.T, name string, revision transit.Revision) {
		block := newBlock()
		block.BaseFee = transit.NewValue(7)
		before := state.WorldState{
			sender: {Balance: transit.NewValue(1_000_000)},
		}
		scenario := Scenario{
			Revision: revision,
			Before:   before,
			After:    before,
			Block:    block,
			Transaction: transit.Transaction{
				Type:       transit.DynamicFeeTxType,
				Sender:     &sender,
				Recipient:  &receiver,
				GasLimit:   50_000,
				FeeCap:     transit.NewValue(6),
				GasPremium: transit.NewValue(1),
			},
			Receipt: transit.Receipt{
				GasUsed: 50_000,
			},
		}
		scenario.Run(t, name)
	})
}

func TestProcessor_AccessListIsCharged(t *testing.T) {
	revisions := []transit.Revision{transit.R09_Berlin, transit.R10_London}
	forEachProcessor(t, revisions, func(t *testing.T, name string, revision transit.Revision) {
		const gasUsed = 21_000 + 2_400 + 2*1_900
		block := newBlock()
		scenario := Scenario{
			Revision: revision,
			Before: state.WorldState{
				sender: {Balance: transit.NewValue(100_000)},
			},
			After: state.WorldState{
				sender:            {Balance: transit.NewValue(100_000 - gasUsed), Nonce: 1},
				block.Beneficiary: {Balance: transit.NewValue(gasUsed)},
			},
			Block: block,
			Transaction: transit.Transaction{
				Type:      transit.AccessListTxType,
				Sender:    &sender,
				Recipient: &receiver,
				GasLimit:  50_000,
				GasPrice:  transit.NewValue(1),
				AccessList: []transit.AccessTuple{{
					Address: third,
					Keys:    []transit.Key{{1}, {2}},
				}},
			},
			Receipt: transit.Receipt{
				Success: true,
				GasUsed: gasUsed,
			},
		}
		scenario.Run(t, name)
	})
}

func TestProcessor_GasUsedAccumulatesInBlock(t *testing.T) {
	forEachProcessor(t, []transit.Revision{transit.R13_Cancun}, func(t *testing.T, name string, revision transit.Revision) {
		setup := newSetup(t, name, revision, state.WorldState{
			sender: {Balance: transit.NewValue(1_000_000)},
		})
		block := newBlock()
		for i := 0; i < 3; i++ {
			tx := &transit.Transaction{
				Type:      transit.LegacyTxType,
				Nonce:     uint64(i),
				Sender:    &sender,
				Recipient: &receiver,
				GasLimit:  21_000,
				GasPrice:  transit.NewValue(1),
			}
			receipt, err := setup.processor.Execute(tx, &block, transit.NoopObserver{})
			if err != nil || !receipt.Success {
				t.Fatalf("transaction %d failed: %v, %v", i, err, receipt.Err)
			}
		}
		if want, got := transit.Gas(3*21_000), block.GasUsed; want != got {
			t.Errorf("unexpected block gas usage, wanted %d, got %d", want, got)
		}
		if want, got := uint64(3), setup.world.Accounts.GetNonce(sender); want != got {
			t.Errorf("unexpected sender nonce, wanted %d, got %d", want, got)
		}
	})
}
