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
	"testing"

	"github.com/Fantom-foundation/Floria/go/transit"
)

func TestEffectiveGasPrice(t *testing.T) {
	london := transit.RulesForRevision(transit.R10_London)
	berlin := transit.RulesForRevision(transit.R09_Berlin)

	tests := map[string]struct {
		tx      transit.Transaction
		baseFee uint64
		rules   transit.ForkRules
		want    uint64
	}{
		"legacy": {
			tx:      transit.Transaction{Type: transit.LegacyTxType, GasPrice: transit.NewValue(20)},
			baseFee: 10,
			rules:   london,
			want:    20,
		},
		"dynamic fee with premium below cap": {
			tx:      transit.Transaction{Type: transit.DynamicFeeTxType, FeeCap: transit.NewValue(50), GasPremium: transit.NewValue(5)},
			baseFee: 10,
			rules:   london,
			want:    15,
		},
		"dynamic fee capped": {
			tx:      transit.Transaction{Type: transit.DynamicFeeTxType, FeeCap: transit.NewValue(12), GasPremium: transit.NewValue(5)},
			baseFee: 10,
			rules:   london,
			want:    12,
		},
		"dynamic fee below base fee": {
			tx:      transit.Transaction{Type: transit.DynamicFeeTxType, FeeCap: transit.NewValue(8), GasPremium: transit.NewValue(5)},
			baseFee: 10,
			rules:   london,
			want:    8,
		},
		"dynamic fee before fee market": {
			tx:      transit.Transaction{Type: transit.DynamicFeeTxType, FeeCap: transit.NewValue(50), GasPremium: transit.NewValue(5)},
			baseFee: 10,
			rules:   berlin,
			want:    5,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := EffectiveGasPrice(&test.tx, transit.NewValue(test.baseFee), test.rules)
			if want := transit.NewValue(test.want); want != got {
				t.Errorf("unexpected gas price, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestPriorityFeePerGas(t *testing.T) {
	tests := map[string]struct {
		feeCap  uint64
		premium uint64
		baseFee uint64
		isFree  bool
		want    uint64
	}{
		"premium below headroom":     {feeCap: 100, premium: 5, baseFee: 10, want: 5},
		"premium above headroom":     {feeCap: 12, premium: 5, baseFee: 10, want: 2},
		"fee cap equals base fee":    {feeCap: 10, premium: 5, baseFee: 10, want: 0},
		"free and fee cap too low":   {feeCap: 8, premium: 5, baseFee: 10, isFree: true, want: 0},
		"free and fee cap sufficent": {feeCap: 100, premium: 5, baseFee: 10, isFree: true, want: 5},
		"paid and fee cap too low":   {feeCap: 8, premium: 5, baseFee: 10, want: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			tx := transit.Transaction{
				Type:       transit.DynamicFeeTxType,
				FeeCap:     transit.NewValue(test.feeCap),
				GasPremium: transit.NewValue(test.premium),
			}
			got := PriorityFeePerGas(&tx, transit.NewValue(test.baseFee), test.isFree)
			if want := transit.NewValue(test.want); want != got {
				t.Errorf("unexpected priority fee, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestPriorityFeePerGas_LegacyTransactionsPayPriceAboveBaseFee(t *testing.T) {
	tx := transit.Transaction{Type: transit.LegacyTxType, GasPrice: transit.NewValue(30)}
	got := PriorityFeePerGas(&tx, transit.NewValue(10), false)
	if want := transit.NewValue(20); want != got {
		t.Errorf("unexpected priority fee, wanted %v, got %v", want, got)
	}
}
