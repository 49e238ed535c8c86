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
	"fmt"
	"testing"

	"github.com/Fantom-foundation/Floria/go/examples"
	"github.com/Fantom-foundation/Floria/go/state"
	"github.com/Fantom-foundation/Floria/go/transit"
)

func TestProcessor_Examples(t *testing.T) {
	revisions := []transit.Revision{transit.R12_Shanghai, transit.R13_Cancun}
	for _, example := range examples.GetAllExamples() {
		forEachProcessor(t, revisions, func(t *testing.T, name string, revision transit.Revision) {
			t.Run(example.Name, func(t *testing.T) {
				setup := newSetup(t, name, revision, state.WorldState{
					sender:   {},
					receiver: {Code: example.Code},
				})
				block := newBlock()
				for i := 0; i < 10; i++ {
					tx := example.Transaction(sender, receiver, uint64(i), sufficientGas, i)
					got, err := example.RunOn(setup.processor, &block, tx)
					if err != nil {
						t.Fatalf("failed to run %s(%d): %v", example.Name, i, err)
					}
					if want := example.RunReference(i); want != got.Result {
						t.Errorf("incorrect result of %s(%d), wanted %d, got %d", example.Name, i, want, got.Result)
					}
				}
			})
		})
	}
}

func BenchmarkProcessor_Examples(b *testing.B) {
	const argument = 10
	for _, example := range examples.GetAllExamples() {
		for _, name := range getProcessorNames() {
			b.Run(fmt.Sprintf("%s/%s", name, example.Name), func(b *testing.B) {
				setup := newSetup(b, name, transit.R13_Cancun, state.WorldState{
					sender:   {},
					receiver: {Code: example.Code},
				})
				block := newBlock()
				want := example.RunReference(argument)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					tx := example.Transaction(sender, receiver, uint64(i), sufficientGas, argument)
					got, err := example.RunOn(setup.processor, &block, tx)
					if err != nil {
						b.Fatalf("failed to run %s: %v", example.Name, err)
					}
					if want != got.Result {
						b.Fatalf("incorrect result, wanted %d, got %d", want, got.Result)
					}
				}
			})
		}
	}
}
