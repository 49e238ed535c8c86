// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"testing"

	"github.com/Fantom-foundation/Floria/go/transit"
	"go.uber.org/mock/gomock"
)

func TestAccounts_NewAccountIsEmpty(t *testing.T) {
	accounts := NewAccounts()
	address := transit.Address{1}
	if accounts.AccountExists(address) {
		t.Fatalf("account should not exist")
	}
	accounts.CreateAccount(address, transit.NewValue(12))
	if !accounts.AccountExists(address) {
		t.Fatalf("account should exist")
	}
	if want, got := transit.NewValue(12), accounts.GetBalance(address); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	if want, got := EmptyCodeHash, accounts.GetCodeHash(address); want != got {
		t.Errorf("unexpected code hash, wanted %v, got %v", want, got)
	}
	if want, got := EmptyRootHash, accounts.GetStorageRoot(address); want != got {
		t.Errorf("unexpected storage root, wanted %v, got %v", want, got)
	}
}

func TestAccounts_RestoreUndoesChangesAfterSnapshot(t *testing.T) {
	accounts := NewAccounts()
	address := transit.Address{1}
	rules := transit.ForkRules{}
	accounts.CreateAccount(address, transit.NewValue(100))
	accounts.IncrementNonce(address)

	snapshot := accounts.TakeSnapshot()
	accounts.SubtractFromBalance(address, transit.NewValue(40), rules)
	accounts.IncrementNonce(address)
	accounts.CreateAccount(transit.Address{2}, transit.NewValue(1))

	if want, got := transit.NewValue(60), accounts.GetBalance(address); want != got {
		t.Fatalf("unexpected balance, wanted %v, got %v", want, got)
	}

	accounts.Restore(snapshot)
	if want, got := transit.NewValue(100), accounts.GetBalance(address); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	if want, got := uint64(1), accounts.GetNonce(address); want != got {
		t.Errorf("unexpected nonce, wanted %v, got %v", want, got)
	}
	if accounts.AccountExists(transit.Address{2}) {
		t.Errorf("account created after snapshot should be gone")
	}
}

func TestAccounts_NestedSnapshotsCanBeRestoredInReverseOrder(t *testing.T) {
	accounts := NewAccounts()
	address := transit.Address{1}
	accounts.CreateAccount(address, transit.Value{})

	snapshots := []transit.Snapshot{}
	for i := 0; i < 5; i++ {
		snapshots = append(snapshots, accounts.TakeSnapshot())
		accounts.IncrementNonce(address)
	}
	for i := len(snapshots) - 1; i >= 0; i-- {
		accounts.Restore(snapshots[i])
		if want, got := uint64(i), accounts.GetNonce(address); want != got {
			t.Errorf("unexpected nonce after restoring snapshot %d, wanted %d, got %d", i, want, got)
		}
	}
}

func TestAccounts_ResetDiscardsUncommittedChanges(t *testing.T) {
	accounts := NewAccounts()
	address := transit.Address{1}
	accounts.CreateAccount(address, transit.NewValue(5))
	accounts.Commit(transit.ForkRules{}, nil)

	accounts.AddToBalance(address, transit.NewValue(5), transit.ForkRules{})
	accounts.DeleteAccount(address)
	accounts.Reset()

	if want, got := transit.NewValue(5), accounts.GetBalance(address); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
}

func TestAccounts_CommitRemovesTouchedEmptyAccountsIfEnabled(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		accounts := NewAccounts()
		touched := transit.Address{1}
		untouched := transit.Address{2}
		accounts.CreateAccount(touched, transit.Value{})
		accounts.CreateAccount(untouched, transit.Value{})
		accounts.Commit(transit.ForkRules{}, nil)

		accounts.AddToBalance(touched, transit.Value{}, transit.ForkRules{})
		accounts.Commit(transit.ForkRules{IsEip158Enabled: enabled}, nil)

		if want, got := !enabled, accounts.AccountExists(touched); want != got {
			t.Errorf("eip158=%t: unexpected existence of touched account, wanted %t, got %t", enabled, want, got)
		}
		if !accounts.AccountExists(untouched) {
			t.Errorf("eip158=%t: untouched account should not be removed", enabled)
		}
	}
}

func TestAccounts_CommitReportsChangesToStateObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := transit.NewMockObserver(ctrl)

	accounts := NewAccounts()
	address := transit.Address{1}
	accounts.CreateAccount(address, transit.NewValue(10))
	accounts.Commit(transit.ForkRules{}, nil)

	accounts.AddToBalance(address, transit.NewValue(5), transit.ForkRules{})
	accounts.AddToBalance(address, transit.NewValue(5), transit.ForkRules{})
	accounts.IncrementNonce(address)

	observer.EXPECT().IsTracingState().Return(true)
	observer.EXPECT().ReportBalanceChange(address, transit.NewValue(10), transit.NewValue(20))
	observer.EXPECT().ReportNonceChange(address, uint64(0), uint64(1))

	accounts.Commit(transit.ForkRules{}, observer)
}

func TestAccounts_CommitReportsCreatedAccountsWithoutCodeChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := transit.NewMockObserver(ctrl)

	accounts := NewAccounts()
	created, funded := transit.Address{1}, transit.Address{2}
	accounts.CreateAccount(created, transit.NewValue(10))
	accounts.AddToBalance(funded, transit.NewValue(3), transit.ForkRules{})

	observer.EXPECT().IsTracingState().Return(true)
	observer.EXPECT().ReportBalanceChange(created, transit.NewValue(0), transit.NewValue(10))
	observer.EXPECT().ReportBalanceChange(funded, transit.NewValue(0), transit.NewValue(3))

	accounts.Commit(transit.ForkRules{}, observer)
}

func TestAccounts_CommitReportsDeletedAccountsWithoutCodeChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := transit.NewMockObserver(ctrl)

	accounts := NewAccounts()
	address := transit.Address{1}
	accounts.CreateAccount(address, transit.NewValue(10))
	accounts.IncrementNonce(address)
	accounts.Commit(transit.ForkRules{}, nil)

	accounts.DeleteAccount(address)

	observer.EXPECT().IsTracingState().Return(true)
	observer.EXPECT().ReportBalanceChange(address, transit.NewValue(10), transit.NewValue(0))
	observer.EXPECT().ReportNonceChange(address, uint64(1), uint64(0))

	accounts.Commit(transit.ForkRules{}, observer)
}

func TestAccounts_UpdateCodeRegistersCodeByHash(t *testing.T) {
	accounts := NewAccounts()
	address := transit.Address{1}
	code := transit.Code{0x60, 0x00}
	accounts.CreateAccount(address, transit.Value{})

	hash := accounts.UpdateCode(code)
	if want, got := HashCode(code), hash; want != got {
		t.Fatalf("unexpected code hash, wanted %v, got %v", want, got)
	}
	accounts.UpdateCodeHash(address, hash, transit.ForkRules{})
	if want, got := code, accounts.GetCode(address); string(want) != string(got) {
		t.Errorf("unexpected code, wanted %x, got %x", want, got)
	}
}

func TestAccounts_DeleteOfMissingAccountIsIgnored(t *testing.T) {
	accounts := NewAccounts()
	accounts.DeleteAccount(transit.Address{1})
	if want, got := transit.Snapshot(0), accounts.TakeSnapshot(); want != got {
		t.Errorf("no change should be recorded, wanted snapshot %d, got %d", want, got)
	}
}

func TestAccounts_StateRootOfEmptyStateIsEmptyRoot(t *testing.T) {
	accounts := NewAccounts()
	accounts.RecalculateStateRoot()
	if want, got := EmptyRootHash, accounts.StateRoot(); want != got {
		t.Errorf("unexpected state root, wanted %v, got %v", want, got)
	}
}

func TestAccounts_StateRootDependsOnContentOnly(t *testing.T) {
	a := NewAccounts()
	b := NewAccounts()
	for i := byte(0); i < 10; i++ {
		a.CreateAccount(transit.Address{i}, transit.NewValue(uint64(i)))
		b.CreateAccount(transit.Address{9 - i}, transit.NewValue(uint64(9-i)))
	}
	a.RecalculateStateRoot()
	b.RecalculateStateRoot()
	if a.StateRoot() != b.StateRoot() {
		t.Errorf("state roots differ: %v vs %v", a.StateRoot(), b.StateRoot())
	}

	b.IncrementNonce(transit.Address{3})
	b.RecalculateStateRoot()
	if a.StateRoot() == b.StateRoot() {
		t.Errorf("state roots of different states should differ")
	}
}
