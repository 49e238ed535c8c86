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
	"fmt"

	"github.com/Fantom-foundation/Floria/go/transit"
)

// Accounts is an in-memory transit.StateStore. Changes are recorded in an
// index-based journal until they are committed. Accounts is not thread-safe.
type Accounts struct {
	accounts map[transit.Address]transit.Account
	codes    map[transit.Hash]transit.Code
	touched  map[transit.Address]struct{}
	journal  journal[accountChange]
	root     transit.Hash
}

// accountChange records the state of an account before a modification.
type accountChange struct {
	address    transit.Address
	previous   transit.Account
	existed    bool
	wasTouched bool
}

func NewAccounts() *Accounts {
	return &Accounts{
		accounts: map[transit.Address]transit.Account{},
		codes:    map[transit.Hash]transit.Code{EmptyCodeHash: nil},
		touched:  map[transit.Address]struct{}{},
		root:     EmptyRootHash,
	}
}

func (a *Accounts) AccountExists(address transit.Address) bool {
	_, found := a.accounts[address]
	return found
}

func (a *Accounts) GetBalance(address transit.Address) transit.Value {
	return a.accounts[address].Balance
}

func (a *Accounts) GetNonce(address transit.Address) uint64 {
	return a.accounts[address].Nonce
}

func (a *Accounts) GetCodeHash(address transit.Address) transit.Hash {
	account, found := a.accounts[address]
	if !found {
		return transit.Hash{}
	}
	return account.CodeHash
}

func (a *Accounts) GetCode(address transit.Address) transit.Code {
	account, found := a.accounts[address]
	if !found {
		return nil
	}
	return a.codes[account.CodeHash]
}

func (a *Accounts) GetStorageRoot(address transit.Address) transit.Hash {
	account, found := a.accounts[address]
	if !found {
		return transit.Hash{}
	}
	return account.StorageRoot
}

// GetAccount returns the full account record and whether it exists.
func (a *Accounts) GetAccount(address transit.Address) (transit.Account, bool) {
	account, found := a.accounts[address]
	return account, found
}

func (a *Accounts) CreateAccount(address transit.Address, balance transit.Value) {
	a.record(address)
	a.accounts[address] = transit.Account{
		Balance:     balance,
		CodeHash:    EmptyCodeHash,
		StorageRoot: EmptyRootHash,
	}
	a.touched[address] = struct{}{}
}

func (a *Accounts) AddToBalance(address transit.Address, amount transit.Value, _ transit.ForkRules) {
	account := a.modify(address)
	sum, overflow := transit.Add(account.Balance, amount)
	if overflow {
		panic(fmt.Sprintf("balance overflow for %v", address))
	}
	account.Balance = sum
	a.accounts[address] = account
}

func (a *Accounts) SubtractFromBalance(address transit.Address, amount transit.Value, _ transit.ForkRules) {
	account := a.modify(address)
	diff, underflow := transit.Sub(account.Balance, amount)
	if underflow {
		panic(fmt.Sprintf("insufficient balance of %v: %v < %v", address, account.Balance, amount))
	}
	account.Balance = diff
	a.accounts[address] = account
}

func (a *Accounts) IncrementNonce(address transit.Address) {
	account := a.modify(address)
	account.Nonce++
	a.accounts[address] = account
}

func (a *Accounts) DecrementNonce(address transit.Address) {
	account := a.modify(address)
	if account.Nonce == 0 {
		panic(fmt.Sprintf("nonce underflow for %v", address))
	}
	account.Nonce--
	a.accounts[address] = account
}

func (a *Accounts) SetNonce(address transit.Address, nonce uint64) {
	account := a.modify(address)
	account.Nonce = nonce
	a.accounts[address] = account
}

func (a *Accounts) UpdateCode(code transit.Code) transit.Hash {
	hash := HashCode(code)
	if _, found := a.codes[hash]; !found {
		a.codes[hash] = append(transit.Code(nil), code...)
	}
	return hash
}

func (a *Accounts) UpdateCodeHash(address transit.Address, hash transit.Hash, _ transit.ForkRules) {
	if _, found := a.codes[hash]; !found {
		panic(fmt.Sprintf("unknown code hash %v", hash))
	}
	account := a.modify(address)
	account.CodeHash = hash
	a.accounts[address] = account
}

func (a *Accounts) UpdateStorageRoot(address transit.Address, root transit.Hash) {
	if !a.AccountExists(address) {
		return
	}
	account := a.modify(address)
	account.StorageRoot = root
	a.accounts[address] = account
}

// DeleteAccount removes the given account. Deleting a missing account is a no-op.
func (a *Accounts) DeleteAccount(address transit.Address) {
	if !a.AccountExists(address) {
		return
	}
	a.record(address)
	delete(a.accounts, address)
}

func (a *Accounts) TakeSnapshot() transit.Snapshot {
	return transit.Snapshot(a.journal.length())
}

func (a *Accounts) Restore(snapshot transit.Snapshot) {
	a.journal.revert(int(snapshot), a.undo)
}

func (a *Accounts) Reset() {
	a.Restore(0)
}

func (a *Accounts) Commit(rules transit.ForkRules, observer transit.Observer) {
	if rules.IsEip158Enabled {
		for address := range a.touched {
			if account, found := a.accounts[address]; found && isEmpty(account) {
				a.record(address)
				delete(a.accounts, address)
			}
		}
	}
	if observer != nil && observer.IsTracingState() {
		a.reportChanges(observer)
	}
	a.journal.reset()
	clear(a.touched)
}

// reportChanges reports the difference between the last committed state and
// the current state of all modified accounts.
func (a *Accounts) reportChanges(observer transit.Observer) {
	originals := map[transit.Address]transit.Account{}
	var order []transit.Address
	a.journal.forEach(func(change accountChange) {
		if _, seen := originals[change.address]; seen {
			return
		}
		original := missingAccount
		if change.existed {
			original = change.previous
		}
		originals[change.address] = original
		order = append(order, change.address)
	})
	for _, address := range order {
		before := originals[address]
		after, found := a.accounts[address]
		if !found {
			after = missingAccount
		}
		if before.Balance != after.Balance {
			observer.ReportBalanceChange(address, before.Balance, after.Balance)
		}
		if before.Nonce != after.Nonce {
			observer.ReportNonceChange(address, before.Nonce, after.Nonce)
		}
		if before.CodeHash != after.CodeHash {
			observer.ReportCodeChange(address, before.CodeHash, after.CodeHash)
		}
	}
}

func (a *Accounts) RecalculateStateRoot() {
	root, err := computeStateRoot(a.accounts)
	if err != nil {
		panic(fmt.Sprintf("failed to compute state root: %v", err))
	}
	a.root = root
}

// StateRoot returns the root computed by the last RecalculateStateRoot call.
func (a *Accounts) StateRoot() transit.Hash {
	return a.root
}

// missingAccount is the state reported for accounts that do not exist.
var missingAccount = transit.Account{CodeHash: EmptyCodeHash, StorageRoot: EmptyRootHash}

// modify records the current state of the given account and returns a copy
// for modification. Missing accounts are created.
func (a *Accounts) modify(address transit.Address) transit.Account {
	a.record(address)
	a.touched[address] = struct{}{}
	account, found := a.accounts[address]
	if !found {
		account = missingAccount
	}
	return account
}

func (a *Accounts) record(address transit.Address) {
	account, found := a.accounts[address]
	_, touched := a.touched[address]
	a.journal.append(accountChange{
		address:    address,
		previous:   account,
		existed:    found,
		wasTouched: touched,
	})
}

func (a *Accounts) undo(change accountChange) {
	if change.existed {
		a.accounts[change.address] = change.previous
	} else {
		delete(a.accounts, change.address)
	}
	if change.wasTouched {
		a.touched[change.address] = struct{}{}
	} else {
		delete(a.touched, change.address)
	}
}

func isEmpty(account transit.Account) bool {
	return account.Balance.IsZero() && account.Nonce == 0 && account.CodeHash == EmptyCodeHash
}
