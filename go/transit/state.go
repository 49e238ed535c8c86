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

//go:generate mockgen -source state.go -destination state_mock.go -package transit

// Snapshot is a position in the change log of a store. Restoring a snapshot
// undoes all changes recorded after it was taken.
type Snapshot int

// Account summarizes the persistent information associated to an address.
type Account struct {
	Balance     Value
	Nonce       uint64
	CodeHash    Hash
	StorageRoot Hash
}

// StateStore holds the accounts of a chain. All modifications are recorded in
// a change log which can be rolled back to a snapshot, discarded entirely by
// Reset, or made permanent by Commit.
type StateStore interface {
	AccountExists(Address) bool
	GetBalance(Address) Value
	GetNonce(Address) uint64
	GetCodeHash(Address) Hash
	GetCode(Address) Code
	GetStorageRoot(Address) Hash

	// CreateAccount creates a new account, replacing any existing one.
	CreateAccount(address Address, balance Value)
	// AddToBalance credits the given account, creating it if needed. Crediting
	// a zero amount marks the account as touched.
	AddToBalance(address Address, amount Value, rules ForkRules)
	// SubtractFromBalance debits the given account. Callers must make sure
	// the balance is sufficient.
	SubtractFromBalance(address Address, amount Value, rules ForkRules)
	IncrementNonce(Address)
	DecrementNonce(Address)
	SetNonce(address Address, nonce uint64)

	// UpdateCode registers the given code and returns its hash.
	UpdateCode(Code) Hash
	UpdateCodeHash(address Address, hash Hash, rules ForkRules)
	UpdateStorageRoot(address Address, root Hash)
	DeleteAccount(Address)

	TakeSnapshot() Snapshot
	Restore(Snapshot)
	// Commit makes all recorded changes permanent. Touched empty accounts are
	// removed if the rules demand it.
	Commit(rules ForkRules, observer Observer)
	// Reset discards all changes since the last commit.
	Reset()

	RecalculateStateRoot()
	StateRoot() Hash
}

// StorageStore holds the contract storage of all accounts.
type StorageStore interface {
	Get(StorageCell) Word
	// GetOriginal returns the value of a cell as of the last commit.
	GetOriginal(StorageCell) Word
	Set(StorageCell, Word)
	ClearStorage(Address)

	TakeSnapshot() Snapshot
	Restore(Snapshot)
	Commit(observer Observer)
	Reset()
}
