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
	"bytes"
	"fmt"
	"maps"

	"github.com/Fantom-foundation/Floria/go/transit"
)

// World bundles an account store and the storage store attached to it.
type World struct {
	Accounts *Accounts
	Storage  *Storage
}

// NewWorld creates a world holding the given accounts. The initial content
// is committed and the state root is computed.
func NewWorld(alloc WorldState) *World {
	accounts := NewAccounts()
	storage := NewStorage(accounts)
	world := &World{Accounts: accounts, Storage: storage}
	for address, account := range alloc {
		accounts.CreateAccount(address, account.Balance)
		accounts.SetNonce(address, account.Nonce)
		if len(account.Code) > 0 {
			hash := accounts.UpdateCode(account.Code)
			accounts.UpdateCodeHash(address, hash, transit.ForkRules{})
		}
		for key, value := range account.Storage {
			storage.Set(transit.StorageCell{Address: address, Key: key}, value)
		}
	}
	storage.Commit(nil)
	accounts.Commit(transit.ForkRules{}, nil)
	accounts.RecalculateStateRoot()
	return world
}

// Dump returns the current content of the world.
func (w *World) Dump() WorldState {
	res := make(WorldState, len(w.Accounts.accounts))
	for address, account := range w.Accounts.accounts {
		res[address] = Account{
			Balance: account.Balance,
			Nonce:   account.Nonce,
			Code:    append(transit.Code(nil), w.Accounts.GetCode(address)...),
			Storage: w.Storage.GetAll(address),
		}
	}
	return res
}

// ----------------------------------------------------------------------------
// WorldState
// ----------------------------------------------------------------------------

// WorldState is a plain description of the accounts of a chain. It is used to
// initialize worlds and to compare them to expected states.
type WorldState map[transit.Address]Account

func (s WorldState) Equal(other WorldState) bool {
	return equalMaps(s, other, func(a, b Account) bool {
		return a.Equal(&b)
	})
}

func (s WorldState) Clone() WorldState {
	if s == nil {
		return nil
	}
	res := make(WorldState, len(s))
	for k, v := range s {
		res[k] = v.Clone()
	}
	return res
}

func (s WorldState) Diff(other WorldState) []string {
	return diffMaps("", s, other, func(address transit.Address, a, b Account, inA, inB bool) []string {
		switch {
		case !inA:
			return []string{fmt.Sprintf("%v: missing account", address)}
		case !inB:
			return []string{fmt.Sprintf("%v: additional account", address)}
		case a.Equal(&b):
			return nil
		}
		return a.Diff(fmt.Sprintf("%v/", address), &b)
	})
}

// ----------------------------------------------------------------------------
// Account
// ----------------------------------------------------------------------------

// Account is the content of a single account. Unlike in the account store,
// the existence of an account is significant, even if it is empty.
type Account struct {
	Balance transit.Value   `json:"balance"`
	Nonce   uint64          `json:"nonce"`
	Code    transit.Code    `json:"code,omitempty"`
	Storage StorageContents `json:"storage,omitempty"`
}

func (a *Account) Equal(other *Account) bool {
	return a.Balance == other.Balance &&
		a.Nonce == other.Nonce &&
		bytes.Equal(a.Code, other.Code) &&
		a.Storage.Equal(other.Storage)
}

func (a *Account) Clone() Account {
	return Account{
		Balance: a.Balance,
		Nonce:   a.Nonce,
		Code:    append(transit.Code(nil), a.Code...),
		Storage: a.Storage.Clone(),
	}
}

func (a *Account) Diff(prefix string, other *Account) []string {
	var res []string
	if a.Balance != other.Balance {
		res = append(res, fmt.Sprintf("different balance: %v != %v", a.Balance, other.Balance))
	}
	if a.Nonce != other.Nonce {
		res = append(res, fmt.Sprintf("different nonce: %v != %v", a.Nonce, other.Nonce))
	}
	if !bytes.Equal(a.Code, other.Code) {
		res = append(res, fmt.Sprintf("different code: 0x%x != 0x%x", a.Code, other.Code))
	}
	for i, diff := range res {
		res[i] = prefix + diff
	}
	return append(res, a.Storage.Diff(prefix+"Storage/", other.Storage)...)
}

// ----------------------------------------------------------------------------
// StorageContents
// ----------------------------------------------------------------------------

// StorageContents lists the slots of an account. Zero-valued entries are ignored.
type StorageContents map[transit.Key]transit.Word

func (s StorageContents) Equal(other StorageContents) bool {
	for k, v := range s {
		if other[k] != v {
			return false
		}
	}
	for k, v := range other {
		if s[k] != v {
			return false
		}
	}
	return true
}

func (s StorageContents) Clone() StorageContents {
	return maps.Clone(s)
}

func (s StorageContents) Diff(prefix string, other StorageContents) []string {
	return diffMaps(prefix, s, other, func(k transit.Key, a, b transit.Word, _, _ bool) []string {
		if a == b {
			return nil
		}
		return []string{
			fmt.Sprintf("different value for key %v: %v != %v", k, a, b),
		}
	})
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// equalMaps compares two maps including the presence of keys.
func equalMaps[K comparable, V any](a, b map[K]V, equal func(V, V) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, found := b[k]
		if !found || !equal(v, w) {
			return false
		}
	}
	return true
}

// diffMaps compares two maps and returns a list of differences.
func diffMaps[K comparable, V any](prefix string, a, b map[K]V, diff func(K, V, V, bool, bool) []string) []string {
	var diffs []string
	for k, v := range a {
		w, found := b[k]
		diffs = append(diffs, diff(k, v, w, true, found)...)
	}
	for k, v := range b {
		if _, overlap := a[k]; !overlap {
			diffs = append(diffs, diff(k, a[k], v, false, true)...)
		}
	}
	for i, diff := range diffs {
		diffs[i] = prefix + diff
	}
	return diffs
}
