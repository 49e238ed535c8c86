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
	"maps"

	"github.com/Fantom-foundation/Floria/go/transit"
)

// Storage is an in-memory transit.StorageStore. On commit, the storage roots
// of all modified accounts are recomputed and pushed to the account store.
// Storage is not thread-safe.
type Storage struct {
	accounts  *Accounts
	slots     map[transit.Address]map[transit.Key]transit.Word
	originals map[transit.StorageCell]transit.Word
	journal   journal[storageChange]
}

// storageChange records the value of a cell before a modification. Entries
// produced by ClearStorage hold the full previous content of the account.
type storageChange struct {
	cell     transit.StorageCell
	previous transit.Word
	cleared  map[transit.Key]transit.Word
	isClear  bool
}

// NewStorage creates a storage store updating the storage roots of the given accounts.
func NewStorage(accounts *Accounts) *Storage {
	return &Storage{
		accounts:  accounts,
		slots:     map[transit.Address]map[transit.Key]transit.Word{},
		originals: map[transit.StorageCell]transit.Word{},
	}
}

func (s *Storage) Get(cell transit.StorageCell) transit.Word {
	return s.slots[cell.Address][cell.Key]
}

func (s *Storage) GetOriginal(cell transit.StorageCell) transit.Word {
	if original, found := s.originals[cell]; found {
		return original
	}
	return s.Get(cell)
}

func (s *Storage) Set(cell transit.StorageCell, value transit.Word) {
	previous := s.Get(cell)
	if _, found := s.originals[cell]; !found {
		s.originals[cell] = previous
	}
	s.journal.append(storageChange{cell: cell, previous: previous})
	s.write(cell, value)
}

func (s *Storage) ClearStorage(address transit.Address) {
	previous := s.slots[address]
	for key, value := range previous {
		cell := transit.StorageCell{Address: address, Key: key}
		if _, found := s.originals[cell]; !found {
			s.originals[cell] = value
		}
	}
	s.journal.append(storageChange{
		cell:    transit.StorageCell{Address: address},
		cleared: previous,
		isClear: true,
	})
	delete(s.slots, address)
}

// GetAll returns a copy of the non-zero slots of the given account.
func (s *Storage) GetAll(address transit.Address) map[transit.Key]transit.Word {
	return maps.Clone(s.slots[address])
}

func (s *Storage) TakeSnapshot() transit.Snapshot {
	return transit.Snapshot(s.journal.length())
}

func (s *Storage) Restore(snapshot transit.Snapshot) {
	s.journal.revert(int(snapshot), s.undo)
}

func (s *Storage) Reset() {
	s.Restore(0)
	clear(s.originals)
}

func (s *Storage) Commit(observer transit.Observer) {
	modified := map[transit.Address]struct{}{}
	s.journal.forEach(func(change storageChange) {
		modified[change.cell.Address] = struct{}{}
	})
	if observer != nil && observer.IsTracingState() {
		for cell, original := range s.originals {
			if current := s.Get(cell); current != original {
				observer.ReportStorageChange(cell, original, current)
			}
		}
	}
	for address := range modified {
		root, err := computeStorageRoot(s.slots[address])
		if err != nil {
			panic(fmt.Sprintf("failed to compute storage root of %v: %v", address, err))
		}
		s.accounts.UpdateStorageRoot(address, root)
	}
	s.journal.reset()
	clear(s.originals)
}

func (s *Storage) write(cell transit.StorageCell, value transit.Word) {
	slots := s.slots[cell.Address]
	if value == (transit.Word{}) {
		if slots != nil {
			delete(slots, cell.Key)
			if len(slots) == 0 {
				delete(s.slots, cell.Address)
			}
		}
		return
	}
	if slots == nil {
		slots = map[transit.Key]transit.Word{}
		s.slots[cell.Address] = slots
	}
	slots[cell.Key] = value
}

func (s *Storage) undo(change storageChange) {
	if change.isClear {
		if change.cleared == nil {
			delete(s.slots, change.cell.Address)
		} else {
			s.slots[change.cell.Address] = change.cleared
		}
		return
	}
	s.write(change.cell, change.previous)
}
