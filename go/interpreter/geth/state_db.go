// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package geth

import (
	"fmt"
	"slices"

	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/stateless"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/trie/utils"
	"github.com/holiman/uint256"
)

// stateDbAdapter exposes the state and storage stores of a transaction as a
// geth StateDB. Besides forwarding account and storage operations, it keeps
// the frame-local parts of the transaction substate: the refund counter,
// emitted logs, destroyed accounts, transient storage, and the set of warm
// addresses and storage cells. All of it is reverted together with the
// stores when geth rolls back a nested frame.
type stateDbAdapter struct {
	state   transit.StateStore
	storage transit.StorageStore
	rules   transit.ForkRules

	refund    uint64
	logs      []transit.Log
	destroyed []transit.Address
	created   []transit.Address

	transient        map[transit.StorageCell]transit.Word
	transientJournal []transientChange

	warmAddresses map[transit.Address]struct{}
	warmCells     map[transit.StorageCell]struct{}
	accessJournal []accessChange

	snapshots []snapshot
}

type transientChange struct {
	cell     transit.StorageCell
	previous transit.Word
}

// accessChange records a warm-up of an address or, if cell is set, a storage
// cell.
type accessChange struct {
	address transit.Address
	cell    *transit.StorageCell
}

type snapshot struct {
	state     transit.Snapshot
	storage   transit.Snapshot
	refund    uint64
	logs      int
	destroyed int
	created   int
	transient int
	accesses  int
}

func newStateDbAdapter(state transit.StateStore, storage transit.StorageStore, callState *transit.CallState) *stateDbAdapter {
	res := &stateDbAdapter{
		state:         state,
		storage:       storage,
		rules:         callState.Rules,
		transient:     map[transit.StorageCell]transit.Word{},
		warmAddresses: map[transit.Address]struct{}{},
		warmCells:     map[transit.StorageCell]struct{}{},
	}
	for _, address := range callState.AccessedAddresses() {
		res.warmAddresses[address] = struct{}{}
	}
	for _, cell := range callState.AccessedStorageCells() {
		res.warmCells[cell] = struct{}{}
	}
	return res
}

// writeAccessesTo transfers the warm addresses and storage cells into the
// given call state.
func (s *stateDbAdapter) writeAccessesTo(callState *transit.CallState) {
	for address := range s.warmAddresses {
		callState.WarmUpAddress(address)
	}
	for cell := range s.warmCells {
		callState.WarmUpStorageCell(cell)
	}
}

// --- accounts ---

func (s *stateDbAdapter) CreateAccount(addr common.Address) {
	address := transit.Address(addr)
	s.state.CreateAccount(address, s.state.GetBalance(address))
}

func (s *stateDbAdapter) CreateContract(addr common.Address) {
	s.created = append(s.created, transit.Address(addr))
}

func (s *stateDbAdapter) SubBalance(addr common.Address, diff *uint256.Int, _ tracing.BalanceChangeReason) {
	s.state.SubtractFromBalance(transit.Address(addr), transit.ValueFromUint256(diff), s.rules)
}

func (s *stateDbAdapter) AddBalance(addr common.Address, diff *uint256.Int, _ tracing.BalanceChangeReason) {
	s.state.AddToBalance(transit.Address(addr), transit.ValueFromUint256(diff), s.rules)
}

func (s *stateDbAdapter) GetBalance(addr common.Address) *uint256.Int {
	return s.state.GetBalance(transit.Address(addr)).ToUint256()
}

func (s *stateDbAdapter) GetNonce(addr common.Address) uint64 {
	return s.state.GetNonce(transit.Address(addr))
}

func (s *stateDbAdapter) SetNonce(addr common.Address, nonce uint64) {
	s.state.SetNonce(transit.Address(addr), nonce)
}

func (s *stateDbAdapter) GetCodeHash(addr common.Address) common.Hash {
	return common.Hash(s.state.GetCodeHash(transit.Address(addr)))
}

func (s *stateDbAdapter) GetCode(addr common.Address) []byte {
	return s.state.GetCode(transit.Address(addr))
}

func (s *stateDbAdapter) SetCode(addr common.Address, code []byte) {
	hash := s.state.UpdateCode(transit.Code(code))
	s.state.UpdateCodeHash(transit.Address(addr), hash, s.rules)
}

func (s *stateDbAdapter) GetCodeSize(addr common.Address) int {
	return len(s.state.GetCode(transit.Address(addr)))
}

func (s *stateDbAdapter) Exist(addr common.Address) bool {
	return s.state.AccountExists(transit.Address(addr))
}

func (s *stateDbAdapter) Empty(addr common.Address) bool {
	address := transit.Address(addr)
	hash := s.state.GetCodeHash(address)
	return s.state.GetBalance(address).IsZero() &&
		s.state.GetNonce(address) == 0 &&
		(hash == transit.Hash{} || hash == transit.Hash(types.EmptyCodeHash))
}

func (s *stateDbAdapter) GetStorageRoot(addr common.Address) common.Hash {
	return common.Hash(s.state.GetStorageRoot(transit.Address(addr)))
}

// --- self-destruction ---

// SelfDestruct marks the account for deletion at the end of the transaction
// and burns its remaining balance.
func (s *stateDbAdapter) SelfDestruct(addr common.Address) {
	address := transit.Address(addr)
	if !s.state.AccountExists(address) {
		return
	}
	s.state.SubtractFromBalance(address, s.state.GetBalance(address), s.rules)
	if !slices.Contains(s.destroyed, address) {
		s.destroyed = append(s.destroyed, address)
	}
}

func (s *stateDbAdapter) HasSelfDestructed(addr common.Address) bool {
	return slices.Contains(s.destroyed, transit.Address(addr))
}

// Selfdestruct6780 only destroys accounts created in the same transaction.
func (s *stateDbAdapter) Selfdestruct6780(addr common.Address) {
	if slices.Contains(s.created, transit.Address(addr)) {
		s.SelfDestruct(addr)
	}
}

// --- refunds ---

func (s *stateDbAdapter) AddRefund(value uint64) {
	s.refund += value
}

func (s *stateDbAdapter) SubRefund(value uint64) {
	if value > s.refund {
		panic(fmt.Sprintf("refund counter below zero (gas: %d > refund %d)", value, s.refund))
	}
	s.refund -= value
}

func (s *stateDbAdapter) GetRefund() uint64 {
	return s.refund
}

// --- storage ---

func (s *stateDbAdapter) GetCommittedState(addr common.Address, key common.Hash) common.Hash {
	return common.Hash(s.storage.GetOriginal(transit.StorageCell{Address: transit.Address(addr), Key: transit.Key(key)}))
}

func (s *stateDbAdapter) GetState(addr common.Address, key common.Hash) common.Hash {
	return common.Hash(s.storage.Get(transit.StorageCell{Address: transit.Address(addr), Key: transit.Key(key)}))
}

func (s *stateDbAdapter) SetState(addr common.Address, key common.Hash, value common.Hash) {
	s.storage.Set(transit.StorageCell{Address: transit.Address(addr), Key: transit.Key(key)}, transit.Word(value))
}

func (s *stateDbAdapter) GetTransientState(addr common.Address, key common.Hash) common.Hash {
	return common.Hash(s.transient[transit.StorageCell{Address: transit.Address(addr), Key: transit.Key(key)}])
}

func (s *stateDbAdapter) SetTransientState(addr common.Address, key, value common.Hash) {
	cell := transit.StorageCell{Address: transit.Address(addr), Key: transit.Key(key)}
	s.transientJournal = append(s.transientJournal, transientChange{cell: cell, previous: s.transient[cell]})
	s.setTransient(cell, transit.Word(value))
}

func (s *stateDbAdapter) setTransient(cell transit.StorageCell, value transit.Word) {
	if value == (transit.Word{}) {
		delete(s.transient, cell)
		return
	}
	s.transient[cell] = value
}

func (s *stateDbAdapter) ForEachStorage(common.Address, func(common.Hash, common.Hash) bool) error {
	return fmt.Errorf("storage iteration is not supported")
}

// --- access lists ---

func (s *stateDbAdapter) Prepare(rules params.Rules, sender, coinbase common.Address, dest *common.Address, precompiles []common.Address, txAccesses types.AccessList) {
	if !rules.IsBerlin {
		return
	}
	s.PrepareAccessList(sender, dest, precompiles, txAccesses)
	if rules.IsShanghai {
		s.AddAddressToAccessList(coinbase)
	}
}

func (s *stateDbAdapter) PrepareAccessList(sender common.Address, dest *common.Address, precompiles []common.Address, txAccesses types.AccessList) {
	s.AddAddressToAccessList(sender)
	if dest != nil {
		s.AddAddressToAccessList(*dest)
	}
	for _, addr := range precompiles {
		s.AddAddressToAccessList(addr)
	}
	for _, tuple := range txAccesses {
		s.AddAddressToAccessList(tuple.Address)
		for _, key := range tuple.StorageKeys {
			s.AddSlotToAccessList(tuple.Address, key)
		}
	}
}

func (s *stateDbAdapter) AddressInAccessList(addr common.Address) bool {
	_, found := s.warmAddresses[transit.Address(addr)]
	return found
}

func (s *stateDbAdapter) SlotInAccessList(addr common.Address, slot common.Hash) (addressOk bool, slotOk bool) {
	cell := transit.StorageCell{Address: transit.Address(addr), Key: transit.Key(slot)}
	_, addressOk = s.warmAddresses[cell.Address]
	_, slotOk = s.warmCells[cell]
	return addressOk, slotOk
}

func (s *stateDbAdapter) AddAddressToAccessList(addr common.Address) {
	address := transit.Address(addr)
	if _, found := s.warmAddresses[address]; found {
		return
	}
	s.warmAddresses[address] = struct{}{}
	s.accessJournal = append(s.accessJournal, accessChange{address: address})
}

func (s *stateDbAdapter) AddSlotToAccessList(addr common.Address, slot common.Hash) {
	s.AddAddressToAccessList(addr)
	cell := transit.StorageCell{Address: transit.Address(addr), Key: transit.Key(slot)}
	if _, found := s.warmCells[cell]; found {
		return
	}
	s.warmCells[cell] = struct{}{}
	s.accessJournal = append(s.accessJournal, accessChange{address: cell.Address, cell: &cell})
}

// --- snapshots ---

func (s *stateDbAdapter) Snapshot() int {
	s.snapshots = append(s.snapshots, snapshot{
		state:     s.state.TakeSnapshot(),
		storage:   s.storage.TakeSnapshot(),
		refund:    s.refund,
		logs:      len(s.logs),
		destroyed: len(s.destroyed),
		created:   len(s.created),
		transient: len(s.transientJournal),
		accesses:  len(s.accessJournal),
	})
	return len(s.snapshots) - 1
}

func (s *stateDbAdapter) RevertToSnapshot(id int) {
	if id < 0 || id >= len(s.snapshots) {
		panic(fmt.Sprintf("invalid snapshot %d", id))
	}
	snapshot := s.snapshots[id]
	s.snapshots = s.snapshots[:id]

	s.state.Restore(snapshot.state)
	s.storage.Restore(snapshot.storage)
	s.refund = snapshot.refund
	s.logs = s.logs[:snapshot.logs]
	s.destroyed = s.destroyed[:snapshot.destroyed]
	s.created = s.created[:snapshot.created]

	for i := len(s.transientJournal) - 1; i >= snapshot.transient; i-- {
		change := s.transientJournal[i]
		s.setTransient(change.cell, change.previous)
	}
	s.transientJournal = s.transientJournal[:snapshot.transient]

	for i := len(s.accessJournal) - 1; i >= snapshot.accesses; i-- {
		change := s.accessJournal[i]
		if change.cell != nil {
			delete(s.warmCells, *change.cell)
		} else {
			delete(s.warmAddresses, change.address)
		}
	}
	s.accessJournal = s.accessJournal[:snapshot.accesses]
}

// --- logs ---

func (s *stateDbAdapter) AddLog(log *types.Log) {
	topics := make([]transit.Hash, 0, len(log.Topics))
	for _, cur := range log.Topics {
		topics = append(topics, transit.Hash(cur))
	}
	s.logs = append(s.logs, transit.Log{
		Address: transit.Address(log.Address),
		Topics:  topics,
		Data:    slices.Clone(log.Data),
	})
}

// --- unsupported features ---

func (s *stateDbAdapter) AddPreimage(common.Hash, []byte) {
	// preimages are not recorded
}

func (s *stateDbAdapter) PointCache() *utils.PointCache {
	// only needed for verkle trees (EIP-4762), introduced after Cancun
	return nil
}

func (s *stateDbAdapter) Witness() *stateless.Witness {
	return nil
}
