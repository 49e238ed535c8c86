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

import "fmt"

//go:generate mockgen -source interpreter.go -destination interpreter_mock.go -package transit

// Interpreter executes the code of a single call frame. Nested calls are
// handled internally; the result summarizes the effects of the whole frame.
type Interpreter interface {
	// Run executes the frame described by the given state. Errors returned
	// are internal faults; failed executions are reported through the
	// IsError and ShouldRevert flags of the substate.
	Run(state *CallState, observer Observer) (*Substate, error)

	// GetCachedCodeInfo returns the code stored for the given account.
	GetCachedCodeInfo(address Address, rules ForkRules) Code
}

// CallKind distinguishes between message calls and contract creations.
type CallKind int

const (
	Call CallKind = iota
	Create
)

func (k CallKind) String() string {
	switch k {
	case Call:
		return "call"
	case Create:
		return "create"
	}
	return fmt.Sprintf("CallKind(%d)", int(k))
}

// TxContext contains transaction and block information visible to all
// frames of a transaction.
type TxContext struct {
	Block    BlockContext
	Origin   Address
	GasPrice Value
	ChainID  uint64
}

// ExecutionEnvironment describes the context of a call frame.
type ExecutionEnvironment struct {
	TxContext        TxContext
	Caller           Address
	CodeSource       Address
	ExecutingAccount Address
	Value            Value // the value visible to the code
	TransferValue    Value // the value credited to the executing account before execution
	Input            Data
	Code             Code
}

// CallState is the input of an interpreter invocation.
type CallState struct {
	GasAvailable Gas
	Env          ExecutionEnvironment
	Kind         CallKind
	IsTopLevel   bool
	Rules        ForkRules

	accessedAddresses    map[Address]struct{}
	accessedStorageCells map[StorageCell]struct{}
}

func NewCallState(gas Gas, env ExecutionEnvironment, kind CallKind, rules ForkRules) *CallState {
	return &CallState{
		GasAvailable:         gas,
		Env:                  env,
		Kind:                 kind,
		IsTopLevel:           true,
		Rules:                rules,
		accessedAddresses:    map[Address]struct{}{},
		accessedStorageCells: map[StorageCell]struct{}{},
	}
}

// WarmUpAddress marks the given address as accessed.
func (s *CallState) WarmUpAddress(address Address) {
	if s.accessedAddresses == nil {
		s.accessedAddresses = map[Address]struct{}{}
	}
	s.accessedAddresses[address] = struct{}{}
}

// WarmUpStorageCell marks the given cell and its account as accessed.
func (s *CallState) WarmUpStorageCell(cell StorageCell) {
	if s.accessedStorageCells == nil {
		s.accessedStorageCells = map[StorageCell]struct{}{}
	}
	s.WarmUpAddress(cell.Address)
	s.accessedStorageCells[cell] = struct{}{}
}

// WarmUp marks all accounts and storage cells of an access list as accessed.
func (s *CallState) WarmUp(accessList []AccessTuple) {
	for _, tuple := range accessList {
		s.WarmUpAddress(tuple.Address)
		for _, key := range tuple.Keys {
			s.WarmUpStorageCell(StorageCell{Address: tuple.Address, Key: key})
		}
	}
}

func (s *CallState) IsWarmAddress(address Address) bool {
	_, found := s.accessedAddresses[address]
	return found
}

func (s *CallState) IsWarmStorageCell(cell StorageCell) bool {
	_, found := s.accessedStorageCells[cell]
	return found
}

// AccessedAddresses returns the warm addresses in no particular order.
func (s *CallState) AccessedAddresses() []Address {
	res := make([]Address, 0, len(s.accessedAddresses))
	for address := range s.accessedAddresses {
		res = append(res, address)
	}
	return res
}

// AccessedStorageCells returns the warm storage cells in no particular order.
func (s *CallState) AccessedStorageCells() []StorageCell {
	res := make([]StorageCell, 0, len(s.accessedStorageCells))
	for cell := range s.accessedStorageCells {
		res = append(res, cell)
	}
	return res
}

// Substate summarizes the effects of an interpreter invocation.
type Substate struct {
	Output       Data
	Logs         []Log
	DestroyList  []Address
	Refund       Gas
	GasLeft      Gas
	ShouldRevert bool
	IsError      bool
	Error        string
}
