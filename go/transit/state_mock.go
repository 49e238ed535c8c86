// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package transit is a generated GoMock package.
package transit

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockStateStore is a mock of StateStore interface.
type MockStateStore struct {
	ctrl     *gomock.Controller
	recorder *MockStateStoreMockRecorder
}

// MockStateStoreMockRecorder is the mock recorder for MockStateStore.
type MockStateStoreMockRecorder struct {
	mock *MockStateStore
}

// NewMockStateStore creates a new mock instance.
func NewMockStateStore(ctrl *gomock.Controller) *MockStateStore {
	mock := &MockStateStore{ctrl: ctrl}
	mock.recorder = &MockStateStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStateStore) EXPECT() *MockStateStoreMockRecorder {
	return m.recorder
}

// AccountExists mocks base method.
func (m *MockStateStore) AccountExists(arg0 Address) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountExists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// AccountExists indicates an expected call of AccountExists.
func (mr *MockStateStoreMockRecorder) AccountExists(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountExists", reflect.TypeOf((*MockStateStore)(nil).AccountExists), arg0)
}

// GetBalance mocks base method.
func (m *MockStateStore) GetBalance(arg0 Address) Value {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", arg0)
	ret0, _ := ret[0].(Value)
	return ret0
}

// GetBalance indicates an expected call of GetBalance.
func (mr *MockStateStoreMockRecorder) GetBalance(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockStateStore)(nil).GetBalance), arg0)
}

// GetNonce mocks base method.
func (m *MockStateStore) GetNonce(arg0 Address) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNonce", arg0)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// GetNonce indicates an expected call of GetNonce.
func (mr *MockStateStoreMockRecorder) GetNonce(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNonce", reflect.TypeOf((*MockStateStore)(nil).GetNonce), arg0)
}

// GetCodeHash mocks base method.
func (m *MockStateStore) GetCodeHash(arg0 Address) Hash {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCodeHash", arg0)
	ret0, _ := ret[0].(Hash)
	return ret0
}

// GetCodeHash indicates an expected call of GetCodeHash.
func (mr *MockStateStoreMockRecorder) GetCodeHash(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCodeHash", reflect.TypeOf((*MockStateStore)(nil).GetCodeHash), arg0)
}

// GetCode mocks base method.
func (m *MockStateStore) GetCode(arg0 Address) Code {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCode", arg0)
	ret0, _ := ret[0].(Code)
	return ret0
}

// GetCode indicates an expected call of GetCode.
func (mr *MockStateStoreMockRecorder) GetCode(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCode", reflect.TypeOf((*MockStateStore)(nil).GetCode), arg0)
}

// GetStorageRoot mocks base method.
func (m *MockStateStore) GetStorageRoot(arg0 Address) Hash {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStorageRoot", arg0)
	ret0, _ := ret[0].(Hash)
	return ret0
}

// GetStorageRoot indicates an expected call of GetStorageRoot.
func (mr *MockStateStoreMockRecorder) GetStorageRoot(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStorageRoot", reflect.TypeOf((*MockStateStore)(nil).GetStorageRoot), arg0)
}

// CreateAccount mocks base method.
func (m *MockStateStore) CreateAccount(address Address, balance Value) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "CreateAccount", address, balance)
}

// CreateAccount indicates an expected call of CreateAccount.
func (mr *MockStateStoreMockRecorder) CreateAccount(address, balance any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAccount", reflect.TypeOf((*MockStateStore)(nil).CreateAccount), address, balance)
}

// AddToBalance mocks base method.
func (m *MockStateStore) AddToBalance(address Address, amount Value, rules ForkRules) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddToBalance", address, amount, rules)
}

// AddToBalance indicates an expected call of AddToBalance.
func (mr *MockStateStoreMockRecorder) AddToBalance(address, amount, rules any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToBalance", reflect.TypeOf((*MockStateStore)(nil).AddToBalance), address, amount, rules)
}

// SubtractFromBalance mocks base method.
func (m *MockStateStore) SubtractFromBalance(address Address, amount Value, rules ForkRules) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SubtractFromBalance", address, amount, rules)
}

// SubtractFromBalance indicates an expected call of SubtractFromBalance.
func (mr *MockStateStoreMockRecorder) SubtractFromBalance(address, amount, rules any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubtractFromBalance", reflect.TypeOf((*MockStateStore)(nil).SubtractFromBalance), address, amount, rules)
}

// IncrementNonce mocks base method.
func (m *MockStateStore) IncrementNonce(arg0 Address) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncrementNonce", arg0)
}

// IncrementNonce indicates an expected call of IncrementNonce.
func (mr *MockStateStoreMockRecorder) IncrementNonce(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementNonce", reflect.TypeOf((*MockStateStore)(nil).IncrementNonce), arg0)
}

// DecrementNonce mocks base method.
func (m *MockStateStore) DecrementNonce(arg0 Address) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DecrementNonce", arg0)
}

// DecrementNonce indicates an expected call of DecrementNonce.
func (mr *MockStateStoreMockRecorder) DecrementNonce(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DecrementNonce", reflect.TypeOf((*MockStateStore)(nil).DecrementNonce), arg0)
}

// SetNonce mocks base method.
func (m *MockStateStore) SetNonce(address Address, nonce uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetNonce", address, nonce)
}

// SetNonce indicates an expected call of SetNonce.
func (mr *MockStateStoreMockRecorder) SetNonce(address, nonce any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetNonce", reflect.TypeOf((*MockStateStore)(nil).SetNonce), address, nonce)
}

// UpdateCode mocks base method.
func (m *MockStateStore) UpdateCode(arg0 Code) Hash {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCode", arg0)
	ret0, _ := ret[0].(Hash)
	return ret0
}

// UpdateCode indicates an expected call of UpdateCode.
func (mr *MockStateStoreMockRecorder) UpdateCode(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCode", reflect.TypeOf((*MockStateStore)(nil).UpdateCode), arg0)
}

// UpdateCodeHash mocks base method.
func (m *MockStateStore) UpdateCodeHash(address Address, hash Hash, rules ForkRules) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UpdateCodeHash", address, hash, rules)
}

// UpdateCodeHash indicates an expected call of UpdateCodeHash.
func (mr *MockStateStoreMockRecorder) UpdateCodeHash(address, hash, rules any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCodeHash", reflect.TypeOf((*MockStateStore)(nil).UpdateCodeHash), address, hash, rules)
}

// UpdateStorageRoot mocks base method.
func (m *MockStateStore) UpdateStorageRoot(address Address, root Hash) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UpdateStorageRoot", address, root)
}

// UpdateStorageRoot indicates an expected call of UpdateStorageRoot.
func (mr *MockStateStoreMockRecorder) UpdateStorageRoot(address, root any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStorageRoot", reflect.TypeOf((*MockStateStore)(nil).UpdateStorageRoot), address, root)
}

// DeleteAccount mocks base method.
func (m *MockStateStore) DeleteAccount(arg0 Address) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DeleteAccount", arg0)
}

// DeleteAccount indicates an expected call of DeleteAccount.
func (mr *MockStateStoreMockRecorder) DeleteAccount(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAccount", reflect.TypeOf((*MockStateStore)(nil).DeleteAccount), arg0)
}

// TakeSnapshot mocks base method.
func (m *MockStateStore) TakeSnapshot() Snapshot {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TakeSnapshot")
	ret0, _ := ret[0].(Snapshot)
	return ret0
}

// TakeSnapshot indicates an expected call of TakeSnapshot.
func (mr *MockStateStoreMockRecorder) TakeSnapshot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TakeSnapshot", reflect.TypeOf((*MockStateStore)(nil).TakeSnapshot))
}

// Restore mocks base method.
func (m *MockStateStore) Restore(arg0 Snapshot) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Restore", arg0)
}

// Restore indicates an expected call of Restore.
func (mr *MockStateStoreMockRecorder) Restore(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Restore", reflect.TypeOf((*MockStateStore)(nil).Restore), arg0)
}

// Commit mocks base method.
func (m *MockStateStore) Commit(rules ForkRules, observer Observer) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Commit", rules, observer)
}

// Commit indicates an expected call of Commit.
func (mr *MockStateStoreMockRecorder) Commit(rules, observer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockStateStore)(nil).Commit), rules, observer)
}

// Reset mocks base method.
func (m *MockStateStore) Reset() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Reset")
}

// Reset indicates an expected call of Reset.
func (mr *MockStateStoreMockRecorder) Reset() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reset", reflect.TypeOf((*MockStateStore)(nil).Reset))
}

// RecalculateStateRoot mocks base method.
func (m *MockStateStore) RecalculateStateRoot() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecalculateStateRoot")
}

// RecalculateStateRoot indicates an expected call of RecalculateStateRoot.
func (mr *MockStateStoreMockRecorder) RecalculateStateRoot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecalculateStateRoot", reflect.TypeOf((*MockStateStore)(nil).RecalculateStateRoot))
}

// StateRoot mocks base method.
func (m *MockStateStore) StateRoot() Hash {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StateRoot")
	ret0, _ := ret[0].(Hash)
	return ret0
}

// StateRoot indicates an expected call of StateRoot.
func (mr *MockStateStoreMockRecorder) StateRoot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StateRoot", reflect.TypeOf((*MockStateStore)(nil).StateRoot))
}

// MockStorageStore is a mock of StorageStore interface.
type MockStorageStore struct {
	ctrl     *gomock.Controller
	recorder *MockStorageStoreMockRecorder
}

// MockStorageStoreMockRecorder is the mock recorder for MockStorageStore.
type MockStorageStoreMockRecorder struct {
	mock *MockStorageStore
}

// NewMockStorageStore creates a new mock instance.
func NewMockStorageStore(ctrl *gomock.Controller) *MockStorageStore {
	mock := &MockStorageStore{ctrl: ctrl}
	mock.recorder = &MockStorageStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorageStore) EXPECT() *MockStorageStoreMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockStorageStore) Get(arg0 StorageCell) Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", arg0)
	ret0, _ := ret[0].(Word)
	return ret0
}

// Get indicates an expected call of Get.
func (mr *MockStorageStoreMockRecorder) Get(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockStorageStore)(nil).Get), arg0)
}

// GetOriginal mocks base method.
func (m *MockStorageStore) GetOriginal(arg0 StorageCell) Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOriginal", arg0)
	ret0, _ := ret[0].(Word)
	return ret0
}

// GetOriginal indicates an expected call of GetOriginal.
func (mr *MockStorageStoreMockRecorder) GetOriginal(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOriginal", reflect.TypeOf((*MockStorageStore)(nil).GetOriginal), arg0)
}

// Set mocks base method.
func (m *MockStorageStore) Set(arg0 StorageCell, arg1 Word) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Set", arg0, arg1)
}

// Set indicates an expected call of Set.
func (mr *MockStorageStoreMockRecorder) Set(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockStorageStore)(nil).Set), arg0, arg1)
}

// ClearStorage mocks base method.
func (m *MockStorageStore) ClearStorage(arg0 Address) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ClearStorage", arg0)
}

// ClearStorage indicates an expected call of ClearStorage.
func (mr *MockStorageStoreMockRecorder) ClearStorage(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearStorage", reflect.TypeOf((*MockStorageStore)(nil).ClearStorage), arg0)
}

// TakeSnapshot mocks base method.
func (m *MockStorageStore) TakeSnapshot() Snapshot {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TakeSnapshot")
	ret0, _ := ret[0].(Snapshot)
	return ret0
}

// TakeSnapshot indicates an expected call of TakeSnapshot.
func (mr *MockStorageStoreMockRecorder) TakeSnapshot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TakeSnapshot", reflect.TypeOf((*MockStorageStore)(nil).TakeSnapshot))
}

// Restore mocks base method.
func (m *MockStorageStore) Restore(arg0 Snapshot) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Restore", arg0)
}

// Restore indicates an expected call of Restore.
func (mr *MockStorageStoreMockRecorder) Restore(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Restore", reflect.TypeOf((*MockStorageStore)(nil).Restore), arg0)
}

// Commit mocks base method.
func (m *MockStorageStore) Commit(observer Observer) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Commit", observer)
}

// Commit indicates an expected call of Commit.
func (mr *MockStorageStoreMockRecorder) Commit(observer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockStorageStore)(nil).Commit), observer)
}

// Reset mocks base method.
func (m *MockStorageStore) Reset() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Reset")
}

// Reset indicates an expected call of Reset.
func (mr *MockStorageStoreMockRecorder) Reset() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reset", reflect.TypeOf((*MockStorageStore)(nil).Reset))
}
