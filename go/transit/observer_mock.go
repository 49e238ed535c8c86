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

// MockObserver is a mock of Observer interface.
type MockObserver struct {
	ctrl     *gomock.Controller
	recorder *MockObserverMockRecorder
}

// MockObserverMockRecorder is the mock recorder for MockObserver.
type MockObserverMockRecorder struct {
	mock *MockObserver
}

// NewMockObserver creates a new mock instance.
func NewMockObserver(ctrl *gomock.Controller) *MockObserver {
	mock := &MockObserver{ctrl: ctrl}
	mock.recorder = &MockObserverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockObserver) EXPECT() *MockObserverMockRecorder {
	return m.recorder
}

// IsTracingReceipt mocks base method.
func (m *MockObserver) IsTracingReceipt() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsTracingReceipt")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsTracingReceipt indicates an expected call of IsTracingReceipt.
func (mr *MockObserverMockRecorder) IsTracingReceipt() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsTracingReceipt", reflect.TypeOf((*MockObserver)(nil).IsTracingReceipt))
}

// IsTracingState mocks base method.
func (m *MockObserver) IsTracingState() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsTracingState")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsTracingState indicates an expected call of IsTracingState.
func (mr *MockObserverMockRecorder) IsTracingState() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsTracingState", reflect.TypeOf((*MockObserver)(nil).IsTracingState))
}

// IsTracingRefunds mocks base method.
func (m *MockObserver) IsTracingRefunds() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsTracingRefunds")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsTracingRefunds indicates an expected call of IsTracingRefunds.
func (mr *MockObserverMockRecorder) IsTracingRefunds() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsTracingRefunds", reflect.TypeOf((*MockObserver)(nil).IsTracingRefunds))
}

// IsTracingAccess mocks base method.
func (m *MockObserver) IsTracingAccess() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsTracingAccess")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsTracingAccess indicates an expected call of IsTracingAccess.
func (mr *MockObserverMockRecorder) IsTracingAccess() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsTracingAccess", reflect.TypeOf((*MockObserver)(nil).IsTracingAccess))
}

// MarkAsSuccess mocks base method.
func (m *MockObserver) MarkAsSuccess(recipient Address, gasSpent Gas, output Data, logs []Log, stateRoot *Hash) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "MarkAsSuccess", recipient, gasSpent, output, logs, stateRoot)
}

// MarkAsSuccess indicates an expected call of MarkAsSuccess.
func (mr *MockObserverMockRecorder) MarkAsSuccess(recipient, gasSpent, output, logs, stateRoot any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkAsSuccess", reflect.TypeOf((*MockObserver)(nil).MarkAsSuccess), recipient, gasSpent, output, logs, stateRoot)
}

// MarkAsFailed mocks base method.
func (m *MockObserver) MarkAsFailed(recipient Address, gasSpent Gas, output Data, reason string, stateRoot *Hash) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "MarkAsFailed", recipient, gasSpent, output, reason, stateRoot)
}

// MarkAsFailed indicates an expected call of MarkAsFailed.
func (mr *MockObserverMockRecorder) MarkAsFailed(recipient, gasSpent, output, reason, stateRoot any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkAsFailed", reflect.TypeOf((*MockObserver)(nil).MarkAsFailed), recipient, gasSpent, output, reason, stateRoot)
}

// ReportRefund mocks base method.
func (m *MockObserver) ReportRefund(refund Gas) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReportRefund", refund)
}

// ReportRefund indicates an expected call of ReportRefund.
func (mr *MockObserverMockRecorder) ReportRefund(refund any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReportRefund", reflect.TypeOf((*MockObserver)(nil).ReportRefund), refund)
}

// ReportAccess mocks base method.
func (m *MockObserver) ReportAccess(addresses []Address, cells []StorageCell) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReportAccess", addresses, cells)
}

// ReportAccess indicates an expected call of ReportAccess.
func (mr *MockObserverMockRecorder) ReportAccess(addresses, cells any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReportAccess", reflect.TypeOf((*MockObserver)(nil).ReportAccess), addresses, cells)
}

// ReportBalanceChange mocks base method.
func (m *MockObserver) ReportBalanceChange(address Address, before Value, after Value) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReportBalanceChange", address, before, after)
}

// ReportBalanceChange indicates an expected call of ReportBalanceChange.
func (mr *MockObserverMockRecorder) ReportBalanceChange(address, before, after any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReportBalanceChange", reflect.TypeOf((*MockObserver)(nil).ReportBalanceChange), address, before, after)
}

// ReportNonceChange mocks base method.
func (m *MockObserver) ReportNonceChange(address Address, before uint64, after uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReportNonceChange", address, before, after)
}

// ReportNonceChange indicates an expected call of ReportNonceChange.
func (mr *MockObserverMockRecorder) ReportNonceChange(address, before, after any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReportNonceChange", reflect.TypeOf((*MockObserver)(nil).ReportNonceChange), address, before, after)
}

// ReportCodeChange mocks base method.
func (m *MockObserver) ReportCodeChange(address Address, before Hash, after Hash) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReportCodeChange", address, before, after)
}

// ReportCodeChange indicates an expected call of ReportCodeChange.
func (mr *MockObserverMockRecorder) ReportCodeChange(address, before, after any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReportCodeChange", reflect.TypeOf((*MockObserver)(nil).ReportCodeChange), address, before, after)
}

// ReportStorageChange mocks base method.
func (m *MockObserver) ReportStorageChange(cell StorageCell, before Word, after Word) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReportStorageChange", cell, before, after)
}

// ReportStorageChange indicates an expected call of ReportStorageChange.
func (mr *MockObserverMockRecorder) ReportStorageChange(cell, before, after any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReportStorageChange", reflect.TypeOf((*MockObserver)(nil).ReportStorageChange), cell, before, after)
}
