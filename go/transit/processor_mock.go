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

// MockProcessor is a mock of Processor interface.
type MockProcessor struct {
	ctrl     *gomock.Controller
	recorder *MockProcessorMockRecorder
}

// MockProcessorMockRecorder is the mock recorder for MockProcessor.
type MockProcessorMockRecorder struct {
	mock *MockProcessor
}

// NewMockProcessor creates a new mock instance.
func NewMockProcessor(ctrl *gomock.Controller) *MockProcessor {
	mock := &MockProcessor{ctrl: ctrl}
	mock.recorder = &MockProcessorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProcessor) EXPECT() *MockProcessorMockRecorder {
	return m.recorder
}

// Execute mocks base method.
func (m *MockProcessor) Execute(tx *Transaction, block *BlockContext, observer Observer) (Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Execute", tx, block, observer)
	ret0, _ := ret[0].(Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Execute indicates an expected call of Execute.
func (mr *MockProcessorMockRecorder) Execute(tx, block, observer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Execute", reflect.TypeOf((*MockProcessor)(nil).Execute), tx, block, observer)
}

// CallAndRestore mocks base method.
func (m *MockProcessor) CallAndRestore(tx *Transaction, block *BlockContext, observer Observer) (Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CallAndRestore", tx, block, observer)
	ret0, _ := ret[0].(Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CallAndRestore indicates an expected call of CallAndRestore.
func (mr *MockProcessorMockRecorder) CallAndRestore(tx, block, observer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CallAndRestore", reflect.TypeOf((*MockProcessor)(nil).CallAndRestore), tx, block, observer)
}
