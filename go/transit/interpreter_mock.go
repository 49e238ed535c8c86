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

// MockInterpreter is a mock of Interpreter interface.
type MockInterpreter struct {
	ctrl     *gomock.Controller
	recorder *MockInterpreterMockRecorder
}

// MockInterpreterMockRecorder is the mock recorder for MockInterpreter.
type MockInterpreterMockRecorder struct {
	mock *MockInterpreter
}

// NewMockInterpreter creates a new mock instance.
func NewMockInterpreter(ctrl *gomock.Controller) *MockInterpreter {
	mock := &MockInterpreter{ctrl: ctrl}
	mock.recorder = &MockInterpreterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInterpreter) EXPECT() *MockInterpreterMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockInterpreter) Run(state *CallState, observer Observer) (*Substate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", state, observer)
	ret0, _ := ret[0].(*Substate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Run indicates an expected call of Run.
func (mr *MockInterpreterMockRecorder) Run(state, observer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockInterpreter)(nil).Run), state, observer)
}

// GetCachedCodeInfo mocks base method.
func (m *MockInterpreter) GetCachedCodeInfo(address Address, rules ForkRules) Code {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCachedCodeInfo", address, rules)
	ret0, _ := ret[0].(Code)
	return ret0
}

// GetCachedCodeInfo indicates an expected call of GetCachedCodeInfo.
func (mr *MockInterpreterMockRecorder) GetCachedCodeInfo(address, rules any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCachedCodeInfo", reflect.TypeOf((*MockInterpreter)(nil).GetCachedCodeInfo), address, rules)
}
