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

// MockSpecProvider is a mock of SpecProvider interface.
type MockSpecProvider struct {
	ctrl     *gomock.Controller
	recorder *MockSpecProviderMockRecorder
}

// MockSpecProviderMockRecorder is the mock recorder for MockSpecProvider.
type MockSpecProviderMockRecorder struct {
	mock *MockSpecProvider
}

// NewMockSpecProvider creates a new mock instance.
func NewMockSpecProvider(ctrl *gomock.Controller) *MockSpecProvider {
	mock := &MockSpecProvider{ctrl: ctrl}
	mock.recorder = &MockSpecProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSpecProvider) EXPECT() *MockSpecProviderMockRecorder {
	return m.recorder
}

// RulesFor mocks base method.
func (m *MockSpecProvider) RulesFor(blockNumber int64) ForkRules {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RulesFor", blockNumber)
	ret0, _ := ret[0].(ForkRules)
	return ret0
}

// RulesFor indicates an expected call of RulesFor.
func (mr *MockSpecProviderMockRecorder) RulesFor(blockNumber any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RulesFor", reflect.TypeOf((*MockSpecProvider)(nil).RulesFor), blockNumber)
}
