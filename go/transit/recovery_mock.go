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

// MockSignatureRecoverer is a mock of SignatureRecoverer interface.
type MockSignatureRecoverer struct {
	ctrl     *gomock.Controller
	recorder *MockSignatureRecovererMockRecorder
}

// MockSignatureRecovererMockRecorder is the mock recorder for MockSignatureRecoverer.
type MockSignatureRecovererMockRecorder struct {
	mock *MockSignatureRecoverer
}

// NewMockSignatureRecoverer creates a new mock instance.
func NewMockSignatureRecoverer(ctrl *gomock.Controller) *MockSignatureRecoverer {
	mock := &MockSignatureRecoverer{ctrl: ctrl}
	mock.recorder = &MockSignatureRecovererMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSignatureRecoverer) EXPECT() *MockSignatureRecovererMockRecorder {
	return m.recorder
}

// RecoverSenderAddress mocks base method.
func (m *MockSignatureRecoverer) RecoverSenderAddress(tx *Transaction, skipChainIdCheck bool) (*Address, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecoverSenderAddress", tx, skipChainIdCheck)
	ret0, _ := ret[0].(*Address)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecoverSenderAddress indicates an expected call of RecoverSenderAddress.
func (mr *MockSignatureRecovererMockRecorder) RecoverSenderAddress(tx, skipChainIdCheck any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecoverSenderAddress", reflect.TypeOf((*MockSignatureRecoverer)(nil).RecoverSenderAddress), tx, skipChainIdCheck)
}
