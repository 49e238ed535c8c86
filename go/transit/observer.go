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

//go:generate mockgen -source observer.go -destination observer_mock.go -package transit

// Observer is notified about the progress and outcome of transactions. Each
// group of reports is only issued if the corresponding IsTracing method
// returns true. Observers must not alter the execution.
type Observer interface {
	IsTracingReceipt() bool
	IsTracingState() bool
	IsTracingRefunds() bool
	IsTracingAccess() bool

	MarkAsSuccess(recipient Address, gasSpent Gas, output Data, logs []Log, stateRoot *Hash)
	MarkAsFailed(recipient Address, gasSpent Gas, output Data, reason string, stateRoot *Hash)

	ReportRefund(refund Gas)
	ReportAccess(addresses []Address, cells []StorageCell)

	ReportBalanceChange(address Address, before, after Value)
	ReportNonceChange(address Address, before, after uint64)
	ReportCodeChange(address Address, before, after Hash)
	ReportStorageChange(cell StorageCell, before, after Word)
}

// NoopObserver ignores all reports.
type NoopObserver struct{}

func (NoopObserver) IsTracingReceipt() bool { return false }
func (NoopObserver) IsTracingState() bool   { return false }
func (NoopObserver) IsTracingRefunds() bool { return false }
func (NoopObserver) IsTracingAccess() bool  { return false }

func (NoopObserver) MarkAsSuccess(Address, Gas, Data, []Log, *Hash) {}
func (NoopObserver) MarkAsFailed(Address, Gas, Data, string, *Hash) {}
func (NoopObserver) ReportRefund(Gas)                               {}
func (NoopObserver) ReportAccess([]Address, []StorageCell)          {}
func (NoopObserver) ReportBalanceChange(Address, Value, Value)      {}
func (NoopObserver) ReportNonceChange(Address, uint64, uint64)      {}
func (NoopObserver) ReportCodeChange(Address, Hash, Hash)           {}
func (NoopObserver) ReportStorageChange(StorageCell, Word, Word)    {}
