// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tracer

import (
	"github.com/Fantom-foundation/Floria/go/transit"
)

// composite forwards each event to all observers interested in it.
type composite []transit.Observer

// Combine creates an observer forwarding events to all given observers.
func Combine(observers ...transit.Observer) transit.Observer {
	switch len(observers) {
	case 0:
		return transit.NoopObserver{}
	case 1:
		return observers[0]
	}
	return composite(observers)
}

func (c composite) any(check func(transit.Observer) bool) bool {
	for _, observer := range c {
		if check(observer) {
			return true
		}
	}
	return false
}

func (c composite) IsTracingReceipt() bool {
	return c.any(transit.Observer.IsTracingReceipt)
}

func (c composite) IsTracingState() bool {
	return c.any(transit.Observer.IsTracingState)
}

func (c composite) IsTracingRefunds() bool {
	return c.any(transit.Observer.IsTracingRefunds)
}

func (c composite) IsTracingAccess() bool {
	return c.any(transit.Observer.IsTracingAccess)
}

func (c composite) MarkAsSuccess(recipient transit.Address, gasSpent transit.Gas, output transit.Data, logs []transit.Log, stateRoot *transit.Hash) {
	for _, observer := range c {
		if observer.IsTracingReceipt() {
			observer.MarkAsSuccess(recipient, gasSpent, output, logs, stateRoot)
		}
	}
}

func (c composite) MarkAsFailed(recipient transit.Address, gasSpent transit.Gas, output transit.Data, reason string, stateRoot *transit.Hash) {
	for _, observer := range c {
		if observer.IsTracingReceipt() {
			observer.MarkAsFailed(recipient, gasSpent, output, reason, stateRoot)
		}
	}
}

func (c composite) ReportRefund(refund transit.Gas) {
	for _, observer := range c {
		if observer.IsTracingRefunds() {
			observer.ReportRefund(refund)
		}
	}
}

func (c composite) ReportAccess(addresses []transit.Address, cells []transit.StorageCell) {
	for _, observer := range c {
		if observer.IsTracingAccess() {
			observer.ReportAccess(addresses, cells)
		}
	}
}

func (c composite) ReportBalanceChange(address transit.Address, before, after transit.Value) {
	for _, observer := range c {
		if observer.IsTracingState() {
			observer.ReportBalanceChange(address, before, after)
		}
	}
}

func (c composite) ReportNonceChange(address transit.Address, before, after uint64) {
	for _, observer := range c {
		if observer.IsTracingState() {
			observer.ReportNonceChange(address, before, after)
		}
	}
}

func (c composite) ReportCodeChange(address transit.Address, before, after transit.Hash) {
	for _, observer := range c {
		if observer.IsTracingState() {
			observer.ReportCodeChange(address, before, after)
		}
	}
}

func (c composite) ReportStorageChange(cell transit.StorageCell, before, after transit.Word) {
	for _, observer := range c {
		if observer.IsTracingState() {
			observer.ReportStorageChange(cell, before, after)
		}
	}
}
