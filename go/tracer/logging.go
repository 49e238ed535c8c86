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
	"github.com/Fantom-foundation/Floria/go/logger"
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/op/go-logging"
)

// loggingObserver reports transaction outcomes at INFO level and state
// changes at DEBUG level.
type loggingObserver struct {
	log logger.Logger
}

// NewLoggingObserver creates an observer writing all events to the given
// logger. Only events enabled by the logger's level are requested.
func NewLoggingObserver(log logger.Logger) transit.Observer {
	return &loggingObserver{log: log}
}

func (o *loggingObserver) IsTracingReceipt() bool { return o.log.IsEnabledFor(logging.INFO) }
func (o *loggingObserver) IsTracingState() bool   { return o.log.IsEnabledFor(logging.DEBUG) }
func (o *loggingObserver) IsTracingRefunds() bool { return o.log.IsEnabledFor(logging.DEBUG) }
func (o *loggingObserver) IsTracingAccess() bool  { return o.log.IsEnabledFor(logging.DEBUG) }

func (o *loggingObserver) MarkAsSuccess(recipient transit.Address, gasSpent transit.Gas, output transit.Data, logs []transit.Log, _ *transit.Hash) {
	o.log.Infof("Transaction to %v succeeded, gas spent: %d, output: %x, logs: %d", recipient, gasSpent, output, len(logs))
}

func (o *loggingObserver) MarkAsFailed(recipient transit.Address, gasSpent transit.Gas, output transit.Data, reason string, _ *transit.Hash) {
	o.log.Infof("Transaction to %v failed (%s), gas spent: %d, output: %x", recipient, reason, gasSpent, output)
}

func (o *loggingObserver) ReportRefund(refund transit.Gas) {
	o.log.Debugf("Refund: %d", refund)
}

func (o *loggingObserver) ReportAccess(addresses []transit.Address, cells []transit.StorageCell) {
	o.log.Debugf("Accessed %d accounts and %d storage cells", len(addresses), len(cells))
}

func (o *loggingObserver) ReportBalanceChange(address transit.Address, before, after transit.Value) {
	o.log.Debugf("Balance of %v: %v -> %v", address, before, after)
}

func (o *loggingObserver) ReportNonceChange(address transit.Address, before, after uint64) {
	o.log.Debugf("Nonce of %v: %d -> %d", address, before, after)
}

func (o *loggingObserver) ReportCodeChange(address transit.Address, before, after transit.Hash) {
	o.log.Debugf("Code of %v: %v -> %v", address, before, after)
}

func (o *loggingObserver) ReportStorageChange(cell transit.StorageCell, before, after transit.Word) {
	o.log.Debugf("Storage %v/%v: %v -> %v", cell.Address, cell.Key, before, after)
}
