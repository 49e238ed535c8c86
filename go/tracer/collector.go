// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package tracer provides observers collecting or logging the outcome and
// the side effects of executed transactions.
package tracer

import (
	"github.com/Fantom-foundation/Floria/go/transit"
)

// Result is the outcome of a transaction as reported to an observer.
type Result struct {
	Success   bool
	Recipient transit.Address
	GasSpent  transit.Gas
	Output    transit.Data
	Logs      []transit.Log
	StateRoot *transit.Hash
	Reason    string // empty on success
}

// BalanceChange, NonceChange, CodeChange, and StorageChange describe
// committed modifications of the world state.
type BalanceChange struct {
	Address       transit.Address
	Before, After transit.Value
}

type NonceChange struct {
	Address       transit.Address
	Before, After uint64
}

type CodeChange struct {
	Address       transit.Address
	Before, After transit.Hash
}

type StorageChange struct {
	Cell          transit.StorageCell
	Before, After transit.Word
}

// Options selects the kinds of events an observer is interested in.
type Options struct {
	Receipt bool
	State   bool
	Refunds bool
	Access  bool
}

// AllEvents enables all kinds of events.
var AllEvents = Options{Receipt: true, State: true, Refunds: true, Access: true}

// Collector is an observer recording all reported events. A collector may be
// used for multiple transactions; results and changes are accumulated until
// Reset is called. Collectors are not thread-safe.
type Collector struct {
	options Options

	Results   []Result
	Refunds   []transit.Gas
	Addresses map[transit.Address]struct{}
	Cells     map[transit.StorageCell]struct{}

	BalanceChanges []BalanceChange
	NonceChanges   []NonceChange
	CodeChanges    []CodeChange
	StorageChanges []StorageChange
}

func NewCollector(options Options) *Collector {
	res := &Collector{options: options}
	res.Reset()
	return res
}

// Reset drops all recorded events.
func (c *Collector) Reset() {
	c.Results = nil
	c.Refunds = nil
	c.Addresses = map[transit.Address]struct{}{}
	c.Cells = map[transit.StorageCell]struct{}{}
	c.BalanceChanges = nil
	c.NonceChanges = nil
	c.CodeChanges = nil
	c.StorageChanges = nil
}

// Last returns the most recently reported result, if any.
func (c *Collector) Last() (Result, bool) {
	if len(c.Results) == 0 {
		return Result{}, false
	}
	return c.Results[len(c.Results)-1], true
}

// TotalRefund sums up all reported refunds.
func (c *Collector) TotalRefund() transit.Gas {
	total := transit.Gas(0)
	for _, refund := range c.Refunds {
		total += refund
	}
	return total
}

func (c *Collector) IsTracingReceipt() bool { return c.options.Receipt }
func (c *Collector) IsTracingState() bool   { return c.options.State }
func (c *Collector) IsTracingRefunds() bool { return c.options.Refunds }
func (c *Collector) IsTracingAccess() bool  { return c.options.Access }

func (c *Collector) MarkAsSuccess(recipient transit.Address, gasSpent transit.Gas, output transit.Data, logs []transit.Log, stateRoot *transit.Hash) {
	c.Results = append(c.Results, Result{
		Success:   true,
		Recipient: recipient,
		GasSpent:  gasSpent,
		Output:    output,
		Logs:      logs,
		StateRoot: stateRoot,
	})
}

func (c *Collector) MarkAsFailed(recipient transit.Address, gasSpent transit.Gas, output transit.Data, reason string, stateRoot *transit.Hash) {
	c.Results = append(c.Results, Result{
		Recipient: recipient,
		GasSpent:  gasSpent,
		Output:    output,
		StateRoot: stateRoot,
		Reason:    reason,
	})
}

func (c *Collector) ReportRefund(refund transit.Gas) {
	c.Refunds = append(c.Refunds, refund)
}

func (c *Collector) ReportAccess(addresses []transit.Address, cells []transit.StorageCell) {
	for _, address := range addresses {
		c.Addresses[address] = struct{}{}
	}
	for _, cell := range cells {
		c.Cells[cell] = struct{}{}
	}
}

func (c *Collector) ReportBalanceChange(address transit.Address, before, after transit.Value) {
	c.BalanceChanges = append(c.BalanceChanges, BalanceChange{Address: address, Before: before, After: after})
}

func (c *Collector) ReportNonceChange(address transit.Address, before, after uint64) {
	c.NonceChanges = append(c.NonceChanges, NonceChange{Address: address, Before: before, After: after})
}

func (c *Collector) ReportCodeChange(address transit.Address, before, after transit.Hash) {
	c.CodeChanges = append(c.CodeChanges, CodeChange{Address: address, Before: before, After: after})
}

func (c *Collector) ReportStorageChange(cell transit.StorageCell, before, after transit.Word) {
	c.StorageChanges = append(c.StorageChanges, StorageChange{Cell: cell, Before: before, After: after})
}
