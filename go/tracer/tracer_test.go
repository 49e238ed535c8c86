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
	"testing"

	"github.com/Fantom-foundation/Floria/go/logger"
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/op/go-logging"
	"go.uber.org/mock/gomock"
)

func TestCollector_RecordsResults(t *testing.T) {
	collector := NewCollector(AllEvents)
	if _, found := collector.Last(); found {
		t.Fatalf("empty collector should have no result")
	}

	root := transit.Hash{1}
	collector.MarkAsSuccess(transit.Address{1}, 21_000, transit.Data{1}, []transit.Log{{}}, nil)
	collector.MarkAsFailed(transit.Address{2}, 50_000, nil, "out of gas", &root)

	if want, got := 2, len(collector.Results); want != got {
		t.Fatalf("unexpected number of results, wanted %d, got %d", want, got)
	}
	if !collector.Results[0].Success || collector.Results[0].GasSpent != 21_000 || len(collector.Results[0].Logs) != 1 {
		t.Errorf("unexpected first result %+v", collector.Results[0])
	}
	last, found := collector.Last()
	if !found || last.Success || last.Reason != "out of gas" || last.StateRoot == nil || *last.StateRoot != root {
		t.Errorf("unexpected last result %+v", last)
	}

	collector.Reset()
	if len(collector.Results) != 0 {
		t.Errorf("reset should drop all results")
	}
}

func TestCollector_RecordsSideEffects(t *testing.T) {
	collector := NewCollector(AllEvents)
	cell := transit.StorageCell{Address: transit.Address{1}, Key: transit.Key{2}}

	collector.ReportRefund(24_000)
	collector.ReportRefund(4_800)
	collector.ReportAccess([]transit.Address{{1}, {3}}, []transit.StorageCell{cell})
	collector.ReportAccess([]transit.Address{{1}}, nil)
	collector.ReportBalanceChange(transit.Address{1}, transit.NewValue(1), transit.NewValue(2))
	collector.ReportNonceChange(transit.Address{1}, 0, 1)
	collector.ReportCodeChange(transit.Address{1}, transit.Hash{}, transit.Hash{3})
	collector.ReportStorageChange(cell, transit.Word{}, transit.Word{4})

	if want, got := transit.Gas(28_800), collector.TotalRefund(); want != got {
		t.Errorf("unexpected total refund, wanted %d, got %d", want, got)
	}
	if want, got := 2, len(collector.Addresses); want != got {
		t.Errorf("unexpected number of accessed addresses, wanted %d, got %d", want, got)
	}
	if _, found := collector.Cells[cell]; !found {
		t.Errorf("accessed cell not recorded")
	}
	if len(collector.BalanceChanges) != 1 || len(collector.NonceChanges) != 1 ||
		len(collector.CodeChanges) != 1 || len(collector.StorageChanges) != 1 {
		t.Errorf("state changes not recorded")
	}
	if want, got := (StorageChange{Cell: cell, After: transit.Word{4}}), collector.StorageChanges[0]; want != got {
		t.Errorf("unexpected storage change, wanted %v, got %v", want, got)
	}
}

func TestCollector_OptionsControlTracing(t *testing.T) {
	collector := NewCollector(Options{Receipt: true, Access: true})
	if !collector.IsTracingReceipt() || collector.IsTracingState() || collector.IsTracingRefunds() || !collector.IsTracingAccess() {
		t.Errorf("tracing flags do not match options")
	}
}

func TestCombine_ForwardsEventsToInterestedObservers(t *testing.T) {
	ctrl := gomock.NewController(t)
	receipts := transit.NewMockObserver(ctrl)
	receipts.EXPECT().IsTracingReceipt().Return(true).AnyTimes()
	receipts.EXPECT().IsTracingState().Return(false).AnyTimes()
	receipts.EXPECT().IsTracingRefunds().Return(false).AnyTimes()
	receipts.EXPECT().IsTracingAccess().Return(false).AnyTimes()

	collector := NewCollector(Options{State: true})
	observer := Combine(receipts, collector)

	if !observer.IsTracingReceipt() || !observer.IsTracingState() || observer.IsTracingRefunds() || observer.IsTracingAccess() {
		t.Errorf("combined tracing flags should be the union of the observers")
	}

	receipts.EXPECT().MarkAsSuccess(transit.Address{1}, transit.Gas(10), gomock.Nil(), gomock.Nil(), gomock.Nil())
	observer.MarkAsSuccess(transit.Address{1}, 10, nil, nil, nil)
	observer.ReportNonceChange(transit.Address{1}, 0, 1)
	observer.ReportRefund(10)

	if len(collector.Results) != 0 {
		t.Errorf("collector should not receive results it is not tracing")
	}
	if len(collector.NonceChanges) != 1 {
		t.Errorf("collector should receive state changes")
	}
	if len(collector.Refunds) != 0 {
		t.Errorf("collector should not receive refunds it is not tracing")
	}
}

func TestCombine_TrivialCombinations(t *testing.T) {
	if _, ok := Combine().(transit.NoopObserver); !ok {
		t.Errorf("combining no observers should yield a no-op observer")
	}
	collector := NewCollector(AllEvents)
	if Combine(collector) != transit.Observer(collector) {
		t.Errorf("combining a single observer should yield the observer itself")
	}
}

func TestLoggingObserver_TracesDependOnLogLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().IsEnabledFor(logging.INFO).Return(true).AnyTimes()
	log.EXPECT().IsEnabledFor(logging.DEBUG).Return(false).AnyTimes()

	observer := NewLoggingObserver(log)
	if !observer.IsTracingReceipt() {
		t.Errorf("receipts should be traced at INFO level")
	}
	if observer.IsTracingState() || observer.IsTracingRefunds() || observer.IsTracingAccess() {
		t.Errorf("details should only be traced at DEBUG level")
	}
}

func TestLoggingObserver_ReportsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	recipient := transit.Address{1}
	log.EXPECT().Infof(gomock.Any(), recipient, transit.Gas(21_000), transit.Data{0x01}, 0)
	log.EXPECT().Infof(gomock.Any(), recipient, "reverted", transit.Gas(50_000), gomock.Nil())
	log.EXPECT().Debugf(gomock.Any(), recipient, transit.Value{}, transit.NewValue(5))

	observer := NewLoggingObserver(log)
	observer.MarkAsSuccess(recipient, 21_000, transit.Data{0x01}, nil, nil)
	observer.MarkAsFailed(recipient, 50_000, nil, "reverted", nil)
	observer.ReportBalanceChange(recipient, transit.Value{}, transit.NewValue(5))
}
