// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package floria

import (
	"errors"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/Floria/go/logger"
	"github.com/Fantom-foundation/Floria/go/state"
	"github.com/Fantom-foundation/Floria/go/transit"
	"go.uber.org/mock/gomock"
)

func TestProcessor_IsRegistered(t *testing.T) {
	if _, found := transit.GetAllRegisteredProcessorFactories()["floria"]; !found {
		t.Errorf("floria processor is not registered")
	}
}

func TestProcessor_ObserverIsInformedAboutSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := transit.NewMockObserver(ctrl)
	observer.EXPECT().IsTracingReceipt().Return(true).AnyTimes()
	observer.EXPECT().IsTracingAccess().Return(true).AnyTimes()
	observer.EXPECT().IsTracingState().Return(false).AnyTimes()
	observer.EXPECT().IsTracingRefunds().Return(false).AnyTimes()

	gomock.InOrder(
		observer.EXPECT().ReportAccess(gomock.Any(), gomock.Any()),
		observer.EXPECT().MarkAsSuccess(receiver, transit.Gas(21_000), gomock.Nil(), gomock.Nil(), gomock.Nil()),
	)

	s := newScenario(transit.R10_London, funded, nil)
	if _, err := s.processor.Execute(newTransfer(21_000, 1), newBlock(), observer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessor_ObserverIsInformedAboutQuickFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := transit.NewMockObserver(ctrl)
	observer.EXPECT().IsTracingReceipt().Return(true).AnyTimes()
	observer.EXPECT().MarkAsFailed(receiver, transit.Gas(21_000), gomock.Nil(), string(transit.ErrWrongTransactionNonce), gomock.Nil())

	s := newScenario(transit.R10_London, funded, nil)
	tx := newTransfer(21_000, 1)
	tx.Nonce = 1
	if _, err := s.processor.Execute(tx, newBlock(), observer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessor_ObserverIsInformedAboutStateChangesAndRefunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := transit.NewMockObserver(ctrl)
	observer.EXPECT().IsTracingReceipt().Return(false).AnyTimes()
	observer.EXPECT().IsTracingAccess().Return(false).AnyTimes()
	observer.EXPECT().IsTracingState().Return(true).AnyTimes()
	observer.EXPECT().IsTracingRefunds().Return(true).AnyTimes()

	// reservation and nonce update
	observer.EXPECT().ReportBalanceChange(sender, transit.NewValue(1_000_000), transit.NewValue(1_000_000-100_000))
	observer.EXPECT().ReportNonceChange(sender, uint64(0), uint64(1))

	// settlement
	observer.EXPECT().ReportRefund(transit.Gas(24_000))
	observer.EXPECT().ReportStorageChange(transit.StorageCell{Address: receiver, Key: transit.Key{1}}, transit.Word{}, transit.Word{7})
	observer.EXPECT().ReportBalanceChange(sender, transit.NewValue(1_000_000-100_000), transit.NewValue(1_000_000-26_000))
	observer.EXPECT().ReportBalanceChange(beneficiary, transit.NewValue(0), transit.NewValue(26_000))

	s := newScenario(transit.R09_Berlin, funded, func(cs *transit.CallState, world *state.World) *transit.Substate {
		world.Storage.Set(transit.StorageCell{Address: receiver, Key: transit.Key{1}}, transit.Word{7})
		return &transit.Substate{GasLeft: cs.GasAvailable - 29_000, DestroyList: []transit.Address{{0x53}}}
	})
	receipt, err := s.processor.Execute(newTransfer(100_000, 1), newBlock(), observer)
	if err != nil || !receipt.Success {
		t.Fatalf("transaction should have succeeded, got %v, %v", err, receipt.Err)
	}
}

func TestProcessor_RecoveredSenderReplacesDeclaredSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	recoverer := transit.NewMockSignatureRecoverer(ctrl)
	log := logger.NewMockLogger(ctrl)

	recovered := transit.Address{0x53}
	world := state.NewWorld(state.WorldState{
		recovered: {Balance: transit.NewValue(100_000)},
	})
	tx := newTransfer(21_000, 1)
	tx.Signature = &transit.Signature{V: big.NewInt(27)}

	recoverer.EXPECT().RecoverSenderAddress(tx, true).Return(&recovered, nil)
	log.EXPECT().Warningf(gomock.Any(), sender, recovered)
	log.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	processor := NewProcessor(transit.Environment{
		Spec:        transit.SingleRevision(1, transit.R10_London),
		State:       world.Accounts,
		Storage:     world.Storage,
		Interpreter: &testInterpreter{world: world},
		Recoverer:   recoverer,
		Log:         log,
	})
	receipt, err := processor.Execute(tx, newBlock(), nil)
	if err != nil || !receipt.Success {
		t.Fatalf("transaction should have succeeded, got %v, %v", err, receipt.Err)
	}
	if *tx.Sender != recovered {
		t.Errorf("sender of transaction should be updated, got %v", *tx.Sender)
	}
	checkWorld(t, world, state.WorldState{
		recovered:   {Balance: transit.NewValue(100_000 - 21_000), Nonce: 1},
		beneficiary: {Balance: transit.NewValue(21_000)},
	})
}

func TestProcessor_RecoveredSenderIsNotRequiredToExist(t *testing.T) {
	ctrl := gomock.NewController(t)
	recoverer := transit.NewMockSignatureRecoverer(ctrl)
	log := logger.NewMockLogger(ctrl)

	recovered := transit.Address{0x77}
	pre := state.WorldState{receiver: {Balance: transit.NewValue(1)}}
	world := state.NewWorld(pre)
	tx := newTransfer(21_000, 1)
	tx.Signature = &transit.Signature{V: big.NewInt(27)}

	recoverer.EXPECT().RecoverSenderAddress(tx, true).Return(&recovered, nil)
	log.EXPECT().Warningf(gomock.Any(), sender, recovered)
	log.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	processor := NewProcessor(transit.Environment{
		Spec:        transit.SingleRevision(1, transit.R10_London),
		State:       world.Accounts,
		Storage:     world.Storage,
		Interpreter: &testInterpreter{world: world},
		Recoverer:   recoverer,
		Log:         log,
	})
	block := newBlock()
	receipt, err := processor.Execute(tx, block, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.Success || !errors.Is(receipt.Err, transit.ErrInsufficientSenderBalance) {
		t.Errorf("unexpected result, wanted %v, got %v", transit.ErrInsufficientSenderBalance, receipt.Err)
	}
	if want, got := transit.Gas(21_000), block.GasUsed; want != got {
		t.Errorf("unexpected block gas used, wanted %d, got %d", want, got)
	}
	checkWorld(t, world, pre)
}

func TestProcessor_RecoveryFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	recoverer := transit.NewMockSignatureRecoverer(ctrl)
	injected := errors.New("injected error")
	recoverer.EXPECT().RecoverSenderAddress(gomock.Any(), true).Return(nil, injected)

	world := state.NewWorld(funded)
	processor := NewProcessor(transit.Environment{
		Spec:        transit.SingleRevision(1, transit.R10_London),
		State:       world.Accounts,
		Storage:     world.Storage,
		Interpreter: &testInterpreter{world: world},
		Recoverer:   recoverer,
	})
	unknown := transit.Address{0x99}
	tx := newTransfer(21_000, 1)
	tx.Sender = &unknown
	tx.Signature = &transit.Signature{}
	if _, err := processor.Execute(tx, newBlock(), nil); !errors.Is(err, injected) {
		t.Errorf("unexpected error, wanted %v, got %v", injected, err)
	}
}

func TestProcessor_InterpreterFailureDiscardsChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	interpreter := transit.NewMockInterpreter(ctrl)
	injected := errors.New("injected error")
	interpreter.EXPECT().GetCachedCodeInfo(receiver, gomock.Any())
	interpreter.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, injected)

	world := state.NewWorld(funded)
	processor := NewProcessor(transit.Environment{
		Spec:        transit.SingleRevision(1, transit.R10_London),
		State:       world.Accounts,
		Storage:     world.Storage,
		Interpreter: interpreter,
		Recoverer:   testRecoverer{},
	})
	if _, err := processor.CallAndRestore(newTransfer(21_000, 1), newBlock(), nil); !errors.Is(err, injected) {
		t.Errorf("unexpected error, wanted %v, got %v", injected, err)
	}
	checkWorld(t, world, funded)
}

func TestProcessor_InterpreterFailureRestoresSenderOfDurableExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	interpreter := transit.NewMockInterpreter(ctrl)
	injected := errors.New("injected error")
	interpreter.EXPECT().GetCachedCodeInfo(receiver, gomock.Any())
	interpreter.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, injected)

	world := state.NewWorld(funded)
	processor := NewProcessor(transit.Environment{
		Spec:        transit.SingleRevision(1, transit.R10_London),
		State:       world.Accounts,
		Storage:     world.Storage,
		Interpreter: interpreter,
		Recoverer:   testRecoverer{},
	})
	block := newBlock()
	if _, err := processor.Execute(newTransfer(21_000, 1), block, nil); !errors.Is(err, injected) {
		t.Errorf("unexpected error, wanted %v, got %v", injected, err)
	}
	if block.GasUsed != 0 {
		t.Errorf("failed execution should not use block gas, got %d", block.GasUsed)
	}
	checkWorld(t, world, funded)
}

func TestProcessor_CallStateIsPreparedForInterpreter(t *testing.T) {
	accessed := transit.Address{0x77}
	s := newScenario(transit.R12_Shanghai, funded, func(cs *transit.CallState, _ *state.World) *transit.Substate {
		if cs.Kind != transit.Call || !cs.IsTopLevel {
			t.Errorf("unexpected call kind %v", cs.Kind)
		}
		if want, got := transit.Gas(100_000-21_000-2_400), cs.GasAvailable; want != got {
			t.Errorf("unexpected available gas, wanted %d, got %d", want, got)
		}
		for _, address := range []transit.Address{sender, receiver, beneficiary, accessed} {
			if !cs.IsWarmAddress(address) {
				t.Errorf("address %v should be warm", address)
			}
		}
		if cs.Env.Caller != sender || cs.Env.TxContext.Origin != sender || cs.Env.ExecutingAccount != receiver {
			t.Errorf("unexpected environment %v", cs.Env)
		}
		if want, got := transit.NewValue(3), cs.Env.TxContext.GasPrice; want != got {
			t.Errorf("unexpected gas price, wanted %v, got %v", want, got)
		}
		return &transit.Substate{GasLeft: cs.GasAvailable}
	})
	tx := newTransfer(100_000, 3)
	tx.Type = transit.AccessListTxType
	tx.AccessList = []transit.AccessTuple{{Address: accessed}}
	receipt, err := s.processor.Execute(tx, newBlock(), nil)
	if err != nil || !receipt.Success {
		t.Fatalf("transaction should have succeeded, got %v, %v", err, receipt.Err)
	}
}
