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
	"fmt"
	"slices"

	"github.com/Fantom-foundation/Floria/go/logger"
	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
)

var emptyRootHash = transit.Hash(types.EmptyRootHash)

func init() {
	transit.RegisterProcessorFactory("floria", NewProcessor)
}

// NewProcessor creates a processor operating on the given environment. If no
// logger is provided, a logger of the "floria" module emitting warnings and
// above is used.
func NewProcessor(env transit.Environment) transit.Processor {
	log := env.Log
	if log == nil {
		log = logger.ForModule("warning", "floria")
	}
	return &processor{
		spec:        env.Spec,
		state:       env.State,
		storage:     env.Storage,
		interpreter: env.Interpreter,
		recoverer:   env.Recoverer,
		log:         log,
	}
}

// processor is stateless between transactions. It may be shared by
// sequential callers, but its stores must not be used concurrently.
type processor struct {
	spec        transit.SpecProvider
	state       transit.StateStore
	storage     transit.StorageStore
	interpreter transit.Interpreter
	recoverer   transit.SignatureRecoverer
	log         logger.Logger
}

func (p *processor) Execute(tx *transit.Transaction, block *transit.BlockContext, observer transit.Observer) (transit.Receipt, error) {
	return p.newExecution(tx, block, observer, false).run()
}

func (p *processor) CallAndRestore(tx *transit.Transaction, block *transit.BlockContext, observer transit.Observer) (transit.Receipt, error) {
	return p.newExecution(tx, block, observer, true).run()
}

// execution holds the intermediate results of processing one transaction.
type execution struct {
	*processor
	tx       *transit.Transaction
	block    *transit.BlockContext
	observer transit.Observer
	isCall   bool
	rules    transit.ForkRules

	isSystem bool
	isFree   bool

	sender        transit.Address
	gasPrice      transit.Value
	premium       transit.Value
	intrinsicGas  transit.Gas
	reservation   transit.Value
	creationNonce uint64

	senderCreated bool
	entrySnapshot transit.Snapshot
}

func (p *processor) newExecution(tx *transit.Transaction, block *transit.BlockContext, observer transit.Observer, isCall bool) *execution {
	if observer == nil {
		observer = transit.NoopObserver{}
	}
	rules := p.spec.RulesFor(block.Number)
	if tx.IsSystem {
		rules = rules.ForSystemTransaction()
	}
	return &execution{
		processor: p,
		tx:        tx,
		block:     block,
		observer:  observer,
		isCall:    isCall,
		rules:     rules,
		isSystem:  tx.IsSystem,
		isFree:    tx.IsFeeExempt(),
	}
}

func (e *execution) run() (transit.Receipt, error) {
	e.entrySnapshot = e.state.TakeSnapshot()

	// FEE_CHECK
	feeCap, baseFee := e.tx.MaxFeePerGas(), e.block.BaseFee
	if baseFee.Cmp(feeCap) > 0 && !e.isFree {
		return e.quickFail(transit.ErrMinerPremiumNegative, "MINER_PREMIUM_IS_NEGATIVE %v > %v", baseFee, feeCap)
	}
	e.premium = PriorityFeePerGas(e.tx, baseFee, e.isFree)
	e.gasPrice = EffectiveGasPrice(e.tx, baseFee, e.rules)

	// SENDER_RESOLUTION
	if e.tx.Sender == nil {
		return e.quickFail(transit.ErrSenderNotSpecified, "SENDER_NOT_SPECIFIED")
	}
	e.sender = *e.tx.Sender

	// GAS_VALIDATION
	intrinsicGas, err := IntrinsicGas(e.tx, e.rules)
	if err != nil {
		return e.quickFail(transit.ErrGasLimitBelowIntrinsicGas, "GAS_LIMIT_BELOW_INTRINSIC_GAS %v", err)
	}
	e.intrinsicGas = intrinsicGas
	if !e.isSystem {
		if e.tx.GasLimit < intrinsicGas {
			return e.quickFail(transit.ErrGasLimitBelowIntrinsicGas, "GAS_LIMIT_BELOW_INTRINSIC_GAS %d < %d", e.tx.GasLimit, intrinsicGas)
		}
		if !e.isCall && e.tx.GasLimit > e.block.RemainingGas(e.rules) {
			return e.quickFail(transit.ErrBlockGasLimitExceeded, "BLOCK_GAS_LIMIT_EXCEEDED %d > %d - %d",
				e.tx.GasLimit, e.block.ActualGasLimit(e.rules), e.block.GasUsed)
		}
	}

	if receipt, failed, err := e.resolveSenderAccount(); failed || err != nil {
		return receipt, err
	}

	// BALANCE_NONCE_CHECK
	e.creationNonce = e.state.GetNonce(e.sender)
	if receipt, failed := e.checkBalanceAndNonce(); failed {
		return receipt, nil
	}

	// RESERVE
	e.state.SubtractFromBalance(e.sender, e.reservation, e.rules)
	e.state.Commit(e.rules, e.observer)

	return e.execute()
}

// resolveSenderAccount makes sure the sender account exists. Senders of
// transactions with a signature are recovered again without validating the
// chain id to cover signatures recovered under the wrong chain.
func (e *execution) resolveSenderAccount() (transit.Receipt, bool, error) {
	if e.state.AccountExists(e.sender) {
		return transit.Receipt{}, false, nil
	}

	if e.tx.Signature != nil {
		recovered, err := e.recoverer.RecoverSenderAddress(e.tx, true)
		if err != nil {
			return transit.Receipt{}, false, fmt.Errorf("failed to recover sender of %v: %w", e.tx.Hash, err)
		}
		if recovered == nil {
			return transit.Receipt{}, false, fmt.Errorf("failed to recover sender of %v when previously recovered sender account did not exist", e.tx.Hash)
		}
		if *recovered != e.sender {
			e.log.Warningf("TX recovery issue fixed - tx was coming with sender %v and now it recovers to %v", e.sender, *recovered)
			e.sender = *recovered
			e.tx.Sender = recovered
			e.senderCreated = !e.state.AccountExists(e.sender)
			return transit.Receipt{}, false, nil
		}
	}

	if !e.isCall && !e.gasPrice.IsZero() {
		receipt, err := e.quickFail(transit.ErrSenderAccountDoesNotExist, "SENDER_ACCOUNT_DOES_NOT_EXIST %v", e.sender)
		return receipt, true, err
	}
	e.log.Debugf("Creating sender account %v of tx %v", e.sender, e.tx.Hash)
	e.senderCreated = true
	e.state.CreateAccount(e.sender, transit.Value{})
	return transit.Receipt{}, false, nil
}

// checkBalanceAndNonce validates the sender account and increments its
// nonce. System transactions are exempt from both checks. Durable executions
// additionally need to cover the gas reservation.
func (e *execution) checkBalanceAndNonce() (transit.Receipt, bool) {
	balance := e.state.GetBalance(e.sender)
	if !e.isCall && !e.isSystem {
		cost, overflow := transit.Mul(e.gasPrice, transit.NewValue(uint64(e.intrinsicGas)))
		if !overflow {
			cost, overflow = transit.Add(cost, e.tx.Value)
		}
		if overflow || cost.Cmp(balance) > 0 {
			receipt, _ := e.quickFail(transit.ErrInsufficientSenderBalance, "INSUFFICIENT_SENDER_BALANCE: (%v)_BALANCE = %v", e.sender, balance)
			return receipt, true
		}
	}

	if !e.isCall {
		reservation, overflow := transit.Mul(e.gasPrice, transit.NewValue(uint64(e.tx.GasLimit)))
		if overflow || reservation.Cmp(balance) > 0 {
			receipt, _ := e.quickFail(transit.ErrInsufficientSenderBalance, "INSUFFICIENT_SENDER_BALANCE: (%v)_BALANCE = %v < %v * %d",
				e.sender, balance, e.gasPrice, e.tx.GasLimit)
			return receipt, true
		}
		e.reservation = reservation
	}

	if e.isSystem {
		return transit.Receipt{}, false
	}
	if nonce := e.state.GetNonce(e.sender); e.tx.Nonce != nonce {
		receipt, _ := e.quickFail(transit.ErrWrongTransactionNonce, "WRONG_TRANSACTION_NONCE: %d (expected %d)", e.tx.Nonce, nonce)
		return receipt, true
	}
	e.state.IncrementNonce(e.sender)
	return transit.Receipt{}, false
}

// outcome summarizes the result of running a transaction after its gas was
// reserved.
type outcome struct {
	success    bool
	recipient  transit.Address
	unspentGas transit.Gas
	spentGas   transit.Gas
	substate   *transit.Substate // nil if the code was not run
	refundable bool              // false for failures raised outside the interpreter
	err        error
}

func (e *execution) execute() (transit.Receipt, error) {
	stateSnapshot := e.state.TakeSnapshot()
	storageSnapshot := e.storage.TakeSnapshot()

	res, err := e.runAndSettle(max(e.tx.GasLimit-e.intrinsicGas, 0))
	if err != nil {
		e.discard()
		return transit.Receipt{}, err
	}
	if !res.success {
		e.log.Debugf("Restoring state from before transaction %v: %v", e.tx.Hash, res.err)
		e.state.Restore(stateSnapshot)
		e.storage.Restore(storageSnapshot)
	}

	res.spentGas = e.tx.GasLimit
	if res.refundable {
		res.spentGas = e.refund(res.unspentGas, res.substate)
	}

	e.payBeneficiary(res)
	e.finalize(res.spentGas)
	return e.report(res), nil
}

// runAndSettle moves the value, runs the transaction's code, and settles the
// results of a successful execution. Failures are reported in the outcome;
// the returned error is reserved for internal faults.
func (e *execution) runAndSettle(unspentGas transit.Gas) (outcome, error) {
	res := outcome{unspentGas: unspentGas}
	if e.tx.IsContractCreation() {
		res.recipient = createAddress(e.sender, e.creationNonce)
	} else {
		res.recipient = *e.tx.Recipient
	}

	if balance := e.state.GetBalance(e.sender); balance.Cmp(e.tx.Value) < 0 {
		res.err = fmt.Errorf("%w: %v < %v", transit.ErrInsufficientBalanceForTransfer, balance, e.tx.Value)
		return res, nil
	}
	e.state.SubtractFromBalance(e.sender, e.tx.Value, e.rules)

	kind := transit.Call
	var code transit.Code
	var input transit.Data
	if e.tx.IsContractCreation() {
		kind = transit.Create
		code = transit.Code(e.tx.Input)
		if e.state.AccountExists(res.recipient) {
			if len(e.interpreter.GetCachedCodeInfo(res.recipient, e.rules)) != 0 || e.state.GetNonce(res.recipient) != 0 {
				e.log.Debugf("Contract collision at %v", res.recipient)
				res.err = fmt.Errorf("%w at %v", transit.ErrContractCollision, res.recipient)
				return res, nil
			}
			e.state.UpdateStorageRoot(res.recipient, emptyRootHash)
			e.storage.ClearStorage(res.recipient)
		}
	} else {
		code = e.interpreter.GetCachedCodeInfo(res.recipient, e.rules)
		input = e.tx.Input
	}

	env := transit.ExecutionEnvironment{
		TxContext: transit.TxContext{
			Block:    *e.block,
			Origin:   e.sender,
			GasPrice: e.gasPrice,
			ChainID:  e.rules.ChainID,
		},
		Caller:           e.sender,
		CodeSource:       res.recipient,
		ExecutingAccount: res.recipient,
		Value:            e.tx.Value,
		TransferValue:    e.tx.Value,
		Input:            input,
		Code:             code,
	}
	state := transit.NewCallState(unspentGas, env, kind, e.rules)
	if e.rules.UseTxAccessLists {
		state.WarmUp(e.tx.AccessList)
	}
	if e.rules.UseHotAndColdStorage {
		state.WarmUpAddress(e.sender)
		state.WarmUpAddress(res.recipient)
	}
	if e.rules.IsEip3651Enabled {
		state.WarmUpAddress(e.block.Beneficiary)
	}

	substate, err := e.interpreter.Run(state, e.observer)
	if err != nil {
		return res, fmt.Errorf("interpreter failed to run %v: %w", e.tx.Hash, err)
	}
	if substate == nil {
		return res, fmt.Errorf("interpreter produced no result for %v", e.tx.Hash)
	}
	res.substate = substate
	res.unspentGas = max(substate.GasLeft, 0)

	if e.observer.IsTracingAccess() {
		e.observer.ReportAccess(state.AccessedAddresses(), state.AccessedStorageCells())
	}

	if substate.ShouldRevert || substate.IsError {
		res.err = substateError(substate)
		res.refundable = true
		return res, nil
	}

	if e.tx.IsContractCreation() {
		remaining, err := e.depositCode(res.recipient, substate.Output, res.unspentGas)
		if err != nil {
			res.err = err
			return res, nil
		}
		res.unspentGas = remaining
	}

	for _, address := range substate.DestroyList {
		e.log.Debugf("Destroying account %v", address)
		e.storage.ClearStorage(address)
		e.state.DeleteAccount(address)
		if e.observer.IsTracingRefunds() {
			e.observer.ReportRefund(DestroyRefund(e.rules))
		}
	}

	res.success = true
	res.refundable = true
	return res, nil
}

// depositCode stores the code produced by a contract creation and returns
// the remaining gas.
func (e *execution) depositCode(address transit.Address, code transit.Data, unspentGas transit.Gas) (transit.Gas, error) {
	if e.rules.IsEip3541Enabled && len(code) > 0 && code[0] == 0xEF {
		return 0, fmt.Errorf("%w: code starts with 0xEF", transit.ErrInvalidCode)
	}
	if e.rules.IsEip170Enabled && len(code) > params.MaxCodeSize {
		return 0, fmt.Errorf("%w: code size %d exceeds limit %d", transit.ErrInvalidCode, len(code), params.MaxCodeSize)
	}

	cost := transit.Gas(len(code)) * transit.Gas(params.CreateDataGas)
	if unspentGas < cost {
		if e.rules.ChargeForTopLevelCreate {
			return 0, fmt.Errorf("%w: code deposit of %d bytes", transit.ErrOutOfGas, len(code))
		}
		return unspentGas, nil
	}

	hash := e.state.UpdateCode(transit.Code(code))
	e.state.UpdateCodeHash(address, hash, e.rules)
	return unspentGas - cost, nil
}

// payBeneficiary credits the priority fee of the spent gas to the block
// beneficiary. Successful transactions destroying the beneficiary pay nothing.
func (e *execution) payBeneficiary(res outcome) {
	if e.isFree {
		return
	}
	if res.success && slices.Contains(res.substate.DestroyList, e.block.Beneficiary) {
		return
	}
	fee := e.premium.Scale(uint64(res.spentGas))
	if !e.state.AccountExists(e.block.Beneficiary) {
		e.state.CreateAccount(e.block.Beneficiary, fee)
		return
	}
	e.state.AddToBalance(e.block.Beneficiary, fee, e.rules)
}

// finalize commits the effects of durable executions and discards those of
// simulations.
func (e *execution) finalize(spentGas transit.Gas) {
	if e.isCall {
		e.discard()
		return
	}
	e.storage.Commit(e.observer)
	e.state.Commit(e.rules, e.observer)
	if !e.isSystem {
		e.block.GasUsed += spentGas
	}
}

// discard drops all uncommitted changes and undoes the gas reservation and
// nonce increment committed before running the code.
func (e *execution) discard() {
	e.storage.Reset()
	e.state.Reset()
	if e.senderCreated {
		e.state.DeleteAccount(e.sender)
	} else {
		e.state.AddToBalance(e.sender, e.reservation, e.rules)
		if !e.isSystem {
			e.state.DecrementNonce(e.sender)
		}
	}
	restoreRules := e.rules
	restoreRules.IsEip158Enabled = false
	var observer transit.Observer = transit.NoopObserver{}
	if !e.isCall {
		observer = e.observer
	}
	e.state.Commit(restoreRules, observer)
}

func (e *execution) report(res outcome) transit.Receipt {
	stateRoot := e.receiptStateRoot()
	receipt := transit.Receipt{
		Success:   res.success,
		Recipient: res.recipient,
		GasUsed:   res.spentGas,
		StateRoot: stateRoot,
		Err:       res.err,
	}
	if e.tx.IsContractCreation() {
		address := res.recipient
		receipt.ContractAddress = &address
	}

	if res.success {
		receipt.Output = res.substate.Output
		receipt.Logs = res.substate.Logs
		if e.observer.IsTracingReceipt() {
			e.observer.MarkAsSuccess(res.recipient, res.spentGas, receipt.Output, receipt.Logs, stateRoot)
		}
		return receipt
	}

	if res.substate != nil && res.substate.ShouldRevert {
		receipt.Output = res.substate.Output
	}
	if e.observer.IsTracingReceipt() {
		e.observer.MarkAsFailed(res.recipient, res.spentGas, receipt.Output, res.err.Error(), stateRoot)
	}
	return receipt
}

func substateError(substate *transit.Substate) error {
	if substate.IsError {
		if substate.Error == "" {
			return transit.ErrExecutionFailed
		}
		return fmt.Errorf("%w: %s", transit.ErrExecutionFailed, substate.Error)
	}
	return transit.ErrExecutionReverted
}
