// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package geth provides a transit.Interpreter running EVM code on the
// go-ethereum virtual machine. Nested calls, contract creations, and
// precompiled contracts invoked by the executed code are handled by geth;
// the top-level frame is prepared by the transaction processor.
package geth

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/tracing"
	geth "github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/holiman/uint256"
)

// Config parameterizes the interpreter.
type Config struct {
	// CodeCacheSize is the number of contract codes retained by the code
	// cache. If set to 0, a default size is used. If negative, no cache is used.
	CodeCacheSize int
}

const defaultCodeCacheSize = 4096

// Interpreter runs transaction frames on the geth EVM, reading and writing
// the state through the stores it was created for.
type Interpreter struct {
	state   transit.StateStore
	storage transit.StorageStore
	codes   *lru.Cache[transit.Hash, transit.Code]
}

// NewInterpreter creates an interpreter operating on the given stores.
func NewInterpreter(state transit.StateStore, storage transit.StorageStore, config Config) (*Interpreter, error) {
	if config.CodeCacheSize == 0 {
		config.CodeCacheSize = defaultCodeCacheSize
	}
	var codes *lru.Cache[transit.Hash, transit.Code]
	if config.CodeCacheSize > 0 {
		var err error
		codes, err = lru.New[transit.Hash, transit.Code](config.CodeCacheSize)
		if err != nil {
			return nil, err
		}
	}
	return &Interpreter{
		state:   state,
		storage: storage,
		codes:   codes,
	}, nil
}

// GetCachedCodeInfo returns the code of the given account. Codes are cached by
// their hash.
func (i *Interpreter) GetCachedCodeInfo(address transit.Address, _ transit.ForkRules) transit.Code {
	hash := i.state.GetCodeHash(address)
	if i.codes == nil || hash == (transit.Hash{}) {
		return i.state.GetCode(address)
	}
	if code, found := i.codes.Get(hash); found {
		return code
	}
	code := i.state.GetCode(address)
	if len(code) <= params.MaxCodeSize {
		i.codes.Add(hash, code)
	}
	return code
}

// Run executes the top-level frame described by the given call state.
func (i *Interpreter) Run(callState *transit.CallState, _ transit.Observer) (*transit.Substate, error) {
	rules := callState.Rules
	if rules.Revision > newestSupportedRevision {
		return nil, fmt.Errorf("unsupported revision %v", rules.Revision)
	}
	env := callState.Env
	recipient := env.ExecutingAccount

	if callState.Kind == transit.Create {
		i.state.CreateAccount(recipient, i.state.GetBalance(recipient))
		if rules.IsEip158Enabled {
			i.state.SetNonce(recipient, 1)
		}
	}
	i.state.AddToBalance(recipient, env.TransferValue, rules)

	if callState.Kind == transit.Call {
		if contract, found := precompiledContract(env.CodeSource, rules.Revision); found {
			return runPrecompiled(contract, env.Input, callState.GasAvailable), nil
		}
	}

	stateDb := newStateDbAdapter(i.state, i.storage, callState)
	if rules.UseHotAndColdStorage {
		stateDb.AddAddressToAccessList(common.Address(env.Caller))
		stateDb.AddAddressToAccessList(common.Address(recipient))
		for _, address := range precompiledAddresses(rules.Revision) {
			stateDb.AddAddressToAccessList(address)
		}
	}
	evm := newEVM(env, rules, stateDb)

	contract := geth.NewContract(
		geth.AccountRef(env.Caller),
		geth.AccountRef(recipient),
		env.Value.ToUint256(),
		uint64(callState.GasAvailable),
	)
	contract.Code = env.Code
	if callState.Kind == transit.Call {
		contract.CodeHash = common.Hash(i.state.GetCodeHash(env.CodeSource))
	}
	input := []byte(env.Input)
	if callState.Kind == transit.Create {
		input = nil
	}

	output, err := evm.Interpreter().Run(contract, input, false)
	stateDb.writeAccessesTo(callState)

	result := &transit.Substate{
		Output:      output,
		Logs:        stateDb.logs,
		DestroyList: stateDb.destroyed,
		Refund:      transit.Gas(stateDb.refund),
		GasLeft:     transit.Gas(contract.Gas),
	}
	if err == nil {
		return result, nil
	}
	if errors.Is(err, geth.ErrExecutionReverted) {
		return &transit.Substate{
			Output:       output,
			GasLeft:      transit.Gas(contract.Gas),
			ShouldRevert: true,
		}, nil
	}
	if isExecutionFailure(err) {
		return &transit.Substate{IsError: true, Error: err.Error()}, nil
	}
	return nil, fmt.Errorf("internal EVM error in geth: %w", err)
}

// isExecutionFailure reports whether the given error is caused by the
// executed code rather than by the EVM itself.
func isExecutionFailure(err error) bool {
	switch {
	case errors.Is(err, geth.ErrOutOfGas),
		errors.Is(err, geth.ErrCodeStoreOutOfGas),
		errors.Is(err, geth.ErrDepth),
		errors.Is(err, geth.ErrInsufficientBalance),
		errors.Is(err, geth.ErrContractAddressCollision),
		errors.Is(err, geth.ErrMaxCodeSizeExceeded),
		errors.Is(err, geth.ErrMaxInitCodeSizeExceeded),
		errors.Is(err, geth.ErrInvalidJump),
		errors.Is(err, geth.ErrWriteProtection),
		errors.Is(err, geth.ErrReturnDataOutOfBounds),
		errors.Is(err, geth.ErrGasUintOverflow),
		errors.Is(err, geth.ErrInvalidCode):
		return true
	}
	var stackOverflow *geth.ErrStackOverflow
	var stackUnderflow *geth.ErrStackUnderflow
	var invalidOpCode *geth.ErrInvalidOpCode
	return errors.As(err, &stackOverflow) ||
		errors.As(err, &stackUnderflow) ||
		errors.As(err, &invalidOpCode)
}

func runPrecompiled(contract geth.PrecompiledContract, input transit.Data, gas transit.Gas) *transit.Substate {
	cost := contract.RequiredGas(input)
	if uint64(gas) < cost {
		return &transit.Substate{IsError: true, Error: geth.ErrOutOfGas.Error()}
	}
	output, err := contract.Run(input)
	if err != nil {
		// precompiled contracts only fail on invalid input
		return &transit.Substate{IsError: true, Error: err.Error()}
	}
	return &transit.Substate{
		Output:  output,
		GasLeft: gas - transit.Gas(cost),
	}
}

func newEVM(env transit.ExecutionEnvironment, rules transit.ForkRules, stateDb *stateDbAdapter) *geth.EVM {
	block := env.TxContext.Block
	chainConfig := MakeChainConfig(
		*params.AllEthashProtocolChanges,
		new(big.Int).SetUint64(env.TxContext.ChainID),
		rules.Revision,
	)

	blockCtx := geth.BlockContext{
		CanTransfer: canTransfer,
		Transfer:    transfer,
		GetHash:     blockHash,
		Coinbase:    common.Address(block.Beneficiary),
		GasLimit:    uint64(block.GasLimit),
		BlockNumber: big.NewInt(block.Number),
		Time:        uint64(block.Timestamp),
		Difficulty:  new(big.Int).SetBytes(block.PrevRandao[:]),
		BaseFee:     block.BaseFee.ToBig(),
		BlobBaseFee: new(big.Int),
	}
	if rules.Revision >= transit.R11_Paris {
		// a random value signals a post-merge revision to geth
		random := common.Hash(block.PrevRandao)
		blockCtx.Random = &random
	}

	txCtx := geth.TxContext{
		Origin:     common.Address(env.TxContext.Origin),
		GasPrice:   env.TxContext.GasPrice.ToBig(),
		BlobFeeCap: new(big.Int),
	}
	return geth.NewEVM(blockCtx, txCtx, stateDb, &chainConfig, geth.Config{})
}

func canTransfer(stateDB geth.StateDB, address common.Address, value *uint256.Int) bool {
	return stateDB.GetBalance(address).Cmp(value) >= 0
}

func transfer(stateDB geth.StateDB, from common.Address, to common.Address, value *uint256.Int) {
	stateDB.SubBalance(from, value, tracing.BalanceChangeTransfer)
	stateDB.AddBalance(to, value, tracing.BalanceChangeTransfer)
}

// blockHash derives the hash of a block from its number since no block
// history is available.
func blockHash(number uint64) common.Hash {
	return crypto.Keccak256Hash([]byte(new(big.Int).SetUint64(number).String()))
}
