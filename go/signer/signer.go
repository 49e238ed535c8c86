// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package signer recovers transaction senders from ECDSA signatures and
// converts signed go-ethereum transactions into transit transactions.
package signer

import (
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

// Recoverer recovers senders of transactions signed for a specific chain.
type Recoverer struct {
	chainID *big.Int
}

// NewRecoverer creates a recoverer validating signatures against the given
// chain ID.
func NewRecoverer(chainID uint64) *Recoverer {
	return &Recoverer{chainID: new(big.Int).SetUint64(chainID)}
}

// RecoverSenderAddress returns the address of the account that signed the
// given transaction. If skipChainIdCheck is set, the chain ID the transaction
// claims to be signed for is used instead of the configured one.
func (r *Recoverer) RecoverSenderAddress(tx *transit.Transaction, skipChainIdCheck bool) (*transit.Address, error) {
	if tx.Signature == nil {
		return nil, fmt.Errorf("transaction %v is not signed", tx.Hash)
	}
	gethTx, err := ToGethTransaction(tx)
	if err != nil {
		return nil, err
	}

	signer := types.LatestSignerForChainID(r.chainID)
	if skipChainIdCheck {
		signer = signerFor(gethTx)
	}
	sender, err := types.Sender(signer, gethTx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover sender of %v: %w", tx.Hash, err)
	}
	res := transit.Address(sender)
	return &res, nil
}

// signerFor picks a signer matching the chain ID encoded in the transaction.
func signerFor(tx *types.Transaction) types.Signer {
	if tx.Type() == types.LegacyTxType && !tx.Protected() {
		return types.HomesteadSigner{}
	}
	return types.LatestSignerForChainID(tx.ChainId())
}

// ToGethTransaction converts the given transaction into its go-ethereum
// representation, including its signature.
func ToGethTransaction(tx *transit.Transaction) (*types.Transaction, error) {
	var to *common.Address
	if tx.Recipient != nil {
		address := common.Address(*tx.Recipient)
		to = &address
	}
	chainID := new(big.Int).SetUint64(tx.ChainID)
	v, r, s := new(big.Int), new(big.Int), new(big.Int)
	if sig := tx.Signature; sig != nil {
		v, r, s = bigOrZero(sig.V), bigOrZero(sig.R), bigOrZero(sig.S)
	}

	var data types.TxData
	switch tx.Type {
	case transit.LegacyTxType:
		data = &types.LegacyTx{
			Nonce:    tx.Nonce,
			GasPrice: tx.GasPrice.ToBig(),
			Gas:      uint64(tx.GasLimit),
			To:       to,
			Value:    tx.Value.ToBig(),
			Data:     tx.Input,
			V:        v,
			R:        r,
			S:        s,
		}
	case transit.AccessListTxType:
		data = &types.AccessListTx{
			ChainID:    chainID,
			Nonce:      tx.Nonce,
			GasPrice:   tx.GasPrice.ToBig(),
			Gas:        uint64(tx.GasLimit),
			To:         to,
			Value:      tx.Value.ToBig(),
			Data:       tx.Input,
			AccessList: toGethAccessList(tx.AccessList),
			V:          v,
			R:          r,
			S:          s,
		}
	case transit.DynamicFeeTxType:
		data = &types.DynamicFeeTx{
			ChainID:    chainID,
			Nonce:      tx.Nonce,
			GasTipCap:  tx.GasPremium.ToBig(),
			GasFeeCap:  tx.FeeCap.ToBig(),
			Gas:        uint64(tx.GasLimit),
			To:         to,
			Value:      tx.Value.ToBig(),
			Data:       tx.Input,
			AccessList: toGethAccessList(tx.AccessList),
			V:          v,
			R:          r,
			S:          s,
		}
	default:
		return nil, fmt.Errorf("unsupported transaction type %v", tx.Type)
	}
	return types.NewTx(data), nil
}

// FromGethTransaction converts a signed go-ethereum transaction. The sender
// is left unset; it is to be recovered from the signature.
func FromGethTransaction(tx *types.Transaction) (*transit.Transaction, error) {
	res := &transit.Transaction{
		Nonce:    tx.Nonce(),
		GasLimit: transit.Gas(tx.Gas()),
		Input:    transit.Data(tx.Data()),
		Hash:     transit.Hash(tx.Hash()),
	}
	if tx.ChainId() != nil && tx.ChainId().IsUint64() {
		res.ChainID = tx.ChainId().Uint64()
	}

	switch tx.Type() {
	case types.LegacyTxType:
		res.Type = transit.LegacyTxType
	case types.AccessListTxType:
		res.Type = transit.AccessListTxType
	case types.DynamicFeeTxType:
		res.Type = transit.DynamicFeeTxType
	default:
		return nil, fmt.Errorf("unsupported transaction type %d", tx.Type())
	}

	var err error
	if res.Value, err = toValue(tx.Value()); err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}
	if res.Type == transit.DynamicFeeTxType {
		if res.FeeCap, err = toValue(tx.GasFeeCap()); err != nil {
			return nil, fmt.Errorf("invalid fee cap: %w", err)
		}
		if res.GasPremium, err = toValue(tx.GasTipCap()); err != nil {
			return nil, fmt.Errorf("invalid gas premium: %w", err)
		}
	} else if res.GasPrice, err = toValue(tx.GasPrice()); err != nil {
		return nil, fmt.Errorf("invalid gas price: %w", err)
	}

	if to := tx.To(); to != nil {
		recipient := transit.Address(*to)
		res.Recipient = &recipient
	}
	for _, tuple := range tx.AccessList() {
		keys := make([]transit.Key, 0, len(tuple.StorageKeys))
		for _, key := range tuple.StorageKeys {
			keys = append(keys, transit.Key(key))
		}
		res.AccessList = append(res.AccessList, transit.AccessTuple{Address: transit.Address(tuple.Address), Keys: keys})
	}

	v, r, s := tx.RawSignatureValues()
	res.Signature = &transit.Signature{V: v, R: r, S: s}
	return res, nil
}

func toGethAccessList(list []transit.AccessTuple) types.AccessList {
	if len(list) == 0 {
		return nil
	}
	res := make(types.AccessList, 0, len(list))
	for _, tuple := range list {
		keys := make([]common.Hash, 0, len(tuple.Keys))
		for _, key := range tuple.Keys {
			keys = append(keys, common.Hash(key))
		}
		res = append(res, types.AccessTuple{Address: common.Address(tuple.Address), StorageKeys: keys})
	}
	return res
}

func toValue(value *big.Int) (transit.Value, error) {
	if value == nil {
		return transit.Value{}, nil
	}
	converted, overflow := uint256.FromBig(value)
	if value.Sign() < 0 || overflow {
		return transit.Value{}, fmt.Errorf("%v does not fit into 256 bits", value)
	}
	return transit.ValueFromUint256(converted), nil
}

func bigOrZero(value *big.Int) *big.Int {
	if value == nil {
		return new(big.Int)
	}
	return value
}
