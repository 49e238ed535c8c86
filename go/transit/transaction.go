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

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// TxType distinguishes the envelope formats of transactions.
type TxType byte

const (
	LegacyTxType TxType = iota
	AccessListTxType
	DynamicFeeTxType
)

func (t TxType) String() string {
	switch t {
	case LegacyTxType:
		return "legacy"
	case AccessListTxType:
		return "access_list"
	case DynamicFeeTxType:
		return "dynamic_fee"
	default:
		return fmt.Sprintf("TxType(%d)", t)
	}
}

func (t TxType) MarshalJSON() ([]byte, error) {
	switch t {
	case LegacyTxType, AccessListTxType, DynamicFeeTxType:
		return json.Marshal(t.String())
	}
	return nil, fmt.Errorf("invalid transaction type: %v", t)
}

func (t *TxType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch strings.ToLower(name) {
	case "legacy", "":
		*t = LegacyTxType
	case "access_list":
		*t = AccessListTxType
	case "dynamic_fee":
		*t = DynamicFeeTxType
	default:
		return fmt.Errorf("unknown transaction type: %s", name)
	}
	return nil
}

// AccessTuple lists a range of accounts and storage slots expected to be accessed
// by a transaction. Those are intended as hints for the actual access pattern. However,
// transactions are not required to provide those, nor can completeness and/or correctness
// be assumed.
type AccessTuple struct {
	Address Address `json:"address"`
	Keys    []Key   `json:"storageKeys"`
}

// Signature holds the raw ECDSA signature values of a transaction.
type Signature struct {
	V *big.Int `json:"v"`
	R *big.Int `json:"r"`
	S *big.Int `json:"s"`
}

// Transaction summarizes the parameters of a signed transaction to be executed
// on a chain. Transactions are immutable once signed, except for the sender,
// which is filled in by signature recovery.
type Transaction struct {
	Type       TxType        `json:"type"`
	ChainID    uint64        `json:"chainId"`
	Nonce      uint64        `json:"nonce"`
	GasPrice   Value         `json:"gasPrice"`             // the declared price of pre-fee-market transactions
	FeeCap     Value         `json:"maxFeePerGas"`         // the maximum total price per gas of fee-market transactions
	GasPremium Value         `json:"maxPriorityFeePerGas"` // the maximum tip per gas of fee-market transactions
	GasLimit   Gas           `json:"gas"`
	Sender     *Address      `json:"from,omitempty"` // nil until recovered
	Recipient  *Address      `json:"to,omitempty"`   // nil if a new contract is to be created
	Value      Value         `json:"value"`
	Input      Data          `json:"input"`
	AccessList []AccessTuple `json:"accessList,omitempty"`
	Signature  *Signature    `json:"signature,omitempty"`
	Hash       Hash          `json:"hash"`

	// IsSystem marks protocol-internal transactions injected by the node itself.
	IsSystem bool `json:"isSystem,omitempty"`
	// IsServiceTransaction marks user transactions exempt from fees.
	IsServiceTransaction bool `json:"isService,omitempty"`
}

func (tx *Transaction) IsContractCreation() bool {
	return tx.Recipient == nil
}

func (tx *Transaction) IsMessageCall() bool {
	return tx.Recipient != nil
}

// IsFeeExempt reports whether the transaction neither needs to satisfy the
// base fee nor pays the block beneficiary.
func (tx *Transaction) IsFeeExempt() bool {
	return tx.IsSystem || tx.IsServiceTransaction
}

func (tx *Transaction) IsEip1559() bool {
	return tx.Type == DynamicFeeTxType
}

// MaxFeePerGas is the fee cap of fee-market transactions and the declared gas
// price for all other transaction types.
func (tx *Transaction) MaxFeePerGas() Value {
	if tx.IsEip1559() {
		return tx.FeeCap
	}
	return tx.GasPrice
}

// MaxPriorityFeePerGas is the gas premium of fee-market transactions and the
// declared gas price for all other transaction types.
func (tx *Transaction) MaxPriorityFeePerGas() Value {
	if tx.IsEip1559() {
		return tx.GasPremium
	}
	return tx.GasPrice
}

// StorageKeyCount returns the total number of storage keys in the access list.
func (tx *Transaction) StorageKeyCount() int {
	count := 0
	for _, tuple := range tx.AccessList {
		count += len(tuple.Keys)
	}
	return count
}

func (tx *Transaction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tx %v (%v, nonce %d", tx.Hash, tx.Type, tx.Nonce)
	if tx.Sender != nil {
		fmt.Fprintf(&b, ", from %v", *tx.Sender)
	}
	if tx.Recipient != nil {
		fmt.Fprintf(&b, ", to %v", *tx.Recipient)
	} else {
		b.WriteString(", create")
	}
	b.WriteString(")")
	return b.String()
}

// Equal compares two transactions, including the recovered sender.
func (tx *Transaction) Equal(other *Transaction) bool {
	if tx.Type != other.Type || tx.ChainID != other.ChainID || tx.Nonce != other.Nonce ||
		tx.GasPrice != other.GasPrice || tx.FeeCap != other.FeeCap ||
		tx.GasPremium != other.GasPremium || tx.GasLimit != other.GasLimit ||
		tx.Value != other.Value || !bytes.Equal(tx.Input, other.Input) ||
		tx.IsSystem != other.IsSystem || tx.IsServiceTransaction != other.IsServiceTransaction {
		return false
	}
	if !equalAddressPtr(tx.Sender, other.Sender) || !equalAddressPtr(tx.Recipient, other.Recipient) {
		return false
	}
	if len(tx.AccessList) != len(other.AccessList) {
		return false
	}
	for i, tuple := range tx.AccessList {
		if tuple.Address != other.AccessList[i].Address || len(tuple.Keys) != len(other.AccessList[i].Keys) {
			return false
		}
		for j, key := range tuple.Keys {
			if key != other.AccessList[i].Keys[j] {
				return false
			}
		}
	}
	return true
}

func equalAddressPtr(a, b *Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
