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

	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// quickFail rejects a transaction during validation. Besides charging the
// full gas limit to the block, no state is modified.
func (e *execution) quickFail(reason transit.ConstError, format string, args ...any) (transit.Receipt, error) {
	e.log.Debugf("Invalid tx %v (%s)", e.tx.Hash, fmt.Sprintf(format, args...))

	e.state.Restore(e.entrySnapshot)
	if !e.isCall {
		e.block.GasUsed += e.tx.GasLimit
	}

	recipient := e.nominalRecipient()
	stateRoot := e.receiptStateRoot()
	if e.observer.IsTracingReceipt() {
		e.observer.MarkAsFailed(recipient, e.tx.GasLimit, nil, string(reason), stateRoot)
	}
	return transit.Receipt{
		Recipient: recipient,
		GasUsed:   e.tx.GasLimit,
		StateRoot: stateRoot,
		Err:       fmt.Errorf("%w: %s", reason, fmt.Sprintf(format, args...)),
	}, nil
}

// nominalRecipient is the declared recipient or the address a contract
// created by the sender would get.
func (e *execution) nominalRecipient() transit.Address {
	if e.tx.Recipient != nil {
		return *e.tx.Recipient
	}
	sender := transit.Address{}
	if e.tx.Sender != nil {
		sender = *e.tx.Sender
	}
	return createAddress(sender, e.state.GetNonce(sender))
}

// receiptStateRoot returns the post-transaction state root for receipts of
// blocks without status byte, and nil otherwise.
func (e *execution) receiptStateRoot() *transit.Hash {
	if e.rules.IsEip658Enabled {
		return nil
	}
	e.state.RecalculateStateRoot()
	root := e.state.StateRoot()
	return &root
}

func createAddress(sender transit.Address, nonce uint64) transit.Address {
	return transit.Address(crypto.CreateAddress(common.Address(sender), nonce))
}
