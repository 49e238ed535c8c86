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

import "github.com/Fantom-foundation/Floria/go/logger"

//go:generate mockgen -source processor.go -destination processor_mock.go -package transit

// Processor is an interface for a component capable of executing transactions.
// Implementations validate transactions, charge gas fees, check nonces, run
// the contained calls through an interpreter, and settle refunds and fees.
type Processor interface {
	// Execute runs the given transaction and commits its effects. The gas
	// spent is added to the GasUsed counter of the block. A returned error
	// signals a violated precondition, not a failed transaction.
	Execute(tx *Transaction, block *BlockContext, observer Observer) (Receipt, error)

	// CallAndRestore runs the given transaction and discards all of its
	// effects afterwards. The block is not modified.
	CallAndRestore(tx *Transaction, block *BlockContext, observer Observer) (Receipt, error)
}

// Receipt summarizes the result of the execution of a transaction.
type Receipt struct {
	Success         bool     // false if the transaction failed validation or execution
	Recipient       Address  // the called account or the address of the created contract
	ContractAddress *Address // filled if a contract was created by this transaction
	GasUsed         Gas      // gas charged to the sender, after refunds
	Output          Data     // the output produced by the transaction
	Logs            []Log    // logs produced by the transaction
	StateRoot       *Hash    // the post-transaction state root, only for pre-Byzantium blocks
	Err             error    // the reason of the failure, nil on success
}

// Environment bundles the collaborators a Processor operates on.
type Environment struct {
	Spec        SpecProvider
	State       StateStore
	Storage     StorageStore
	Interpreter Interpreter
	Recoverer   SignatureRecoverer
	Log         logger.Logger
}
