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

//go:generate mockgen -source recovery.go -destination recovery_mock.go -package transit

// SignatureRecoverer derives the sender of a transaction from its signature.
type SignatureRecoverer interface {
	// RecoverSenderAddress returns the signer of the given transaction. If
	// skipChainIdCheck is set, the chain id encoded in the signature is not
	// validated against the configured chain.
	RecoverSenderAddress(tx *Transaction, skipChainIdCheck bool) (*Address, error)
}
