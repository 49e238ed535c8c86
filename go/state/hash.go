// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"bytes"
	"slices"

	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
	"golang.org/x/crypto/sha3"
	"golang.org/x/exp/maps"
)

var (
	// EmptyCodeHash is the hash of empty code.
	EmptyCodeHash = transit.Hash(types.EmptyCodeHash)
	// EmptyRootHash is the root of an empty trie.
	EmptyRootHash = transit.Hash(types.EmptyRootHash)
)

func keccak256(data []byte) (res transit.Hash) {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	hasher.Sum(res[:0])
	return res
}

// HashCode returns the Keccak-256 hash of the given code.
func HashCode(code transit.Code) transit.Hash {
	return keccak256(code)
}

// computeTrieRoot builds a Merkle Patricia trie of the given leaves, keyed by
// hashed keys, and returns its root.
func computeTrieRoot(leaves map[transit.Hash][]byte) (transit.Hash, error) {
	keys := maps.Keys(leaves)
	slices.SortFunc(keys, func(a, b transit.Hash) int {
		return bytes.Compare(a[:], b[:])
	})
	stackTrie := trie.NewStackTrie(nil)
	for _, key := range keys {
		if err := stackTrie.Update(key[:], leaves[key]); err != nil {
			return transit.Hash{}, err
		}
	}
	return transit.Hash(stackTrie.Hash()), nil
}

// computeStorageRoot returns the root of the storage trie holding the given
// slots. Zero-valued slots are not part of the trie.
func computeStorageRoot(slots map[transit.Key]transit.Word) (transit.Hash, error) {
	leaves := make(map[transit.Hash][]byte, len(slots))
	for key, value := range slots {
		if value == (transit.Word{}) {
			continue
		}
		encoded, err := rlp.EncodeToBytes(common.TrimLeftZeroes(value[:]))
		if err != nil {
			return transit.Hash{}, err
		}
		leaves[keccak256(key[:])] = encoded
	}
	return computeTrieRoot(leaves)
}

// computeStateRoot returns the root of the account trie holding the given accounts.
func computeStateRoot(accounts map[transit.Address]transit.Account) (transit.Hash, error) {
	leaves := make(map[transit.Hash][]byte, len(accounts))
	for address, account := range accounts {
		encoded, err := rlp.EncodeToBytes(&types.StateAccount{
			Nonce:    account.Nonce,
			Balance:  account.Balance.ToUint256(),
			Root:     common.Hash(account.StorageRoot),
			CodeHash: account.CodeHash[:],
		})
		if err != nil {
			return transit.Hash{}, err
		}
		leaves[keccak256(address[:])] = encoded
	}
	return computeTrieRoot(leaves)
}
