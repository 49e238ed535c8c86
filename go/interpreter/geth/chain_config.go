// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package geth

import (
	"math/big"

	"github.com/Fantom-foundation/Floria/go/transit"
	"github.com/ethereum/go-ethereum/common"
	geth "github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/params"
	"golang.org/x/exp/maps"
)

// newestSupportedRevision is the newest revision the geth EVM can be
// configured for.
const newestSupportedRevision = transit.R13_Cancun

// MakeChainConfig derives a chain config from the given baseline in which all
// forks up to the given revision are active from genesis on and all later
// forks are disabled. The chain ID is needed by the CHAINID instruction.
func MakeChainConfig(baseline params.ChainConfig, chainId *big.Int, revision transit.Revision) params.ChainConfig {
	activeFrom := func(fork transit.Revision) *big.Int {
		if revision >= fork {
			return big.NewInt(0)
		}
		return nil
	}
	activeAt := func(fork transit.Revision) *uint64 {
		if revision >= fork {
			return new(uint64)
		}
		return nil
	}

	chainConfig := baseline
	chainConfig.ChainID = chainId
	chainConfig.HomesteadBlock = activeFrom(transit.R01_Homestead)
	chainConfig.DAOForkBlock = nil
	chainConfig.EIP150Block = activeFrom(transit.R02_TangerineWhistle)
	chainConfig.EIP155Block = activeFrom(transit.R03_SpuriousDragon)
	chainConfig.EIP158Block = activeFrom(transit.R03_SpuriousDragon)
	chainConfig.ByzantiumBlock = activeFrom(transit.R04_Byzantium)
	chainConfig.ConstantinopleBlock = activeFrom(transit.R05_Constantinople)
	chainConfig.PetersburgBlock = activeFrom(transit.R06_Petersburg)
	chainConfig.IstanbulBlock = activeFrom(transit.R07_Istanbul)
	chainConfig.MuirGlacierBlock = activeFrom(transit.R07_Istanbul)
	chainConfig.BerlinBlock = activeFrom(transit.R09_Berlin)
	chainConfig.LondonBlock = activeFrom(transit.R10_London)
	chainConfig.ArrowGlacierBlock = activeFrom(transit.R10_London)
	chainConfig.GrayGlacierBlock = activeFrom(transit.R10_London)
	chainConfig.MergeNetsplitBlock = activeFrom(transit.R11_Paris)
	chainConfig.ShanghaiTime = activeAt(transit.R12_Shanghai)
	chainConfig.CancunTime = activeAt(transit.R13_Cancun)
	chainConfig.PragueTime = nil
	chainConfig.VerkleTime = nil
	return chainConfig
}

// precompiledContracts returns the precompiled contracts available in the
// given revision.
func precompiledContracts(revision transit.Revision) map[common.Address]geth.PrecompiledContract {
	switch {
	case revision >= transit.R13_Cancun:
		return geth.PrecompiledContractsCancun
	case revision >= transit.R09_Berlin:
		return geth.PrecompiledContractsBerlin
	case revision >= transit.R07_Istanbul:
		return geth.PrecompiledContractsIstanbul
	case revision >= transit.R04_Byzantium:
		return geth.PrecompiledContractsByzantium
	default:
		return geth.PrecompiledContractsHomestead
	}
}

func precompiledAddresses(revision transit.Revision) []common.Address {
	return maps.Keys(precompiledContracts(revision))
}

func precompiledContract(address transit.Address, revision transit.Revision) (geth.PrecompiledContract, bool) {
	contract, found := precompiledContracts(revision)[common.Address(address)]
	return contract, found
}
