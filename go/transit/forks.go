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
	"encoding/json"
	"fmt"
	"sort"
)

// Revision is an enumeration for EVM specification revisions (aka. Hard-Forks).
type Revision int

const (
	R00_Frontier Revision = iota
	R01_Homestead
	R02_TangerineWhistle
	R03_SpuriousDragon
	R04_Byzantium
	R05_Constantinople
	R06_Petersburg
	R07_Istanbul
	R09_Berlin
	R10_London
	R11_Paris
	R12_Shanghai
	R13_Cancun
	numRevisions int = iota
)

var revisionNames = map[Revision]string{
	R00_Frontier:         "Frontier",
	R01_Homestead:        "Homestead",
	R02_TangerineWhistle: "TangerineWhistle",
	R03_SpuriousDragon:   "SpuriousDragon",
	R04_Byzantium:        "Byzantium",
	R05_Constantinople:   "Constantinople",
	R06_Petersburg:       "Petersburg",
	R07_Istanbul:         "Istanbul",
	R09_Berlin:           "Berlin",
	R10_London:           "London",
	R11_Paris:            "Paris",
	R12_Shanghai:         "Shanghai",
	R13_Cancun:           "Cancun",
}

// GetAllKnownRevisions returns all revisions in the order of their activation.
func GetAllKnownRevisions() []Revision {
	res := make([]Revision, 0, numRevisions)
	for r := Revision(0); int(r) < numRevisions; r++ {
		res = append(res, r)
	}
	return res
}

func (r Revision) String() string {
	if name, found := revisionNames[r]; found {
		return name
	}
	return fmt.Sprintf("Revision(%d)", int(r))
}

func (r Revision) MarshalJSON() ([]byte, error) {
	if _, found := revisionNames[r]; !found {
		return nil, &json.UnsupportedValueError{Str: r.String()}
	}
	return json.Marshal(r.String())
}

func (r *Revision) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	revision, err := ParseRevision(s)
	if err != nil {
		return err
	}
	*r = revision
	return nil
}

// ParseRevision resolves a revision by its name.
func ParseRevision(name string) (Revision, error) {
	for revision, cur := range revisionNames {
		if cur == name {
			return revision, nil
		}
	}
	return 0, fmt.Errorf("unknown revision: %q", name)
}

// ForkRules lists the protocol features active for a block. The rules are
// plain data, queried by the processor at every stage that depends on them.
type ForkRules struct {
	Revision Revision
	ChainID  uint64

	ChargeForTopLevelCreate bool // EIP-2: creation transactions pay 53000 and fail on missing code-deposit gas
	ValidateChainId         bool // EIP-155: replay protected signatures
	IsEip158Enabled         bool // EIP-158: touched empty accounts are removed
	IsEip170Enabled         bool // EIP-170: contract code size limit
	IsEip658Enabled         bool // EIP-658: receipts carry a status byte instead of a state root
	IsEip2028Enabled        bool // EIP-2028: reduced calldata cost
	UseHotAndColdStorage    bool // EIP-2929: cold/warm account and slot access costs
	UseTxAccessLists        bool // EIP-2930: optional transaction access lists
	IsEip1559Enabled        bool // EIP-1559: fee market
	IsEip3529Enabled        bool // EIP-3529: reduced refunds
	IsEip3541Enabled        bool // EIP-3541: reject new code starting with 0xEF
	IsEip3651Enabled        bool // EIP-3651: warm beneficiary
	IsEip3860Enabled        bool // EIP-3860: init code metering

	// Eip1559TransitionBlock is the block activating the fee market.
	Eip1559TransitionBlock int64
}

// RulesForRevision returns the rules of the given revision.
func RulesForRevision(revision Revision) ForkRules {
	return ForkRules{
		Revision:                revision,
		ChargeForTopLevelCreate: revision >= R01_Homestead,
		ValidateChainId:         revision >= R03_SpuriousDragon,
		IsEip158Enabled:         revision >= R03_SpuriousDragon,
		IsEip170Enabled:         revision >= R03_SpuriousDragon,
		IsEip658Enabled:         revision >= R04_Byzantium,
		IsEip2028Enabled:        revision >= R07_Istanbul,
		UseHotAndColdStorage:    revision >= R09_Berlin,
		UseTxAccessLists:        revision >= R09_Berlin,
		IsEip1559Enabled:        revision >= R10_London,
		IsEip3529Enabled:        revision >= R10_London,
		IsEip3541Enabled:        revision >= R10_London,
		IsEip3651Enabled:        revision >= R12_Shanghai,
		IsEip3860Enabled:        revision >= R12_Shanghai,
	}
}

// ForSystemTransaction returns the rules applied to system transactions, which
// never remove touched empty accounts.
func (r ForkRules) ForSystemTransaction() ForkRules {
	r.IsEip158Enabled = false
	return r
}

//go:generate mockgen -source forks.go -destination forks_mock.go -package transit

// SpecProvider resolves the rules active at a given block.
type SpecProvider interface {
	RulesFor(blockNumber int64) ForkRules
}

// ForkActivation names the revision becoming active at a block.
type ForkActivation struct {
	Block    int64    `json:"block"`
	Revision Revision `json:"revision"`
}

// ForkSchedule is a SpecProvider based on a list of block activations.
type ForkSchedule struct {
	ChainID     uint64           `json:"chainId"`
	Activations []ForkActivation `json:"activations"`
}

// MainnetSchedule lists the mainnet activation blocks of supported revisions.
var MainnetSchedule = ForkSchedule{
	ChainID: 1,
	Activations: []ForkActivation{
		{Block: 0, Revision: R00_Frontier},
		{Block: 1_150_000, Revision: R01_Homestead},
		{Block: 2_463_000, Revision: R02_TangerineWhistle},
		{Block: 2_675_000, Revision: R03_SpuriousDragon},
		{Block: 4_370_000, Revision: R04_Byzantium},
		{Block: 7_280_000, Revision: R06_Petersburg},
		{Block: 9_069_000, Revision: R07_Istanbul},
		{Block: 12_244_000, Revision: R09_Berlin},
		{Block: 12_965_000, Revision: R10_London},
		{Block: 15_537_394, Revision: R11_Paris},
		{Block: 17_034_870, Revision: R12_Shanghai},
		{Block: 19_426_587, Revision: R13_Cancun},
	},
}

// SingleRevision returns a schedule running the given revision from genesis.
func SingleRevision(chainID uint64, revision Revision) ForkSchedule {
	return ForkSchedule{
		ChainID:     chainID,
		Activations: []ForkActivation{{Block: 0, Revision: revision}},
	}
}

func (s ForkSchedule) RulesFor(blockNumber int64) ForkRules {
	activations := s.sorted()
	revision := R00_Frontier
	for _, cur := range activations {
		if cur.Block > blockNumber {
			break
		}
		revision = cur.Revision
	}
	rules := RulesForRevision(revision)
	rules.ChainID = s.ChainID
	rules.Eip1559TransitionBlock = -1
	for _, cur := range activations {
		if cur.Revision >= R10_London {
			rules.Eip1559TransitionBlock = cur.Block
			break
		}
	}
	return rules
}

func (s ForkSchedule) sorted() []ForkActivation {
	if sort.SliceIsSorted(s.Activations, func(i, j int) bool {
		return s.Activations[i].Block < s.Activations[j].Block
	}) {
		return s.Activations
	}
	res := append([]ForkActivation(nil), s.Activations...)
	sort.SliceStable(res, func(i, j int) bool { return res[i].Block < res[j].Block })
	return res
}
