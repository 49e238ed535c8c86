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

// journal is an append-only log of undo records. Snapshots are indices into
// the log; reverting to a snapshot replays the records after it in reverse
// order and truncates the log.
type journal[E any] struct {
	entries []E
}

func (j *journal[E]) append(entry E) {
	j.entries = append(j.entries, entry)
}

func (j *journal[E]) length() int {
	return len(j.entries)
}

func (j *journal[E]) revert(snapshot int, undo func(E)) {
	if snapshot < 0 || snapshot > len(j.entries) {
		panic("invalid snapshot")
	}
	for i := len(j.entries) - 1; i >= snapshot; i-- {
		undo(j.entries[i])
	}
	clear(j.entries[snapshot:])
	j.entries = j.entries[:snapshot]
}

// forEach visits all records from the oldest to the most recent one.
func (j *journal[E]) forEach(visit func(E)) {
	for _, entry := range j.entries {
		visit(entry)
	}
}

func (j *journal[E]) reset() {
	clear(j.entries)
	j.entries = j.entries[:0]
}
