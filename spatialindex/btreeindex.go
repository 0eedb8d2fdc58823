// Copyright 2024 The University of Queensland
// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spatialindex

import (
	"math"

	"github.com/google/btree"
)

// BTreeIndex is the default Index implementation: an ordered B-tree keyed
// by each entry's lower bound on dimension 0, giving range queries on that
// axis an O(log n) entry point before falling back to a linear scan across
// the remaining dimensions. This is the same "one axis indexed, rest
// scanned" shape erigon uses google/btree for in its state-domain range
// scans, just generalized to an arbitrary payload type.
type BTreeIndex[P comparable] struct {
	tree *btree.BTreeG[entry[P]]
	seq  uint64
}

type entry[P comparable] struct {
	seq     uint64
	payload P
	box     Box
}

func lessEntry[P comparable](a, b entry[P]) bool {
	if a.box.Low[0] != b.box.Low[0] {
		return a.box.Low[0] < b.box.Low[0]
	}
	return a.seq < b.seq
}

// NewBTreeIndex returns an empty spatial index backed by google/btree.
func NewBTreeIndex[P comparable]() *BTreeIndex[P] {
	return &BTreeIndex[P]{tree: btree.NewG(32, lessEntry[P])}
}

func (idx *BTreeIndex[P]) Add(payload P, box Box) {
	idx.seq++
	idx.tree.ReplaceOrInsert(entry[P]{seq: idx.seq, payload: payload, box: box})
}

func (idx *BTreeIndex[P]) Remove(payload P, box Box) {
	// The tree is keyed by (Low[0], seq), but seq is opaque to callers, so
	// Remove has to scan the Low[0]-equal run to find the matching payload.
	var toDelete *entry[P]
	pivot := entry[P]{box: box}
	idx.tree.AscendGreaterOrEqual(pivot, func(e entry[P]) bool {
		if e.box.Low[0] != box.Low[0] {
			return false
		}
		if e.payload == payload && boxesEqual(e.box, box) {
			found := e
			toDelete = &found
			return false
		}
		return true
	})
	if toDelete != nil {
		idx.tree.Delete(*toDelete)
	}
}

func boxesEqual(a, b Box) bool {
	if len(a.Low) != len(b.Low) {
		return false
	}
	for i := range a.Low {
		if a.Low[i] != b.Low[i] || a.High[i] != b.High[i] {
			return false
		}
	}
	return true
}

func (idx *BTreeIndex[P]) Clear() {
	idx.tree.Clear(false)
	idx.seq = 0
}

func (idx *BTreeIndex[P]) AddAll(items []Item[P]) {
	for _, it := range items {
		idx.Add(it.Payload, it.Box)
	}
}

func (idx *BTreeIndex[P]) Get(box Box) []P {
	var out []P
	upperPivot := entry[P]{box: Box{Low: []float64{math.Nextafter(box.High[0], math.Inf(1))}}}
	idx.tree.AscendLessThan(upperPivot, func(e entry[P]) bool {
		if e.box.High[0] >= box.Low[0] && boxesOverlap(e.box, box) {
			out = append(out, e.payload)
		}
		return true
	})
	return out
}

func (idx *BTreeIndex[P]) GetAt(point []float64) []P {
	var out []P
	upperPivot := entry[P]{box: Box{Low: []float64{math.Nextafter(point[0], math.Inf(1))}}}
	idx.tree.AscendLessThan(upperPivot, func(e entry[P]) bool {
		if e.box.High[0] >= point[0] && boxContainsPoint(e.box, point) {
			out = append(out, e.payload)
		}
		return true
	})
	return out
}

var _ Index[int] = (*BTreeIndex[int])(nil)
