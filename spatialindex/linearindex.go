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

import "sort"

// LinearIndex is the "noSearchTree" experimental fallback from spec §4.2.1:
// a slice kept in ascending order of each entry's lower bound on dimension
// 0, cut with a binary search rather than an external tree structure. It
// trades worse miss performance (everything before the cut point is still
// scanned linearly) for having no dependency
// beyond the standard library — which is the entire point of the flag, so
// unlike the rest of this package, no third-party tree library is wired in
// here on purpose.
type LinearIndex[P comparable] struct {
	entries []entry[P]
	seq     uint64
}

func NewLinearIndex[P comparable]() *LinearIndex[P] {
	return &LinearIndex[P]{}
}

func (idx *LinearIndex[P]) Add(payload P, box Box) {
	idx.seq++
	e := entry[P]{seq: idx.seq, payload: payload, box: box}
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].box.Low[0] >= box.Low[0]
	})
	idx.entries = append(idx.entries, entry[P]{})
	copy(idx.entries[i+1:], idx.entries[i:])
	idx.entries[i] = e
}

func (idx *LinearIndex[P]) Remove(payload P, box Box) {
	for i, e := range idx.entries {
		if e.payload == payload && boxesEqual(e.box, box) {
			idx.entries = append(idx.entries[:i], idx.entries[i+1:]...)
			return
		}
	}
}

func (idx *LinearIndex[P]) Clear() {
	idx.entries = nil
	idx.seq = 0
}

func (idx *LinearIndex[P]) AddAll(items []Item[P]) {
	for _, it := range items {
		idx.Add(it.Payload, it.Box)
	}
}

// cutAt returns the index of the first entry whose Low[0] is > bound: when
// bound is the query's High[0], that entry and everything after it start
// beyond the query and are skipped; only the entries before it are scanned.
func (idx *LinearIndex[P]) cutAt(bound float64) int {
	return sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].box.Low[0] > bound
	})
}

func (idx *LinearIndex[P]) Get(box Box) []P {
	var out []P
	end := idx.cutAt(box.High[0])
	for _, e := range idx.entries[:end] {
		if boxesOverlap(e.box, box) {
			out = append(out, e.payload)
		}
	}
	return out
}

func (idx *LinearIndex[P]) GetAt(point []float64) []P {
	var out []P
	end := idx.cutAt(point[0])
	for _, e := range idx.entries[:end] {
		if boxContainsPoint(e.box, point) {
			out = append(out, e.payload)
		}
	}
	return out
}

var _ Index[int] = (*LinearIndex[int])(nil)
