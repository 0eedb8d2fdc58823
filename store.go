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

package intervalidus

import (
	"sync"

	"github.com/contriboss/intervalidus-go/domainvalue"
	"github.com/contriboss/intervalidus-go/spatialindex"
	"github.com/google/btree"
	"go.uber.org/zap"
)

// Store is the dimensional store at the heart of this package: a finite
// set of (interval, value) associations kept disjoint and
// value-compressed (spec §3.6). A Store is not safe for concurrent use by
// multiple goroutines without external synchronization beyond its own
// internal lock — the lock only makes a single call to Store atomic with
// respect to the three indices, it does not serialize unrelated calls
// against each other's business meaning (spec §5).
type Store[V any, T any] struct {
	mu sync.RWMutex

	witnesses Witnesses[T]
	cfg       *storeConfig[V, T]

	byStart *btree.BTreeG[*ValidData[V, T]]
	values  []*valueGroup[V, T]
	spatial spatialindex.Index[*ValidData[V, T]]
}

type valueGroup[V any, T any] struct {
	value   V
	records []*ValidData[V, T]
}

// NewStore builds an empty store over the given per-dimension witnesses.
func NewStore[V any, T any](witnesses Witnesses[T], opts ...StoreOption[V, T]) *Store[V, T] {
	cfg := defaultStoreConfig[V, T]()
	for _, opt := range opts {
		opt(cfg)
	}
	ws := append(Witnesses[T]{}, witnesses...)
	return &Store[V, T]{
		witnesses: ws,
		cfg:       cfg,
		byStart:   btree.NewG(32, startLess(ws)),
		spatial:   cfg.buildIndex(),
	}
}

func startLess[V any, T any](ws Witnesses[T]) func(a, b *ValidData[V, T]) bool {
	return func(a, b *ValidData[V, T]) bool {
		return CompareStartN(ws, a.Interval.Start, b.Interval.Start) < 0
	}
}

// NewIntInt1D is a convenience constructor for the common case of a
// single int-valued dimension using domainvalue.DefaultInt.
func NewIntInt1D[V any](opts ...StoreOption[V, int]) *Store[V, int] {
	return NewStore[V, int](Witnesses[int]{domainvalue.DefaultInt()}, opts...)
}

func (s *Store[V, T]) box(iv IntervalN[T]) spatialindex.Box {
	lowStart := AsCoordinateUnfixed(s.witnesses, iv.Start)
	lowEnd := AsCoordinateUnfixed(s.witnesses, iv.End)
	return spatialindex.Box{Low: lowStart, High: lowEnd}
}

func (s *Store[V, T]) pointBox(d DomainN[T]) []float64 {
	return AsCoordinateUnfixed(s.witnesses, d)
}

// Dims reports the number of dimensions this store was constructed with.
func (s *Store[V, T]) Dims() int { return len(s.witnesses) }

// addRecordLocked inserts a brand-new record into all three indices. The
// caller must already hold s.mu.
func (s *Store[V, T]) addRecordLocked(data ValidData[V, T]) *ValidData[V, T] {
	rec := &ValidData[V, T]{Interval: data.Interval, Value: data.Value}
	s.byStart.ReplaceOrInsert(rec)
	s.spatial.Add(rec, s.box(rec.Interval))
	s.addToValueGroupLocked(rec)
	return rec
}

func (s *Store[V, T]) addToValueGroupLocked(rec *ValidData[V, T]) {
	for _, g := range s.values {
		if s.cfg.equalValue(g.value, rec.Value) {
			i := sortSearchRecords(s.witnesses, g.records, rec.Interval.Start)
			g.records = append(g.records, nil)
			copy(g.records[i+1:], g.records[i:])
			g.records[i] = rec
			return
		}
	}
	s.values = append(s.values, &valueGroup[V, T]{value: rec.Value, records: []*ValidData[V, T]{rec}})
}

func sortSearchRecords[V any, T any](ws Witnesses[T], records []*ValidData[V, T], start DomainN[T]) int {
	lo, hi := 0, len(records)
	for lo < hi {
		mid := (lo + hi) / 2
		if CompareStartN(ws, records[mid].Interval.Start, start) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// removeRecordLocked removes rec from all three indices. The caller must
// already hold s.mu.
func (s *Store[V, T]) removeRecordLocked(rec *ValidData[V, T]) {
	s.byStart.Delete(rec)
	s.spatial.Remove(rec, s.box(rec.Interval))
	s.removeFromValueGroupLocked(rec)
}

func (s *Store[V, T]) removeFromValueGroupLocked(rec *ValidData[V, T]) {
	for gi, g := range s.values {
		for ri, r := range g.records {
			if r == rec {
				g.records = append(g.records[:ri], g.records[ri+1:]...)
				if len(g.records) == 0 {
					s.values = append(s.values[:gi], s.values[gi+1:]...)
				}
				return
			}
		}
	}
}

// findByStartLocked returns the record whose interval starts exactly at
// start, if any. The caller must already hold s.mu (for reading).
func (s *Store[V, T]) findByStartLocked(start DomainN[T]) *ValidData[V, T] {
	pivot := &ValidData[V, T]{Interval: IntervalN[T]{Start: start, End: start}}
	var found *ValidData[V, T]
	s.byStart.AscendGreaterOrEqual(pivot, func(r *ValidData[V, T]) bool {
		if EqualN(s.witnesses, r.Interval.Start, start) {
			found = r
		}
		return false
	})
	return found
}

// AddValidData inserts a new record. It panics (an invariant violation,
// spec §4.2.9) if the new interval intersects an existing record — callers
// that want overlap-safe writes should use Set/Update/Fill/Merge instead.
func (s *Store[V, T]) AddValidData(data ValidData[V, T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.intersectsLocked(data.Interval) {
		invariantViolation("AddValidData: %s intersects existing data", data.Interval)
	}
	s.addRecordLocked(data)
}

// UpdateValidData replaces the record whose interval starts exactly at
// data.Interval.Start with data (its value and its interval end), keeping
// the record's identity, its start key, unchanged. It panics if no such
// record exists.
func (s *Store[V, T]) UpdateValidData(data ValidData[V, T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.findByStartLocked(data.Interval.Start)
	if existing == nil {
		invariantViolation("UpdateValidData: no record starting at %s", data.Interval.Start)
	}
	s.removeRecordLocked(existing)
	s.addRecordLocked(data)
}

// RemoveValidDataByKey deletes the record whose interval starts exactly at
// key. It is a no-op if no such record exists.
func (s *Store[V, T]) RemoveValidDataByKey(key DomainN[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec := s.findByStartLocked(key); rec != nil {
		s.removeRecordLocked(rec)
	}
}

func (s *Store[V, T]) withLogger() *zap.Logger {
	if s.cfg.logger == nil {
		return zap.NewNop()
	}
	return s.cfg.logger
}
