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

import "go.uber.org/zap"

// updateOrRemove is the single mutation primitive every write operation in
// this file derives from (spec §4.2.3). For every existing record that
// overlaps target, it tiles that record's interval against target; the one
// piece that equals the intersection is handed to f, which returns the
// replacement value and whether to keep it at all, while every other piece
// is reinserted unchanged under the original value. f is never called for
// the non-overlapping remainder of an existing record.
//
// This diverges from a textbook three-pass implementation (decompose, then
// merge adjacent pieces, then compress) in one deliberate way: the
// micro-merge pass is skipped, because compressInPlace below already
// restores canonical form for every value this call touched.
//
// Two dimensionalities have their own implementation: the 2-D fast path
// (updateOrRemove2D) and the generic N-dimensional Cartesian split
// (updateOrRemoveGeneric). Both must reach the same final state; see
// TestPropertyOptimized2DMatchesGeneric for P8.
func (s *Store[V, T]) updateOrRemove(target IntervalN[T], f func(V) (V, bool)) {
	if len(s.witnesses) == 2 {
		s.updateOrRemove2D(target, f)
		return
	}
	s.updateOrRemoveGeneric(target, f)
}

// updateOrRemoveGeneric tiles each overlapping record's interval against
// target with SeparateUsingN, whose Cartesian product over dimensions
// handles any dimensionality uniformly.
func (s *Store[V, T]) updateOrRemoveGeneric(target IntervalN[T], f func(V) (V, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	overlapping := s.spatial.Get(s.box(target))
	s.logger().Debug("updateOrRemove", zap.String("path", "generic"), zap.String("target", target.String()), zap.Int("overlapping", len(overlapping)))
	var touched []V

	for _, o := range overlapping {
		ix, ok := IntersectionWithN(s.witnesses, o.Interval, target)
		if !ok {
			continue
		}
		pieces := SeparateUsingN(s.witnesses, o.Interval, target)
		value := o.Value
		s.removeRecordLocked(o)
		for _, piece := range pieces {
			if EqualN(s.witnesses, piece.Start, ix.Start) && EqualN(s.witnesses, piece.End, ix.End) {
				if newValue, keep := f(value); keep {
					s.addRecordLocked(ValidData[V, T]{Interval: piece, Value: newValue})
					touched = append(touched, newValue)
				}
				continue
			}
			s.addRecordLocked(ValidData[V, T]{Interval: piece, Value: value})
		}
		touched = append(touched, value)
	}

	for _, v := range touched {
		if gi := s.valueGroupIndexLocked(v); gi >= 0 {
			s.compressGroupLocked(s.values[gi])
		}
	}
}

// updateOrRemove2D is the optimized 2-D path spec §4.2.3 calls for: instead
// of the generic N-dimensional Cartesian split, it separates each
// overlapping record directly along x and y and recombines the two
// per-axis piece lists into the nine-case grid (simple / corner / hole /
// two edges / two slices / two bites all fall out of how many of the up to
// three x-pieces and three y-pieces are non-trivial), without going
// through SeparateUsingN's generic dimension loop.
func (s *Store[V, T]) updateOrRemove2D(target IntervalN[T], f func(V) (V, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	overlapping := s.spatial.Get(s.box(target))
	s.logger().Debug("updateOrRemove", zap.String("path", "2d-fast"), zap.String("target", target.String()), zap.Int("overlapping", len(overlapping)))
	var touched []V

	for _, o := range overlapping {
		ix, ok := IntersectionWithN(s.witnesses, o.Interval, target)
		if !ok {
			continue
		}
		xPieces := SeparateUsing1D(s.witnesses[0], o.Interval.dim1D(0), target.dim1D(0))
		yPieces := SeparateUsing1D(s.witnesses[1], o.Interval.dim1D(1), target.dim1D(1))

		value := o.Value
		s.removeRecordLocked(o)
		for _, xp := range xPieces {
			for _, yp := range yPieces {
				piece := IntervalN[T]{Start: DomainN[T]{xp.Start, yp.Start}, End: DomainN[T]{xp.End, yp.End}}
				if EqualN(s.witnesses, piece.Start, ix.Start) && EqualN(s.witnesses, piece.End, ix.End) {
					if newValue, keep := f(value); keep {
						s.addRecordLocked(ValidData[V, T]{Interval: piece, Value: newValue})
						touched = append(touched, newValue)
					}
					continue
				}
				s.addRecordLocked(ValidData[V, T]{Interval: piece, Value: value})
			}
		}
		touched = append(touched, value)
	}

	for _, v := range touched {
		if gi := s.valueGroupIndexLocked(v); gi >= 0 {
			s.compressGroupLocked(s.values[gi])
		}
	}
}

func (s *Store[V, T]) valueGroupIndexLocked(value V) int {
	for i, g := range s.values {
		if s.cfg.equalValue(g.value, value) {
			return i
		}
	}
	return -1
}

// Set overwrites every record intersecting data.Interval with data's value,
// then adds data itself. Equivalent to Remove followed by AddValidData,
// after which data's value group is recompressed so that data joins any
// adjacent record holding the same value.
func (s *Store[V, T]) Set(data ValidData[V, T]) {
	s.updateOrRemove(data.Interval, func(V) (V, bool) {
		var zero V
		return zero, false
	})
	s.mu.Lock()
	s.addRecordLocked(data)
	if gi := s.valueGroupIndexLocked(data.Value); gi >= 0 {
		s.compressGroupLocked(s.values[gi])
	}
	s.mu.Unlock()
}

// Remove deletes every piece of every record that intersects target,
// shrinking or splitting existing records as needed.
func (s *Store[V, T]) Remove(target IntervalN[T]) {
	s.updateOrRemove(target, func(V) (V, bool) {
		var zero V
		return zero, false
	})
}

// Update applies updater to the value of every record intersecting
// target, over exactly the intersected sub-interval.
func (s *Store[V, T]) Update(target IntervalN[T], updater func(V) V) {
	s.updateOrRemove(target, func(v V) (V, bool) { return updater(v), true })
}

// Fill inserts data only where target is not already covered by some
// record, leaving existing data untouched (spec §4.2.6): it computes
// target's remainder against the current domain, adds data restricted
// to each remaining piece, then recompresses data's value group.
func (s *Store[V, T]) Fill(data ValidData[V, T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := []IntervalN[T]{data.Interval}
	s.byStart.Ascend(func(r *ValidData[V, T]) bool {
		if !r.Interval.Intersects(s.witnesses, data.Interval) {
			return true
		}
		var next []IntervalN[T]
		for _, piece := range remaining {
			ix, ok := IntersectionWithN(s.witnesses, piece, r.Interval)
			if !ok {
				next = append(next, piece)
				continue
			}
			for _, sub := range SeparateUsingN(s.witnesses, piece, r.Interval) {
				if !EqualN(s.witnesses, sub.Start, ix.Start) || !EqualN(s.witnesses, sub.End, ix.End) {
					next = append(next, sub)
				}
			}
		}
		remaining = uniqueIntervalsN(s.witnesses, next)
		return true
	})

	for _, piece := range remaining {
		s.addRecordLocked(ValidData[V, T]{Interval: piece, Value: data.Value})
	}
	if gi := s.valueGroupIndexLocked(data.Value); gi >= 0 {
		s.compressGroupLocked(s.values[gi])
	}
}

// Merge folds another store's records into s (spec §4.2.5): for every
// record (i, v') in that, it calls updateOrRemove(i, v ↦ mergeValues(v,
// v')) to combine with whatever s already has over i, then Fill(i, v') to
// cover whatever part of i s did not already have data for. The net effect
// is "s where it has data (merged with that), and that elsewhere" — so
// s.Merge(empty, f) leaves s unchanged (P6).
func (s *Store[V, T]) Merge(that *Store[V, T], mergeValues func(existing, incoming V) V) {
	for _, rec := range that.GetAll() {
		s.updateOrRemove(rec.Interval, func(v V) (V, bool) { return mergeValues(v, rec.Value), true })
		s.Fill(ValidData[V, T]{Interval: rec.Interval, Value: rec.Value})
	}
}

func (s *Store[V, T]) compressGroupLocked(g *valueGroup[V, T]) {
	if g == nil || len(g.records) < 2 {
		return
	}
	progressed := true
	for progressed {
		progressed = false
		for i := 0; i < len(g.records); i++ {
			for j := 0; j < len(g.records); j++ {
				if i == j {
					continue
				}
				a, b := g.records[i], g.records[j]
				if IsLeftAdjacentToN(s.witnesses, a.Interval, b.Interval) {
					joined := JoinedWithN(s.witnesses, a.Interval, b.Interval)
					s.logger().Debug("compress: joining adjacent records",
						zap.String("left", a.Interval.String()),
						zap.String("right", b.Interval.String()),
						zap.String("joined", joined.String()))
					s.removeRecordLocked(a)
					s.removeRecordLocked(b)
					s.addRecordLocked(ValidData[V, T]{Interval: joined, Value: a.Value})
					progressed = true
					break
				}
			}
			if progressed {
				break
			}
		}
	}
}

// CompressInPlace merges every n-D left-adjacent pair of records sharing
// value, restoring canonical form for that single value group.
func (s *Store[V, T]) CompressInPlace(value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gi := s.valueGroupIndexLocked(value); gi >= 0 {
		s.compressGroupLocked(s.values[gi])
	}
}

// CompressAll runs CompressInPlace over every value currently stored.
func (s *Store[V, T]) CompressAll() {
	s.mu.Lock()
	values := make([]*valueGroup[V, T], len(s.values))
	copy(values, s.values)
	s.mu.Unlock()
	for _, g := range values {
		s.CompressInPlace(g.value)
	}
}

// RecompressInPlace is CompressAll preceded by a pass that first resolves
// any residual overlaps between records of the same value using
// uniqueIntervalsN, in case records were inserted out of canonical form by
// a caller going around the Store API (e.g. via a diff sync, spec §4.2.8).
func (s *Store[V, T]) RecompressInPlace() {
	s.mu.Lock()
	var groups []*valueGroup[V, T]
	groups = append(groups, s.values...)
	s.mu.Unlock()

	for _, g := range groups {
		s.mu.Lock()
		intervals := make([]IntervalN[T], len(g.records))
		for i, r := range g.records {
			intervals[i] = r.Interval
		}
		unique := uniqueIntervalsN(s.witnesses, intervals)
		if len(unique) != len(intervals) {
			for _, r := range append([]*ValidData[V, T]{}, g.records...) {
				s.removeRecordLocked(r)
			}
			for _, iv := range unique {
				s.addRecordLocked(ValidData[V, T]{Interval: iv, Value: g.value})
			}
		}
		s.mu.Unlock()
		s.CompressInPlace(g.value)
	}
}

func (s *Store[V, T]) logger() *zap.Logger { return s.withLogger() }
