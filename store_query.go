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

// Get returns the value valid at point and true, or the zero value and
// false if no record covers point.
func (s *Store[V, T]) Get(point DomainN[T]) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cand := range s.spatial.GetAt(s.pointBox(point)) {
		if cand.Interval.Contains(s.witnesses, point) {
			return cand.Value, true
		}
	}
	var zero V
	return zero, false
}

// Apply returns the value valid at point or a NotDefinedError naming point.
func (s *Store[V, T]) Apply(point DomainN[T]) (V, error) {
	v, ok := s.Get(point)
	if !ok {
		return v, &NotDefinedError[T]{At: point}
	}
	return v, nil
}

// GetIntersecting returns every record whose interval intersects query.
// Because the spatial index is a superset filter (spec §3.4), the result is
// re-checked with the real n-D intersection test before being returned.
func (s *Store[V, T]) GetIntersecting(query IntervalN[T]) []ValidData[V, T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ValidData[V, T]
	for _, cand := range s.spatial.Get(s.box(query)) {
		if cand.Interval.Intersects(s.witnesses, query) {
			out = append(out, ValidData[V, T]{Interval: cand.Interval, Value: cand.Value})
		}
	}
	return out
}

// Intersects reports whether any stored record intersects query.
func (s *Store[V, T]) Intersects(query IntervalN[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.intersectsLocked(query)
}

func (s *Store[V, T]) intersectsLocked(query IntervalN[T]) bool {
	for _, cand := range s.spatial.Get(s.box(query)) {
		if cand.Interval.Intersects(s.witnesses, query) {
			return true
		}
	}
	return false
}

// GetAll returns every record currently stored, in start order.
func (s *Store[V, T]) GetAll() []ValidData[V, T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ValidData[V, T], 0, s.byStart.Len())
	s.byStart.Ascend(func(r *ValidData[V, T]) bool {
		out = append(out, ValidData[V, T]{Interval: r.Interval, Value: r.Value})
		return true
	})
	return out
}

// Domain returns the set of intervals currently covered by some value,
// merged across adjacent/equivalent records regardless of value (spec
// §4.2.5): it is the fixed point of repeatedly joining any two covered
// intervals that are n-D left-adjacent or that intersect.
func (s *Store[V, T]) Domain() []IntervalN[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	intervals := make([]IntervalN[T], 0, s.byStart.Len())
	s.byStart.Ascend(func(r *ValidData[V, T]) bool {
		intervals = append(intervals, r.Interval)
		return true
	})
	return mergeCoveredIntervals(s.witnesses, intervals)
}

func mergeCoveredIntervals[T any](ws Witnesses[T], intervals []IntervalN[T]) []IntervalN[T] {
	merged := append([]IntervalN[T]{}, intervals...)
	for {
		progressed := false
		for i := 0; i < len(merged); i++ {
			for j := i + 1; j < len(merged); j++ {
				if IsLeftAdjacentToN(ws, merged[i], merged[j]) {
					merged[i] = JoinedWithN(ws, merged[i], merged[j])
				} else if IsLeftAdjacentToN(ws, merged[j], merged[i]) {
					merged[i] = JoinedWithN(ws, merged[j], merged[i])
				} else if merged[i].Intersects(ws, merged[j]) {
					merged[i] = JoinedWithN(ws, merged[i], merged[j])
				} else {
					continue
				}
				merged = append(merged[:j], merged[j+1:]...)
				progressed = true
				break
			}
			if progressed {
				break
			}
		}
		if !progressed {
			return merged
		}
	}
}

// DomainComplement returns the set of intervals not covered by any record,
// by repeatedly tiling a fully unbounded interval against each interval in
// Domain() and keeping every piece that is not the consumed intersection.
func (s *Store[V, T]) DomainComplement() []IntervalN[T] {
	covered := s.Domain()
	remaining := []IntervalN[T]{unboundedIntervalN(s.witnesses)}
	for _, c := range covered {
		var next []IntervalN[T]
		for _, r := range remaining {
			ix, ok := IntersectionWithN(s.witnesses, r, c)
			if !ok {
				next = append(next, r)
				continue
			}
			for _, piece := range SeparateUsingN(s.witnesses, r, c) {
				if !EqualN(s.witnesses, piece.Start, ix.Start) || !EqualN(s.witnesses, piece.End, ix.End) {
					next = append(next, piece)
				}
			}
		}
		remaining = next
	}
	return remaining
}

func unboundedIntervalN[T any](ws Witnesses[T]) IntervalN[T] {
	start := make(DomainN[T], len(ws))
	end := make(DomainN[T], len(ws))
	for i := range ws {
		start[i] = Bottom1D[T]()
		end[i] = Top1D[T]()
	}
	return IntervalN[T]{Start: start, End: end}
}
