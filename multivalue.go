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

// MultiValueStore is a Store whose value at any point is a set rather than
// a single V, letting overlapping facts coexist over the same interval
// instead of the later write clobbering the earlier one (spec §4.3).
type MultiValueStore[V comparable, T any] struct {
	*Store[map[V]struct{}, T]
}

// NewMultiValueStore builds an empty multi-value store. The underlying
// Store is configured with set equality so that two records whose sets
// contain the same members merge into one during compression, independent
// of insertion order.
func NewMultiValueStore[V comparable, T any](witnesses Witnesses[T], opts ...StoreOption[map[V]struct{}, T]) *MultiValueStore[V, T] {
	opts = append([]StoreOption[map[V]struct{}, T]{WithValueEqual[map[V]struct{}, T](setEqual[V])}, opts...)
	return &MultiValueStore[V, T]{Store: NewStore[map[V]struct{}, T](witnesses, opts...)}
}

func setEqual[V comparable](a, b map[V]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// GetAllValues returns the set of members at point, or nil if point is not
// covered by any record.
func (m *MultiValueStore[V, T]) GetAllValues(point DomainN[T]) []V {
	set, ok := m.Get(point)
	if !ok {
		return nil
	}
	out := make([]V, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}

// AddOne inserts member into the set valid over interval, creating,
// extending, or merging records as needed, via the shared updateOrRemove
// engine. Any sub-interval not yet covered by a record starts from the
// empty set.
func (m *MultiValueStore[V, T]) AddOne(interval IntervalN[T], member V) {
	m.updateOrRemove(interval, func(existing map[V]struct{}) (map[V]struct{}, bool) {
		next := cloneSet(existing)
		next[member] = struct{}{}
		return next, true
	})
	m.Fill(ValidData[map[V]struct{}, T]{Interval: interval, Value: map[V]struct{}{member: {}}})
}

// RemoveOne deletes member from the set valid over interval. A record whose
// resulting set becomes empty is removed outright rather than kept as an
// empty-set record.
func (m *MultiValueStore[V, T]) RemoveOne(interval IntervalN[T], member V) {
	m.updateOrRemove(interval, func(existing map[V]struct{}) (map[V]struct{}, bool) {
		next := cloneSet(existing)
		delete(next, member)
		return next, len(next) > 0
	})
}

func cloneSet[V comparable](s map[V]struct{}) map[V]struct{} {
	out := make(map[V]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
