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

// Mutable exposes Store's write operations directly: every call mutates
// the receiver in place. It exists mainly to document intent at call
// sites — *Store already behaves this way — and to give Immutable
// something concrete to copy from.
type Mutable[V any, T any] struct {
	*Store[V, T]
}

// NewMutable wraps an existing store as a Mutable facade.
func NewMutable[V any, T any](s *Store[V, T]) Mutable[V, T] { return Mutable[V, T]{Store: s} }

// Immutable is a copy-on-write facade over the same mutation engine:
// every operation clones the underlying store first and applies the
// mutation to the clone, leaving the receiver untouched (spec §9,
// component 11). This costs an O(n) copy per call; callers mutating a
// store repeatedly should prefer Mutable.
type Immutable[V any, T any] struct {
	store *Store[V, T]
}

// NewImmutable wraps an existing store as an Immutable facade.
func NewImmutable[V any, T any](s *Store[V, T]) Immutable[V, T] {
	return Immutable[V, T]{store: s}
}

// Store returns the read-only snapshot this facade wraps.
func (im Immutable[V, T]) Store() *Store[V, T] { return im.store }

func (im Immutable[V, T]) clone() *Store[V, T] {
	next := NewStore[V, T](im.store.witnesses, storeOptionsFrom(im.store.cfg)...)
	for _, r := range im.store.GetAll() {
		next.addRecordLocked(r)
	}
	return next
}

func storeOptionsFrom[V any, T any](cfg *storeConfig[V, T]) []StoreOption[V, T] {
	opts := []StoreOption[V, T]{
		WithLogger[V, T](cfg.logger),
		WithValueEqual[V, T](cfg.equalValue),
	}
	if cfg.newIndex != nil {
		opts = append(opts, WithSpatialIndex[V, T](cfg.newIndex))
	}
	if cfg.noSearchTree {
		opts = append(opts, WithNoSearchTree[V, T]())
	}
	return opts
}

// Set returns a new Immutable with data set, leaving im unchanged.
func (im Immutable[V, T]) Set(data ValidData[V, T]) Immutable[V, T] {
	next := im.clone()
	next.Set(data)
	return Immutable[V, T]{store: next}
}

// Remove returns a new Immutable with target removed, leaving im unchanged.
func (im Immutable[V, T]) Remove(target IntervalN[T]) Immutable[V, T] {
	next := im.clone()
	next.Remove(target)
	return Immutable[V, T]{store: next}
}

// Update returns a new Immutable with updater applied over target, leaving
// im unchanged.
func (im Immutable[V, T]) Update(target IntervalN[T], updater func(V) V) Immutable[V, T] {
	next := im.clone()
	next.Update(target, updater)
	return Immutable[V, T]{store: next}
}

// Fill returns a new Immutable with data filled into any gap, leaving im
// unchanged.
func (im Immutable[V, T]) Fill(data ValidData[V, T]) Immutable[V, T] {
	next := im.clone()
	next.Fill(data)
	return Immutable[V, T]{store: next}
}

// Merge returns a new Immutable with that's records folded in via
// mergeValues, leaving im unchanged.
func (im Immutable[V, T]) Merge(that Immutable[V, T], mergeValues func(existing, incoming V) V) Immutable[V, T] {
	next := im.clone()
	next.Merge(that.store, mergeValues)
	return Immutable[V, T]{store: next}
}
