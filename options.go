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
	"reflect"

	"github.com/contriboss/intervalidus-go/spatialindex"
	"go.uber.org/zap"
)

type storeConfig[V any, T any] struct {
	logger        *zap.Logger
	equalValue    func(a, b V) bool
	newIndex      func() spatialindex.Index[*ValidData[V, T]]
	noSearchTree  bool
}

// StoreOption configures a Store at construction time, mirroring the
// functional-options pattern the teacher uses for SolverOptions.
type StoreOption[V any, T any] func(*storeConfig[V, T])

// WithLogger attaches a zap logger; Store emits Debug-level structured
// fields around updateOrRemove/compress decisions only, never on the hot
// Get/Intersects path.
func WithLogger[V any, T any](logger *zap.Logger) StoreOption[V, T] {
	return func(c *storeConfig[V, T]) { c.logger = logger }
}

// WithValueEqual overrides the equality used to group records by value
// (§4.2.1's byValue index). The default is reflect.DeepEqual, which is
// correct for any V but slower than a type-specific comparison.
func WithValueEqual[V any, T any](eq func(a, b V) bool) StoreOption[V, T] {
	return func(c *storeConfig[V, T]) { c.equalValue = eq }
}

// WithSpatialIndex overrides the default spatial index backing structure.
func WithSpatialIndex[V any, T any](factory func() spatialindex.Index[*ValidData[V, T]]) StoreOption[V, T] {
	return func(c *storeConfig[V, T]) { c.newIndex = factory }
}

// WithNoSearchTree selects spec §4.2.1's experimental fallback: a
// dependency-free linear index instead of the default btree-backed one.
// Slower on misses, identical semantics.
func WithNoSearchTree[V any, T any]() StoreOption[V, T] {
	return func(c *storeConfig[V, T]) { c.noSearchTree = true }
}

func defaultStoreConfig[V any, T any]() *storeConfig[V, T] {
	return &storeConfig[V, T]{
		logger:     zap.NewNop(),
		equalValue: func(a, b V) bool { return reflect.DeepEqual(a, b) },
	}
}

func (c *storeConfig[V, T]) buildIndex() spatialindex.Index[*ValidData[V, T]] {
	if c.newIndex != nil {
		return c.newIndex()
	}
	if c.noSearchTree {
		return spatialindex.NewLinearIndex[*ValidData[V, T]]()
	}
	return spatialindex.NewBTreeIndex[*ValidData[V, T]]()
}
