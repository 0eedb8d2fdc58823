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
	"fmt"

	"github.com/contriboss/intervalidus-go/domainvalue"
)

// IntervalN is an n-dimensional interval: a tuple of per-dimension
// Interval1D, represented as paired Start/End DomainN tuples so that a
// single IntervalN carries one witness list shared across both endpoints.
type IntervalN[T any] struct {
	Start DomainN[T]
	End   DomainN[T]
}

// Witnesses bundles one DomainValueLike per dimension, in dimension order.
// All IntervalN/DomainN operations in this file take a Witnesses value as
// their first argument, mirroring the per-dimension lift described in
// spec §3.3.
type Witnesses[T any] []domainvalue.DomainValueLike[T]

func (ws Witnesses[T]) dims() int { return len(ws) }

// NewIntervalN validates and builds an n-D interval: each dimension must
// independently satisfy Interval1D's bounds rule.
func NewIntervalN[T any](ws Witnesses[T], start, end DomainN[T]) (IntervalN[T], error) {
	if len(start) != len(ws) || len(end) != len(ws) {
		return IntervalN[T]{}, &InvalidIntervalError{Reason: fmt.Sprintf("expected %d dimensions, got start=%d end=%d", len(ws), len(start), len(end))}
	}
	for i := range ws {
		if _, err := NewInterval1D(ws[i], start[i], end[i]); err != nil {
			return IntervalN[T]{}, &InvalidIntervalError{Reason: fmt.Sprintf("dimension %d: %v", i, err)}
		}
	}
	return IntervalN[T]{Start: cloneDomainN(start), End: cloneDomainN(end)}, nil
}

func (iv IntervalN[T]) dim1D(i int) Interval1D[T] {
	return Interval1D[T]{Start: iv.Start[i], End: iv.End[i]}
}

// Contains reports whether point lies within iv in every dimension.
func (iv IntervalN[T]) Contains(ws Witnesses[T], point DomainN[T]) bool {
	for i := range ws {
		if !Contains1D(ws[i], iv.Start[i], iv.End[i], point[i]) {
			return false
		}
	}
	return true
}

// Intersects reports whether iv and other overlap in every dimension.
func (iv IntervalN[T]) Intersects(ws Witnesses[T], other IntervalN[T]) bool {
	_, ok := IntersectionWithN(ws, iv, other)
	return ok
}

// IntersectionWithN is the per-dimension lift of IntersectionWith1D: the
// result is non-empty only if every dimension overlaps.
func IntersectionWithN[T any](ws Witnesses[T], a, b IntervalN[T]) (IntervalN[T], bool) {
	start := make(DomainN[T], len(ws))
	end := make(DomainN[T], len(ws))
	for i := range ws {
		ix, ok := IntersectionWith1D(ws[i], a.dim1D(i), b.dim1D(i))
		if !ok {
			return IntervalN[T]{}, false
		}
		start[i], end[i] = ix.Start, ix.End
	}
	return IntervalN[T]{Start: start, End: end}, true
}

// JoinedWithN is the per-dimension lift of JoinedWith1D.
func JoinedWithN[T any](ws Witnesses[T], a, b IntervalN[T]) IntervalN[T] {
	start := make(DomainN[T], len(ws))
	end := make(DomainN[T], len(ws))
	for i := range ws {
		j := JoinedWith1D(ws[i], a.dim1D(i), b.dim1D(i))
		start[i], end[i] = j.Start, j.End
	}
	return IntervalN[T]{Start: start, End: end}
}

// IsLeftAdjacentToN reports n-D left-adjacency per spec §4.1.2: exactly one
// dimension must be 1-D left-adjacent, and every other dimension must be
// 1-D equivalent (Equal1D on both start and end).
func IsLeftAdjacentToN[T any](ws Witnesses[T], a, b IntervalN[T]) bool {
	adjacentCount, equivalentCount := 0, 0
	for i := range ws {
		switch {
		case IsLeftAdjacentTo1D(ws[i], a.dim1D(i), b.dim1D(i)):
			adjacentCount++
		case Equal1D(ws[i], a.Start[i], b.Start[i]) && Equal1D(ws[i], a.End[i], b.End[i]):
			equivalentCount++
		}
	}
	return adjacentCount == 1 && equivalentCount == len(ws)-1
}

// ExcludingN is the per-dimension lift of Excluding1D: it returns one
// Remainder1D per dimension. The n-D remainder as a whole is only
// meaningful combined with SeparateUsingN, which is what store_engine.go's
// updateOrRemove engine actually consumes; ExcludingN is exposed because
// spec §4.1 names it as a first-class n-D operation in its own right.
func ExcludingN[T any](ws Witnesses[T], this, that IntervalN[T]) []Remainder1D[T] {
	out := make([]Remainder1D[T], len(ws))
	for i := range ws {
		out[i] = Excluding1D(ws[i], this.dim1D(i), that.dim1D(i))
	}
	return out
}

// SeparateUsingN tiles `this` into disjoint n-D sub-intervals via the
// Cartesian product of each dimension's SeparateUsing1D pieces. The pieces
// cover `this` exactly; at most one of them equals the intersection of
// `this` and `that`.
func SeparateUsingN[T any](ws Witnesses[T], this, that IntervalN[T]) []IntervalN[T] {
	perDim := make([][]Interval1D[T], len(ws))
	for i := range ws {
		perDim[i] = SeparateUsing1D(ws[i], this.dim1D(i), that.dim1D(i))
	}
	return cartesianProduct(perDim)
}

func cartesianProduct[T any](perDim [][]Interval1D[T]) []IntervalN[T] {
	if len(perDim) == 0 {
		return nil
	}
	results := []IntervalN[T]{{Start: DomainN[T]{}, End: DomainN[T]{}}}
	for _, options := range perDim {
		next := make([]IntervalN[T], 0, len(results)*len(options))
		for _, partial := range results {
			for _, opt := range options {
				start := append(cloneDomainN(partial.Start), opt.Start)
				end := append(cloneDomainN(partial.End), opt.End)
				next = append(next, IntervalN[T]{Start: start, End: end})
			}
		}
		results = next
	}
	return results
}

func (iv IntervalN[T]) String() string {
	return fmt.Sprintf("%s -> %s", iv.Start, iv.End)
}

// HasSameStartAs reports whether iv and other share the same start tuple —
// the identity used as a store record's key (spec §3.5).
func (iv IntervalN[T]) HasSameStartAs(ws Witnesses[T], other IntervalN[T]) bool {
	return EqualN(ws, iv.Start, other.Start)
}
