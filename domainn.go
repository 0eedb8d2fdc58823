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
	"strings"

	"github.com/contriboss/intervalidus-go/domainvalue"
)

// DomainN is an n-dimensional domain value: a tuple of Domain1D, one per
// dimension, represented as a slice because Go generics cannot express a
// heterogeneous tuple of arbitrary arity. Every operation here is the
// point-wise lift of the corresponding Domain1D operation.
type DomainN[T any] []Domain1D[T]

// NewDomainN builds an n-D domain from its per-dimension coordinates.
func NewDomainN[T any](coords ...Domain1D[T]) DomainN[T] {
	out := make(DomainN[T], len(coords))
	copy(out, coords)
	return out
}

func (d DomainN[T]) String() string {
	parts := make([]string, len(d))
	for i, c := range d {
		v, ok := c.Value()
		switch {
		case !ok:
			parts[i] = boundLabel(c)
		default:
			parts[i] = fmt.Sprintf("%s%v%s", c.LeftBrace(), v, c.RightBrace())
		}
	}
	return strings.Join(parts, " x ")
}

func boundLabel[T any](d Domain1D[T]) string {
	if d.IsBottom() {
		return "Bottom"
	}
	return "Top"
}

// EqualN reports whether every dimension of a and b is Equal1D.
func EqualN[T any](ws []domainvalue.DomainValueLike[T], a, b DomainN[T]) bool {
	if len(a) != len(b) || len(a) != len(ws) {
		return false
	}
	for i := range a {
		if !Equal1D(ws[i], a[i], b[i]) {
			return false
		}
	}
	return true
}

// CompareStartN lexicographically compares a and b dimension by dimension
// under start-ordering.
func CompareStartN[T any](ws []domainvalue.DomainValueLike[T], a, b DomainN[T]) int {
	for i := range a {
		if c := CompareStart(ws[i], a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// CompareEndN lexicographically compares a and b dimension by dimension
// under end-ordering.
func CompareEndN[T any](ws []domainvalue.DomainValueLike[T], a, b DomainN[T]) int {
	for i := range a {
		if c := CompareEnd(ws[i], a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// AsCoordinateFixed produces the tuple of ordered hashes for every
// dimension, resolving unbounded ends to ±Inf. It is used to compute the
// fixed bounding box a store inserts into the spatial index.
func AsCoordinateFixed[T any](ws []domainvalue.DomainValueLike[T], d DomainN[T]) []float64 {
	out := make([]float64, len(d))
	for i, c := range d {
		out[i] = OrderedHash1D(ws[i], c)
	}
	return out
}

// AsCoordinateUnfixed is the same computation as AsCoordinateFixed; it is
// named separately because spec §3.3 distinguishes the two call sites
// (fixed boundary computation for queries vs. insertion, which may choose
// to leave unbounded ends unresolved). This implementation always resolves
// them, which is a valid (if less lazy) instance of "may be left
// unresolved".
func AsCoordinateUnfixed[T any](ws []domainvalue.DomainValueLike[T], d DomainN[T]) []float64 {
	return AsCoordinateFixed(ws, d)
}

func cloneDomainN[T any](d DomainN[T]) DomainN[T] {
	out := make(DomainN[T], len(d))
	copy(out, d)
	return out
}
