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
	"testing"

	"github.com/contriboss/intervalidus-go/domainvalue"
)

func twoDWitnesses(t *testing.T) Witnesses[int] {
	t.Helper()
	w := domainvalue.DefaultInt()
	return Witnesses[int]{w, w}
}

func box2D(t *testing.T, ws Witnesses[int], x1, y1, x2, y2 int) IntervalN[int] {
	t.Helper()
	iv, err := NewIntervalN(ws, DomainN[int]{Point1D(x1), Point1D(y1)}, DomainN[int]{Point1D(x2), Point1D(y2)})
	if err != nil {
		t.Fatalf("box2D(%d,%d,%d,%d): %v", x1, y1, x2, y2, err)
	}
	return iv
}

func TestIsLeftAdjacentToNRequiresExactlyOneAdjacentDimension(t *testing.T) {
	t.Parallel()
	ws := twoDWitnesses(t)

	a := box2D(t, ws, 1, 1, 5, 5)
	// Adjacent in x only, equivalent in y: should be left-adjacent.
	b := box2D(t, ws, 6, 1, 10, 5)
	if !IsLeftAdjacentToN(ws, a, b) {
		t.Fatalf("expected n-D left-adjacency across x with matching y")
	}

	// Adjacent in both x and y: not left-adjacent (zero equivalent dims).
	c := box2D(t, ws, 6, 6, 10, 10)
	if IsLeftAdjacentToN(ws, a, c) {
		t.Fatalf("adjacency in every dimension should not count as left-adjacent")
	}

	// Adjacent in x, but y has a gap: not left-adjacent.
	d := box2D(t, ws, 6, 7, 10, 12)
	if IsLeftAdjacentToN(ws, a, d) {
		t.Fatalf("a mismatched second dimension should break adjacency")
	}
}

// TestSeparateUsingNCorner exercises the split behind spec §8 scenario S3:
// a 10x10 square separated against a corner-overlapping 11x11 square is
// tiled by pairwise-disjoint pieces whose areas sum to exactly 100.
func TestSeparateUsingNCorner(t *testing.T) {
	t.Parallel()
	ws := twoDWitnesses(t)
	this := box2D(t, ws, 1, 1, 10, 10)
	that := box2D(t, ws, 5, 5, 15, 15)

	pieces := SeparateUsingN(ws, this, that)

	totalArea := 0
	for _, p := range pieces {
		x1, _ := p.Start[0].Value()
		y1, _ := p.Start[1].Value()
		x2, _ := p.End[0].Value()
		y2, _ := p.End[1].Value()
		totalArea += (x2 - x1 + 1) * (y2 - y1 + 1)
	}
	if totalArea != 100 {
		t.Fatalf("pieces should tile the original 10x10 area exactly, got area %d from %d pieces", totalArea, len(pieces))
	}
	for i := 0; i < len(pieces); i++ {
		for j := i + 1; j < len(pieces); j++ {
			if pieces[i].Intersects(ws, pieces[j]) {
				t.Fatalf("pieces %d and %d overlap: %+v / %+v", i, j, pieces[i], pieces[j])
			}
		}
	}
}

func TestIntersectionWithNRequiresEveryDimension(t *testing.T) {
	t.Parallel()
	ws := twoDWitnesses(t)
	a := box2D(t, ws, 1, 1, 10, 10)
	b := box2D(t, ws, 5, 20, 15, 30) // overlaps in x, not in y

	if _, ok := IntersectionWithN(ws, a, b); ok {
		t.Fatalf("intervals not overlapping in every dimension must not intersect")
	}
}

func TestDomainNString(t *testing.T) {
	t.Parallel()
	d := DomainN[int]{Point1D(1), Point1D(2)}
	if got := d.String(); got != "[1] x [2]" {
		t.Fatalf("DomainN.String() = %q", got)
	}
}
