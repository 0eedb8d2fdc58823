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

package domainvalue

import (
	"math/big"
	"testing"
	"time"
)

func TestIntSuccessorPredecessorBoundaries(t *testing.T) {
	t.Parallel()
	w := NewInt(0, 10)

	if _, ok := w.SuccessorOf(10); ok {
		t.Fatalf("SuccessorOf(max) should be absent")
	}
	if _, ok := w.PredecessorOf(0); ok {
		t.Fatalf("PredecessorOf(min) should be absent")
	}
	next, ok := w.SuccessorOf(5)
	if !ok || next != 6 {
		t.Fatalf("SuccessorOf(5) = %v, %v; want 6, true", next, ok)
	}
}

func TestLongOrdering(t *testing.T) {
	t.Parallel()
	w := DefaultLong()
	if w.Compare(1, 2) >= 0 {
		t.Fatalf("expected 1 < 2")
	}
	if w.Compare(2, 1) <= 0 {
		t.Fatalf("expected 2 > 1")
	}
}

func TestBigIntSteps(t *testing.T) {
	t.Parallel()
	w := NewBigInt(big.NewInt(0), big.NewInt(100))
	next, ok := w.SuccessorOf(big.NewInt(99))
	if !ok || next.Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("SuccessorOf(99) = %v, %v", next, ok)
	}
	if _, ok := w.SuccessorOf(big.NewInt(100)); ok {
		t.Fatalf("SuccessorOf(max) should be absent")
	}
}

func TestEnumFromSeq(t *testing.T) {
	t.Parallel()
	w := FromSeq([]string{"mon", "tue", "wed"})
	if w.Compare("mon", "wed") >= 0 {
		t.Fatalf("expected mon < wed")
	}
	next, ok := w.SuccessorOf("mon")
	if !ok || next != "tue" {
		t.Fatalf("SuccessorOf(mon) = %v, %v; want tue, true", next, ok)
	}
	if _, ok := w.SuccessorOf("wed"); ok {
		t.Fatalf("SuccessorOf(last) should be absent")
	}
}

func TestDoubleHasNoSteps(t *testing.T) {
	t.Parallel()
	w := DefaultDouble()
	if w.Discrete() {
		t.Fatalf("Double must report Discrete() == false")
	}
	if _, ok := w.SuccessorOf(1.0); ok {
		t.Fatalf("continuous witness must never provide a successor")
	}
}

func TestDateStepsOneDay(t *testing.T) {
	t.Parallel()
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	w := NewDate(min, max)

	next, ok := w.SuccessorOf(min)
	if !ok || !next.Equal(min.AddDate(0, 0, 1)) {
		t.Fatalf("SuccessorOf(min) = %v, %v", next, ok)
	}
	if _, ok := w.SuccessorOf(max); ok {
		t.Fatalf("SuccessorOf(max) should be absent")
	}
}

func TestPairWitnessLexicographic(t *testing.T) {
	t.Parallel()
	w := NewPairWitness[int, int](NewInt(0, 10), NewInt(0, 10))

	a := Pair[int, int]{First: 1, Second: 9}
	b := Pair[int, int]{First: 2, Second: 0}
	if w.Compare(a, b) >= 0 {
		t.Fatalf("expected (1,9) < (2,0) lexicographically")
	}

	next, ok := w.SuccessorOf(Pair[int, int]{First: 1, Second: 10})
	if !ok || next != (Pair[int, int]{First: 2, Second: 0}) {
		t.Fatalf("SuccessorOf carry failed: %v, %v", next, ok)
	}
}
