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

import "github.com/contriboss/intervalidus-go/domainvalue"

// Interval1D is a contiguous range in a single dimension: [Start, End]
// where either endpoint may be open (continuous witnesses only) or
// unbounded (Bottom/Top).
type Interval1D[T any] struct {
	Start Domain1D[T]
	End   Domain1D[T]
}

// NewInterval1D validates and builds an interval per spec §3.4: Start must
// strictly precede End, or both must be the same closed Point (a
// singleton). (Bottom,Bottom) and (Top,Top) are always invalid, as is any
// interval starting at Top or ending at Bottom.
func NewInterval1D[T any](w domainvalue.DomainValueLike[T], start, end Domain1D[T]) (Interval1D[T], error) {
	if start.IsTop() {
		return Interval1D[T]{}, &InvalidIntervalError{Reason: "start cannot be Top"}
	}
	if end.IsBottom() {
		return Interval1D[T]{}, &InvalidIntervalError{Reason: "end cannot be Bottom"}
	}
	if isEmptyInterval1D(w, start, end) {
		return Interval1D[T]{}, &InvalidIntervalError{Reason: "start must not be after end"}
	}
	return Interval1D[T]{Start: start, End: end}, nil
}

// isEmptyInterval1D treats Bottom/Top as the extended-real infinities they
// represent: Bottom..anything-but-Bottom, and anything-but-Top..Top, are
// always non-empty. When both endpoints carry a finite value, the interval
// is non-empty iff start's value is strictly less than end's value, or
// they're equal and both closed (the singleton case).
func isEmptyInterval1D[T any](w domainvalue.DomainValueLike[T], start, end Domain1D[T]) bool {
	switch {
	case start.IsBottom() && end.IsBottom():
		return true
	case start.IsTop() && end.IsTop():
		return true
	case start.IsBottom() || end.IsTop():
		return false
	case start.IsTop() || end.IsBottom():
		return true
	}

	sv, _ := start.Value()
	ev, _ := end.Value()
	switch c := w.Compare(sv, ev); {
	case c > 0:
		return true
	case c < 0:
		return false
	default:
		return !(start.tag == boundPoint && end.tag == boundPoint)
	}
}

// Contains1D reports whether point lies within [start, end]. point must be
// a closed Point; Bottom, Top and OpenPoint domain values never count as
// contained since they cannot name an actual queryable coordinate.
func Contains1D[T any](w domainvalue.DomainValueLike[T], start, end Domain1D[T], point Domain1D[T]) bool {
	if point.tag != boundPoint {
		return false
	}
	pv, _ := point.Value()

	switch start.tag {
	case boundPoint:
		sv, _ := start.Value()
		if w.Compare(pv, sv) < 0 {
			return false
		}
	case boundOpenPoint:
		sv, _ := start.Value()
		if w.Compare(pv, sv) <= 0 {
			return false
		}
	case boundTop:
		return false
	}

	switch end.tag {
	case boundPoint:
		ev, _ := end.Value()
		if w.Compare(pv, ev) > 0 {
			return false
		}
	case boundOpenPoint:
		ev, _ := end.Value()
		if w.Compare(pv, ev) >= 0 {
			return false
		}
	case boundBottom:
		return false
	}

	return true
}

// Contains reports whether point lies within iv.
func (iv Interval1D[T]) Contains(w domainvalue.DomainValueLike[T], point Domain1D[T]) bool {
	return Contains1D(w, iv.Start, iv.End, point)
}

// Intersects reports whether iv and other share at least one point.
func (iv Interval1D[T]) Intersects(w domainvalue.DomainValueLike[T], other Interval1D[T]) bool {
	_, ok := IntersectionWith1D(w, iv, other)
	return ok
}

// IntersectionWith1D returns the overlap of a and b: the later of the two
// starts paired with the earlier of the two ends. ok is false when they do
// not overlap.
func IntersectionWith1D[T any](w domainvalue.DomainValueLike[T], a, b Interval1D[T]) (Interval1D[T], bool) {
	s := a.Start
	if CompareStart(w, b.Start, s) > 0 {
		s = b.Start
	}
	e := a.End
	if CompareEnd(w, b.End, e) < 0 {
		e = b.End
	}
	if isEmptyInterval1D(w, s, e) {
		return Interval1D[T]{}, false
	}
	return Interval1D[T]{Start: s, End: e}, true
}

// JoinedWith1D returns the smallest interval covering both a and b,
// including any gap between them.
func JoinedWith1D[T any](w domainvalue.DomainValueLike[T], a, b Interval1D[T]) Interval1D[T] {
	s := a.Start
	if CompareStart(w, b.Start, s) < 0 {
		s = b.Start
	}
	e := a.End
	if CompareEnd(w, b.End, e) > 0 {
		e = b.End
	}
	return Interval1D[T]{Start: s, End: e}
}

// IsLeftAdjacentTo1D reports whether a is immediately followed by b with no
// gap and no overlap: a's end, stepped one position to the right, equals
// b's start exactly.
func IsLeftAdjacentTo1D[T any](w domainvalue.DomainValueLike[T], a, b Interval1D[T]) bool {
	return Equal1D(w, RightAdjacent1D(w, a.End), b.Start)
}

// RemainderKind tags the three shapes Excluding1D can produce.
type RemainderKind int

const (
	RemainderNone RemainderKind = iota
	RemainderSingle
	RemainderSplit
)

// Remainder1D is the result of excluding one interval from another:
// nothing left (None), one contiguous leftover piece (Single), or two
// pieces straddling a hole punched out of the middle (Split).
type Remainder1D[T any] struct {
	Kind   RemainderKind
	Single Interval1D[T]
	Left   Interval1D[T]
	Right  Interval1D[T]
}

// Excluding1D computes this minus that, per spec §4.1.1.
func Excluding1D[T any](w domainvalue.DomainValueLike[T], this, that Interval1D[T]) Remainder1D[T] {
	ix, ok := IntersectionWith1D(w, this, that)
	if !ok {
		return Remainder1D[T]{Kind: RemainderSingle, Single: this}
	}

	startsAfter := CompareStart(w, ix.Start, this.Start) > 0
	endsBefore := CompareEnd(w, ix.End, this.End) < 0

	switch {
	case startsAfter && endsBefore:
		left := Interval1D[T]{Start: this.Start, End: LeftAdjacent1D(w, ix.Start)}
		right := Interval1D[T]{Start: RightAdjacent1D(w, ix.End), End: this.End}
		return Remainder1D[T]{Kind: RemainderSplit, Left: left, Right: right}
	case startsAfter:
		left := Interval1D[T]{Start: this.Start, End: LeftAdjacent1D(w, ix.Start)}
		return Remainder1D[T]{Kind: RemainderSingle, Single: left}
	case endsBefore:
		right := Interval1D[T]{Start: RightAdjacent1D(w, ix.End), End: this.End}
		return Remainder1D[T]{Kind: RemainderSingle, Single: right}
	default:
		return Remainder1D[T]{Kind: RemainderNone}
	}
}

// SeparateUsing1D splits this into 1, 2 or 3 disjoint sub-intervals,
// ordered left to right, whose union is exactly this: the overlap with
// that (if any) plus whatever Excluding1D leaves over.
func SeparateUsing1D[T any](w domainvalue.DomainValueLike[T], this, that Interval1D[T]) []Interval1D[T] {
	ix, ok := IntersectionWith1D(w, this, that)
	rem := Excluding1D(w, this, that)

	switch rem.Kind {
	case RemainderNone:
		return []Interval1D[T]{this}
	case RemainderSplit:
		out := []Interval1D[T]{rem.Left}
		if ok {
			out = append(out, ix)
		}
		return append(out, rem.Right)
	default: // RemainderSingle
		if !ok {
			return []Interval1D[T]{rem.Single}
		}
		if CompareStart(w, rem.Single.Start, ix.Start) < 0 {
			return []Interval1D[T]{rem.Single, ix}
		}
		return []Interval1D[T]{ix, rem.Single}
	}
}
