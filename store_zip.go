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

// ZipPair is the value type Zip and ZipAll produce: the pair of values
// from each side at a given piece of the result's interval set. It is
// unrelated to domainvalue.Pair, which composes two coordinate types into
// one dimension's witness — ZipPair instead pairs two stores' arbitrary
// value types.
type ZipPair[A any, B any] struct {
	First  A
	Second B
}

// Zip pairs this against that (spec §4.2.6): the result's interval set is
// uniqueIntervals(this ∪ that) restricted to the pieces covered by both
// sides, with values being the pair (thisValue, thatValue). this and that
// must share the same per-dimension witnesses.
func Zip[V any, W any, T any](this *Store[V, T], that *Store[W, T]) *Store[ZipPair[V, W], T] {
	return zipStores[V, W, T](this, that, nil, nil)
}

// ZipAll is Zip, but also emits a piece where only one side has a value:
// the missing side is filled with thisElem or thatElem respectively (spec
// §4.2.6).
func ZipAll[V any, W any, T any](this *Store[V, T], that *Store[W, T], thisElem V, thatElem W) *Store[ZipPair[V, W], T] {
	return zipStores[V, W, T](this, that, &thisElem, &thatElem)
}

func zipStores[V any, W any, T any](this *Store[V, T], that *Store[W, T], thisElem *V, thatElem *W) *Store[ZipPair[V, W], T] {
	this.mu.RLock()
	ws := append(Witnesses[T]{}, this.witnesses...)
	var intervals []IntervalN[T]
	this.byStart.Ascend(func(r *ValidData[V, T]) bool {
		intervals = append(intervals, r.Interval)
		return true
	})
	this.mu.RUnlock()

	that.mu.RLock()
	that.byStart.Ascend(func(r *ValidData[W, T]) bool {
		intervals = append(intervals, r.Interval)
		return true
	})
	that.mu.RUnlock()

	out := NewStore[ZipPair[V, W], T](ws)
	for _, piece := range uniqueIntervalsN(ws, intervals) {
		thisVal, thisOK := firstValueCovering(this, piece)
		thatVal, thatOK := firstValueCovering(that, piece)

		switch {
		case thisOK && thatOK:
			out.AddValidData(ValidData[ZipPair[V, W], T]{Interval: piece, Value: ZipPair[V, W]{First: thisVal, Second: thatVal}})
		case thisOK && thatElem != nil:
			out.AddValidData(ValidData[ZipPair[V, W], T]{Interval: piece, Value: ZipPair[V, W]{First: thisVal, Second: *thatElem}})
		case thatOK && thisElem != nil:
			out.AddValidData(ValidData[ZipPair[V, W], T]{Interval: piece, Value: ZipPair[V, W]{First: *thisElem, Second: thatVal}})
		}
	}
	out.CompressAll()
	return out
}

// firstValueCovering returns the value of whichever record of s covers
// piece, if any. Because piece comes from uniqueIntervalsN over the union
// of both stores' (each internally disjoint) interval sets, at most one
// record of s can intersect it, and it always intersects it fully.
func firstValueCovering[V any, T any](s *Store[V, T], piece IntervalN[T]) (V, bool) {
	recs := s.GetIntersecting(piece)
	if len(recs) == 0 {
		var zero V
		return zero, false
	}
	return recs[0].Value, true
}
