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

// Package domainvalue supplies the DomainValueLike capability that the
// intervalidus core consumes to order, hash and (for discrete types) step
// through the values a dimension ranges over. None of the algebra in the
// intervalidus package depends on a concrete adapter here: this package is
// an external collaborator, wired in only through the interface.
//
// Built-in adapters cover the types the test suite is required to exercise:
// Int, Long, BigInt, Date (discrete), Double, DateTime (continuous), and an
// index-sequenced Enum. Pair combines two witnesses into one, which is how
// intervalidus models a dimension whose coordinate is itself a product of
// two different underlying types (see SPEC_FULL.md's note on why dimensions
// share a single type parameter T).
package domainvalue

// DomainValueLike is the capability the core algebra needs from a
// dimension's coordinate type: a total order, finite bounds, a monotone
// hash for spatial indexing, and (for discrete types only) successor and
// predecessor. Continuous adapters implement SuccessorOf/PredecessorOf as
// permanently absent (ok == false) and report Discrete() == false; the
// core treats that as a capability boundary, not an error, except when a
// caller explicitly asks to build an OpenPoint on a discrete witness
// (see intervalidus.OpenPoint1D), which fails fast.
//
// Example custom witness:
//
//	type DateValue time.Time
//
//	type dateWitness struct{}
//
//	func (dateWitness) Compare(a, b time.Time) int { return a.Compare(b) }
//	func (dateWitness) MinValue() time.Time         { return time.Unix(0, 0) }
//	func (dateWitness) MaxValue() time.Time         { return time.Unix(1<<62, 0) }
//	func (dateWitness) OrderedHash(v time.Time) float64 { return float64(v.Unix()) }
//	func (dateWitness) BracePunctuation() string    { return ".." }
//	func (dateWitness) Discrete() bool              { return true }
//	func (dateWitness) SuccessorOf(v time.Time) (time.Time, bool) { ... }
//	func (dateWitness) PredecessorOf(v time.Time) (time.Time, bool) { ... }
type DomainValueLike[T any] interface {
	// Compare returns negative/zero/positive as a < b, a == b, a > b.
	Compare(a, b T) int

	// MinValue and MaxValue bound the finite range of T.
	MinValue() T
	MaxValue() T

	// OrderedHash maps v onto a float64 in a way that is monotone with
	// Compare. Collisions are allowed; they only degrade spatial index
	// selectivity, never correctness (store code always re-validates
	// candidates with a real Compare-based intersects check).
	OrderedHash(v T) float64

	// BracePunctuation names the separator used between open and closed
	// endpoints when rendering an interval: ".." for discrete domains,
	// "," for continuous ones (matching conventional range notation like
	// "[1..5]" vs "(1.0,5.0]").
	BracePunctuation() string

	// Discrete reports whether this witness supports SuccessorOf and
	// PredecessorOf. A continuous witness returns false and its
	// SuccessorOf/PredecessorOf always report ok=false.
	Discrete() bool

	// SuccessorOf and PredecessorOf are defined only strictly inside
	// [MinValue, MaxValue]; at either boundary, or for any continuous
	// witness, ok is false.
	SuccessorOf(v T) (next T, ok bool)
	PredecessorOf(v T) (prev T, ok bool)
}
