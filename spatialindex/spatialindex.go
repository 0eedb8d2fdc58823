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

// Package spatialindex is the external collaborator the dimensional store
// consumes for fast bounding-box lookups (spec §6.2). A payload is
// anything the caller wants back out of Get/GetAt; the store hands it a
// *ValidData plus the box computed from that record's
// asCoordinateUnfixed start/end.
//
// Both candidate-returning methods are a superset filter: the boundary of
// the index is derived from ordered hashes, which are only monotone, not
// injective, so callers must re-check a real intersects/contains predicate
// against whatever comes back. This package's own implementations happen
// to return exact results, but the interface contract only promises a
// superset, as the Index method docs below state.
package spatialindex

// Box is an axis-aligned bounding box in hash space: Low[i] <= High[i] for
// every dimension i.
type Box struct {
	Low  []float64
	High []float64
}

// Item pairs a payload with the box it should be indexed under.
type Item[P any] struct {
	Payload P
	Box     Box
}

// Index is the capability a dimensional store needs from its spatial
// backing structure.
type Index[P any] interface {
	Add(payload P, box Box)
	Remove(payload P, box Box)
	Clear()
	AddAll(items []Item[P])

	// Get returns a superset of the payloads whose box intersects box.
	Get(box Box) []P

	// GetAt returns a superset of the payloads whose box contains point.
	GetAt(point []float64) []P
}

func boxesOverlap(a, b Box) bool {
	for i := range a.Low {
		if a.High[i] < b.Low[i] || b.High[i] < a.Low[i] {
			return false
		}
	}
	return true
}

func boxContainsPoint(b Box, point []float64) bool {
	for i := range b.Low {
		if point[i] < b.Low[i] || point[i] > b.High[i] {
			return false
		}
	}
	return true
}
