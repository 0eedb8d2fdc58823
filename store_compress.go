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

// uniqueIntervalsN reduces a set of (possibly overlapping, possibly
// duplicate) intervals to a disjoint set covering the same area: it
// repeatedly finds any overlapping pair, tiles both against each other with
// SeparateUsingN, dedupes the shared intersection piece, and continues
// until no two remaining intervals overlap. Used by Fill (to compute gaps
// against several existing records at once) and RecompressInPlace (to
// repair a value group that was populated out of canonical form).
func uniqueIntervalsN[T any](ws Witnesses[T], intervals []IntervalN[T]) []IntervalN[T] {
	out := append([]IntervalN[T]{}, intervals...)
	for {
		progressed := false
		for i := 0; i < len(out) && !progressed; i++ {
			for j := i + 1; j < len(out) && !progressed; j++ {
				a, b := out[i], out[j]
				if EqualN(ws, a.Start, b.Start) && EqualN(ws, a.End, b.End) {
					out = append(out[:j], out[j+1:]...)
					progressed = true
					break
				}
				ix, ok := IntersectionWithN(ws, a, b)
				if !ok {
					continue
				}
				var replacement []IntervalN[T]
				for _, piece := range SeparateUsingN(ws, a, b) {
					replacement = append(replacement, piece)
				}
				for _, piece := range SeparateUsingN(ws, b, a) {
					if EqualN(ws, piece.Start, ix.Start) && EqualN(ws, piece.End, ix.End) {
						continue
					}
					replacement = append(replacement, piece)
				}
				out[i] = replacement[0]
				out = append(out[:j], out[j+1:]...)
				out = append(out, replacement[1:]...)
				progressed = true
			}
		}
		if !progressed {
			return out
		}
	}
}
