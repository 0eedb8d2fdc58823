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

// Package versioned layers a hidden integer "version" dimension over an
// intervalidus.Store, giving every record a history: current, staged but
// unapproved, or pinned to one specific version (spec §4.3). It never
// exposes the extra dimension to callers — every public method takes and
// returns base-space (n-D) intervals and domains only.
package versioned

import (
	"math"
	"sync"

	intervalidus "github.com/contriboss/intervalidus-go"
	"github.com/contriboss/intervalidus-go/domainvalue"
	"github.com/RoaringBitmap/roaring"
)

// unapprovedStartVersion is the sentinel version number reserved for
// staged-but-unapproved writes: math.MaxInt32, comfortably inside Go's int
// range on every supported platform while still leaving room above
// initialVersion for ordinary version growth.
const unapprovedStartVersion = math.MaxInt32

const initialVersion = 0

// Store wraps an (n+1)-dimensional intervalidus.Store whose last dimension
// is the hidden version. V is the stored value type; the n base dimensions
// all share coordinate type int, matching this module's single-witness
// domain1d convention for composite coordinates.
type Store[V any] struct {
	mu sync.Mutex

	baseWitnesses  intervalidus.Witnesses[int]
	versionWitness domainvalue.Int
	ws             intervalidus.Witnesses[int]

	currentVersion int

	inner *intervalidus.Store[V, int]
}

// New builds an empty versioned store over baseWitnesses, one per base
// dimension. currentVersion starts at initialVersion (0).
func New[V any](baseWitnesses intervalidus.Witnesses[int], opts ...intervalidus.StoreOption[V, int]) *Store[V] {
	versionWitness := domainvalue.NewInt(0, unapprovedStartVersion)
	ws := append(intervalidus.Witnesses[int]{}, baseWitnesses...)
	ws = append(ws, versionWitness)
	return &Store[V]{
		baseWitnesses:  append(intervalidus.Witnesses[int]{}, baseWitnesses...),
		versionWitness: versionWitness,
		ws:             ws,
		currentVersion: initialVersion,
		inner:          intervalidus.NewStore[V, int](ws, opts...),
	}
}

func (s *Store[V]) baseDims() int { return len(s.baseWitnesses) }

func (s *Store[V]) composeDomain(point intervalidus.DomainN[int], version int) intervalidus.DomainN[int] {
	out := make(intervalidus.DomainN[int], 0, s.baseDims()+1)
	out = append(out, point...)
	out = append(out, intervalidus.Point1D(version))
	return out
}

func (s *Store[V]) composeInterval(base intervalidus.IntervalN[int], versionStart, versionEnd intervalidus.Domain1D[int]) intervalidus.IntervalN[int] {
	start := make(intervalidus.DomainN[int], 0, s.baseDims()+1)
	start = append(start, base.Start...)
	start = append(start, versionStart)
	end := make(intervalidus.DomainN[int], 0, s.baseDims()+1)
	end = append(end, base.End...)
	end = append(end, versionEnd)
	return intervalidus.IntervalN[int]{Start: start, End: end}
}

func (s *Store[V]) stripVersion(composite intervalidus.IntervalN[int]) intervalidus.IntervalN[int] {
	n := s.baseDims()
	return intervalidus.IntervalN[int]{
		Start: append(intervalidus.DomainN[int]{}, composite.Start[:n]...),
		End:   append(intervalidus.DomainN[int]{}, composite.End[:n]...),
	}
}

// intervalAt is the "reads" helper from spec §4.3.2: a single version point.
func (s *Store[V]) intervalAt(base intervalidus.IntervalN[int], boundary int) intervalidus.IntervalN[int] {
	return s.composeInterval(base, intervalidus.Point1D(boundary), intervalidus.Point1D(boundary))
}

// intervalFrom is the "writes" helper: version range [boundary, Top].
func (s *Store[V]) intervalFrom(base intervalidus.IntervalN[int], boundary int) intervalidus.IntervalN[int] {
	return s.composeInterval(base, intervalidus.Point1D(boundary), intervalidus.Top1D[int]())
}

// intervalTo is used by ResetToVersion: version range [Bottom, boundary].
func (s *Store[V]) intervalTo(base intervalidus.IntervalN[int], boundary int) intervalidus.IntervalN[int] {
	return s.composeInterval(base, intervalidus.Bottom1D[int](), intervalidus.Point1D(boundary))
}

func (s *Store[V]) boundary(sel VersionSelection) int {
	return sel.boundary(s.currentVersion, unapprovedStartVersion)
}

// Get reads the value valid at point under sel.
func (s *Store[V]) Get(sel VersionSelection, point intervalidus.DomainN[int]) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(s.composeDomain(point, s.boundary(sel)))
}

// GetIntersecting returns the base-space records intersecting interval at
// sel's resolved version point.
func (s *Store[V]) GetIntersecting(sel VersionSelection, interval intervalidus.IntervalN[int]) []intervalidus.ValidData[V, int] {
	s.mu.Lock()
	defer s.mu.Unlock()
	composite := s.intervalAt(interval, s.boundary(sel))
	matches := s.inner.GetIntersecting(composite)
	out := make([]intervalidus.ValidData[V, int], len(matches))
	for i, m := range matches {
		out[i] = intervalidus.ValidData[V, int]{Interval: s.stripVersion(m.Interval), Value: m.Value}
	}
	return out
}

// Set writes value over interval, visible from sel's resolved version
// onward (spec §4.3.2: writes use intervalFrom(boundary)).
func (s *Store[V]) Set(sel VersionSelection, interval intervalidus.IntervalN[int], value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	composite := s.intervalFrom(interval, s.boundary(sel))
	s.inner.Set(intervalidus.ValidData[V, int]{Interval: composite, Value: value})
}

// Remove deletes interval's coverage from sel's resolved version onward.
func (s *Store[V]) Remove(sel VersionSelection, interval intervalidus.IntervalN[int]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Remove(s.intervalFrom(interval, s.boundary(sel)))
}

// Update applies updater to interval's coverage from sel's resolved version
// onward.
func (s *Store[V]) Update(sel VersionSelection, interval intervalidus.IntervalN[int], updater func(V) V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Update(s.intervalFrom(interval, s.boundary(sel)), updater)
}

// CurrentVersion reports the store's current version number.
func (s *Store[V]) CurrentVersion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentVersion
}

// SetCurrentVersion pins currentVersion to v.
func (s *Store[V]) SetCurrentVersion(v int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v < initialVersion {
		return wrapWithStack(&VersionTooSmallError{Requested: v})
	}
	if v >= unapprovedStartVersion {
		return wrapWithStack(&VersionTooLargeError{Requested: v, Sentinel: unapprovedStartVersion})
	}
	s.currentVersion = v
	return nil
}

// IncrementCurrentVersion advances currentVersion by one and returns the
// new value, failing if doing so would collide with the unapproved
// sentinel.
func (s *Store[V]) IncrementCurrentVersion() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := intervalidus.RightAdjacent1D[int](s.versionWitness, intervalidus.Point1D(s.currentVersion))
	if v, ok := next.Value(); !ok || v == unapprovedStartVersion {
		return s.currentVersion, wrapWithStack(&OutOfVersionsError{CurrentVersion: s.currentVersion})
	}
	s.currentVersion++
	return s.currentVersion, nil
}

// ResetToVersion keeps only records whose version interval intersects
// [Bottom, v], clamps any record ending after v to end at Top, sets
// currentVersion to v, and recompresses.
func (s *Store[V]) ResetToVersion(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keep := s.inner.GetIntersecting(s.intervalTo(unboundedBase(s.baseWitnesses), v))

	for _, rec := range s.inner.GetAll() {
		s.inner.RemoveValidDataByKey(rec.Interval.Start)
	}
	for _, rec := range keep {
		versionEnd := rec.Interval.End[s.baseDims()]
		if val, ok := versionEnd.Value(); ok && val > v {
			rec.Interval.End[s.baseDims()] = intervalidus.Top1D[int]()
		}
		s.inner.AddValidData(rec)
	}
	s.currentVersion = v
	s.inner.CompressAll()
}

func unboundedBase(ws intervalidus.Witnesses[int]) intervalidus.IntervalN[int] {
	start := make(intervalidus.DomainN[int], len(ws))
	end := make(intervalidus.DomainN[int], len(ws))
	for i := range ws {
		start[i] = intervalidus.Bottom1D[int]()
		end[i] = intervalidus.Top1D[int]()
	}
	return intervalidus.IntervalN[int]{Start: start, End: end}
}

// Approve promotes every unapproved (staged) record intersecting interval
// into the approved history ending at Top, at the current version, failing
// if any promoted piece would conflict with an already-approved record
// covering the same base interval.
func (s *Store[V]) Approve(interval intervalidus.IntervalN[int]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.approveLocked(interval)
}

// ApproveAll approves every currently staged record.
func (s *Store[V]) ApproveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.approveLocked(unboundedBase(s.baseWitnesses))
}

func (s *Store[V]) approveLocked(interval intervalidus.IntervalN[int]) error {
	staged := s.inner.GetIntersecting(s.intervalAt(interval, unapprovedStartVersion))
	for _, rec := range staged {
		base := s.stripVersion(rec.Interval)
		approvedAt := s.intervalAt(base, s.currentVersion)
		if s.inner.Intersects(approvedAt) {
			for _, existing := range s.inner.GetIntersecting(approvedAt) {
				existingBase := s.stripVersion(existing.Interval)
				if existingBase.HasSameStartAs(s.baseWitnesses, base) {
					return wrapWithStack(&ApprovalConflictError{Reason: "an approved record already covers " + base.String()})
				}
			}
		}
		s.inner.Set(intervalidus.ValidData[V, int]{
			Interval: s.intervalFrom(base, s.currentVersion),
			Value:    rec.Value,
		})
	}
	return nil
}

// CollapseVersionHistory reconstructs the store's current slice as a single
// version spanning [initialVersion, Top], discarding all other history.
func (s *Store[V]) CollapseVersionHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.inner.GetIntersecting(s.intervalAt(unboundedBase(s.baseWitnesses), s.currentVersion))
	for _, rec := range s.inner.GetAll() {
		s.inner.RemoveValidDataByKey(rec.Interval.Start)
	}
	for _, rec := range current {
		s.inner.AddValidData(intervalidus.ValidData[V, int]{
			Interval: s.composeInterval(s.stripVersion(rec.Interval), intervalidus.Point1D(initialVersion), intervalidus.Top1D[int]()),
			Value:    rec.Value,
		})
	}
	s.currentVersion = initialVersion
	s.inner.CompressAll()
}

// SyncWith replays the diff from that onto s, bringing s's composite
// (base + version) state to match that's: that is the "new" side of the
// diff and s the "old" side being brought up to date, so any data that
// exists only in that reaches s and any data that exists only in s is
// deleted.
func (s *Store[V]) SyncWith(that *Store[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	that.mu.Lock()
	defer that.mu.Unlock()
	s.inner.ApplyDiffActions(that.inner.DiffActionsFrom(s.inner))
}

// UsedVersions returns the set of version numbers with at least one record
// starting at that version, as a roaring bitmap — a diagnostic for spotting
// version-space fragmentation after many increment/reset cycles.
func (s *Store[V]) UsedVersions() *roaring.Bitmap {
	s.mu.Lock()
	defer s.mu.Unlock()
	bm := roaring.New()
	for _, rec := range s.inner.GetAll() {
		if v, ok := rec.Interval.Start[s.baseDims()].Value(); ok {
			bm.Add(uint32(v))
		}
	}
	return bm
}
