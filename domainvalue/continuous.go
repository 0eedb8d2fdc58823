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
	"math"
	"time"
)

// Date is the DomainValueLike witness for calendar dates (the LocalDate
// adapter): discrete, stepping one day at a time. Times-of-day are
// truncated away by the caller before values reach the witness.
type Date struct {
	Min time.Time
	Max time.Time
}

func NewDate(min, max time.Time) Date {
	return Date{Min: min.Truncate(24 * time.Hour), Max: max.Truncate(24 * time.Hour)}
}

func (w Date) Compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func (w Date) MinValue() time.Time { return w.Min }
func (w Date) MaxValue() time.Time { return w.Max }

func (w Date) OrderedHash(v time.Time) float64 { return float64(v.Unix()) }
func (w Date) BracePunctuation() string        { return ".." }
func (w Date) Discrete() bool                  { return true }

func (w Date) SuccessorOf(v time.Time) (time.Time, bool) {
	if !v.Before(w.Max) {
		return time.Time{}, false
	}
	return v.AddDate(0, 0, 1), true
}

func (w Date) PredecessorOf(v time.Time) (time.Time, bool) {
	if !v.After(w.Min) {
		return time.Time{}, false
	}
	return v.AddDate(0, 0, -1), true
}

// Double is the DomainValueLike witness for continuous float64-valued
// dimensions. It has no successor/predecessor: OpenPoint construction is
// legal against this witness.
type Double struct {
	Min float64
	Max float64
}

func NewDouble(min, max float64) Double { return Double{Min: min, Max: max} }

func DefaultDouble() Double { return Double{Min: -math.MaxFloat64 / 2, Max: math.MaxFloat64 / 2} }

func (w Double) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (w Double) MinValue() float64           { return w.Min }
func (w Double) MaxValue() float64           { return w.Max }
func (w Double) OrderedHash(v float64) float64 { return v }
func (w Double) BracePunctuation() string    { return "," }
func (w Double) Discrete() bool              { return false }
func (w Double) SuccessorOf(float64) (float64, bool)   { return 0, false }
func (w Double) PredecessorOf(float64) (float64, bool) { return 0, false }

// DateTime is the DomainValueLike witness for continuous timestamp-valued
// dimensions (LocalDateTime in the source material).
type DateTime struct {
	Min time.Time
	Max time.Time
}

func NewDateTime(min, max time.Time) DateTime { return DateTime{Min: min, Max: max} }

func (w DateTime) Compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func (w DateTime) MinValue() time.Time { return w.Min }
func (w DateTime) MaxValue() time.Time { return w.Max }

func (w DateTime) OrderedHash(v time.Time) float64 {
	return float64(v.UnixNano()) / float64(time.Second)
}

func (w DateTime) BracePunctuation() string { return "," }
func (w DateTime) Discrete() bool           { return false }
func (w DateTime) SuccessorOf(time.Time) (time.Time, bool)   { return time.Time{}, false }
func (w DateTime) PredecessorOf(time.Time) (time.Time, bool) { return time.Time{}, false }
