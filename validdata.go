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

import "fmt"

// ValidData is a (interval, value) pair: the unit of storage in a
// dimensional store. Its key, for indexing purposes, is Interval.Start.
type ValidData[V any, T any] struct {
	Interval IntervalN[T]
	Value    V
}

func (d ValidData[V, T]) String() string {
	return fmt.Sprintf("%s -> %v", d.Interval, d.Value)
}

// Key returns the record's identity: its interval's start tuple.
func (d ValidData[V, T]) Key() DomainN[T] { return d.Interval.Start }
