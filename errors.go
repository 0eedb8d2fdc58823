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

// NotDefinedError is returned by Store.Apply when no record covers the
// requested domain point. Store.Get returns the same situation as an
// (zero, false) pair rather than an error; NotDefinedError exists for
// callers that want a checked-error idiom instead.
type NotDefinedError[T any] struct {
	At DomainN[T]
}

func (e *NotDefinedError[T]) Error() string {
	return fmt.Sprintf("not defined at %s", e.At)
}

// InvalidIntervalError is returned by interval constructors when the
// requested start/end pair violates the bounds rules in spec §3.4: start
// must precede end under start-ordering, unless both are the same closed
// point, and (Top, Top) / (Bottom, Bottom) are always invalid.
type InvalidIntervalError struct {
	Reason string
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: %s", e.Reason)
}

// CapabilityError is returned when an operation is attempted against a
// witness that does not support it, e.g. constructing an OpenPoint against
// a discrete DomainValueLike.
type CapabilityError struct {
	Operation string
	Reason    string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Reason)
}

// invariantViolation panics with a message naming the broken invariant.
// Per spec §4.2.9/§7, invariant violations during mutation indicate a bug
// in the store's own engine, not a caller error; they are not recoverable
// and must not be silently absorbed, so they panic instead of returning an
// error that a caller might reasonably retry or ignore.
func invariantViolation(format string, args ...any) {
	panic(fmt.Sprintf("intervalidus: invariant violation: "+format, args...))
}
