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

package versioned

import (
	"fmt"

	"github.com/pkg/errors"
)

// wrapWithStack attaches a stack trace to err via pkg/errors, used at the
// point a versioned-store operation fails so the caller's log line (see
// cmd/intervalidusdemo) can report where the failure originated without
// every call site constructing its own trace.
func wrapWithStack(err error) error {
	return errors.WithStack(err)
}

// VersionTooLargeError is returned by SetCurrentVersion when the requested
// version would reach or exceed unapprovedStartVersion, the sentinel
// reserved for staged-but-unapproved writes.
type VersionTooLargeError struct {
	Requested int
	Sentinel  int
}

func (e *VersionTooLargeError) Error() string {
	return fmt.Sprintf("version %d would reach the unapproved sentinel %d", e.Requested, e.Sentinel)
}

// VersionTooSmallError is returned by SetCurrentVersion when the requested
// version is below initialVersion.
type VersionTooSmallError struct {
	Requested int
}

func (e *VersionTooSmallError) Error() string {
	return fmt.Sprintf("version %d is below the initial version", e.Requested)
}

// OutOfVersionsError is returned by IncrementCurrentVersion when doing so
// would collide with the unapproved sentinel.
type OutOfVersionsError struct {
	CurrentVersion int
}

func (e *OutOfVersionsError) Error() string {
	return fmt.Sprintf("ran out of versions past %d", e.CurrentVersion)
}

// ApprovalConflictError is returned by Approve/ApproveAll when a staged,
// unapproved record cannot be promoted because an already-approved record
// occupies the same base interval.
type ApprovalConflictError struct {
	Reason string
}

func (e *ApprovalConflictError) Error() string {
	return fmt.Sprintf("approval conflict: %s", e.Reason)
}
