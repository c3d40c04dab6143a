/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import (
	"errors"
	"fmt"
)

// InvariantError indicates a programming error in command sequencing or an
// unreversible model state: undo/redo called in the wrong life cycle state,
// or an undo that could not restore what execute created. It is never
// caught and recovered from inside the core; the operation must be aborted.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string { return "invariant violation: " + e.msg }

// Invariantf builds an InvariantError.
func Invariantf(format string, args ...any) error {
	return &InvariantError{msg: fmt.Sprintf(format, args...)}
}

// IsInvariant reports whether err is (or wraps) an InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// ErrNothingToUndo is returned by Stack.Undo when the history is at its
// beginning.
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrNothingToRedo is returned by Stack.Redo when the history is at its end.
var ErrNothingToRedo = errors.New("nothing to redo")

// ErrCommandActive is returned when an operation is attempted while another
// command is still executing.
var ErrCommandActive = errors.New("another command is active")
