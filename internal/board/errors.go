/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package board

import (
	"errors"
	"fmt"
)

// Kind classifies the failure modes of topology operations. Precondition
// failures are signaled before any shared state is mutated wherever
// structurally possible; where a multi-step operation must partially
// execute first, its rollback guard restores the pre-execution state before
// the error reaches the caller.
type Kind int

const (
	// InvalidPrecondition covers argument and state preconditions not
	// covered by a more specific kind.
	InvalidPrecondition Kind = iota + 1
	// UnconnectedPad means a footprint pad has no resolved net signal and
	// therefore cannot be connected.
	UnconnectedPad
	// NoNetSignal means a via's net signal cannot be determined.
	NoNetSignal
	// NothingAtPosition means no point, via, pad or trace exists at the
	// requested position; a point cannot be created in isolation.
	NothingAtPosition
	// NotImplemented is reserved for genuinely unsupported topologies,
	// e.g. multiple overlapping vias at one position.
	NotImplemented
	// NetSignalMismatch means two segments bound to different net signals
	// were asked to combine.
	NetSignalMismatch
)

func (k Kind) String() string {
	switch k {
	case InvalidPrecondition:
		return "invalid precondition"
	case UnconnectedPad:
		return "unconnected pad"
	case NoNetSignal:
		return "no net signal"
	case NothingAtPosition:
		return "nothing at position"
	case NotImplemented:
		return "not implemented"
	case NetSignalMismatch:
		return "net signal mismatch"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// OperationError is a user-recoverable failure of a topology operation. The
// editor layer is responsible for user-facing messaging.
type OperationError struct {
	Kind Kind
	Msg  string
}

func (e *OperationError) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Errorf builds an OperationError of the given kind.
func Errorf(kind Kind, format string, args ...any) error {
	return &OperationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err if it is (or wraps) an OperationError,
// zero otherwise.
func KindOf(err error) Kind {
	var oe *OperationError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return 0
}

// IsKind reports whether err is an OperationError of the given kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
