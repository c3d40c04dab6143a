/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package undo implements the transactional command layer of the editor:
// atomic reversible commands, composite command groups with rollback on
// partial failure, and the per-document history stack.
package undo

import "fmt"

// State is the life cycle position of a command.
type State int

const (
	// StateCreated means the command has never been executed.
	StateCreated State = iota
	// StateExecuted means the command's effect is currently applied.
	StateExecuted
	// StateUndone means the command was executed and then reverted.
	StateUndone
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateExecuted:
		return "executed"
	case StateUndone:
		return "undone"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Command is one atomic, reversible mutation with a human-readable label.
//
// Execute performs the mutation once; it reports whether an observable
// change was made (no-op commands are discarded by callers and never reach
// the history). Undo reverses exactly the effect of the last Execute/Redo;
// Redo re-applies after an Undo. Undo and Redo operate on state the command
// itself produced, so a failure there is an InvariantError, not a
// user-recoverable condition.
type Command interface {
	Description() string
	State() State
	WasEverExecuted() bool
	Execute() (changed bool, err error)
	Undo() error
	Redo() error
}

// Performer holds the three mutation phases of a concrete command, free of
// any state bookkeeping. Concrete commands embed Base and pass themselves as
// the Performer; Base drives the life cycle and delegates the actual work.
type Performer interface {
	// PerformExecute applies the mutation for the first time and reports
	// whether anything observable changed.
	PerformExecute() (bool, error)
	// PerformUndo reverses the applied mutation.
	PerformUndo() error
	// PerformRedo re-applies the mutation after an undo. State shape is
	// known to match what PerformExecute left behind, so preconditions
	// need not be re-validated.
	PerformRedo() error
}

// Base provides the command state machine shared by all commands. It must
// be initialized with Init before use.
type Base struct {
	desc    string
	perform Performer
	state   State
	ever    bool
}

// Init wires the base to its performer. The performer is typically the
// struct embedding the Base.
func (b *Base) Init(desc string, p Performer) {
	b.desc = desc
	b.perform = p
}

// Description returns the one-line label shown in the history UI.
func (b *Base) Description() string { return b.desc }

// State returns the current life cycle state.
func (b *Base) State() State { return b.state }

// WasEverExecuted reports whether Execute has ever been run. Once true, the
// command must not be reconfigured.
func (b *Base) WasEverExecuted() bool { return b.ever }

// Execute runs the command for the first time. Executing twice without an
// intervening Undo is an invariant violation.
func (b *Base) Execute() (bool, error) {
	if b.state != StateCreated || b.ever {
		return false, Invariantf("execute %q in state %s", b.desc, b.state)
	}
	changed, err := b.perform.PerformExecute()
	if err != nil {
		// The performer is responsible for leaving no observable
		// change behind on the failure path; the command stays
		// unexecuted and is discarded by the caller.
		return false, err
	}
	b.ever = true
	b.state = StateExecuted
	return changed, nil
}

// Undo reverses the command. Valid only in the executed state.
func (b *Base) Undo() error {
	if b.state != StateExecuted {
		return Invariantf("undo %q in state %s", b.desc, b.state)
	}
	if err := b.perform.PerformUndo(); err != nil {
		return Invariantf("undo %q failed: %v", b.desc, err)
	}
	b.state = StateUndone
	return nil
}

// Redo re-applies the command after an Undo.
func (b *Base) Redo() error {
	if b.state != StateUndone {
		return Invariantf("redo %q in state %s", b.desc, b.state)
	}
	if err := b.perform.PerformRedo(); err != nil {
		return Invariantf("redo %q failed: %v", b.desc, err)
	}
	b.state = StateExecuted
	return nil
}
