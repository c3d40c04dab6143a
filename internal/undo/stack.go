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
	"log/slog"
	"sync"

	applog "goboardeditor/internal/log"
)

// Stack is the per-document linear history of executed top-level commands.
// It tracks a clean checkpoint (the last persisted position) and an
// advisory "command active" flag that cooperating background tasks such as
// autosave consult to defer work while an edit is in flight.
//
// The stack is owned by the document/session and passed explicitly to every
// editing operation; it is not a process-wide singleton.
type Stack struct {
	mu       sync.Mutex
	cmds     []Command
	pos      int // number of commands currently applied; next redo index
	cleanIdx int // position recorded by SetClean, -1 if unreachable
	active   bool

	log *slog.Logger
}

// NewStack creates an empty history. A fresh stack is clean.
func NewStack() *Stack {
	return &Stack{log: applog.WithComponent("undo")}
}

// Execute runs cmd and appends it to the history if it made an observable
// change. Commands reporting no change are discarded and leave the stack
// untouched. Any redo tail beyond the current position is truncated.
func (s *Stack) Execute(cmd Command) error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return ErrCommandActive
	}
	s.active = true
	s.mu.Unlock()

	changed, err := cmd.Execute()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	if err != nil {
		return err
	}
	if !changed {
		s.log.Debug("discarding no-op command", slog.String("cmd", cmd.Description()))
		return nil
	}
	s.cmds = s.cmds[:s.pos]
	if s.cleanIdx > s.pos {
		// The clean state sat in the discarded redo tail and can no
		// longer be reached by undo/redo.
		s.cleanIdx = -1
	}
	s.cmds = append(s.cmds, cmd)
	s.pos++
	s.log.Debug("executed", slog.String("cmd", cmd.Description()), slog.Int("pos", s.pos))
	return nil
}

// Undo reverts the command at the current position.
func (s *Stack) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return ErrCommandActive
	}
	if s.pos == 0 {
		return ErrNothingToUndo
	}
	if err := s.cmds[s.pos-1].Undo(); err != nil {
		return err
	}
	s.pos--
	return nil
}

// Redo re-applies the next undone command.
func (s *Stack) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return ErrCommandActive
	}
	if s.pos >= len(s.cmds) {
		return ErrNothingToRedo
	}
	if err := s.cmds[s.pos].Redo(); err != nil {
		return err
	}
	s.pos++
	return nil
}

// CanUndo reports whether there is a command to undo.
func (s *Stack) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos > 0
}

// CanRedo reports whether there is a command to redo.
func (s *Stack) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos < len(s.cmds)
}

// UndoText returns the label of the command Undo would revert, or "".
func (s *Stack) UndoText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos == 0 {
		return ""
	}
	return s.cmds[s.pos-1].Description()
}

// RedoText returns the label of the command Redo would re-apply, or "".
func (s *Stack) RedoText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.cmds) {
		return ""
	}
	return s.cmds[s.pos].Description()
}

// IsClean reports whether the current position equals the last persisted
// checkpoint.
func (s *Stack) IsClean() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos == s.cleanIdx
}

// SetClean records the current position as the save checkpoint. Call after
// a successful persist.
func (s *Stack) SetClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanIdx = s.pos
}

// IsCommandActive reports whether an Execute call is currently in progress.
// Background tasks use this to defer rather than interleave with an edit.
func (s *Stack) IsCommandActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Len returns the number of commands in the history.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cmds)
}
