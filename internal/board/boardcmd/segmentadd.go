/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package boardcmd contains the single-element undoable commands on the
// board topology model. The editing algorithms in internal/editor compose
// these into command groups; nothing mutates segments outside of them.
package boardcmd

import (
	"goboardeditor/internal/board"
	"goboardeditor/internal/undo"
)

// SegmentAdd adds a net segment to the board. With NewSegmentAdd a fresh
// empty segment bound to the given signal is created; with NewSegmentReAdd
// an existing detached segment (including its elements) is put back.
type SegmentAdd struct {
	undo.Base
	board   *board.Board
	segment *board.NetSegment
}

// NewSegmentAdd creates a command that adds a brand-new empty segment
// bound to signal.
func NewSegmentAdd(b *board.Board, signal *board.NetSignal) *SegmentAdd {
	c := &SegmentAdd{board: b, segment: board.NewNetSegment(b, signal)}
	c.Init("Add net segment", c)
	return c
}

// NewSegmentReAdd creates a command that puts an existing detached segment
// back onto its board.
func NewSegmentReAdd(s *board.NetSegment) *SegmentAdd {
	c := &SegmentAdd{board: s.Board(), segment: s}
	c.Init("Add net segment", c)
	return c
}

// Segment returns the segment this command adds.
func (c *SegmentAdd) Segment() *board.NetSegment { return c.segment }

// PerformExecute implements undo.Performer.
func (c *SegmentAdd) PerformExecute() (bool, error) {
	if err := c.board.AddSegment(c.segment); err != nil {
		return false, err
	}
	return true, nil
}

// PerformUndo implements undo.Performer.
func (c *SegmentAdd) PerformUndo() error { return c.board.RemoveSegment(c.segment) }

// PerformRedo implements undo.Performer.
func (c *SegmentAdd) PerformRedo() error { return c.board.AddSegment(c.segment) }
