/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package boardcmd

import (
	"goboardeditor/internal/board"
	"goboardeditor/internal/undo"
)

// SegmentRemove takes a net segment (with all its elements) off the board.
// Undo puts it back unchanged.
type SegmentRemove struct {
	undo.Base
	board   *board.Board
	segment *board.NetSegment
}

// NewSegmentRemove creates the command.
func NewSegmentRemove(s *board.NetSegment) *SegmentRemove {
	c := &SegmentRemove{board: s.Board(), segment: s}
	c.Init("Remove net segment", c)
	return c
}

// PerformExecute implements undo.Performer.
func (c *SegmentRemove) PerformExecute() (bool, error) {
	if err := c.board.RemoveSegment(c.segment); err != nil {
		return false, err
	}
	return true, nil
}

// PerformUndo implements undo.Performer.
func (c *SegmentRemove) PerformUndo() error { return c.board.AddSegment(c.segment) }

// PerformRedo implements undo.Performer.
func (c *SegmentRemove) PerformRedo() error { return c.board.RemoveSegment(c.segment) }
