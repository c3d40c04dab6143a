/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package editor

import (
	"goboardeditor/internal/board"
	"goboardeditor/internal/board/boardcmd"
	"goboardeditor/internal/undo"
)

// CombineNetPointsCmd merges two coincident net points of the same
// segment: every line of the removed point is rewired onto the surviving
// point (lines directly between the two are dropped), then the removed
// point is deleted. If the removed point was anchored to a pad or via, the
// anchor is transferred to the survivor; combining two anchored points is
// unsupported.
type CombineNetPointsCmd struct {
	undo.Group
	toRemove *board.NetPoint
	result   *board.NetPoint
}

// NewCombineNetPointsCmd creates the command; result survives.
func NewCombineNetPointsCmd(toRemove, result *board.NetPoint) *CombineNetPointsCmd {
	c := &CombineNetPointsCmd{toRemove: toRemove, result: result}
	c.InitGroup("Combine net points", c)
	return c
}

// PerformExecute implements undo.Performer.
func (c *CombineNetPointsCmd) PerformExecute() (bool, error) {
	done := false
	defer func() {
		if !done {
			c.Rollback()
		}
	}()

	if c.toRemove == c.result {
		return false, board.Errorf(board.InvalidPrecondition, "cannot combine a net point with itself")
	}
	if c.toRemove.Segment() != c.result.Segment() {
		return false, board.Errorf(board.InvalidPrecondition, "net points belong to different segments")
	}

	segment := c.result.Segment()
	cmdAdd := boardcmd.NewSegmentAddElements(segment)
	cmdRemove := boardcmd.NewSegmentRemoveElements(segment)
	for _, line := range c.toRemove.Lines() {
		other := line.OtherPoint(c.toRemove)
		cmdRemove.RemoveNetLine(line)
		if other != c.result {
			cmdAdd.AddNetLine(c.result, other, line.Width())
		}
	}
	cmdRemove.RemoveNetPoint(c.toRemove)
	if err := c.ExecNewChild(cmdAdd); err != nil {
		return false, err
	}
	if err := c.ExecNewChild(cmdRemove); err != nil {
		return false, err
	}

	// Transfer a via/pad anchor of the removed point onto the survivor.
	// The anchor registration lives at board level, so the segment is
	// taken off the board around the re-anchoring edit.
	if pad := c.toRemove.Pad(); pad != nil {
		if c.result.IsAttached() {
			return false, board.Errorf(board.InvalidPrecondition, "cannot combine two net points that are both anchored")
		}
		if err := c.transferAnchor(nil, pad); err != nil {
			return false, err
		}
	} else if via := c.toRemove.Via(); via != nil {
		if c.result.IsAttached() {
			return false, board.Errorf(board.InvalidPrecondition, "cannot combine two net points that are both anchored")
		}
		if err := c.transferAnchor(via, nil); err != nil {
			return false, err
		}
	}

	done = true
	return true, nil
}

func (c *CombineNetPointsCmd) transferAnchor(via *board.Via, pad *board.FootprintPad) error {
	segment := c.result.Segment()
	if err := c.ExecNewChild(boardcmd.NewSegmentRemove(segment)); err != nil {
		return err
	}
	edit := boardcmd.NewNetPointEdit(c.result)
	if pad != nil {
		edit.SetPadToAttach(pad)
	} else {
		edit.SetViaToAttach(via)
	}
	if err := c.ExecNewChild(edit); err != nil {
		return err
	}
	return c.ExecNewChild(boardcmd.NewSegmentReAdd(segment))
}
