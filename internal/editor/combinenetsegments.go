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

// CombineNetSegmentsCmd merges one net segment into another at a junction
// point. Both segments must be bound to the same net signal; that check
// happens strictly before the first child command executes, so a mismatch
// never needs a rollback. The segment to be removed must touch the
// junction position: an existing point there is used as the interception
// point, otherwise a trace through the position is split first. All points
// and lines are then re-owned into the junction's segment and the emptied
// segment is deleted.
type CombineNetSegmentsCmd struct {
	undo.Group
	toRemove *board.NetSegment
	junction *board.NetPoint
}

// NewCombineNetSegmentsCmd creates the command; junction belongs to the
// surviving segment.
func NewCombineNetSegmentsCmd(toRemove *board.NetSegment, junction *board.NetPoint) *CombineNetSegmentsCmd {
	c := &CombineNetSegmentsCmd{toRemove: toRemove, junction: junction}
	c.InitGroup("Combine net segments", c)
	return c
}

// PerformExecute implements undo.Performer.
func (c *CombineNetSegmentsCmd) PerformExecute() (bool, error) {
	done := false
	defer func() {
		if !done {
			c.Rollback()
		}
	}()

	survivor := c.junction.Segment()
	if c.toRemove == survivor {
		return false, board.Errorf(board.InvalidPrecondition, "cannot combine a net segment with itself")
	}
	if c.toRemove.NetSignal() != survivor.NetSignal() {
		return false, board.Errorf(board.NetSignalMismatch,
			"segment is bound to net %q, junction to net %q",
			c.toRemove.NetSignal().Name(), survivor.NetSignal().Name())
	}

	// Establish exactly one interception point on the segment to be
	// removed, at the junction position.
	var interception *board.NetPoint
	points := c.toRemove.NetPointsAt(c.junction.Position(), c.junction.Layer())
	switch {
	case len(points) == 0:
		lines := c.toRemove.NetLinesAt(c.junction.Position(), c.junction.Layer())
		if len(lines) == 0 {
			return false, board.Errorf(board.InvalidPrecondition,
				"segments do not touch at %s", c.junction.Position())
		}
		p, err := splitNetLineAt(&c.Group, lines[0], c.junction.Position())
		if err != nil {
			return false, err
		}
		interception = p
	case len(points) == 1:
		interception = points[0]
	default:
		// Coincident duplicates on the removed segment are merged into
		// one before re-owning.
		interception = points[0]
		for _, p := range points[1:] {
			if err := c.ExecNewChild(NewCombineNetPointsCmd(p, interception)); err != nil {
				return false, err
			}
		}
	}

	// Re-create every element of the removed segment inside the
	// survivor. The removed segment goes off the board first so its
	// via/pad anchors are free to be claimed by the new points.
	cmdAdd := boardcmd.NewSegmentAddElements(survivor)
	pointMap := make(map[*board.NetPoint]*board.NetPoint, len(c.toRemove.Points()))
	for _, p := range c.toRemove.Points() {
		switch {
		case p == interception:
			pointMap[p] = c.junction
		case p.IsAttachedToPad():
			pointMap[p] = cmdAdd.AddPadNetPoint(p.Pad())
		case p.IsAttachedToVia():
			pointMap[p] = cmdAdd.AddViaNetPoint(p.Layer(), p.Via())
		default:
			pointMap[p] = cmdAdd.AddNetPoint(p.Layer(), p.Position())
		}
	}
	for _, l := range c.toRemove.Lines() {
		cmdAdd.AddNetLine(pointMap[l.StartPoint()], pointMap[l.EndPoint()], l.Width())
	}
	if err := c.ExecNewChild(boardcmd.NewSegmentRemove(c.toRemove)); err != nil {
		return false, err
	}
	if err := c.ExecNewChild(cmdAdd); err != nil {
		return false, err
	}

	done = true
	return true, nil
}
