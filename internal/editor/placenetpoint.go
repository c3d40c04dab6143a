/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package editor implements the interactive net-topology editing
// operations as undoable command groups: placing a net point at an
// arbitrary board location and combining net segments or net points. The
// groups are built incrementally, each child command executed as it is
// appended, so the model is consistent at every intermediate step; a
// rollback guard restores the pre-execution state on any failure.
package editor

import (
	"goboardeditor/internal/board"
	"goboardeditor/internal/board/boardcmd"
	"goboardeditor/internal/geometry"
	"goboardeditor/internal/undo"
)

// PlaceNetPointCmd determines or creates the net point at a board
// position/layer. In strict priority order it reuses an existing net point,
// connects to a via, connects to a pad (creating a fresh segment), or
// splits a trace passing through the position. Empty space is a failure;
// seeding the first point of a new trace from a component pin is a
// different workflow.
type PlaceNetPointCmd struct {
	undo.Group
	board *board.Board
	scene board.Scene
	pos   geometry.Point
	layer geometry.Layer
	point *board.NetPoint
}

// NewPlaceNetPointCmd creates the command. scene supplies hit-testing; pass
// the board itself for exact-position semantics.
func NewPlaceNetPointCmd(b *board.Board, scene board.Scene, pos geometry.Point, layer geometry.Layer) *PlaceNetPointCmd {
	c := &PlaceNetPointCmd{board: b, scene: scene, pos: pos, layer: layer}
	c.InitGroup("Place net point", c)
	return c
}

// NetPoint returns the resulting point after successful execution. It may
// be a pre-existing point, in which case the command reports no change.
func (c *PlaceNetPointCmd) NetPoint() *board.NetPoint { return c.point }

// PerformExecute implements undo.Performer.
func (c *PlaceNetPointCmd) PerformExecute() (bool, error) {
	done := false
	defer func() {
		if !done {
			c.Rollback()
		}
	}()

	points := c.scene.NetPointsAt(c.pos, c.layer)
	if len(points) > 0 {
		// Coincident duplicates are reused first-found; see the
		// combine operations for actively merging them.
		c.point = points[0]
	} else {
		p, err := c.createNewNetPoint()
		if err != nil {
			return false, err
		}
		c.point = p
	}

	done = true
	return c.ChildCount() > 0, nil
}

func (c *PlaceNetPointCmd) createNewNetPoint() (*board.NetPoint, error) {
	vias := c.scene.ViasAt(c.pos)
	switch len(vias) {
	case 0:
		return c.createNewNetPointAtPad()
	case 1:
		via := vias[0]
		if p := via.NetPointOnLayer(c.layer); p != nil {
			return p, nil
		}
		signal := via.NetSignal()
		if signal == nil {
			return nil, board.Errorf(board.NoNetSignal, "the via at %s is not connected to any net", c.pos)
		}
		segment, err := c.createNewNetSegment(signal)
		if err != nil {
			return nil, err
		}
		cmd := boardcmd.NewSegmentAddElements(segment)
		p := cmd.AddViaNetPoint(c.layer, via)
		if err := c.ExecNewChild(cmd); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, board.Errorf(board.NotImplemented, "%d overlapping vias at %s", len(vias), c.pos)
	}
}

func (c *PlaceNetPointCmd) createNewNetPointAtPad() (*board.NetPoint, error) {
	pads := c.scene.PadsAt(c.pos, c.layer)
	switch len(pads) {
	case 0:
		return c.createNewNetPointInLine()
	case 1:
		pad := pads[0]
		signal := pad.NetSignal()
		if signal == nil {
			return nil, board.Errorf(board.UnconnectedPad, "pad %q is not connected to any net", pad.Name())
		}
		segment, err := c.createNewNetSegment(signal)
		if err != nil {
			return nil, err
		}
		cmd := boardcmd.NewSegmentAddElements(segment)
		p := cmd.AddPadNetPoint(pad)
		if err := c.ExecNewChild(cmd); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, board.Errorf(board.NotImplemented, "%d overlapping pads at %s", len(pads), c.pos)
	}
}

func (c *PlaceNetPointCmd) createNewNetPointInLine() (*board.NetPoint, error) {
	lines := c.scene.NetLinesAt(c.pos, c.layer)
	switch len(lines) {
	case 0:
		return nil, board.Errorf(board.NothingAtPosition, "no trace, via or pad at %s", c.pos)
	case 1:
		return splitNetLineAt(&c.Group, lines[0], c.pos)
	default:
		return nil, board.Errorf(board.NotImplemented, "%d overlapping traces at %s", len(lines), c.pos)
	}
}

func (c *PlaceNetPointCmd) createNewNetSegment(signal *board.NetSignal) (*board.NetSegment, error) {
	cmd := boardcmd.NewSegmentAdd(c.board, signal)
	if err := c.ExecNewChild(cmd); err != nil {
		return nil, err
	}
	return cmd.Segment(), nil
}

// splitNetLineAt inserts a new free net point at pos into line l: the new
// point plus two replacement lines are added first, then the original line
// is removed, so the graph stays connected at every intermediate step. The
// original width is preserved on both halves.
func splitNetLineAt(g *undo.Group, l *board.NetLine, pos geometry.Point) (*board.NetPoint, error) {
	segment := l.Segment()
	cmdAdd := boardcmd.NewSegmentAddElements(segment)
	p := cmdAdd.AddNetPoint(l.Layer(), pos)
	cmdAdd.AddNetLine(p, l.StartPoint(), l.Width())
	cmdAdd.AddNetLine(p, l.EndPoint(), l.Width())
	if err := g.ExecNewChild(cmdAdd); err != nil {
		return nil, err
	}
	cmdRemove := boardcmd.NewSegmentRemoveElements(segment)
	cmdRemove.RemoveNetLine(l)
	if err := g.ExecNewChild(cmdRemove); err != nil {
		return nil, err
	}
	return p, nil
}
