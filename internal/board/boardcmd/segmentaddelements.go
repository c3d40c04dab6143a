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
	"goboardeditor/internal/geometry"
	"goboardeditor/internal/undo"
)

// SegmentAddElements inserts new net points and net lines into one
// segment. The elements are created detached through the Add* builder
// methods before the command is first executed; executing the command
// wires them into the model, undoing removes them again.
type SegmentAddElements struct {
	undo.Base
	segment *board.NetSegment
	points  []*board.NetPoint
	lines   []*board.NetLine
}

// NewSegmentAddElements creates an empty add-elements command for segment.
func NewSegmentAddElements(s *board.NetSegment) *SegmentAddElements {
	c := &SegmentAddElements{segment: s}
	c.Init("Add net segment elements", c)
	return c
}

// AddNetPoint schedules a new free point at pos on layer and returns it.
func (c *SegmentAddElements) AddNetPoint(layer geometry.Layer, pos geometry.Point) *board.NetPoint {
	p := board.NewNetPoint(c.segment, layer, pos)
	c.points = append(c.points, p)
	return p
}

// AddViaNetPoint schedules a new point anchored to via on layer.
func (c *SegmentAddElements) AddViaNetPoint(layer geometry.Layer, via *board.Via) *board.NetPoint {
	p := board.NewViaNetPoint(c.segment, layer, via)
	c.points = append(c.points, p)
	return p
}

// AddPadNetPoint schedules a new point anchored to pad.
func (c *SegmentAddElements) AddPadNetPoint(pad *board.FootprintPad) *board.NetPoint {
	p := board.NewPadNetPoint(c.segment, pad)
	c.points = append(c.points, p)
	return p
}

// AddNetLine schedules a new line between start and end with the given
// width and returns it.
func (c *SegmentAddElements) AddNetLine(start, end *board.NetPoint, width geometry.Length) *board.NetLine {
	l := board.NewNetLine(c.segment, start, end, width)
	c.lines = append(c.lines, l)
	return l
}

// PerformExecute implements undo.Performer.
func (c *SegmentAddElements) PerformExecute() (bool, error) {
	if len(c.points) == 0 && len(c.lines) == 0 {
		return false, nil
	}
	if err := c.segment.AddElements(c.points, c.lines); err != nil {
		return false, err
	}
	return true, nil
}

// PerformUndo implements undo.Performer.
func (c *SegmentAddElements) PerformUndo() error {
	return c.segment.RemoveElements(c.points, c.lines)
}

// PerformRedo implements undo.Performer.
func (c *SegmentAddElements) PerformRedo() error {
	if len(c.points) == 0 && len(c.lines) == 0 {
		return nil
	}
	return c.segment.AddElements(c.points, c.lines)
}
