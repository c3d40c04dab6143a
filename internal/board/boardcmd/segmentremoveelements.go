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

// SegmentRemoveElements removes net points and net lines from one segment.
// Undo adds the exact same elements back, so it is the inverse of
// SegmentAddElements.
type SegmentRemoveElements struct {
	undo.Base
	segment *board.NetSegment
	points  []*board.NetPoint
	lines   []*board.NetLine
}

// NewSegmentRemoveElements creates an empty remove-elements command for
// segment.
func NewSegmentRemoveElements(s *board.NetSegment) *SegmentRemoveElements {
	c := &SegmentRemoveElements{segment: s}
	c.Init("Remove net segment elements", c)
	return c
}

// RemoveNetPoint schedules p for removal.
func (c *SegmentRemoveElements) RemoveNetPoint(p *board.NetPoint) {
	c.points = append(c.points, p)
}

// RemoveNetLine schedules l for removal.
func (c *SegmentRemoveElements) RemoveNetLine(l *board.NetLine) {
	c.lines = append(c.lines, l)
}

// PerformExecute implements undo.Performer.
func (c *SegmentRemoveElements) PerformExecute() (bool, error) {
	if len(c.points) == 0 && len(c.lines) == 0 {
		return false, nil
	}
	if err := c.segment.RemoveElements(c.points, c.lines); err != nil {
		return false, err
	}
	return true, nil
}

// PerformUndo implements undo.Performer.
func (c *SegmentRemoveElements) PerformUndo() error {
	return c.segment.AddElements(c.points, c.lines)
}

// PerformRedo implements undo.Performer.
func (c *SegmentRemoveElements) PerformRedo() error {
	if len(c.points) == 0 && len(c.lines) == 0 {
		return nil
	}
	return c.segment.RemoveElements(c.points, c.lines)
}
