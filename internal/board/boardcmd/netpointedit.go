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

// NetPointEdit changes attributes of one net point: its position, layer or
// via/pad anchoring. The old values are captured at first execution so undo
// restores them exactly. Re-anchoring requires the owning segment to be off
// the board; callers sandwich this command between a SegmentRemove and a
// SegmentReAdd.
type NetPointEdit struct {
	undo.Base
	point *board.NetPoint

	oldPos, newPos     geometry.Point
	oldLayer, newLayer geometry.Layer
	oldVia, newVia     *board.Via
	oldPad, newPad     *board.FootprintPad
}

// NewNetPointEdit creates an edit command for p. Until a setter is called,
// executing it is a no-op.
func NewNetPointEdit(p *board.NetPoint) *NetPointEdit {
	c := &NetPointEdit{
		point:    p,
		oldPos:   p.Position(),
		newPos:   p.Position(),
		oldLayer: p.Layer(),
		newLayer: p.Layer(),
		oldVia:   p.Via(),
		newVia:   p.Via(),
		oldPad:   p.Pad(),
		newPad:   p.Pad(),
	}
	c.Init("Edit net point", c)
	return c
}

// SetPosition schedules moving the point to pos.
func (c *NetPointEdit) SetPosition(pos geometry.Point) { c.newPos = pos }

// SetLayer schedules changing the point's layer.
func (c *NetPointEdit) SetLayer(layer geometry.Layer) { c.newLayer = layer }

// SetViaToAttach schedules anchoring the point to via (nil detaches).
func (c *NetPointEdit) SetViaToAttach(via *board.Via) {
	c.newVia = via
	c.newPad = nil
}

// SetPadToAttach schedules anchoring the point to pad (nil detaches).
func (c *NetPointEdit) SetPadToAttach(pad *board.FootprintPad) {
	c.newPad = pad
	c.newVia = nil
}

func (c *NetPointEdit) apply(pos geometry.Point, layer geometry.Layer, via *board.Via, pad *board.FootprintPad) error {
	if via != c.point.Via() || pad != c.point.Pad() {
		if err := c.point.SetAnchors(via, pad); err != nil {
			return err
		}
	}
	if via == nil && pad == nil {
		if c.point.Layer() != layer {
			if err := c.point.SetLayer(layer); err != nil {
				return err
			}
		}
		if c.point.Position() != pos {
			if err := c.point.SetPosition(pos); err != nil {
				return err
			}
		}
	}
	return nil
}

// PerformExecute implements undo.Performer.
func (c *NetPointEdit) PerformExecute() (bool, error) {
	if c.newPos == c.oldPos && c.newLayer == c.oldLayer && c.newVia == c.oldVia && c.newPad == c.oldPad {
		return false, nil
	}
	if err := c.apply(c.newPos, c.newLayer, c.newVia, c.newPad); err != nil {
		return false, err
	}
	return true, nil
}

// PerformUndo implements undo.Performer.
func (c *NetPointEdit) PerformUndo() error {
	return c.apply(c.oldPos, c.oldLayer, c.oldVia, c.oldPad)
}

// PerformRedo implements undo.Performer.
func (c *NetPointEdit) PerformRedo() error {
	return c.apply(c.newPos, c.newLayer, c.newVia, c.newPad)
}
