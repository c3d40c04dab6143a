/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package board

import (
	"github.com/google/uuid"

	"goboardeditor/internal/geometry"
)

// NetPoint is a junction node on one layer within one net segment.
// An unanchored point sits at a free board position (typically mid-trace).
// A point anchored to a via or footprint pad inherits its position from the
// anchor and cannot be moved independently.
//
// Constructors return detached points; they become part of the model only
// when passed to NetSegment.AddElements, which also validates the
// anchoring invariants.
type NetPoint struct {
	id      uuid.UUID
	segment *NetSegment
	layer   geometry.Layer
	pos     geometry.Point
	via     *Via
	pad     *FootprintPad
	lines   []*NetLine
}

// NewNetPoint creates a detached free point at pos on the given layer.
func NewNetPoint(segment *NetSegment, layer geometry.Layer, pos geometry.Point) *NetPoint {
	return LoadNetPoint(segment, uuid.New(), layer, pos)
}

// LoadNetPoint is NewNetPoint with an explicit identity, for restoring a
// persisted project.
func LoadNetPoint(segment *NetSegment, id uuid.UUID, layer geometry.Layer, pos geometry.Point) *NetPoint {
	return &NetPoint{id: id, segment: segment, layer: layer, pos: pos}
}

// NewViaNetPoint creates a detached point anchored to via on the given
// conductive layer of the via.
func NewViaNetPoint(segment *NetSegment, layer geometry.Layer, via *Via) *NetPoint {
	return LoadViaNetPoint(segment, uuid.New(), layer, via)
}

// LoadViaNetPoint is NewViaNetPoint with an explicit identity.
func LoadViaNetPoint(segment *NetSegment, id uuid.UUID, layer geometry.Layer, via *Via) *NetPoint {
	return &NetPoint{id: id, segment: segment, layer: layer, via: via}
}

// NewPadNetPoint creates a detached point anchored to pad; the layer is the
// pad's layer.
func NewPadNetPoint(segment *NetSegment, pad *FootprintPad) *NetPoint {
	return LoadPadNetPoint(segment, uuid.New(), pad)
}

// LoadPadNetPoint is NewPadNetPoint with an explicit identity.
func LoadPadNetPoint(segment *NetSegment, id uuid.UUID, pad *FootprintPad) *NetPoint {
	return &NetPoint{id: id, segment: segment, layer: pad.Layer(), pad: pad}
}

// ID returns the stable identity of the point.
func (p *NetPoint) ID() uuid.UUID { return p.id }

// Segment returns the owning net segment.
func (p *NetPoint) Segment() *NetSegment { return p.segment }

// Layer returns the conductive layer the point lives on.
func (p *NetPoint) Layer() geometry.Layer { return p.layer }

// Position returns the board position. Anchored points report their
// anchor's position.
func (p *NetPoint) Position() geometry.Point {
	switch {
	case p.via != nil:
		return p.via.Position()
	case p.pad != nil:
		return p.pad.Position()
	default:
		return p.pos
	}
}

// IsAttachedToVia reports whether the point is anchored to a via.
func (p *NetPoint) IsAttachedToVia() bool { return p.via != nil }

// IsAttachedToPad reports whether the point is anchored to a pad.
func (p *NetPoint) IsAttachedToPad() bool { return p.pad != nil }

// IsAttached reports whether the point is anchored to a via or pad.
func (p *NetPoint) IsAttached() bool { return p.via != nil || p.pad != nil }

// Via returns the anchoring via, or nil.
func (p *NetPoint) Via() *Via { return p.via }

// Pad returns the anchoring footprint pad, or nil.
func (p *NetPoint) Pad() *FootprintPad { return p.pad }

// Lines returns the net lines currently connected to this point, in
// attachment order.
func (p *NetPoint) Lines() []*NetLine { return p.lines }

// attach/detach maintain the anchor back-registration while the owning
// segment is added to or removed from the board.
func (p *NetPoint) attachAnchor() error {
	switch {
	case p.via != nil:
		return p.via.registerNetPoint(p)
	case p.pad != nil:
		return p.pad.registerNetPoint(p)
	}
	return nil
}

func (p *NetPoint) detachAnchor() {
	switch {
	case p.via != nil:
		p.via.unregisterNetPoint(p)
	case p.pad != nil:
		p.pad.unregisterNetPoint(p)
	}
}

func (p *NetPoint) registerLine(l *NetLine) {
	p.lines = append(p.lines, l)
}

func (p *NetPoint) unregisterLine(l *NetLine) {
	for i, x := range p.lines {
		if x == l {
			p.lines = append(p.lines[:i], p.lines[i+1:]...)
			return
		}
	}
}

// SetAnchors rebinds the point's via/pad anchors. Valid only while the
// owning segment is off the board, since anchor registration is maintained
// at board level; the net point edit command removes and re-adds the
// segment around this call.
func (p *NetPoint) SetAnchors(via *Via, pad *FootprintPad) error {
	if p.segment.IsAddedToBoard() {
		return Errorf(InvalidPrecondition, "cannot re-anchor a net point while its segment is on the board")
	}
	if via != nil && pad != nil {
		return Errorf(InvalidPrecondition, "net point cannot anchor to both a via and a pad")
	}
	p.via = via
	p.pad = pad
	if pad != nil {
		p.layer = pad.Layer()
	}
	return nil
}

// SetPosition moves a free point. Anchored points inherit their anchor's
// position and cannot be moved independently.
func (p *NetPoint) SetPosition(pos geometry.Point) error {
	if p.IsAttached() {
		return Errorf(InvalidPrecondition, "cannot move a net point anchored to a via or pad")
	}
	p.pos = pos
	return nil
}

// SetLayer changes the conductive layer of a free point.
func (p *NetPoint) SetLayer(layer geometry.Layer) error {
	if p.IsAttached() {
		return Errorf(InvalidPrecondition, "cannot change layer of an anchored net point")
	}
	if p.segment.IsAddedToBoard() && len(p.lines) > 0 {
		return Errorf(InvalidPrecondition, "cannot change layer of a connected net point")
	}
	p.layer = layer
	return nil
}
