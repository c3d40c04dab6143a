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

// FootprintPad is a component terminal on one layer. Its net signal is
// determined by the component's signal instance in the circuit model; a pad
// with no assigned signal cannot be connected. A pad exposes at most one
// net point.
type FootprintPad struct {
	id     uuid.UUID
	board  *Board
	name   string
	pos    geometry.Point
	layer  geometry.Layer
	signal *NetSignal // nil = unconnected pad
	point  *NetPoint
}

// NewFootprintPad creates a pad and registers it on the board. Component
// placement is an out-of-scope workflow; pads are fixtures here.
func NewFootprintPad(b *Board, name string, pos geometry.Point, layer geometry.Layer, signal *NetSignal) *FootprintPad {
	return LoadFootprintPad(b, uuid.New(), name, pos, layer, signal)
}

// LoadFootprintPad is NewFootprintPad with an explicit identity, for
// restoring a persisted project.
func LoadFootprintPad(b *Board, id uuid.UUID, name string, pos geometry.Point, layer geometry.Layer, signal *NetSignal) *FootprintPad {
	p := &FootprintPad{id: id, board: b, name: name, pos: pos, layer: layer, signal: signal}
	b.pads = append(b.pads, p)
	return p
}

// ID returns the stable identity of the pad.
func (p *FootprintPad) ID() uuid.UUID { return p.id }

// Name returns the pad designator, e.g. "R1:2".
func (p *FootprintPad) Name() string { return p.name }

// Position returns the board position of the pad.
func (p *FootprintPad) Position() geometry.Point { return p.pos }

// Layer returns the layer the pad sits on.
func (p *FootprintPad) Layer() geometry.Layer { return p.layer }

// NetSignal returns the resolved net of the pad, or nil if unconnected.
func (p *FootprintPad) NetSignal() *NetSignal { return p.signal }

// NetPoint returns the pad's connected net point, or nil.
func (p *FootprintPad) NetPoint() *NetPoint { return p.point }

func (p *FootprintPad) registerNetPoint(np *NetPoint) error {
	if p.point != nil {
		return Errorf(InvalidPrecondition, "pad %q already has a net point", p.name)
	}
	p.point = np
	return nil
}

func (p *FootprintPad) unregisterNetPoint(np *NetPoint) {
	if p.point == np {
		p.point = nil
	}
}
