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

// Via is a board element spanning multiple conductive layers. It may expose
// at most one net point per layer it participates in; all of them are
// logically the same electrical node.
type Via struct {
	id     uuid.UUID
	board  *Board
	pos    geometry.Point
	signal *NetSignal // nil when the net is undetermined
	layers []geometry.Layer
	points map[geometry.Layer]*NetPoint
}

// NewVia creates a via and registers it on the board. Vias are placed by an
// out-of-scope workflow; within this core they are fixtures of the board.
func NewVia(b *Board, pos geometry.Point, signal *NetSignal, layers []geometry.Layer) *Via {
	return LoadVia(b, uuid.New(), pos, signal, layers)
}

// LoadVia is NewVia with an explicit identity, for restoring a persisted
// project.
func LoadVia(b *Board, id uuid.UUID, pos geometry.Point, signal *NetSignal, layers []geometry.Layer) *Via {
	v := &Via{
		id:     id,
		board:  b,
		pos:    pos,
		signal: signal,
		layers: append([]geometry.Layer(nil), layers...),
		points: make(map[geometry.Layer]*NetPoint),
	}
	b.vias = append(b.vias, v)
	return v
}

// ID returns the stable identity of the via.
func (v *Via) ID() uuid.UUID { return v.id }

// Position returns the board position of the via.
func (v *Via) Position() geometry.Point { return v.pos }

// NetSignal returns the net of the via, or nil if undetermined.
func (v *Via) NetSignal() *NetSignal { return v.signal }

// Layers returns the conductive layers the via spans.
func (v *Via) Layers() []geometry.Layer { return v.layers }

// HasLayer reports whether the via participates in layer.
func (v *Via) HasLayer(layer geometry.Layer) bool {
	for _, l := range v.layers {
		if l == layer {
			return true
		}
	}
	return false
}

// NetPointOnLayer returns the via's representative net point on the given
// layer, or nil if none is connected there.
func (v *Via) NetPointOnLayer(layer geometry.Layer) *NetPoint {
	return v.points[layer]
}

func (v *Via) registerNetPoint(p *NetPoint) error {
	if !v.HasLayer(p.Layer()) {
		return Errorf(InvalidPrecondition, "via %s has no layer %q", v.pos, p.Layer())
	}
	if v.points[p.Layer()] != nil {
		return Errorf(InvalidPrecondition, "via %s already has a net point on layer %q", v.pos, p.Layer())
	}
	v.points[p.Layer()] = p
	return nil
}

func (v *Via) unregisterNetPoint(p *NetPoint) {
	if v.points[p.Layer()] == p {
		delete(v.points, p.Layer())
	}
}
