/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package board holds the net-topology model of a printed circuit board:
// net segments partitioned into points and lines, plus the vias and
// footprint pads they may anchor to. All mutation of segments goes through
// the command layer in boardcmd; the board remains the sole owner of its
// topology objects.
package board

import (
	"github.com/google/uuid"

	"goboardeditor/internal/geometry"
)

// Board is one PCB layout of a project.
type Board struct {
	id       uuid.UUID
	name     string
	circuit  *Circuit
	segments []*NetSegment
	vias     []*Via
	pads     []*FootprintPad
}

// NewBoard creates an empty board belonging to the given circuit.
func NewBoard(c *Circuit, name string) *Board {
	return LoadBoard(c, uuid.New(), name)
}

// LoadBoard is NewBoard with an explicit identity, for restoring a
// persisted project.
func LoadBoard(c *Circuit, id uuid.UUID, name string) *Board {
	return &Board{id: id, name: name, circuit: c}
}

// ID returns the stable identity of the board.
func (b *Board) ID() uuid.UUID { return b.id }

// Name returns the board name.
func (b *Board) Name() string { return b.name }

// Circuit returns the owning circuit model.
func (b *Board) Circuit() *Circuit { return b.circuit }

// NetSegments returns the segments currently on the board.
func (b *Board) NetSegments() []*NetSegment { return b.segments }

// Vias returns all vias of the board.
func (b *Board) Vias() []*Via { return b.vias }

// FootprintPads returns all pads of the board.
func (b *Board) FootprintPads() []*FootprintPad { return b.pads }

// AddSegment puts a detached segment (back) onto the board and re-registers
// the via/pad anchors of its points. Validation is complete before any
// registration happens.
func (b *Board) AddSegment(s *NetSegment) error {
	if s.Board() != b {
		return Errorf(InvalidPrecondition, "segment belongs to another board")
	}
	if s.added {
		return Errorf(InvalidPrecondition, "segment already added to board")
	}
	if s.signal == nil {
		return Errorf(InvalidPrecondition, "segment has no net signal")
	}

	viaLayerTaken := make(map[*Via]map[geometry.Layer]bool)
	padTaken := make(map[*FootprintPad]bool)
	for _, p := range s.points {
		if v := p.Via(); v != nil {
			if vs := v.NetSignal(); vs == nil || vs != s.signal {
				return Errorf(InvalidPrecondition, "via net signal does not match segment signal %q", s.signal.Name())
			}
			if v.NetPointOnLayer(p.Layer()) != nil || viaLayerTaken[v][p.Layer()] {
				return Errorf(InvalidPrecondition, "via %s already has a net point on layer %q", v.Position(), p.Layer())
			}
			if viaLayerTaken[v] == nil {
				viaLayerTaken[v] = make(map[geometry.Layer]bool)
			}
			viaLayerTaken[v][p.Layer()] = true
		}
		if pad := p.Pad(); pad != nil {
			if ps := pad.NetSignal(); ps == nil || ps != s.signal {
				return Errorf(InvalidPrecondition, "pad %q signal does not match segment signal %q", pad.Name(), s.signal.Name())
			}
			if pad.NetPoint() != nil || padTaken[pad] {
				return Errorf(InvalidPrecondition, "pad %q already has a net point", pad.Name())
			}
			padTaken[pad] = true
		}
	}

	for _, p := range s.points {
		if err := p.attachAnchor(); err != nil {
			return err
		}
	}
	s.added = true
	b.segments = append(b.segments, s)
	return nil
}

// RemoveSegment takes a segment off the board, detaching its points from
// their via/pad anchors. The segment keeps its elements so it can be added
// back unchanged by an undo.
func (b *Board) RemoveSegment(s *NetSegment) error {
	if !s.added || s.Board() != b {
		return Errorf(InvalidPrecondition, "segment not added to this board")
	}
	for _, p := range s.points {
		p.detachAnchor()
	}
	s.added = false
	for i, x := range b.segments {
		if x == s {
			b.segments = append(b.segments[:i], b.segments[i+1:]...)
			break
		}
	}
	return nil
}

// NetPointsAt returns every net point of the board at exactly pos on layer.
func (b *Board) NetPointsAt(pos geometry.Point, layer geometry.Layer) []*NetPoint {
	var res []*NetPoint
	for _, s := range b.segments {
		res = append(res, s.NetPointsAt(pos, layer)...)
	}
	return res
}

// NetLinesAt returns every net line of the board passing exactly through
// pos on layer.
func (b *Board) NetLinesAt(pos geometry.Point, layer geometry.Layer) []*NetLine {
	var res []*NetLine
	for _, s := range b.segments {
		res = append(res, s.NetLinesAt(pos, layer)...)
	}
	return res
}

// ViasAt returns the vias located exactly at pos.
func (b *Board) ViasAt(pos geometry.Point) []*Via {
	var res []*Via
	for _, v := range b.vias {
		if v.Position() == pos {
			res = append(res, v)
		}
	}
	return res
}

// PadsAt returns the pads located exactly at pos on layer.
func (b *Board) PadsAt(pos geometry.Point, layer geometry.Layer) []*FootprintPad {
	var res []*FootprintPad
	for _, p := range b.pads {
		if p.Layer() == layer && p.Position() == pos {
			res = append(res, p)
		}
	}
	return res
}
