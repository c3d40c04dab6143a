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

// NetSegment is a connected subgraph of net points and net lines, all
// belonging to one net signal, scoped to one board. A segment with zero
// lines is degenerate and removable.
//
// Elements are owned by the segment. AddElements and RemoveElements are
// symmetric: undo of an add is a remove of the same elements and vice
// versa. Both validate every invariant before mutating anything, so a
// failed call leaves no observable change.
type NetSegment struct {
	id     uuid.UUID
	board  *Board
	signal *NetSignal
	points []*NetPoint
	lines  []*NetLine
	added  bool
}

// NewNetSegment creates a detached, empty segment bound to signal. It joins
// the model when added to the board.
func NewNetSegment(b *Board, signal *NetSignal) *NetSegment {
	return LoadNetSegment(b, uuid.New(), signal)
}

// LoadNetSegment is NewNetSegment with an explicit identity, for restoring
// a persisted project.
func LoadNetSegment(b *Board, id uuid.UUID, signal *NetSignal) *NetSegment {
	return &NetSegment{id: id, board: b, signal: signal}
}

// ID returns the stable identity of the segment.
func (s *NetSegment) ID() uuid.UUID { return s.id }

// Board returns the board the segment is scoped to.
func (s *NetSegment) Board() *Board { return s.board }

// NetSignal returns the one net signal every element of the segment
// belongs to.
func (s *NetSegment) NetSignal() *NetSignal { return s.signal }

// Points returns the net points in insertion order.
func (s *NetSegment) Points() []*NetPoint { return s.points }

// Lines returns the net lines in insertion order.
func (s *NetSegment) Lines() []*NetLine { return s.lines }

// IsAddedToBoard reports whether the segment is currently part of the
// board model.
func (s *NetSegment) IsAddedToBoard() bool { return s.added }

// IsEmpty reports whether the segment has no elements at all.
func (s *NetSegment) IsEmpty() bool { return len(s.points) == 0 && len(s.lines) == 0 }

// IsDegenerate reports whether the segment carries no lines and is
// therefore removable.
func (s *NetSegment) IsDegenerate() bool { return len(s.lines) == 0 }

// ContainsPoint reports whether p is owned by this segment.
func (s *NetSegment) ContainsPoint(p *NetPoint) bool {
	for _, x := range s.points {
		if x == p {
			return true
		}
	}
	return false
}

// ContainsLine reports whether l is owned by this segment.
func (s *NetSegment) ContainsLine(l *NetLine) bool {
	for _, x := range s.lines {
		if x == l {
			return true
		}
	}
	return false
}

// NetPointsAt returns the segment's points at exactly pos on layer.
func (s *NetSegment) NetPointsAt(pos geometry.Point, layer geometry.Layer) []*NetPoint {
	var res []*NetPoint
	for _, p := range s.points {
		if p.Layer() == layer && p.Position() == pos {
			res = append(res, p)
		}
	}
	return res
}

// NetLinesAt returns the segment's lines passing exactly through pos on
// layer.
func (s *NetSegment) NetLinesAt(pos geometry.Point, layer geometry.Layer) []*NetLine {
	var res []*NetLine
	for _, l := range s.lines {
		if l.Layer() == layer && pos.OnSegment(l.StartPoint().Position(), l.EndPoint().Position()) {
			res = append(res, l)
		}
	}
	return res
}

// AddElements inserts the given detached points and lines into the
// segment. All invariants are validated up front; on error nothing has
// been mutated.
func (s *NetSegment) AddElements(points []*NetPoint, lines []*NetLine) error {
	if !s.added {
		return Errorf(InvalidPrecondition, "segment not added to board")
	}

	// Validation phase; no state is touched until everything passed.
	viaLayerTaken := make(map[*Via]map[geometry.Layer]bool)
	padTaken := make(map[*FootprintPad]bool)
	newPoints := make(map[*NetPoint]bool, len(points))
	for _, p := range points {
		if p.Segment() != s {
			return Errorf(InvalidPrecondition, "net point belongs to another segment")
		}
		if s.ContainsPoint(p) || newPoints[p] {
			return Errorf(InvalidPrecondition, "net point already in segment")
		}
		if v := p.Via(); v != nil {
			if vs := v.NetSignal(); vs == nil || vs != s.signal {
				return Errorf(InvalidPrecondition, "via net signal does not match segment signal %q", s.signal.Name())
			}
			if !v.HasLayer(p.Layer()) {
				return Errorf(InvalidPrecondition, "via %s has no layer %q", v.Position(), p.Layer())
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
			if ps := pad.NetSignal(); ps == nil {
				return Errorf(UnconnectedPad, "pad %q has no net signal", pad.Name())
			} else if ps != s.signal {
				return Errorf(InvalidPrecondition, "pad %q signal does not match segment signal %q", pad.Name(), s.signal.Name())
			}
			if pad.NetPoint() != nil || padTaken[pad] {
				return Errorf(InvalidPrecondition, "pad %q already has a net point", pad.Name())
			}
			padTaken[pad] = true
		}
		newPoints[p] = true
	}
	for _, l := range lines {
		if l.Segment() != s {
			return Errorf(InvalidPrecondition, "net line belongs to another segment")
		}
		if s.ContainsLine(l) {
			return Errorf(InvalidPrecondition, "net line already in segment")
		}
		a, b := l.StartPoint(), l.EndPoint()
		if a == nil || b == nil || a == b {
			return Errorf(InvalidPrecondition, "net line endpoints invalid")
		}
		if !(s.ContainsPoint(a) || newPoints[a]) || !(s.ContainsPoint(b) || newPoints[b]) {
			return Errorf(InvalidPrecondition, "net line endpoint not in segment")
		}
		if a.Layer() != b.Layer() {
			return Errorf(InvalidPrecondition, "net line endpoints on different layers")
		}
		if l.Width() <= 0 {
			return Errorf(InvalidPrecondition, "net line width must be positive")
		}
	}

	// Apply phase.
	for _, p := range points {
		if err := p.attachAnchor(); err != nil {
			// Cannot happen after validation; surface it instead of
			// continuing with a half-applied batch.
			return err
		}
		s.points = append(s.points, p)
	}
	for _, l := range lines {
		l.StartPoint().registerLine(l)
		l.EndPoint().registerLine(l)
		s.lines = append(s.lines, l)
	}
	return nil
}

// RemoveElements removes the given points and lines from the segment. A
// point may only be removed together with (or after) all lines attached to
// it. All checks run before any mutation.
func (s *NetSegment) RemoveElements(points []*NetPoint, lines []*NetLine) error {
	if !s.added {
		return Errorf(InvalidPrecondition, "segment not added to board")
	}

	removedLines := make(map[*NetLine]bool, len(lines))
	for _, l := range lines {
		if !s.ContainsLine(l) {
			return Errorf(InvalidPrecondition, "net line not in segment")
		}
		removedLines[l] = true
	}
	for _, p := range points {
		if !s.ContainsPoint(p) {
			return Errorf(InvalidPrecondition, "net point not in segment")
		}
		for _, l := range p.Lines() {
			if !removedLines[l] {
				return Errorf(InvalidPrecondition, "net point still has attached lines")
			}
		}
	}

	for _, l := range lines {
		l.StartPoint().unregisterLine(l)
		l.EndPoint().unregisterLine(l)
		s.lines = removeLine(s.lines, l)
	}
	for _, p := range points {
		p.detachAnchor()
		s.points = removePoint(s.points, p)
	}
	return nil
}

func removePoint(xs []*NetPoint, x *NetPoint) []*NetPoint {
	for i, y := range xs {
		if y == x {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}

func removeLine(xs []*NetLine, x *NetLine) []*NetLine {
	for i, y := range xs {
		if y == x {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}
