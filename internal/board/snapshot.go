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
	"reflect"
	"sort"

	"goboardeditor/internal/geometry"
)

// Snapshot is a structural, order-insensitive copy of the board topology:
// the same set of segments, points and lines with the same attributes
// compares equal regardless of internal storage order. It backs the
// round-trip and zero-mutation assertions of the test suite.
type Snapshot struct {
	Segments []SegmentSnapshot
	ViaNets  []AnchorSnapshot
	PadNets  []AnchorSnapshot
}

// SegmentSnapshot captures one net segment.
type SegmentSnapshot struct {
	ID     string
	Signal string
	Points []PointSnapshot
	Lines  []LineSnapshot
}

// PointSnapshot captures one net point.
type PointSnapshot struct {
	ID    string
	Layer geometry.Layer
	Pos   geometry.Point
	Via   string
	Pad   string
}

// LineSnapshot captures one net line.
type LineSnapshot struct {
	ID    string
	Layer geometry.Layer
	Width geometry.Length
	Start string
	End   string
}

// AnchorSnapshot records which net point a via layer or pad currently
// exposes.
type AnchorSnapshot struct {
	Anchor string
	Layer  geometry.Layer
	Point  string
}

// TakeSnapshot captures the current topology of the board.
func (b *Board) TakeSnapshot() Snapshot {
	var snap Snapshot
	for _, s := range b.segments {
		ss := SegmentSnapshot{ID: s.ID().String(), Signal: s.NetSignal().Name()}
		for _, p := range s.Points() {
			ps := PointSnapshot{ID: p.ID().String(), Layer: p.Layer(), Pos: p.Position()}
			if v := p.Via(); v != nil {
				ps.Via = v.ID().String()
			}
			if pad := p.Pad(); pad != nil {
				ps.Pad = pad.ID().String()
			}
			ss.Points = append(ss.Points, ps)
		}
		for _, l := range s.Lines() {
			start, end := l.StartPoint().ID().String(), l.EndPoint().ID().String()
			if end < start {
				start, end = end, start
			}
			ss.Lines = append(ss.Lines, LineSnapshot{
				ID:    l.ID().String(),
				Layer: l.Layer(),
				Width: l.Width(),
				Start: start,
				End:   end,
			})
		}
		sort.Slice(ss.Points, func(i, j int) bool { return ss.Points[i].ID < ss.Points[j].ID })
		sort.Slice(ss.Lines, func(i, j int) bool { return ss.Lines[i].ID < ss.Lines[j].ID })
		snap.Segments = append(snap.Segments, ss)
	}
	sort.Slice(snap.Segments, func(i, j int) bool { return snap.Segments[i].ID < snap.Segments[j].ID })

	for _, v := range b.vias {
		for _, layer := range v.Layers() {
			if p := v.NetPointOnLayer(layer); p != nil {
				snap.ViaNets = append(snap.ViaNets, AnchorSnapshot{Anchor: v.ID().String(), Layer: layer, Point: p.ID().String()})
			}
		}
	}
	for _, pad := range b.pads {
		if p := pad.NetPoint(); p != nil {
			snap.PadNets = append(snap.PadNets, AnchorSnapshot{Anchor: pad.ID().String(), Layer: pad.Layer(), Point: p.ID().String()})
		}
	}
	sort.Slice(snap.ViaNets, func(i, j int) bool {
		a, b := snap.ViaNets[i], snap.ViaNets[j]
		return a.Anchor+string(a.Layer) < b.Anchor+string(b.Layer)
	})
	sort.Slice(snap.PadNets, func(i, j int) bool { return snap.PadNets[i].Anchor < snap.PadNets[j].Anchor })
	return snap
}

// Equal reports structural equality of two snapshots.
func (s Snapshot) Equal(o Snapshot) bool { return reflect.DeepEqual(s, o) }

// CountPoints returns the total number of net points.
func (s Snapshot) CountPoints() int {
	n := 0
	for _, seg := range s.Segments {
		n += len(seg.Points)
	}
	return n
}

// CountLines returns the total number of net lines.
func (s Snapshot) CountLines() int {
	n := 0
	for _, seg := range s.Segments {
		n += len(seg.Lines)
	}
	return n
}
