/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"fmt"

	"github.com/google/uuid"

	"goboardeditor/internal/board"
	"goboardeditor/internal/geometry"
)

// BoardDocument is the JSON manifest of a board project: net signals, the
// board fixtures (vias, pads) and the net segment topology. It serializes
// to a human-readable board.json.
type BoardDocument struct {
	FormatVersion int          `json:"formatVersion"`
	Name          string       `json:"name"`
	Signals       []SignalDoc  `json:"signals"`
	Vias          []ViaDoc     `json:"vias"`
	Pads          []PadDoc     `json:"pads"`
	Segments      []SegmentDoc `json:"segments"`
}

// SignalDoc is one named electrical net.
type SignalDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ViaDoc is one multi-layer via fixture.
type ViaDoc struct {
	ID     string   `json:"id"`
	X      int64    `json:"x"`
	Y      int64    `json:"y"`
	Signal string   `json:"signal,omitempty"`
	Layers []string `json:"layers"`
}

// PadDoc is one footprint pad fixture.
type PadDoc struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	X      int64  `json:"x"`
	Y      int64  `json:"y"`
	Layer  string `json:"layer"`
	Signal string `json:"signal,omitempty"`
}

// SegmentDoc is one net segment with its points and lines.
type SegmentDoc struct {
	ID     string     `json:"id"`
	Signal string     `json:"signal"`
	Points []PointDoc `json:"points"`
	Lines  []LineDoc  `json:"lines"`
}

// PointDoc is one net point. Anchored points reference their via or pad and
// omit coordinates.
type PointDoc struct {
	ID    string `json:"id"`
	Layer string `json:"layer"`
	X     int64  `json:"x,omitempty"`
	Y     int64  `json:"y,omitempty"`
	Via   string `json:"via,omitempty"`
	Pad   string `json:"pad,omitempty"`
}

// LineDoc is one net line between two points of the same segment.
type LineDoc struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
	Width int64  `json:"width"`
}

// FormatVersion is the current manifest format.
const FormatVersion = 1

// ToDocument converts the live model into its manifest form.
func ToDocument(c *board.Circuit, b *board.Board) BoardDocument {
	doc := BoardDocument{FormatVersion: FormatVersion, Name: b.Name()}
	for _, s := range c.NetSignals() {
		doc.Signals = append(doc.Signals, SignalDoc{ID: s.ID().String(), Name: s.Name()})
	}
	for _, v := range b.Vias() {
		vd := ViaDoc{ID: v.ID().String(), X: v.Position().X, Y: v.Position().Y}
		if sig := v.NetSignal(); sig != nil {
			vd.Signal = sig.ID().String()
		}
		for _, l := range v.Layers() {
			vd.Layers = append(vd.Layers, string(l))
		}
		doc.Vias = append(doc.Vias, vd)
	}
	for _, p := range b.FootprintPads() {
		pd := PadDoc{ID: p.ID().String(), Name: p.Name(), X: p.Position().X, Y: p.Position().Y, Layer: string(p.Layer())}
		if sig := p.NetSignal(); sig != nil {
			pd.Signal = sig.ID().String()
		}
		doc.Pads = append(doc.Pads, pd)
	}
	for _, s := range b.NetSegments() {
		sd := SegmentDoc{ID: s.ID().String(), Signal: s.NetSignal().ID().String()}
		for _, p := range s.Points() {
			pd := PointDoc{ID: p.ID().String(), Layer: string(p.Layer())}
			switch {
			case p.IsAttachedToVia():
				pd.Via = p.Via().ID().String()
			case p.IsAttachedToPad():
				pd.Pad = p.Pad().ID().String()
			default:
				pd.X = p.Position().X
				pd.Y = p.Position().Y
			}
			sd.Points = append(sd.Points, pd)
		}
		for _, l := range s.Lines() {
			sd.Lines = append(sd.Lines, LineDoc{
				ID:    l.ID().String(),
				Start: l.StartPoint().ID().String(),
				End:   l.EndPoint().ID().String(),
				Width: int64(l.Width()),
			})
		}
		doc.Segments = append(doc.Segments, sd)
	}
	return doc
}

// FromDocument rebuilds the live model from a manifest.
func FromDocument(doc BoardDocument) (*board.Circuit, *board.Board, error) {
	c := board.NewCircuit()
	signals := make(map[string]*board.NetSignal, len(doc.Signals))
	for _, sd := range doc.Signals {
		id, err := uuid.Parse(sd.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("signal %q: %w", sd.Name, err)
		}
		signals[sd.ID] = c.LoadNetSignal(id, sd.Name)
	}

	b := board.LoadBoard(c, uuid.New(), doc.Name)
	vias := make(map[string]*board.Via, len(doc.Vias))
	for _, vd := range doc.Vias {
		id, err := uuid.Parse(vd.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("via %s: %w", vd.ID, err)
		}
		var sig *board.NetSignal
		if vd.Signal != "" {
			if sig = signals[vd.Signal]; sig == nil {
				return nil, nil, fmt.Errorf("via %s references unknown signal %s", vd.ID, vd.Signal)
			}
		}
		layers := make([]geometry.Layer, 0, len(vd.Layers))
		for _, l := range vd.Layers {
			layers = append(layers, geometry.Layer(l))
		}
		vias[vd.ID] = board.LoadVia(b, id, geometry.Point{X: vd.X, Y: vd.Y}, sig, layers)
	}
	pads := make(map[string]*board.FootprintPad, len(doc.Pads))
	for _, pd := range doc.Pads {
		id, err := uuid.Parse(pd.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("pad %s: %w", pd.ID, err)
		}
		var sig *board.NetSignal
		if pd.Signal != "" {
			if sig = signals[pd.Signal]; sig == nil {
				return nil, nil, fmt.Errorf("pad %s references unknown signal %s", pd.ID, pd.Signal)
			}
		}
		pads[pd.ID] = board.LoadFootprintPad(b, id, pd.Name, geometry.Point{X: pd.X, Y: pd.Y}, geometry.Layer(pd.Layer), sig)
	}

	for _, sd := range doc.Segments {
		id, err := uuid.Parse(sd.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("segment %s: %w", sd.ID, err)
		}
		sig := signals[sd.Signal]
		if sig == nil {
			return nil, nil, fmt.Errorf("segment %s references unknown signal %s", sd.ID, sd.Signal)
		}
		seg := board.LoadNetSegment(b, id, sig)
		if err := b.AddSegment(seg); err != nil {
			return nil, nil, fmt.Errorf("segment %s: %w", sd.ID, err)
		}
		points := make([]*board.NetPoint, 0, len(sd.Points))
		pointsByID := make(map[string]*board.NetPoint, len(sd.Points))
		for _, pd := range sd.Points {
			pid, err := uuid.Parse(pd.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("point %s: %w", pd.ID, err)
			}
			var p *board.NetPoint
			switch {
			case pd.Via != "":
				v := vias[pd.Via]
				if v == nil {
					return nil, nil, fmt.Errorf("point %s references unknown via %s", pd.ID, pd.Via)
				}
				p = board.LoadViaNetPoint(seg, pid, geometry.Layer(pd.Layer), v)
			case pd.Pad != "":
				pad := pads[pd.Pad]
				if pad == nil {
					return nil, nil, fmt.Errorf("point %s references unknown pad %s", pd.ID, pd.Pad)
				}
				p = board.LoadPadNetPoint(seg, pid, pad)
			default:
				p = board.LoadNetPoint(seg, pid, geometry.Layer(pd.Layer), geometry.Point{X: pd.X, Y: pd.Y})
			}
			points = append(points, p)
			pointsByID[pd.ID] = p
		}
		lines := make([]*board.NetLine, 0, len(sd.Lines))
		for _, ld := range sd.Lines {
			lid, err := uuid.Parse(ld.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("line %s: %w", ld.ID, err)
			}
			start, end := pointsByID[ld.Start], pointsByID[ld.End]
			if start == nil || end == nil {
				return nil, nil, fmt.Errorf("line %s references unknown points", ld.ID)
			}
			lines = append(lines, board.LoadNetLine(seg, lid, start, end, geometry.Length(ld.Width)))
		}
		if err := seg.AddElements(points, lines); err != nil {
			return nil, nil, fmt.Errorf("segment %s: %w", sd.ID, err)
		}
	}
	return c, b, nil
}
