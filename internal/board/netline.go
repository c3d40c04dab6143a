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

// NetLine is a trace: a direction-agnostic edge between two net points on
// one layer, with a width. Both endpoints must belong to the same net
// segment as the line itself.
type NetLine struct {
	id      uuid.UUID
	segment *NetSegment
	start   *NetPoint
	end     *NetPoint
	width   geometry.Length
}

// NewNetLine creates a detached line between start and end. It becomes part
// of the model only via NetSegment.AddElements.
func NewNetLine(segment *NetSegment, start, end *NetPoint, width geometry.Length) *NetLine {
	return LoadNetLine(segment, uuid.New(), start, end, width)
}

// LoadNetLine is NewNetLine with an explicit identity, for restoring a
// persisted project.
func LoadNetLine(segment *NetSegment, id uuid.UUID, start, end *NetPoint, width geometry.Length) *NetLine {
	return &NetLine{id: id, segment: segment, start: start, end: end, width: width}
}

// ID returns the stable identity of the line.
func (l *NetLine) ID() uuid.UUID { return l.id }

// Segment returns the owning net segment.
func (l *NetLine) Segment() *NetSegment { return l.segment }

// StartPoint returns one endpoint.
func (l *NetLine) StartPoint() *NetPoint { return l.start }

// EndPoint returns the other endpoint.
func (l *NetLine) EndPoint() *NetPoint { return l.end }

// OtherPoint returns the endpoint that is not p, or nil if p is not an
// endpoint of this line.
func (l *NetLine) OtherPoint(p *NetPoint) *NetPoint {
	switch p {
	case l.start:
		return l.end
	case l.end:
		return l.start
	default:
		return nil
	}
}

// Layer returns the conductive layer, which is the layer of both endpoints.
func (l *NetLine) Layer() geometry.Layer { return l.start.Layer() }

// Width returns the trace width.
func (l *NetLine) Width() geometry.Length { return l.width }
