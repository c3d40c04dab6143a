/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package geometry provides the integer 2D primitives used by the board
// model. Coordinates are stored in nanometers so all positions compare
// exactly, without floating point tolerance questions.
package geometry

import "fmt"

// NanometersPerMillimeter converts between the external millimeter unit and
// the internal nanometer representation.
const NanometersPerMillimeter = 1000000

// Point is an immutable 2D coordinate in board units (nanometers).
// It is a value type; two points are the same location iff they are ==.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// FromMm builds a point from millimeter coordinates.
func FromMm(x, y float64) Point {
	return Point{
		X: int64(x * NanometersPerMillimeter),
		Y: int64(y * NanometersPerMillimeter),
	}
}

// MmX returns the X coordinate in millimeters.
func (p Point) MmX() float64 { return float64(p.X) / NanometersPerMillimeter }

// MmY returns the Y coordinate in millimeters.
func (p Point) MmY() float64 { return float64(p.Y) / NanometersPerMillimeter }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string {
	return fmt.Sprintf("(%.3fmm, %.3fmm)", p.MmX(), p.MmY())
}

// OnSegment reports whether p lies exactly on the closed segment a-b.
// Collinearity is tested with integer math, so "exactly" means the grid
// position itself, not a tolerance band.
func (p Point) OnSegment(a, b Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross != 0 {
		return false
	}
	if p.X < min(a.X, b.X) || p.X > max(a.X, b.X) {
		return false
	}
	if p.Y < min(a.Y, b.Y) || p.Y > max(a.Y, b.Y) {
		return false
	}
	return true
}

// Length is a one-dimensional distance in nanometers, used for trace widths.
type Length int64

// LengthFromMm builds a Length from millimeters.
func LengthFromMm(mm float64) Length { return Length(mm * NanometersPerMillimeter) }

// Mm returns the length in millimeters.
func (l Length) Mm() float64 { return float64(l) / NanometersPerMillimeter }

// Layer identifies a conductive board layer by name.
type Layer string

// The copper layers of a standard two-layer board. Inner layers use the
// InnerLayer helper.
const (
	LayerTop    Layer = "top"
	LayerBottom Layer = "bottom"
)

// InnerLayer returns the identifier for the n-th inner copper layer.
func InnerLayer(n int) Layer { return Layer(fmt.Sprintf("inner%d", n)) }
