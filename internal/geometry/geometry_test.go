/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package geometry

import "testing"

func TestFromMmRoundTrip(t *testing.T) {
	p := FromMm(1.5, -2.25)
	if p.X != 1500000 || p.Y != -2250000 {
		t.Fatalf("FromMm(1.5, -2.25) = %+v", p)
	}
	if p.MmX() != 1.5 || p.MmY() != -2.25 {
		t.Fatalf("mm round trip: (%v, %v)", p.MmX(), p.MmY())
	}
}

func TestPointEqualityIsExact(t *testing.T) {
	a := FromMm(1, 1)
	b := Point{X: 1000000, Y: 1000000}
	if a != b {
		t.Fatalf("equal coordinates compare unequal: %+v vs %+v", a, b)
	}
	c := Point{X: 1000001, Y: 1000000}
	if a == c {
		t.Fatalf("one nanometer apart compares equal")
	}
}

func TestOnSegment(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 10}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{X: 5, Y: 5}, true},
		{Point{X: 0, Y: 0}, true},   // endpoint
		{Point{X: 10, Y: 10}, true}, // endpoint
		{Point{X: 5, Y: 6}, false},  // off the line
		{Point{X: 11, Y: 11}, false}, // collinear but beyond
		{Point{X: -1, Y: -1}, false},
	}
	for _, tc := range cases {
		if got := tc.p.OnSegment(a, b); got != tc.want {
			t.Fatalf("OnSegment(%+v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestOnSegmentVerticalAndHorizontal(t *testing.T) {
	if !(Point{X: 0, Y: 5}).OnSegment(Point{X: 0, Y: 0}, Point{X: 0, Y: 10}) {
		t.Fatalf("midpoint of vertical segment not detected")
	}
	if !(Point{X: 5, Y: 0}).OnSegment(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}) {
		t.Fatalf("midpoint of horizontal segment not detected")
	}
	if (Point{X: 0, Y: 11}).OnSegment(Point{X: 0, Y: 0}, Point{X: 0, Y: 10}) {
		t.Fatalf("point beyond vertical segment detected")
	}
}

func TestOnSegmentDegenerate(t *testing.T) {
	a := Point{X: 3, Y: 3}
	if !a.OnSegment(a, a) {
		t.Fatalf("point is not on the zero-length segment at itself")
	}
	if (Point{X: 4, Y: 3}).OnSegment(a, a) {
		t.Fatalf("other point on zero-length segment")
	}
}

func TestInnerLayer(t *testing.T) {
	if InnerLayer(1) != Layer("inner1") || InnerLayer(4) != Layer("inner4") {
		t.Fatalf("InnerLayer naming: %s, %s", InnerLayer(1), InnerLayer(4))
	}
}

func TestLengthFromMm(t *testing.T) {
	if LengthFromMm(0.25) != 250000 {
		t.Fatalf("LengthFromMm(0.25) = %d", LengthFromMm(0.25))
	}
}
