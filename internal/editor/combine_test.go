/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package editor

import (
	"testing"

	"goboardeditor/internal/board"
	"goboardeditor/internal/geometry"
	"goboardeditor/internal/undo"
)

func TestCombineNetSegmentsAtExistingPoint(t *testing.T) {
	sig, b := newTestBoard(t)
	// Survivor: (0,0)-(5,0); junction is its endpoint at (5,0).
	_, _, junction, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(5, 0))
	// Segment to remove touches the junction position with an endpoint.
	toRemove, _, far, _ := makeTrace(t, b, sig, geometry.FromMm(5, 0), geometry.FromMm(5, 10))
	stack := undo.NewStack()
	before := b.TakeSnapshot()

	if err := CombineNetSegments(stack, toRemove, junction); err != nil {
		t.Fatalf("CombineNetSegments: %v", err)
	}
	if len(b.NetSegments()) != 1 {
		t.Fatalf("segments after combine = %d, want 1", len(b.NetSegments()))
	}
	survivor := junction.Segment()
	snap := b.TakeSnapshot()
	// The interception point is replaced by the junction; the far endpoint
	// is re-created in the survivor.
	if snap.CountPoints() != 3 || snap.CountLines() != 2 {
		t.Fatalf("after combine: %d points, %d lines, want 3/2", snap.CountPoints(), snap.CountLines())
	}
	if len(junction.Lines()) != 2 {
		t.Fatalf("junction carries %d lines, want 2", len(junction.Lines()))
	}
	if toRemove.IsAddedToBoard() {
		t.Fatalf("removed segment still on board")
	}
	// The far endpoint was cloned into the survivor at the same position.
	pts := survivor.NetPointsAt(far.Position(), geometry.LayerTop)
	if len(pts) != 1 {
		t.Fatalf("far endpoint clones = %d, want 1", len(pts))
	}

	if err := stack.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !b.TakeSnapshot().Equal(before) {
		t.Fatalf("undo did not restore both segments")
	}
	if err := stack.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if !b.TakeSnapshot().Equal(snap) {
		t.Fatalf("redo did not restore the combined state")
	}
}

func TestCombineNetSegmentsSplitsInterceptedTrace(t *testing.T) {
	sig, b := newTestBoard(t)
	_, _, junction, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(5, 0))
	// The trace to remove passes through the junction position mid-line.
	toRemove, _, _, _ := makeTrace(t, b, sig, geometry.FromMm(5, -5), geometry.FromMm(5, 5))
	stack := undo.NewStack()

	if err := CombineNetSegments(stack, toRemove, junction); err != nil {
		t.Fatalf("CombineNetSegments: %v", err)
	}
	snap := b.TakeSnapshot()
	// Junction plus survivor start plus the two split endpoints.
	if snap.CountPoints() != 4 || snap.CountLines() != 3 {
		t.Fatalf("after combine: %d points, %d lines, want 4/3", snap.CountPoints(), snap.CountLines())
	}
	if len(junction.Lines()) != 3 {
		t.Fatalf("junction carries %d lines, want 3", len(junction.Lines()))
	}
}

func TestCombineNetSegmentsSignalMismatchMutatesNothing(t *testing.T) {
	sig, b := newTestBoard(t)
	other := b.Circuit().AddNetSignal("VCC")
	_, _, junction, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(5, 0))
	toRemove, _, _, _ := makeTrace(t, b, other, geometry.FromMm(5, 0), geometry.FromMm(5, 10))
	stack := undo.NewStack()
	before := b.TakeSnapshot()

	err := CombineNetSegments(stack, toRemove, junction)
	if !board.IsKind(err, board.NetSignalMismatch) {
		t.Fatalf("combine across nets = %v, want NetSignalMismatch", err)
	}
	if !b.TakeSnapshot().Equal(before) {
		t.Fatalf("failed combine left observable changes")
	}
	if stack.Len() != 0 {
		t.Fatalf("failed combine entered the history")
	}
}

func TestCombineNetSegmentsNotTouching(t *testing.T) {
	sig, b := newTestBoard(t)
	_, _, junction, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(5, 0))
	toRemove, _, _, _ := makeTrace(t, b, sig, geometry.FromMm(20, 0), geometry.FromMm(30, 0))
	stack := undo.NewStack()
	before := b.TakeSnapshot()

	err := CombineNetSegments(stack, toRemove, junction)
	if !board.IsKind(err, board.InvalidPrecondition) {
		t.Fatalf("combine of disjoint segments = %v, want InvalidPrecondition", err)
	}
	if !b.TakeSnapshot().Equal(before) {
		t.Fatalf("failed combine left observable changes")
	}
}

func TestCombineNetSegmentsWithItself(t *testing.T) {
	sig, b := newTestBoard(t)
	s, _, junction, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(5, 0))
	stack := undo.NewStack()

	if err := CombineNetSegments(stack, s, junction); !board.IsKind(err, board.InvalidPrecondition) {
		t.Fatalf("combine with itself = %v, want InvalidPrecondition", err)
	}
}

func TestCombineNetSegmentsTransfersViaAnchor(t *testing.T) {
	sig, b := newTestBoard(t)
	via := board.NewVia(b, geometry.FromMm(5, 10), sig, []geometry.Layer{geometry.LayerTop, geometry.LayerBottom})
	_, _, junction, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(5, 0))

	// The segment to remove ends in a via-anchored point.
	toRemove := board.NewNetSegment(b, sig)
	if err := b.AddSegment(toRemove); err != nil {
		t.Fatalf("AddSegment: %v", err)
	}
	r1 := board.NewNetPoint(toRemove, geometry.LayerTop, geometry.FromMm(5, 0))
	r2 := board.NewViaNetPoint(toRemove, geometry.LayerTop, via)
	rl := board.NewNetLine(toRemove, r1, r2, geometry.LengthFromMm(0.3))
	if err := toRemove.AddElements([]*board.NetPoint{r1, r2}, []*board.NetLine{rl}); err != nil {
		t.Fatalf("AddElements: %v", err)
	}

	stack := undo.NewStack()
	if err := CombineNetSegments(stack, toRemove, junction); err != nil {
		t.Fatalf("CombineNetSegments: %v", err)
	}
	// The via anchor now belongs to a point of the survivor.
	vp := via.NetPointOnLayer(geometry.LayerTop)
	if vp == nil || vp.Segment() != junction.Segment() {
		t.Fatalf("via anchor not carried into the survivor")
	}
	if err := stack.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if via.NetPointOnLayer(geometry.LayerTop) != r2 {
		t.Fatalf("undo did not give the via anchor back to the removed segment")
	}
}

func TestCombineNetPoints(t *testing.T) {
	sig, b := newTestBoard(t)
	s, _, p2, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(10, 0))
	// Add a second point coincident with p2 plus a line to it, creating a
	// duplicate junction.
	dup := board.NewNetPoint(s, geometry.LayerTop, p2.Position())
	p3 := board.NewNetPoint(s, geometry.LayerTop, geometry.FromMm(10, 10))
	l2 := board.NewNetLine(s, dup, p3, geometry.LengthFromMm(0.3))
	if err := s.AddElements([]*board.NetPoint{dup, p3}, []*board.NetLine{l2}); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	stack := undo.NewStack()
	before := b.TakeSnapshot()

	if err := CombineNetPoints(stack, dup, p2); err != nil {
		t.Fatalf("CombineNetPoints: %v", err)
	}
	if s.ContainsPoint(dup) {
		t.Fatalf("merged point still in segment")
	}
	snap := b.TakeSnapshot()
	if snap.CountPoints() != 3 || snap.CountLines() != 2 {
		t.Fatalf("after merge: %d points, %d lines, want 3/2", snap.CountPoints(), snap.CountLines())
	}
	// dup's line now runs from p2 to p3.
	if len(p2.Lines()) != 2 {
		t.Fatalf("survivor carries %d lines, want 2", len(p2.Lines()))
	}

	if err := stack.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !b.TakeSnapshot().Equal(before) {
		t.Fatalf("undo did not restore the duplicate point")
	}
}

func TestCombineNetPointsDropsDirectLines(t *testing.T) {
	sig, b := newTestBoard(t)
	s, p1, p2, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(10, 0))
	stack := undo.NewStack()

	// Merging the two endpoints of a line drops the line entirely.
	if err := CombineNetPoints(stack, p1, p2); err != nil {
		t.Fatalf("CombineNetPoints: %v", err)
	}
	snap := b.TakeSnapshot()
	if snap.CountPoints() != 1 || snap.CountLines() != 0 {
		t.Fatalf("after merge: %d points, %d lines, want 1/0", snap.CountPoints(), snap.CountLines())
	}
	if !s.IsDegenerate() {
		t.Fatalf("segment with no lines not reported degenerate")
	}
}

func TestCombineNetPointsAcrossSegmentsFails(t *testing.T) {
	sig, b := newTestBoard(t)
	_, p1, _, _ := makeTrace(t, b, sig, geometry.FromMm(0, 0), geometry.FromMm(10, 0))
	_, q1, _, _ := makeTrace(t, b, sig, geometry.FromMm(0, 5), geometry.FromMm(10, 5))
	stack := undo.NewStack()

	if err := CombineNetPoints(stack, p1, q1); !board.IsKind(err, board.InvalidPrecondition) {
		t.Fatalf("combine across segments = %v, want InvalidPrecondition", err)
	}
}

func TestCombineNetPointsTransfersAnchor(t *testing.T) {
	sig, b := newTestBoard(t)
	via := board.NewVia(b, geometry.FromMm(0, 0), sig, []geometry.Layer{geometry.LayerTop, geometry.LayerBottom})

	s := board.NewNetSegment(b, sig)
	if err := b.AddSegment(s); err != nil {
		t.Fatalf("AddSegment: %v", err)
	}
	anchored := board.NewViaNetPoint(s, geometry.LayerTop, via)
	free := board.NewNetPoint(s, geometry.LayerTop, geometry.FromMm(0, 0))
	far := board.NewNetPoint(s, geometry.LayerTop, geometry.FromMm(10, 0))
	l1 := board.NewNetLine(s, anchored, far, geometry.LengthFromMm(0.3))
	l2 := board.NewNetLine(s, free, far, geometry.LengthFromMm(0.3))
	if err := s.AddElements([]*board.NetPoint{anchored, free, far}, []*board.NetLine{l1, l2}); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	stack := undo.NewStack()

	// Remove the anchored duplicate; its via anchor moves to the free
	// survivor.
	if err := CombineNetPoints(stack, anchored, free); err != nil {
		t.Fatalf("CombineNetPoints: %v", err)
	}
	if free.Via() != via || via.NetPointOnLayer(geometry.LayerTop) != free {
		t.Fatalf("via anchor not transferred to the survivor")
	}
	if err := stack.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if free.Via() != nil || via.NetPointOnLayer(geometry.LayerTop) != anchored {
		t.Fatalf("undo did not restore the original anchoring")
	}
}
