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
	"goboardeditor/internal/board"
	"goboardeditor/internal/geometry"
	"goboardeditor/internal/undo"
)

// PlaceNetPoint places (or reuses) a net point at pos on layer and records
// the operation in the given history stack. Reusing an existing point is a
// no-op that leaves the history untouched but still returns the point.
// Hit-testing uses the board's exact-position queries.
func PlaceNetPoint(stack *undo.Stack, b *board.Board, pos geometry.Point, layer geometry.Layer) (*board.NetPoint, error) {
	return PlaceNetPointOn(stack, b, b, pos, layer)
}

// PlaceNetPointOn is PlaceNetPoint with an explicit hit-testing scene,
// e.g. the rendering layer's grab-area queries.
func PlaceNetPointOn(stack *undo.Stack, b *board.Board, scene board.Scene, pos geometry.Point, layer geometry.Layer) (*board.NetPoint, error) {
	cmd := NewPlaceNetPointCmd(b, scene, pos, layer)
	if err := stack.Execute(cmd); err != nil {
		return nil, err
	}
	return cmd.NetPoint(), nil
}

// CombineNetSegments merges toRemove into the segment of junction and
// records the operation in the history stack.
func CombineNetSegments(stack *undo.Stack, toRemove *board.NetSegment, junction *board.NetPoint) error {
	return stack.Execute(NewCombineNetSegmentsCmd(toRemove, junction))
}

// CombineNetPoints merges toRemove into result (both of the same segment)
// and records the operation in the history stack.
func CombineNetPoints(stack *undo.Stack, toRemove, result *board.NetPoint) error {
	return stack.Execute(NewCombineNetPointsCmd(toRemove, result))
}
