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

import "goboardeditor/internal/geometry"

// Scene supplies geometric hit-testing to the editing algorithms: which
// elements exist at a position. In the full application this is backed by
// the rendering scene with grab areas and tolerances; Board itself provides
// the exact-position reference implementation used headless and in tests.
type Scene interface {
	NetPointsAt(pos geometry.Point, layer geometry.Layer) []*NetPoint
	NetLinesAt(pos geometry.Point, layer geometry.Layer) []*NetLine
	ViasAt(pos geometry.Point) []*Via
	PadsAt(pos geometry.Point, layer geometry.Layer) []*FootprintPad
}

var _ Scene = (*Board)(nil)
