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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"goboardeditor/internal/board"
	"goboardeditor/internal/geometry"
)

// buildProjectFixture builds a small but complete board: two nets, a via,
// a pad and one segment whose trace runs pad -> free point -> via.
func buildProjectFixture(t *testing.T) (*board.Circuit, *board.Board) {
	t.Helper()
	c := board.NewCircuit()
	gnd := c.AddNetSignal("GND")
	c.AddNetSignal("VCC")
	b := board.NewBoard(c, "fixture board")

	via := board.NewVia(b, geometry.FromMm(10, 10), gnd, []geometry.Layer{geometry.LayerTop, geometry.LayerBottom})
	pad := board.NewFootprintPad(b, "U1:4", geometry.FromMm(0, 0), geometry.LayerTop, gnd)

	s := board.NewNetSegment(b, gnd)
	if err := b.AddSegment(s); err != nil {
		t.Fatalf("AddSegment: %v", err)
	}
	pp := board.NewPadNetPoint(s, pad)
	mid := board.NewNetPoint(s, geometry.LayerTop, geometry.FromMm(5, 5))
	vp := board.NewViaNetPoint(s, geometry.LayerTop, via)
	l1 := board.NewNetLine(s, pp, mid, geometry.LengthFromMm(0.3))
	l2 := board.NewNetLine(s, mid, vp, geometry.LengthFromMm(0.3))
	if err := s.AddElements([]*board.NetPoint{pp, mid, vp}, []*board.NetLine{l1, l2}); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	return c, b
}

func TestInitSaveOpenRoundTrip(t *testing.T) {
	c, b := buildProjectFixture(t)
	root := filepath.Join(t.TempDir(), "proj")

	ph, err := InitProject(root, c, b)
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	for _, d := range []string{"fabrication", BackupsDirName} {
		if st, err := os.Stat(filepath.Join(root, d)); err != nil || !st.IsDir() {
			t.Fatalf("subdir %s not scaffolded: %v", d, err)
		}
	}
	if _, err := os.Stat(ph.ManifestPath); err != nil {
		t.Fatalf("manifest not written: %v", err)
	}

	got, err := Open(root)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got.Board.Name() != "fixture board" {
		t.Fatalf("board name = %q", got.Board.Name())
	}
	if got.Circuit.NetSignalByName("VCC") == nil {
		t.Fatalf("empty net lost on round trip")
	}
	if !got.Board.TakeSnapshot().Equal(b.TakeSnapshot()) {
		t.Fatalf("topology changed across save/load")
	}
}

func TestSaveWritesTimestampedBackup(t *testing.T) {
	c, b := buildProjectFixture(t)
	root := filepath.Join(t.TempDir(), "proj")
	ph, err := InitProject(root, c, b)
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}

	// The initial save had no manifest to back up; the second one does.
	if err := Save(ph); err != nil {
		t.Fatalf("Save: %v", err)
	}
	baks, err := filepath.Glob(filepath.Join(root, BackupsDirName, ManifestFileName+".*.bak"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(baks) != 1 {
		t.Fatalf("backups after second save = %v, want one", baks)
	}
}

func TestOpenFallsBackToLatestBackup(t *testing.T) {
	c, b := buildProjectFixture(t)
	root := filepath.Join(t.TempDir(), "proj")
	ph, err := InitProject(root, c, b)
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	if err := Save(ph); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(ph.ManifestPath, []byte("{ not json"), 0o644); err != nil {
		t.Fatalf("corrupt manifest: %v", err)
	}

	got, err := Open(root)
	if err != nil {
		t.Fatalf("Open after corruption: %v", err)
	}
	if !got.Board.TakeSnapshot().Equal(b.TakeSnapshot()) {
		t.Fatalf("backup recovery lost topology")
	}
}

func TestOpenWithoutManifestOrBackupFails(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatalf("Open of empty dir succeeded")
	}
}

func TestDecodeRejectsNewerFormatVersion(t *testing.T) {
	c, b := buildProjectFixture(t)
	doc := ToDocument(c, b)
	doc.FormatVersion = FormatVersion + 1
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, _, err := decodeManifest(data); err == nil {
		t.Fatalf("newer format accepted")
	}
}

func TestSaveAsMovesProject(t *testing.T) {
	c, b := buildProjectFixture(t)
	root := filepath.Join(t.TempDir(), "proj")
	ph, err := InitProject(root, c, b)
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	newRoot := filepath.Join(t.TempDir(), "copy")
	if err := SaveAs(ph, newRoot); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if ph.Root != newRoot {
		t.Fatalf("handle root not updated: %s", ph.Root)
	}
	if _, err := os.Stat(filepath.Join(newRoot, ManifestFileName)); err != nil {
		t.Fatalf("manifest missing in new root: %v", err)
	}
	if _, err := Open(newRoot); err != nil {
		t.Fatalf("Open of new root: %v", err)
	}
}

func TestAutosaveCrashSnapshot(t *testing.T) {
	c, b := buildProjectFixture(t)
	root := filepath.Join(t.TempDir(), "proj")
	ph, err := InitProject(root, c, b)
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}

	path, err := AutosaveCrashSnapshot(ph)
	if err != nil {
		t.Fatalf("AutosaveCrashSnapshot: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(root, BackupsDirName) {
		t.Fatalf("snapshot outside backups dir: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	gc, gb, err := decodeManifest(data)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if gc.NetSignalByName("GND") == nil || !gb.TakeSnapshot().Equal(b.TakeSnapshot()) {
		t.Fatalf("snapshot does not round-trip the model")
	}
}

func TestAutosaveCrashSnapshotWithoutBoard(t *testing.T) {
	ph := &ProjectHandle{Root: t.TempDir()}
	if _, err := AutosaveCrashSnapshot(ph); err == nil {
		t.Fatalf("snapshot of empty handle succeeded")
	}
}
