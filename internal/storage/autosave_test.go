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
	"errors"
	"testing"
	"time"
)

type fakeHistory struct {
	active bool
	clean  bool
}

func (h *fakeHistory) IsCommandActive() bool { return h.active }
func (h *fakeHistory) IsClean() bool         { return h.clean }
func (h *fakeHistory) SetClean()             { h.clean = true }

func TestAutosaveDefersWhileCommandActive(t *testing.T) {
	h := &fakeHistory{active: true}
	saves := 0
	a := NewAutosaver(time.Minute, h, func() error { saves++; return nil })

	saved, err := a.TickOnce()
	if err != nil || saved {
		t.Fatalf("TickOnce with active command: saved=%v err=%v", saved, err)
	}
	if saves != 0 {
		t.Fatalf("save ran mid-command")
	}
}

func TestAutosaveSkipsCleanHistory(t *testing.T) {
	h := &fakeHistory{clean: true}
	saves := 0
	a := NewAutosaver(time.Minute, h, func() error { saves++; return nil })

	saved, err := a.TickOnce()
	if err != nil || saved || saves != 0 {
		t.Fatalf("TickOnce on clean history: saved=%v saves=%d err=%v", saved, saves, err)
	}
}

func TestAutosaveSavesDirtyProject(t *testing.T) {
	h := &fakeHistory{}
	saves := 0
	a := NewAutosaver(time.Minute, h, func() error { saves++; return nil })

	saved, err := a.TickOnce()
	if err != nil {
		t.Fatalf("TickOnce: %v", err)
	}
	if !saved || saves != 1 || !h.clean {
		t.Fatalf("dirty project not saved: saved=%v saves=%d clean=%v", saved, saves, h.clean)
	}
	// Second tick finds a clean history and does nothing.
	saved, err = a.TickOnce()
	if err != nil || saved || saves != 1 {
		t.Fatalf("second tick: saved=%v saves=%d err=%v", saved, saves, err)
	}
}

func TestAutosaveKeepsDirtyOnSaveFailure(t *testing.T) {
	h := &fakeHistory{}
	boom := errors.New("disk full")
	a := NewAutosaver(time.Minute, h, func() error { return boom })

	saved, err := a.TickOnce()
	if saved || !errors.Is(err, boom) {
		t.Fatalf("TickOnce: saved=%v err=%v", saved, err)
	}
	if h.clean {
		t.Fatalf("failed save marked the history clean")
	}
}

func TestAutosaveUnconfigured(t *testing.T) {
	a := NewAutosaver(time.Minute, nil, nil)
	if _, err := a.TickOnce(); err == nil {
		t.Fatalf("unconfigured autosaver ticked")
	}
}
