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
	"context"
	"errors"
	"log/slog"
	"time"

	applog "goboardeditor/internal/log"
)

// History is the view of the undo stack the autosaver needs: whether a
// command is executing right now, and whether the state differs from the
// last save.
type History interface {
	IsCommandActive() bool
	IsClean() bool
	SetClean()
}

// Autosaver periodically persists a dirty project. A tick is skipped while a
// command is executing (saving mid-mutation would capture a half-applied
// state) and while the history is clean.
type Autosaver struct {
	interval time.Duration
	history  History
	save     func() error
	log      *slog.Logger
}

// NewAutosaver creates an autosaver; save persists the project.
func NewAutosaver(interval time.Duration, history History, save func() error) *Autosaver {
	return &Autosaver{
		interval: interval,
		history:  history,
		save:     save,
		log:      applog.WithComponent("autosave"),
	}
}

// Run ticks until ctx is cancelled. Save failures are logged and retried on
// the next tick.
func (a *Autosaver) Run(ctx context.Context) {
	t := time.NewTicker(a.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if saved, err := a.TickOnce(); err != nil {
				a.log.Error("autosave failed", slog.Any("err", err))
			} else if saved {
				a.log.Info("autosaved project")
			}
		}
	}
}

// TickOnce performs a single autosave attempt and reports whether a save
// happened.
func (a *Autosaver) TickOnce() (bool, error) {
	if a.history == nil || a.save == nil {
		return false, errors.New("autosaver not configured")
	}
	if a.history.IsCommandActive() {
		a.log.Debug("command active, deferring autosave")
		return false, nil
	}
	if a.history.IsClean() {
		return false, nil
	}
	if err := a.save(); err != nil {
		return false, err
	}
	a.history.SetClean()
	return true, nil
}
