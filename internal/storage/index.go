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
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "goboardeditor/internal/log"
	"goboardeditor/internal/version"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	// IndexDirName stores all per-project ephemeral/index data under the
	// project root.
	IndexDirName  = ".gbe"
	IndexFileName = "index.sqlite"

	// indexSchemaVersion tracks the local SQLite schema for the embedded
	// index. Bump this when you perform breaking schema changes.
	indexSchemaVersion = 1
)

// NetRow is one row of the per-project net index: a net signal with the
// counts of the topology elements bound to it.
type NetRow struct {
	SignalID string
	Name     string
	Segments int
	Points   int
	Lines    int
	Vias     int
	Pads     int
}

// IndexPath returns the full path to the project's embedded index database
// file.
func IndexPath(projectRoot string) string {
	return filepath.Join(projectRoot, IndexDirName, IndexFileName)
}

// InitOrOpenIndex ensures that the per-project SQLite index exists at
// .gbe/index.sqlite, opens the database, enables WAL mode, and ensures the
// meta/version/nets tables exist. The returned *sql.DB is ready for use.
func InitOrOpenIndex(projectRoot string) (*sql.DB, error) {
	l := applog.WithOperation(applog.WithComponent("storage"), "index_init").With(
		slog.String("root", projectRoot),
	)
	if strings.TrimSpace(projectRoot) == "" {
		return nil, errors.New("project root is required")
	}
	if err := os.MkdirAll(filepath.Join(projectRoot, IndexDirName), 0o755); err != nil {
		l.Error("create .gbe dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create .gbe dir: %w", err)
	}

	path := IndexPath(projectRoot)
	// Use a URI with shared cache and set busy timeout. Convert to forward
	// slashes for the SQLite URI.
	uriPath := filepath.ToSlash(path)
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", uriPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON;"); err != nil {
		l.Warn("enable foreign_keys failed", slog.Any("err", err))
	}

	if err := ensureIndexSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure index schema failed", slog.Any("err", err))
		return nil, err
	}

	l.Info("index ready", slog.String("path", path))
	return db, nil
}

func ensureIndexSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS nets (
			signal_id TEXT PRIMARY KEY,
			name      TEXT NOT NULL,
			segments  INTEGER NOT NULL,
			points    INTEGER NOT NULL,
			lines     INTEGER NOT NULL,
			vias      INTEGER NOT NULL,
			pads      INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_nets_name ON nets(name);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure index schema: %w", err)
		}
	}
	// Seed or update the single-row version info.
	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var curSchema int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&curSchema)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`, indexSchemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}

// RebuildNetIndex replaces the nets table content from the given project
// handle. The index is derived data; rebuilding it is always safe.
func RebuildNetIndex(ctx context.Context, db *sql.DB, ph *ProjectHandle) error {
	if ph == nil || ph.Circuit == nil || ph.Board == nil {
		return errors.New("project handle with circuit and board is required")
	}
	rows := make(map[string]*NetRow)
	for _, s := range ph.Circuit.NetSignals() {
		rows[s.ID().String()] = &NetRow{SignalID: s.ID().String(), Name: s.Name()}
	}
	for _, seg := range ph.Board.NetSegments() {
		r := rows[seg.NetSignal().ID().String()]
		if r == nil {
			continue
		}
		r.Segments++
		r.Points += len(seg.Points())
		r.Lines += len(seg.Lines())
	}
	for _, v := range ph.Board.Vias() {
		if sig := v.NetSignal(); sig != nil {
			if r := rows[sig.ID().String()]; r != nil {
				r.Vias++
			}
		}
	}
	for _, p := range ph.Board.FootprintPads() {
		if sig := p.NetSignal(); sig != nil {
			if r := rows[sig.ID().String()]; r != nil {
				r.Pads++
			}
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM nets;"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear nets: %w", err)
	}
	ins, err := tx.PrepareContext(ctx, "INSERT INTO nets(signal_id, name, segments, points, lines, vias, pads) VALUES(?,?,?,?,?,?,?);")
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer ins.Close()
	for _, r := range rows {
		if _, err := ins.ExecContext(ctx, r.SignalID, r.Name, r.Segments, r.Points, r.Lines, r.Vias, r.Pads); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert net: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// QueryNets returns all indexed nets ordered by name.
func QueryNets(ctx context.Context, db *sql.DB) ([]NetRow, error) {
	rows, err := db.QueryContext(ctx, "SELECT signal_id, name, segments, points, lines, vias, pads FROM nets ORDER BY name;")
	if err != nil {
		return nil, fmt.Errorf("query nets: %w", err)
	}
	defer rows.Close()
	var out []NetRow
	for rows.Next() {
		var r NetRow
		if err := rows.Scan(&r.SignalID, &r.Name, &r.Segments, &r.Points, &r.Lines, &r.Vias, &r.Pads); err != nil {
			return nil, fmt.Errorf("scan net: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
