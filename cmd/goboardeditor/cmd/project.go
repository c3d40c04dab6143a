/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"goboardeditor/internal/board"
	applog "goboardeditor/internal/log"
	"goboardeditor/internal/storage"
)

var initNets []string

var initCmd = &cobra.Command{
	Use:   "init <dir> <name>",
	Short: "Create a new board project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		l := applog.WithComponent("cli")
		l.Info("init project", slog.String("root", abs), slog.String("name", args[1]))

		c := board.NewCircuit()
		for _, n := range initNets {
			c.AddNetSignal(n)
		}
		b := board.NewBoard(c, args[1])
		ph, err := storage.InitProject(abs, c, b)
		if err != nil {
			return fmt.Errorf("init project: %w", err)
		}
		currentProject = ph
		if err := rebuildIndex(cmd.Context(), ph); err != nil {
			return err
		}
		fmt.Printf("Created project at %s\n", abs)
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <dir>",
	Short: "Open a board project and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ph, err := openProject(args[0])
		if err != nil {
			return err
		}
		if err := rebuildIndex(cmd.Context(), ph); err != nil {
			return err
		}
		snap := ph.Board.TakeSnapshot()
		fmt.Printf("Opened board: %s\n", ph.Board.Name())
		fmt.Printf("Nets:     %d\n", len(ph.Circuit.NetSignals()))
		fmt.Printf("Segments: %d\n", len(ph.Board.NetSegments()))
		fmt.Printf("Points:   %d\n", snap.CountPoints())
		fmt.Printf("Lines:    %d\n", snap.CountLines())
		fmt.Printf("Vias:     %d\n", len(ph.Board.Vias()))
		fmt.Printf("Pads:     %d\n", len(ph.Board.FootprintPads()))
		return nil
	},
}

var saveCmd = &cobra.Command{
	Use:   "save <dir>",
	Short: "Re-save a board project (creates a backup)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ph, err := openProject(args[0])
		if err != nil {
			return err
		}
		if err := storage.Save(ph); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		fmt.Printf("Saved %s\n", ph.ManifestPath)
		return nil
	},
}

func openProject(dir string) (*storage.ProjectHandle, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	applog.WithComponent("cli").Info("open project", slog.String("root", abs))
	ph, err := storage.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	currentProject = ph
	return ph, nil
}

func rebuildIndex(ctx context.Context, ph *storage.ProjectHandle) error {
	db, err := storage.InitOrOpenIndex(ph.Root)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer db.Close()
	if err := storage.RebuildNetIndex(ctx, db, ph); err != nil {
		return fmt.Errorf("rebuild net index: %w", err)
	}
	return nil
}

func init() {
	initCmd.Flags().StringArrayVar(&initNets, "net", nil, "net signal to create (repeatable)")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(saveCmd)
}
