/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package cmd implements the goboardeditor command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goboardeditor/internal/config"
	"goboardeditor/internal/crash"
	applog "goboardeditor/internal/log"
	"goboardeditor/internal/storage"
	"goboardeditor/internal/version"
)

var (
	// Global flags
	verbose bool

	// currentProject is the handle of the project an executing command has
	// open, for the crash handler.
	currentProject *storage.ProjectHandle
)

var rootCmd = &cobra.Command{
	Use:   "goboardeditor",
	Short: "GoBoardEditor - undoable PCB net topology editing",
	Long: `GoBoardEditor edits the net topology of a printed circuit board:
net segments, net points, net lines, vias and footprint pads, with full
undo/redo history and transactional project persistence.

Examples:
  goboardeditor init ./demo "Demo Board" --net GND --net VCC
  goboardeditor open ./demo                # Print a project summary
  goboardeditor place ./demo --x 1.5 --y 2.0
  goboardeditor nets ./demo                # List indexed nets`,
	Version: version.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.Defaults()
		}
		opts := applog.Options{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.Source,
			File:      cfg.Logging.File,
		}
		if verbose {
			opts.Level = "debug"
		}
		applog.Init(opts)
	},
}

// Execute runs the root command.
func Execute() {
	defer func() { crash.Recover(currentProject) }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
