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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"goboardeditor/internal/storage"
)

var netsCmd = &cobra.Command{
	Use:   "nets <dir>",
	Short: "List the nets of a board project from the embedded index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ph, err := openProject(args[0])
		if err != nil {
			return err
		}
		db, err := storage.InitOrOpenIndex(ph.Root)
		if err != nil {
			return fmt.Errorf("open index: %w", err)
		}
		defer db.Close()
		if err := storage.RebuildNetIndex(cmd.Context(), db, ph); err != nil {
			return fmt.Errorf("rebuild net index: %w", err)
		}
		rows, err := storage.QueryNets(cmd.Context(), db)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NET\tSEGMENTS\tPOINTS\tLINES\tVIAS\tPADS")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n", r.Name, r.Segments, r.Points, r.Lines, r.Vias, r.Pads)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(netsCmd)
}
