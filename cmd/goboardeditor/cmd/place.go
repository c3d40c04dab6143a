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

	"github.com/spf13/cobra"

	"goboardeditor/internal/editor"
	"goboardeditor/internal/geometry"
	"goboardeditor/internal/storage"
	"goboardeditor/internal/undo"
)

var (
	placeX     float64
	placeY     float64
	placeLayer string
)

var placeCmd = &cobra.Command{
	Use:   "place <dir>",
	Short: "Place a net point at a position and save the project",
	Long: `Place a net point at the given position (mm) on the given layer.
An existing point, via, pad or trace at the position is connected to;
placing on a trace splits it at the position.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ph, err := openProject(args[0])
		if err != nil {
			return err
		}
		stack := undo.NewStack()
		pos := geometry.FromMm(placeX, placeY)
		p, err := editor.PlaceNetPoint(stack, ph.Board, pos, geometry.Layer(placeLayer))
		if err != nil {
			return fmt.Errorf("place net point: %w", err)
		}
		if err := storage.Save(ph); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		stack.SetClean()
		fmt.Printf("Net point %s at %s on %s (net %s)\n",
			p.ID(), p.Position(), p.Layer(), p.Segment().NetSignal().Name())
		return nil
	},
}

func init() {
	placeCmd.Flags().Float64Var(&placeX, "x", 0, "x position in mm")
	placeCmd.Flags().Float64Var(&placeY, "y", 0, "y position in mm")
	placeCmd.Flags().StringVar(&placeLayer, "layer", string(geometry.LayerTop), "copper layer")
	_ = placeCmd.MarkFlagRequired("x")
	_ = placeCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(placeCmd)
}
