// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/baghchal/internal/util"
	"laptudirm.com/x/baghchal/pkg/baghchal"
)

// baghchal perft
func Perft() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perft depth",
		Short: "Count the leaf nodes of the move tree of a position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`perft walks every sequence of legal moves of the given
			length from a position and counts where they end up. It is
			meant for checking the move generator against known counts.

			Finished games are not searched any further, so they only
			count when they are reached on the last move.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := strconv.Atoi(args[0])
			if err != nil || depth < 0 {
				return fmt.Errorf("invalid depth %q", args[0])
			}

			position, _ := cmd.Flags().GetString("position")
			state, err := baghchal.NewFromFEN(position)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			divide, _ := cmd.Flags().GetBool("divide")

			util.StartSpinner(fmt.Sprintf("perft %d", depth))
			start := time.Now()

			var nodes uint64
			if divide && depth > 0 {
				entries := state.Divide(depth)
				util.PauseSpinner()

				for _, entry := range entries {
					fmt.Fprintf(out, "%s: %d\n", entry.Move, entry.Nodes)
					nodes += entry.Nodes
				}
				fmt.Fprintln(out)
			} else {
				nodes = state.Perft(depth)
				util.PauseSpinner()
			}

			logrus.WithFields(logrus.Fields{
				"depth":    depth,
				"position": position,
				"elapsed":  time.Since(start),
			}).Debug("Perft finished")

			fmt.Fprintf(out, "nodes: %d\n", nodes)
			return nil
		},
	}

	cmd.Flags().StringP("position", "p", baghchal.StartPosition, "Position to search from")
	cmd.Flags().BoolP("divide", "d", false, "Show the node count of each root move")

	return cmd
}
