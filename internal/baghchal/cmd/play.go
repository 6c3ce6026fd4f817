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
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/baghchal/pkg/baghchal"
	"laptudirm.com/x/baghchal/pkg/console"
	"laptudirm.com/x/baghchal/pkg/match"
)

// baghchal play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game between two players at the same terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game of Bagh Chal where both sides are
			played from the same terminal, one move per line.

			A move is four numbers separated by spaces: the row and
			column of the piece to move followed by the row and column
			it should move to. Rows and columns are counted from 0 at
			the top left corner of the board.

			Invalid moves are reported and the same side is asked to
			move again. The game stops once it is over or the input
			runs out.`),
		Example: heredoc.Doc(`
			$ baghchal play
			$ baghchal play --position "t3t/5/2g2/5/t3t g 19 0"
			$ printf '0 0 1 0\n' | baghchal play`),

		RunE: func(cmd *cobra.Command, args []string) error {
			position, _ := cmd.Flags().GetString("position")
			state, err := baghchal.NewFromFEN(position)
			if err != nil {
				return err
			}

			in, out := cmd.InOrStdin(), cmd.OutOrStdout()

			// Only prompt when a person is typing the moves.
			var prompt io.Writer
			if file, ok := in.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
				prompt = out
			}

			player := console.NewPlayer(in, prompt)
			game := match.Game{
				State:   state,
				Players: [baghchal.SideN]match.Player{player, player},
				Display: console.NewDisplay(out, settings),
			}

			logrus.WithField("position", position).Debug("Starting game")
			result, err := game.Play()
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"moves":    result.Moves,
				"rejected": result.Rejected,
				"position": state.FEN(),
			}).Debug(result)
			return nil
		},
	}

	cmd.Flags().StringP("position", "p", baghchal.StartPosition, "Position to start the game from")

	return cmd
}
