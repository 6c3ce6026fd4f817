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

package match

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/baghchal/pkg/baghchal"
)

// Player is a source of moves for one side of a game.
type Player interface {
	// NextMove blocks until the player has decided on a move for the
	// given state. An error wrapping baghchal.ErrMalformedInput asks for
	// the move to be requested again, io.EOF ends the game.
	NextMove(state *baghchal.GameState) (baghchal.Move, error)
}

// Display shows the progress of a game to its players.
type Display interface {
	Show(state *baghchal.GameState)
	Reject(side baghchal.Side, err error)
	Over(state *baghchal.GameState, reason string)
}

// Game ties a GameState to the players of each of its sides.
type Game struct {
	State   *baghchal.GameState
	Players [baghchal.SideN]Player
	Display Display
}

// Play runs the game until it reaches a terminal state or a player stops
// providing moves. Rejected moves are requested again from the same side
// without touching the state.
func (game *Game) Play() (Result, error) {
	var result Result

	if over, reason := game.State.Termination(); over {
		game.Display.Over(game.State, reason)
		return Result{Over: true, Reason: reason}, nil
	}

	game.Display.Show(game.State)
	for {
		side := game.State.Turn
		logger := logrus.WithField("side", side)

		move, err := game.Players[side].NextMove(game.State)
		switch {
		case err == nil:
		case errors.Is(err, baghchal.ErrMalformedInput):
			logger.WithError(err).Debug("Rejected malformed input")
			result.Rejected++
			game.Display.Reject(side, err)
			continue
		case errors.Is(err, io.EOF):
			logger.Debug("Player stopped providing moves")
			return result, nil
		default:
			return result, err
		}

		logger = logger.WithField("move", move)
		if err := game.State.MovePiece(move); err != nil {
			logger.WithError(err).Debug("Rejected illegal move")
			result.Rejected++
			game.Display.Reject(side, err)
			continue
		}

		logger.Debug("Played move")
		result.Moves++
		game.State.SwitchTurn()

		if over, reason := game.State.Termination(); over {
			logrus.WithField("reason", reason).Debug("Game over")
			result.Over, result.Reason = true, reason
			game.Display.Over(game.State, reason)
			return result, nil
		}

		game.Display.Show(game.State)
	}
}
