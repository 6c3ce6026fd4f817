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

// Package baghchal implements the rules of a simplified game of Bagh Chal
// played on a 5x5 grid between four Tigers and twenty Goats.
//
// The rules are simplified in a few ways: goats are never placed, both
// sides step orthogonally to an adjacent empty intersection, every goat
// move uses up a goat from the reserve, and the end of the game is
// detected without naming a winner.
package baghchal

import "fmt"

const (
	// TotalGoats is the size of the goats' reserve at the start of a game.
	TotalGoats = 20

	// KillsToEnd is the number of captured goats which ends the game.
	KillsToEnd = 5

	// MinTigers is the number of tigers below which the game ends.
	MinTigers = 2

	// Tigers per game, placed on the corners by InitBoard.
	TotalTigers = 4
)

// Board is a 5x5 grid of intersections indexed by [row][column].
type Board [Size][Size]Cell

// Get returns the contents of the given square.
func (board *Board) Get(sq Square) Cell {
	return board[sq.Row][sq.Col]
}

// Set puts the given cell on the given square.
func (board *Board) Set(sq Square, cell Cell) {
	board[sq.Row][sq.Col] = cell
}

// GameState contains everything needed to continue a game: the board, the
// side to move and the goat counters.
type GameState struct {
	Board Board
	Turn  Side

	// GoatsRemaining is the goats' reserve, decremented on each goat move.
	GoatsRemaining int
	GoatsKilled    int
}

// New returns a GameState ready for the first move of a game.
func New() *GameState {
	state := &GameState{
		GoatsRemaining: TotalGoats,
		GoatsKilled:    0,
	}

	state.InitBoard()
	return state
}

// InitBoard clears the board, places a tiger on each of its corners and
// gives the move to the tigers.
func (state *GameState) InitBoard() {
	state.Board = Board{}

	state.Board[0][0] = Tiger
	state.Board[0][Size-1] = Tiger
	state.Board[Size-1][0] = Tiger
	state.Board[Size-1][Size-1] = Tiger

	state.Turn = Tigers
}

// SwitchTurn gives the move to the other side.
func (state *GameState) SwitchTurn() {
	state.Turn = state.Turn.Other()
}

// up, down, left, right
var offsets = [4]Square{
	{-1, 0},
	{+1, 0},
	{0, -1},
	{0, +1},
}

// AvailableMoves returns the empty squares orthogonally adjacent to the
// given square. Both tigers and goats move the same way.
func (state *GameState) AvailableMoves(sq Square) []Square {
	if !sq.Valid() {
		return nil
	}

	moves := make([]Square, 0, len(offsets))
	for _, offset := range offsets {
		target := Square{sq.Row + offset.Row, sq.Col + offset.Col}
		if target.Valid() && state.Board.Get(target) == Empty {
			moves = append(moves, target)
		}
	}

	return moves
}

// CanMove checks if the given move is legal for the side to move. The
// returned error describes why the move is illegal.
func (state *GameState) CanMove(move Move) error {
	if !move.From.Valid() || !move.To.Valid() {
		return fmt.Errorf("%w: move %s is off the board", ErrMalformedInput, move)
	}

	if state.Board.Get(move.From) != state.Turn.Cell() {
		return fmt.Errorf("%w: %s", ErrIllegalSource, move.From)
	}

	for _, target := range state.AvailableMoves(move.From) {
		if target == move.To {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrIllegalDestination, move)
}

// MovePiece validates and plays the given move for the side to move. An
// illegal move leaves the state untouched. The turn is not switched.
func (state *GameState) MovePiece(move Move) error {
	if err := state.CanMove(move); err != nil {
		return err
	}

	state.ApplyMove(move)
	return nil
}

// ApplyMove plays the given move for the side to move without checking
// its legality. A tiger move resolves captures while a goat move uses up
// a goat from the reserve.
func (state *GameState) ApplyMove(move Move) {
	state.Board.Set(move.To, state.Turn.Cell())
	state.Board.Set(move.From, Empty)

	switch state.Turn {
	case Tigers:
		if killed, ok := state.CalculateKilledGoat(move); ok {
			state.Board.Set(killed, Empty)
			state.GoatsKilled++
		}
	case Goats:
		state.GoatsRemaining--
	}
}

// CalculateKilledGoat returns the square of the goat captured by the given
// tiger move, if any. The captured goat sits on the midpoint of the move.
func (state *GameState) CalculateKilledGoat(move Move) (Square, bool) {
	// coordinates are never negative, so integer division floors
	mid := Square{
		Row: (move.From.Row + move.To.Row) / 2,
		Col: (move.From.Col + move.To.Col) / 2,
	}

	if state.Board.Get(mid) == Goat {
		return mid, true
	}

	return Square{}, false
}

// MakeMove plays the given move and, if it was legal, switches the turn.
func (state *GameState) MakeMove(move Move) error {
	if err := state.MovePiece(move); err != nil {
		return err
	}

	state.SwitchTurn()
	return nil
}

// LegalMoves generates every legal move of the side to move.
func (state *GameState) LegalMoves() []Move {
	var moves []Move

	piece := state.Turn.Cell()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			from := Square{row, col}
			if state.Board.Get(from) != piece {
				continue
			}

			for _, to := range state.AvailableMoves(from) {
				moves = append(moves, Move{from, to})
			}
		}
	}

	return moves
}

// Count returns the number of squares holding the given cell.
func (state *GameState) Count(cell Cell) int {
	n := 0
	for _, row := range state.Board {
		for _, c := range row {
			if c == cell {
				n++
			}
		}
	}

	return n
}

// IsGameOver checks if the game has reached a terminal state.
func (state *GameState) IsGameOver() bool {
	over, _ := state.Termination()
	return over
}

// Termination reports whether the game is over and which condition ended
// it. The reason never names a winner.
func (state *GameState) Termination() (bool, string) {
	switch {
	case state.GoatsRemaining == 0:
		return true, "goat reserve exhausted"
	case state.GoatsKilled >= KillsToEnd:
		return true, "five goats captured"
	case state.Count(Tiger) < MinTigers:
		return true, "fewer than two tigers"
	}

	return false, ""
}

// Validate checks the counting invariants of the state.
func (state *GameState) Validate() error {
	tigers, goats := state.Count(Tiger), state.Count(Goat)

	switch {
	case state.Turn != Tigers && state.Turn != Goats:
		return fmt.Errorf("%w: unknown side to move", ErrInvalidPosition)
	case tigers > TotalTigers:
		return fmt.Errorf("%w: %d tigers on the board", ErrInvalidPosition, tigers)
	case state.GoatsRemaining < 0 || state.GoatsKilled < 0:
		return fmt.Errorf("%w: negative goat counters", ErrInvalidPosition)
	case state.GoatsKilled > KillsToEnd:
		return fmt.Errorf("%w: %d goats killed", ErrInvalidPosition, state.GoatsKilled)
	case goats+state.GoatsKilled+state.GoatsRemaining > TotalGoats:
		return fmt.Errorf("%w: more than %d goats in the game", ErrInvalidPosition, TotalGoats)
	}

	return nil
}
