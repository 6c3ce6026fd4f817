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

// Package console implements the text interface of a game: a Player which
// reads moves line by line and a Display which draws the board.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"laptudirm.com/x/baghchal/pkg/baghchal"
	"laptudirm.com/x/baghchal/pkg/config"
)

const rule = "===================="

// Display draws games as text onto a writer.
type Display struct {
	out   io.Writer
	cells [3]string // indexed by baghchal.Cell
}

// NewDisplay returns a Display writing to out with the symbols and colour
// settings from the given configuration.
func NewDisplay(out io.Writer, cfg config.Config) *Display {
	tiger := color.New(color.FgHiRed, color.Bold)
	goat := color.New(color.FgHiGreen)
	if !cfg.Color {
		tiger.DisableColor()
		goat.DisableColor()
	}

	var display Display
	display.out = out
	display.cells[baghchal.Empty] = cfg.Symbols.Empty
	display.cells[baghchal.Tiger] = tiger.Sprint(cfg.Symbols.Tiger)
	display.cells[baghchal.Goat] = goat.Sprint(cfg.Symbols.Goat)
	return &display
}

// Show prints the goat counters, the side to move and the board.
func (display *Display) Show(state *baghchal.GameState) {
	fmt.Fprintf(display.out, "Goats killed: %d\n", state.GoatsKilled)
	fmt.Fprintf(display.out, "\n%s turn:\n\n", state.Turn)
	if state.Turn == baghchal.Goats {
		fmt.Fprintf(display.out, "\nREMAINING GOATS: %d\n", state.GoatsRemaining)
	}

	display.Board(state)
}

// Board prints the board alone.
func (display *Display) Board(state *baghchal.GameState) {
	fmt.Fprintln(display.out, rule)
	for row := 0; row < baghchal.Size; row++ {
		fmt.Fprint(display.out, "\n|\t|\t|\t|\t|\n")
		for col := 0; col < baghchal.Size; col++ {
			fmt.Fprint(display.out, display.cells[state.Board[row][col]]+"\t")
		}
		fmt.Fprint(display.out, "\n|\t|\t|\t|\t|\n")
	}
	fmt.Fprintln(display.out, rule)
}

// Reject tells the player why their move was not accepted.
func (display *Display) Reject(side baghchal.Side, err error) {
	switch {
	case errors.Is(err, baghchal.ErrMalformedInput):
		fmt.Fprintln(display.out, "Invalid input! Please enter four space-separated numbers.")
	case errors.Is(err, baghchal.ErrIllegalSource):
		fmt.Fprintln(display.out, "The selected coordinate doesn't have a piece of the current player!")
	case errors.Is(err, baghchal.ErrIllegalDestination):
		fmt.Fprintln(display.out, "Invalid Move!!")
	default:
		fmt.Fprintf(display.out, "%s: %v\n", side, err)
	}
}

// Over announces the end of the game and the condition which caused it.
func (display *Display) Over(state *baghchal.GameState, reason string) {
	display.Board(state)
	fmt.Fprintln(display.out, "Game over!")
	fmt.Fprintf(display.out, "(%s)\n", reason)
}
