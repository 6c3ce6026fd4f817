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

package baghchal

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPosition is the position string of a freshly initialized game.
const StartPosition = "t3t/5/5/5/t3t t 20 0"

// NewFromFEN returns the GameState described by the given position string.
func NewFromFEN(fen string) (*GameState, error) {
	var state GameState
	if err := state.SetFEN(fen); err != nil {
		return nil, err
	}

	return &state, nil
}

// SetFEN replaces the state with the one described by the given position
// string. A position string has four space separated fields:
//
//	<rows> <side to move> <goats remaining> <goats killed>
//
// The rows are listed top to bottom and separated by '/'. Inside a row 't'
// is a tiger, 'g' is a goat and the digits 1-5 are runs of empty cells.
// The side to move is either 't' or 'g'. The state is left untouched if
// the string is invalid.
func (state *GameState) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 4 {
		return fmt.Errorf("%w: expected 4 fields, got %d", ErrInvalidPosition, len(fields))
	}

	var parsed GameState

	// Pieces
	rows := strings.Split(fields[0], "/")
	if len(rows) != Size {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidPosition, Size, len(rows))
	}

	for row, rowstr := range rows {
		col := 0
		for _, char := range rowstr {
			if col >= Size {
				return fmt.Errorf("%w: row %d is too long", ErrInvalidPosition, row)
			}

			switch {
			case char == 't':
				parsed.Board[row][col] = Tiger
				col++
			case char == 'g':
				parsed.Board[row][col] = Goat
				col++
			case char >= '1' && char <= '0'+Size:
				col += int(char - '0')
			default:
				return fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidPosition, char, row)
			}
		}

		if col != Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidPosition, row, col)
		}
	}

	// Side to move
	switch fields[1] {
	case "t":
		parsed.Turn = Tigers
	case "g":
		parsed.Turn = Goats
	default:
		return fmt.Errorf("%w: unknown side %q", ErrInvalidPosition, fields[1])
	}

	// Goat counters
	var err error
	if parsed.GoatsRemaining, err = strconv.Atoi(fields[2]); err != nil {
		return fmt.Errorf("%w: goats remaining: %v", ErrInvalidPosition, err)
	}

	if parsed.GoatsKilled, err = strconv.Atoi(fields[3]); err != nil {
		return fmt.Errorf("%w: goats killed: %v", ErrInvalidPosition, err)
	}

	if err := parsed.Validate(); err != nil {
		return err
	}

	*state = parsed
	return nil
}

// FEN returns the position string describing the state.
func (state *GameState) FEN() string {
	var fen strings.Builder

	// Pieces
	for row := 0; row < Size; row++ {
		if row > 0 {
			fen.WriteByte('/')
		}

		gaps := 0
		for col := 0; col < Size; col++ {
			var char byte
			switch state.Board[row][col] {
			case Tiger:
				char = 't'
			case Goat:
				char = 'g'
			default:
				gaps++
				continue
			}

			if gaps > 0 {
				fen.WriteString(strconv.Itoa(gaps))
				gaps = 0
			}

			fen.WriteByte(char)
		}

		if gaps > 0 {
			fen.WriteString(strconv.Itoa(gaps))
		}
	}

	// Side to move
	if state.Turn == Tigers {
		fen.WriteString(" t")
	} else {
		fen.WriteString(" g")
	}

	// Goat counters
	fen.WriteString(" " + strconv.Itoa(state.GoatsRemaining))
	fen.WriteString(" " + strconv.Itoa(state.GoatsKilled))

	return fen.String()
}
