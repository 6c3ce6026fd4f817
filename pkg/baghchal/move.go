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

// Size is the width and height of the board.
const Size = 5

// Square is a (row, column) pair identifying an intersection.
type Square struct {
	Row, Col int
}

// Valid checks if the square lies on the board.
func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

func (sq Square) String() string {
	return fmt.Sprintf("%d %d", sq.Row, sq.Col)
}

// Move moves the piece on From to To.
type Move struct {
	From, To Square
}

// NewMove is a shorthand for building a Move out of raw coordinates.
func NewMove(row, col, targetRow, targetCol int) Move {
	return Move{
		From: Square{row, col},
		To:   Square{targetRow, targetCol},
	}
}

// String returns the move in the same format accepted by ParseMove.
func (move Move) String() string {
	return move.From.String() + " " + move.To.String()
}

// ParseMove parses a move description of four whitespace separated
// integers: source row, source column, target row and target column.
func ParseMove(movstr string) (Move, error) {
	fields := strings.Fields(movstr)
	if len(fields) != 4 {
		return Move{}, fmt.Errorf("%w: expected 4 numbers, got %d", ErrMalformedInput, len(fields))
	}

	var coords [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, field)
		}

		if n < 0 || n >= Size {
			return Move{}, fmt.Errorf("%w: %d is out of range [0,%d)", ErrMalformedInput, n, Size)
		}

		coords[i] = n
	}

	return NewMove(coords[0], coords[1], coords[2], coords[3]), nil
}
