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

// Cell represents the contents of a single intersection of the board.
type Cell uint8

const (
	Empty Cell = iota
	Tiger
	Goat
)

func (cell Cell) String() string {
	switch cell {
	case Empty:
		return "empty"
	case Tiger:
		return "tiger"
	case Goat:
		return "goat"
	default:
		return "?"
	}
}

// Side represents one of the two players of a game.
type Side uint8

const (
	Tigers Side = iota
	Goats

	// SideN is the number of sides, useful for indexing per-side arrays.
	SideN = 2
)

// Cell returns the piece which belongs to the given side.
func (side Side) Cell() Cell {
	if side == Tigers {
		return Tiger
	}

	return Goat
}

// Other returns the opponent of the given side.
func (side Side) Other() Side {
	return side ^ 1
}

func (side Side) String() string {
	switch side {
	case Tigers:
		return "Tigers"
	case Goats:
		return "Goats"
	default:
		return "?"
	}
}
