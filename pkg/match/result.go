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

import "fmt"

// Result represents how a single game came to a stop. No winner is ever
// declared: a finished game only records the condition which ended it.
type Result struct {
	// Over is false if the game was abandoned before reaching a terminal
	// state, like when the players ran out of input.
	Over   bool
	Reason string

	Moves    int // accepted moves
	Rejected int // malformed or illegal moves
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	if !result.Over {
		return fmt.Sprintf("abandoned after %d moves", result.Moves)
	}

	return fmt.Sprintf("game over after %d moves: %s", result.Moves, result.Reason)
}
