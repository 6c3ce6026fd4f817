package baghchal

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Terminal positions are never expanded, so they only count as leaves when
// they are reached at depth zero.
func (state *GameState) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	if state.IsGameOver() {
		return 0
	}

	var nodes uint64
	for _, move := range state.LegalMoves() {
		child := *state
		child.ApplyMove(move)
		child.SwitchTurn()
		nodes += child.Perft(depth - 1)
	}

	return nodes
}

// DivideEntry is the number of leaf nodes reached after a single root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide splits the perft count of the given depth by root move.
func (state *GameState) Divide(depth int) []DivideEntry {
	if depth <= 0 || state.IsGameOver() {
		return nil
	}

	moves := state.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		child := *state
		child.ApplyMove(move)
		child.SwitchTurn()
		entries = append(entries, DivideEntry{
			Move:  move,
			Nodes: child.Perft(depth - 1),
		})
	}

	return entries
}
