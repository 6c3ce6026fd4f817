package baghchal_test

import (
	"testing"

	"laptudirm.com/x/baghchal/pkg/baghchal"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		nodes uint64
	}{
		{baghchal.StartPosition, 0, 1},
		{baghchal.StartPosition, 1, 8},
		// the goats have nothing on the board to move
		{baghchal.StartPosition, 2, 0},

		{"t3t/5/2g2/5/t3t g 19 0", 1, 4},
		{"t3t/5/2g2/5/t3t g 19 0", 2, 32},

		// terminal positions are never expanded
		{"t4/5/5/5/5 t 20 0", 0, 1},
		{"t4/5/5/5/5 t 20 0", 1, 0},
		{"t3t/5/2g2/5/t3t g 1 0", 2, 0},
	}

	for _, test := range tests {
		state := mustFEN(t, test.fen)
		before := *state

		if nodes := state.Perft(test.depth); nodes != test.nodes {
			t.Errorf("Perft(%q, %d) = %d, want %d", test.fen, test.depth, nodes, test.nodes)
		}

		if *state != before {
			t.Errorf("Perft(%q, %d) modified the state", test.fen, test.depth)
		}
	}
}

func TestDivide(t *testing.T) {
	state := mustFEN(t, "t3t/5/2g2/5/t3t g 19 0")

	entries := state.Divide(2)
	if len(entries) != 4 {
		t.Fatalf("expected 4 root moves, got %d", len(entries))
	}

	var total uint64
	for _, entry := range entries {
		if entry.Nodes != 8 {
			t.Errorf("%s: expected 8 nodes, got %d", entry.Move, entry.Nodes)
		}
		total += entry.Nodes
	}

	if total != state.Perft(2) {
		t.Errorf("divide total %d does not match perft %d", total, state.Perft(2))
	}

	if entries := state.Divide(0); entries != nil {
		t.Errorf("Divide(0) should be empty, got %v", entries)
	}
}
