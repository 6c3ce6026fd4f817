package baghchal_test

import (
	"errors"
	"testing"

	"laptudirm.com/x/baghchal/pkg/baghchal"
)

func TestStartPosition(t *testing.T) {
	if fen := baghchal.New().FEN(); fen != baghchal.StartPosition {
		t.Errorf("New().FEN() = %q, want %q", fen, baghchal.StartPosition)
	}

	state := mustFEN(t, baghchal.StartPosition)
	if *state != *baghchal.New() {
		t.Errorf("StartPosition does not describe a new game")
	}
}

func TestFENRoundTrip(t *testing.T) {
	positions := []string{
		baghchal.StartPosition,
		"t3t/5/2tg1/5/t4 t 19 0",
		"gggtg/5/5/5/t2tt g 10 3",
		"5/1t1t1/2g2/1t1t1/5 g 1 5",
		"5/5/5/5/5 t 0 0",
	}

	for _, fen := range positions {
		state := mustFEN(t, fen)
		if got := state.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestSetFENRejectsInvalidPositions(t *testing.T) {
	positions := []string{
		"",
		"t3t/5/5/5/t3t t 20",
		"t3t/5/5/5/t3t t 20 0 1",
		"t3t/5/5/5 t 20 0",
		"t3t/5/5/5/t3t/5 t 20 0",
		"t3t/5/5/5/t3tt t 20 0",
		"t3t/5/5/5/t2t t 20 0",
		"t3x/5/5/5/t3t t 20 0",
		"t6/5/5/5/t3t t 20 0",
		"t3t/5/5/5/t3t x 20 0",
		"t3t/5/5/5/t3t t twenty 0",
		"t3t/5/5/5/t3t t 20 none",
		"tt3/tt3/t4/5/5 t 20 0",
		"t3t/5/5/5/t3t t 14 6",
		"ggggg/5/5/5/t3t t 20 0",
		"t3t/5/5/5/t3t t -1 0",
		"t3t/5/5/5/t3t t 10 -1",
	}

	for _, fen := range positions {
		state := baghchal.New()
		before := *state

		if err := state.SetFEN(fen); !errors.Is(err, baghchal.ErrInvalidPosition) {
			t.Errorf("SetFEN(%q): expected ErrInvalidPosition, got %v", fen, err)
		}

		if *state != before {
			t.Errorf("SetFEN(%q) modified the state", fen)
		}
	}
}
