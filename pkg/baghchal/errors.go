package baghchal

import "errors"

var (
	// ErrMalformedInput is returned for move descriptions which are not
	// exactly four integers inside the board's coordinate range.
	ErrMalformedInput = errors.New("malformed input")

	// ErrIllegalSource is returned when the source square does not hold a
	// piece of the side to move.
	ErrIllegalSource = errors.New("no piece of the current player at source")

	// ErrIllegalDestination is returned when the target square can't be
	// reached from the source square.
	ErrIllegalDestination = errors.New("destination not reachable")

	// ErrInvalidPosition is returned for position strings which don't
	// describe a valid game state.
	ErrInvalidPosition = errors.New("invalid position")
)
