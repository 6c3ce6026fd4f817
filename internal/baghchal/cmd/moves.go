package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"laptudirm.com/x/baghchal/pkg/baghchal"
)

// baghchal moves
func Moves() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves [row col]",
		Short: "List the moves available in a position",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			position, _ := cmd.Flags().GetString("position")
			state, err := baghchal.NewFromFEN(position)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			// Without a square, list every legal move of the side to move.
			if len(args) == 0 {
				for _, move := range state.LegalMoves() {
					fmt.Fprintln(out, move)
				}
				return nil
			}

			var sq baghchal.Square
			if sq.Row, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("%w: row %q", baghchal.ErrMalformedInput, args[0])
			}
			if sq.Col, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("%w: column %q", baghchal.ErrMalformedInput, args[1])
			}
			if !sq.Valid() {
				return fmt.Errorf("%w: square %s is off the board", baghchal.ErrMalformedInput, sq)
			}

			for _, target := range state.AvailableMoves(sq) {
				fmt.Fprintln(out, target)
			}

			return nil
		},
	}

	cmd.Flags().StringP("position", "p", baghchal.StartPosition, "Position to list the moves of")

	return cmd
}
