package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"laptudirm.com/x/baghchal/pkg/baghchal"
)

// Player reads one move per line. A single Player can serve both sides of
// a game played at the same terminal.
type Player struct {
	reader *bufio.Reader
	prompt io.Writer
}

// NewPlayer returns a Player reading moves from in. If prompt isn't nil, a
// prompt naming the side to move is written to it before each read.
func NewPlayer(in io.Reader, prompt io.Writer) *Player {
	return &Player{
		reader: bufio.NewReader(in),
		prompt: prompt,
	}
}

// NextMove reads and parses the next line of input. Lines of any length
// are consumed whole, so an overlong line is reported as malformed input
// and the following line is read on the next call. It returns io.EOF once
// the input is exhausted.
func (player *Player) NextMove(state *baghchal.GameState) (baghchal.Move, error) {
	if player.prompt != nil {
		fmt.Fprintf(player.prompt, "%s> ", state.Turn)
	}

	line, err := player.reader.ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		return baghchal.Move{}, io.EOF
	case err != nil && err != io.EOF:
		return baghchal.Move{}, err
	}

	return baghchal.ParseMove(strings.TrimRight(line, "\r\n"))
}
