package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

var (
	ErrQuit      = errors.New("player quit")
	ErrBadFormat = errors.New("move format is col,row")
)

const usage = "  Move format [x,y]: 1,2 where 1 is column and 2 is row"

// Human is an agent reading moves from a terminal.
type Human struct {
	scanner  *bufio.Scanner
	out      io.Writer
	renderer *Renderer
}

func NewHuman(in io.Reader, out io.Writer, renderer *Renderer) *Human {
	return &Human{
		scanner:  bufio.NewScanner(in),
		out:      out,
		renderer: renderer,
	}
}

// FindMove prompts until a legal move is entered. Typing "exit" or closing
// the input returns ErrQuit.
func (h *Human) FindMove(board game.Board) (game.Board, metrics.SearchMetric, error) {
	for {
		fmt.Fprint(h.out, "> ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.Board{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Board{}, metrics.SearchMetric{}, ErrQuit
		}

		input := strings.TrimSpace(h.scanner.Text())
		switch input {
		case "":
			continue
		case "exit":
			return game.Board{}, metrics.SearchMetric{}, ErrQuit
		}

		row, col, err := ParseMove(input)
		if err != nil {
			fmt.Fprintf(h.out, "  Error: %v\n  Illegal command!\n%s\n", err, usage)
			continue
		}

		next, err := board.Play(row, col)
		if err != nil {
			fmt.Fprintln(h.out, " Illegal move!")
			continue
		}
		h.renderer.Render(next)
		return next, metrics.SearchMetric{}, nil
	}
}

// ParseMove converts 1-based "col,row" input into 0-based row and column.
func ParseMove(input string) (row, col int, err error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadFormat, input)
	}
	col, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	row, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if row < 1 || row > game.Size || col < 1 || col > game.Size {
		return 0, 0, fmt.Errorf("%w: %w", ErrBadFormat, game.ErrOutOfBounds)
	}
	return row - 1, col - 1, nil
}
