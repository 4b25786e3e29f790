package player

import (
	"fmt"
	"io"
	"strings"

	"tictactoe/game"

	"github.com/muesli/termenv"
)

// Renderer prints boards and messages, colouring symbols when the output
// supports it.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{w: w, out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) symbol(s game.Symbol) string {
	style := r.out.String(s.String())
	switch s {
	case game.X:
		style = style.Foreground(r.out.Color("1")).Bold()
	case game.O:
		style = style.Foreground(r.out.Color("4")).Bold()
	default:
		style = style.Faint()
	}
	return style.String()
}

// Board renders the "to move" header followed by the grid.
func (r *Renderer) Board(board game.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n--------------\n \"%s\" to move:\n--------------\n\n", r.symbol(board.ToMove()))
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(r.symbol(board.Cell(row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) Render(board game.Board) {
	fmt.Fprint(r.w, r.Board(board))
}

func (r *Renderer) Banner() {
	fmt.Fprintf(r.w, "\n  %s\n\n", r.out.String("Tic Tac Toe").Bold())
	fmt.Fprintln(r.w, "  Type \"exit\" to quit the game")
	fmt.Fprintln(r.w, usage)
}

// Result announces the outcome of a finished game.
func (r *Renderer) Result(board game.Board) {
	if winner := board.Winner(); winner != game.Empty {
		fmt.Fprintf(r.w, "player \"%s\" has won the game!\n", r.symbol(winner))
		return
	}
	fmt.Fprintln(r.w, "Game is drawn!")
}
