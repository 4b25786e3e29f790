package game

import (
	"fmt"
	"strings"
)

// Board is an immutable 3x3 position. Operations on Board always return a new copy.
type Board struct {
	cells     [NumCells]Symbol
	toMove    Symbol
	lastMover Symbol
}

// NewBoard returns the empty starting position with x to move.
func NewBoard() Board {
	b := Board{toMove: X, lastMover: O}
	for i := range b.cells {
		b.cells[i] = Empty
	}
	return b
}

// ParseBoard builds a position from 9 row-major cells, e.g. "xx.oo....".
func ParseBoard(cells string, toMove Symbol) (Board, error) {
	if len(cells) != NumCells {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", ErrBadBoard, NumCells, len(cells))
	}
	if toMove != X && toMove != O {
		return Board{}, fmt.Errorf("%w: invalid mover %q", ErrBadBoard, toMove)
	}

	b := Board{toMove: toMove, lastMover: toMove.Opponent()}
	for i := 0; i < NumCells; i++ {
		switch s := Symbol(cells[i]); s {
		case Empty, X, O:
			b.cells[i] = s
		default:
			return Board{}, fmt.Errorf("%w: invalid cell %q at %d", ErrBadBoard, cells[i], i)
		}
	}
	return b, nil
}

// ToMove returns the symbol that plays next.
func (b Board) ToMove() Symbol {
	return b.toMove
}

// LastMover returns the symbol that is not to move. On the empty board this
// is o even though nobody has played yet.
func (b Board) LastMover() Symbol {
	return b.lastMover
}

func (b Board) Cell(row, col int) Symbol {
	return b.cells[row*Size+col]
}

// Moves returns the number of filled cells.
func (b Board) Moves() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Play places the mover's symbol at (row, col), both 0-based.
func (b Board) Play(row, col int) (Board, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Board{}, fmt.Errorf("%w: row %d col %d", ErrOutOfBounds, row, col)
	}
	if b.IsTerminal() {
		return Board{}, ErrGameOver
	}
	idx := row*Size + col
	if b.cells[idx] != Empty {
		return Board{}, fmt.Errorf("%w: row %d col %d", ErrOccupied, row, col)
	}
	return b.place(idx), nil
}

func (b Board) place(idx int) Board {
	next := b
	next.cells[idx] = b.toMove
	next.toMove, next.lastMover = b.lastMover, b.toMove
	return next
}

// IsWin reports whether any row, column or diagonal holds three equal symbols.
func (b Board) IsWin() bool {
	return b.Winner() != Empty
}

// Winner returns the symbol on the first complete line found, or Empty.
func (b Board) Winner() Symbol {
	for _, line := range lines {
		s := b.cells[line[0]]
		if s != Empty && s == b.cells[line[1]] && s == b.cells[line[2]] {
			return s
		}
	}
	return Empty
}

// IsDraw reports whether no empty cell remains.
func (b Board) IsDraw() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b Board) IsTerminal() bool {
	return b.IsWin() || b.IsDraw()
}

// Children returns the positions reachable in one move, in row-major order.
// Terminal positions have no children.
func (b Board) Children() []Board {
	if b.IsTerminal() {
		return nil
	}
	children := make([]Board, 0, NumCells-b.Moves())
	for i, c := range b.cells {
		if c == Empty {
			children = append(children, b.place(i))
		}
	}
	return children
}

// Key returns the 9 cells in row-major order. Two boards with the same cells
// share a key regardless of how they were reached.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(NumCells)
	for _, c := range b.cells {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// Diff returns the indices of the cells that differ between b and other.
func (b Board) Diff(other Board) []int {
	var diff []int
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			diff = append(diff, i)
		}
	}
	return diff
}

// String renders the board the way the console game prints it.
func (b Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n--------------\n %q to move:\n--------------\n\n", string(b.toMove))
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(byte(b.Cell(row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
