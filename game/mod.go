package game

import "errors"

// Symbol is the content of a single cell, or the symbol of a player.
type Symbol byte

const (
	Empty Symbol = '.'
	X     Symbol = 'x'
	O     Symbol = 'o'
)

// Opponent returns the other player's symbol.
func (s Symbol) Opponent() Symbol {
	switch s {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (s Symbol) String() string {
	return string(s)
}

const Size = 3

const NumCells = Size * Size

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game over")
	ErrBadBoard    = errors.New("malformed board")
)

// Row-major cell indices of the 3 rows, 3 columns and 2 diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}
