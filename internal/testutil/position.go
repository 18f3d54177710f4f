package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ParseDiagram builds a position from eight rows of piece letters, rank 8
// first, using '.' for empty squares (the format of Position.String
// without the rank labels). Castling rights and en-passant targets are
// left empty for the caller to set.
func ParseDiagram(toMove chess.Colour, rows ...string) (chess.Position, error) {
	var pos chess.Position
	pos.ToMove = toMove

	if len(rows) != chess.BoardSize {
		return pos, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	for rank, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != chess.BoardSize {
			return pos, fmt.Errorf("row %d %q has %d squares", rank, row, len(row))
		}
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := chess.PieceFromLetter(row[file])
			if !ok {
				return pos, fmt.Errorf("row %d: unknown piece %q", rank, row[file])
			}
			pos.Board[rank][file] = piece
		}
	}
	return pos, nil
}

// MustPosition is ParseDiagram that fails the test on a bad diagram.
func MustPosition(t testing.TB, toMove chess.Colour, rows ...string) chess.Position {
	t.Helper()
	pos, err := ParseDiagram(toMove, rows...)
	if err != nil {
		t.Fatalf("bad test diagram: %v", err)
	}
	return pos
}

// Sq converts a square name, panicking on a malformed one.
func Sq(name string) chess.Square {
	sq, ok := chess.ParseSquare(name)
	if !ok {
		panic("testutil: bad square name " + name)
	}
	return sq
}

// Mv converts a move written as two square names, e.g. "e2e4".
func Mv(name string) chess.Move {
	if len(name) != 4 {
		panic("testutil: bad move " + name)
	}
	return chess.Move{From: Sq(name[:2]), To: Sq(name[2:])}
}
