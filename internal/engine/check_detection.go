package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A position without that king is treated as not in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king, ok := pos.KingSquare(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move to sq.
// Every byColour piece is tried with IsStructurallyLegal with castling
// suppressed; pawns count only their diagonal captures.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(file, rank)
			piece := pos.Board.Get(from)
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}

			if piece.Kind == chess.Pawn {
				if pawnAttacks(byColour, from, sq) {
					return true
				}
				continue
			}
			if IsStructurallyLegal(pos, piece, from, sq, true) {
				return true
			}
		}
	}
	return false
}
