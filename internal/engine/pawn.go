package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPawnMove checks a pawn move: a single push onto an empty square, a
// double push from the starting rank over an empty square, or a diagonal
// step onto an enemy piece or the en-passant target.
// Own-piece destinations have already been rejected by the caller.
func canPawnMove(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	dir := chess.ColourOffset(colour)
	fileDiff := to.File - from.File
	rankDiff := to.Rank - from.Rank
	target := pos.Board.Get(to)

	switch {
	case fileDiff == 0 && rankDiff == dir:
		return target.IsEmpty()

	case fileDiff == 0 && rankDiff == 2*dir:
		if from.Rank != chess.PawnRank(colour) {
			return false
		}
		return target.IsEmpty() && pos.Board.Get(from.Offset(0, dir)).IsEmpty()

	case abs(fileDiff) == 1 && rankDiff == dir:
		if !target.IsEmpty() {
			return true
		}
		ep, ok := pos.EnPassantTarget()
		return ok && ep == to
	}

	return false
}

// pawnAttacks reports whether a pawn of colour on from covers to.
// Pawns attack their forward diagonals whether or not anything stands there.
func pawnAttacks(colour chess.Colour, from, to chess.Square) bool {
	return abs(to.File-from.File) == 1 && to.Rank-from.Rank == chess.ColourOffset(colour)
}

// isDoublePawnStep reports whether from-to is a two-square advance from
// colour's starting rank.
func isDoublePawnStep(colour chess.Colour, from, to chess.Square) bool {
	return from.File == to.File &&
		from.Rank == chess.PawnRank(colour) &&
		to.Rank == from.Rank+2*chess.ColourOffset(colour)
}
