// Package engine provides chess move validation and position updates.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MakeMove applies the move from-to and returns the resulting position.
// pos is not modified.
//
// MakeMove does not validate the move: legality checking simulates moves
// through MakeMove, so callers must establish IsLegalMove first. Applying
// an illegal move leaves the result undefined.
func MakeMove(pos *chess.Position, from, to chess.Square) chess.Position {
	next := *pos
	piece := pos.Board.Get(from)
	captured := pos.Board.Get(to)
	colour := piece.Colour

	ep, hasEP := pos.EnPassantTarget()
	next.ClearEnPassant()

	// En passant: the captured pawn is behind the destination
	if piece.Kind == chess.Pawn && hasEP && to == ep {
		next.Board.Set(to.Offset(0, -chess.ColourOffset(colour)), chess.Empty)
	}

	// Move the piece
	next.Board.Set(from, chess.Empty)
	next.Board.Set(to, piece)

	// Automatic promotion
	if piece.Kind == chess.Pawn && to.Rank == chess.PromotionRank(colour) {
		next.Board.Set(to, chess.MakePiece(colour, chess.Queen))
	}

	if piece.Kind == chess.King {
		if c, ok := castleFor(colour, from, to); ok {
			applyCastle(&next.Board, colour, c)
		}
		next.Castling.RevokeAll(colour)
	}

	// Update castling rights if rook moved or captured
	if piece.Kind == chess.Rook {
		updateCastlingRightsForRook(&next.Castling, colour, from)
	}
	if captured.Kind == chess.Rook {
		updateCastlingRightsForRook(&next.Castling, captured.Colour, to)
	}

	// Set en passant square if double pawn push
	if piece.Kind == chess.Pawn && isDoublePawnStep(colour, from, to) {
		next.SetEnPassant(from.Offset(0, chess.ColourOffset(colour)))
	}

	next.ToMove = pos.ToMove.Opposite()
	return next
}
