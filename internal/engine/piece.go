package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsStructurallyLegal reports whether piece, standing on from, may move to
// to by its movement rules alone: geometry, path clearance, pawn
// push/capture/en-passant rules and castling. It does not check whether
// the move leaves the mover's king attacked; IsLegalMove does that.
//
// Castling is only evaluated when ignoreCastling is false. Attack scans
// pass true, since castling legality itself depends on attack scans.
func IsStructurallyLegal(pos *chess.Position, piece chess.Piece, from, to chess.Square, ignoreCastling bool) bool {
	if piece.IsEmpty() || !from.Valid() || !to.Valid() || from == to {
		return false
	}

	// No capturing your own pieces
	if target := pos.Board.Get(to); !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(pos, piece.Colour, from, to)

	case chess.King:
		if canPieceMove(&pos.Board, chess.King, from, to) {
			return true
		}
		if ignoreCastling {
			return false
		}
		return canCastle(pos, piece.Colour, from, to)

	default:
		return canPieceMove(&pos.Board, piece.Kind, from, to)
	}
}
