package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsLegalMove reports whether the side to move may play from-to: the
// piece on from belongs to the side to move, the move is structurally
// legal, it does not capture a king, and afterwards the mover's king is
// not attacked. Off-board squares are simply illegal.
func IsLegalMove(pos *chess.Position, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	piece := pos.Board.Get(from)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return false
	}
	if pos.Board.Get(to).Kind == chess.King {
		return false
	}
	if !IsStructurallyLegal(pos, piece, from, to, false) {
		return false
	}
	return tryMove(pos, from, to, piece.Colour)
}

// tryMove makes the move on a copy and checks it does not leave colour's
// king in check.
func tryMove(pos *chess.Position, from, to chess.Square, colour chess.Colour) bool {
	next := MakeMove(pos, from, to)
	return !IsInCheck(&next, colour)
}

// LegalDestinations returns every square the piece on from may legally
// move to, in board order. The result is empty for an empty square, an
// off-board square or a piece of the side not to move.
func LegalDestinations(pos *chess.Position, from chess.Square) []chess.Square {
	var targets []chess.Square
	if !from.Valid() {
		return targets
	}
	piece := pos.Board.Get(from)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return targets
	}

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			to := chess.Sq(file, rank)
			if IsLegalMove(pos, from, to) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// LegalMoves returns every legal move of the side to move.
func LegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(file, rank)
			for _, to := range LegalDestinations(pos, from) {
				moves = append(moves, chess.Move{From: from, To: to})
			}
		}
	}
	return moves
}

// HasAnyLegalMove returns true if colour has at least one legal move.
// When colour is not the side to move, the position is examined as if it
// were colour's turn; the en-passant target is dropped because it only
// ever belongs to the side to move.
func HasAnyLegalMove(pos *chess.Position, colour chess.Colour) bool {
	probe := pos
	if colour != pos.ToMove {
		turned := *pos
		turned.ToMove = colour
		turned.ClearEnPassant()
		probe = &turned
	}

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(file, rank)
			piece := probe.Board.Get(from)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if len(LegalDestinations(probe, from)) > 0 {
				return true
			}
		}
	}
	return false
}
