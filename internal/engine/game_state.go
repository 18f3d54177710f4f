package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GameStatus summarises a position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsTerminal reports whether the game is over.
func (s GameStatus) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	return IsInCheck(pos, colour) && !HasAnyLegalMove(pos, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(pos *chess.Position, colour chess.Colour) bool {
	return !IsInCheck(pos, colour) && !HasAnyLegalMove(pos, colour)
}

// Status classifies the position for the side to move.
func Status(pos *chess.Position) GameStatus {
	colour := pos.ToMove
	inCheck := IsInCheck(pos, colour)
	hasMove := HasAnyLegalMove(pos, colour)

	switch {
	case inCheck && !hasMove:
		return Checkmate
	case !hasMove:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Ongoing
	}
}
