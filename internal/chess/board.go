package chess

import "strings"

// Board holds the 64 squares, indexed [rank][file].
// It is an array, so assigning a Board copies it.
type Board [BoardSize][BoardSize]Piece

// Get returns the piece on sq, or Empty if sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq.Rank][sq.File]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b[sq.Rank][sq.File] = piece
	}
}

// CastlingRights records which of the four castling options remain.
// Flags are only ever cleared.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the rights at the start of a game.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Has reports whether colour may still castle on the given wing.
func (c CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return c.WhiteKingside
	case colour == White:
		return c.WhiteQueenside
	case kingside:
		return c.BlackKingside
	default:
		return c.BlackQueenside
	}
}

// Revoke clears a single castling right.
func (c *CastlingRights) Revoke(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		c.WhiteKingside = false
	case colour == White:
		c.WhiteQueenside = false
	case kingside:
		c.BlackKingside = false
	default:
		c.BlackQueenside = false
	}
}

// RevokeAll clears both castling rights of colour.
func (c *CastlingRights) RevokeAll(colour Colour) {
	c.Revoke(colour, true)
	c.Revoke(colour, false)
}

// Position is a complete game state: the board plus the side to move,
// castling rights and en-passant target. Positions are values; the
// engine never modifies one in place.
type Position struct {
	Board    Board
	ToMove   Colour
	Castling CastlingRights

	// Is en passant capture possible? If so EnPassant holds the square
	// the double-stepping pawn passed over.
	HasEnPassant bool
	EnPassant    Square
}

// NewPosition returns the standard chess starting position.
func NewPosition() Position {
	var p Position
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Board[HomeRank(Black)][file] = B(backRank[file])
		p.Board[PawnRank(Black)][file] = B(Pawn)
		p.Board[PawnRank(White)][file] = W(Pawn)
		p.Board[HomeRank(White)][file] = W(backRank[file])
	}
	p.ToMove = White
	p.Castling = AllCastlingRights()
	return p
}

// EnPassantTarget returns the en-passant target square, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	if !p.HasEnPassant {
		return Square{}, false
	}
	return p.EnPassant, true
}

// SetEnPassant records sq as the en-passant target.
func (p *Position) SetEnPassant(sq Square) {
	p.HasEnPassant = true
	p.EnPassant = sq
}

// ClearEnPassant removes the en-passant target.
func (p *Position) ClearEnPassant() {
	p.HasEnPassant = false
	p.EnPassant = Square{}
}

// KingSquare finds the king of the given colour.
func (p *Position) KingSquare(colour Colour) (Square, bool) {
	king := MakePiece(colour, King)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p.Board[rank][file] == king {
				return Sq(file, rank), true
			}
		}
	}
	return Square{}, false
}

// String draws the board from White's side, one rank per line,
// followed by the side to move.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		sb.WriteByte(byte(RankBase - rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(p.Board[rank][file].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	sb.WriteString(p.ToMove.String())
	sb.WriteString(" to move")
	return sb.String()
}
