// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind uint8

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Empty is the content of an unoccupied square.
var Empty = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Kind != NoKind && p.Colour == colour
}

// Letter returns the diagram letter for p: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.IsEmpty() || p.Colour == White {
		return l
	}
	return l + ('a' - 'A')
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter is the inverse of Piece.Letter.
func PieceFromLetter(letter byte) (Piece, bool) {
	if letter == '.' {
		return Empty, true
	}
	colour := White
	if letter >= 'a' && letter <= 'z' {
		colour = Black
		letter -= 'a' - 'A'
	}
	for k := Pawn; k < NumKinds; k++ {
		if k.Letter() == letter {
			return MakePiece(colour, k), true
		}
	}
	return Empty, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '8' // rank index 0 is the eighth rank
)

// Square is a board coordinate. Rank 0 is Black's back rank and
// rank 7 is White's back rank; file 0 is the a-file.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away from s.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase - s.Rank)})
}

// ParseSquare converts an algebraic square name such as "e2".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file := name[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	s := Square{File: int(file) - FileBase, Rank: RankBase - int(name[1])}
	if !s.Valid() {
		return Square{}, false
	}
	return s, true
}

// Move is a source-destination pair. Promotion is implicit.
type Move struct {
	From Square
	To   Square
}

// String returns the move as two square names, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ColourOffset returns the rank delta of a pawn advance:
// -1 for White (towards rank index 0), +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRank returns the back rank index of colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the rank index on which colour's pawns start.
func PawnRank(colour Colour) int {
	return HomeRank(colour) + ColourOffset(colour)
}

// PromotionRank returns the farthest rank for colour's pawns.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
