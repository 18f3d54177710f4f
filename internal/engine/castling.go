package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// kingHomeFile is the e-file.
const kingHomeFile = 4

// castle describes one castling option by files on the home rank.
type castle struct {
	kingside bool
	kingTo   int
	rookFrom int
	rookTo   int
	between  []int // squares that must be empty
}

var castles = [...]castle{
	{kingside: true, kingTo: 6, rookFrom: 7, rookTo: 5, between: []int{5, 6}},
	{kingside: false, kingTo: 2, rookFrom: 0, rookTo: 3, between: []int{1, 2, 3}},
}

// castleFor identifies a king move from its home square two files
// towards the g- or c-file.
func castleFor(colour chess.Colour, from, to chess.Square) (castle, bool) {
	rank := chess.HomeRank(colour)
	if from != chess.Sq(kingHomeFile, rank) || to.Rank != rank {
		return castle{}, false
	}
	for _, c := range castles {
		if to.File == c.kingTo {
			return c, true
		}
	}
	return castle{}, false
}

// canCastle checks every castling condition for a king of colour moving
// from-to: the right is held, the rook is on its corner, the squares
// between are empty, and the king's start, transit and destination
// squares are not attacked.
func canCastle(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	c, ok := castleFor(colour, from, to)
	if !ok || !pos.Castling.Has(colour, c.kingside) {
		return false
	}

	rank := chess.HomeRank(colour)
	if !pos.Board.Get(chess.Sq(c.rookFrom, rank)).Is(colour, chess.Rook) {
		return false
	}
	for _, file := range c.between {
		if !pos.Board.Get(chess.Sq(file, rank)).IsEmpty() {
			return false
		}
	}

	enemy := colour.Opposite()
	transit := (kingHomeFile + c.kingTo) / 2
	for _, file := range []int{kingHomeFile, transit, c.kingTo} {
		if IsSquareAttacked(pos, chess.Sq(file, rank), enemy) {
			return false
		}
	}
	return true
}

// applyCastle moves the rook of a castling king next to its new square.
func applyCastle(board *chess.Board, colour chess.Colour, c castle) {
	rank := chess.HomeRank(colour)
	rookFrom := chess.Sq(c.rookFrom, rank)
	board.Set(chess.Sq(c.rookTo, rank), board.Get(rookFrom))
	board.Set(rookFrom, chess.Empty)
}

// updateCastlingRightsForRook removes the castling right tied to sq when a
// rook of colour leaves it or is captured on it.
func updateCastlingRightsForRook(rights *chess.CastlingRights, colour chess.Colour, sq chess.Square) {
	if sq.Rank != chess.HomeRank(colour) {
		return
	}
	for _, c := range castles {
		if sq.File == c.rookFrom {
			rights.Revoke(colour, c.kingside)
		}
	}
}
