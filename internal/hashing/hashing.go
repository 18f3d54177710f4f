// Package hashing provides Zobrist hashing of chess positions and a
// node-count table keyed by those hashes.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x5EED_C0DE_CAFE_F00D

var (
	pieceKeys     [2][chess.NumKinds][numSquares]uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
	whiteToMove   uint64
)

func init() {
	state := uint64(zobristSeed)
	for colour := range pieceKeys {
		for kind := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][kind] {
				pieceKeys[colour][kind][sq] = splitmix64(&state)
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = splitmix64(&state)
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = splitmix64(&state)
	}
	whiteToMove = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Zobrist returns the hash of everything that affects the legal moves of
// a position: pieces, side to move, castling rights and en-passant file.
func Zobrist(pos *chess.Position) uint64 {
	var hash uint64

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Board[rank][file]
			if piece.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[piece.Colour][piece.Kind][rank*chess.BoardSize+file]
		}
	}

	rights := [4]bool{
		pos.Castling.WhiteKingside,
		pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside,
		pos.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= castlingKeys[i]
		}
	}

	if ep, ok := pos.EnPassantTarget(); ok && ep.Valid() {
		hash ^= enPassantKeys[ep.File]
	}
	if pos.ToMove == chess.White {
		hash ^= whiteToMove
	}

	return hash
}
