package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestIsSquareAttacked(t *testing.T) {
	pos := testutil.MustPosition(t, chess.White,
		"....k...",
		"........",
		".....p..",
		"........",
		"...B....",
		"........",
		"..N.....",
		"R...K...",
	)

	tests := []struct {
		name string
		sq   string
		by   chess.Colour
		want bool
	}{
		{"rook along rank", "c1", chess.White, true},
		{"rook up the file", "a8", chess.White, true},
		{"rook stopped by own king", "h1", chess.White, false},
		{"knight", "b4", chess.White, true},
		{"bishop diagonal", "b6", chess.White, true},
		{"bishop blocked by pawn", "g7", chess.White, false},
		{"bishop reaches blocker", "f6", chess.White, true},
		{"king adjacent", "d2", chess.White, true},
		{"black pawn covers empty diagonal", "g5", chess.Black, true},
		{"black pawn does not cover push square", "f5", chess.Black, false},
		{"black king adjacent", "d7", chess.Black, true},
		{"unattacked square", "h3", chess.Black, false},
		{"off board", "", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := chess.Sq(-1, -1)
			if tt.sq != "" {
				target = sq(tt.sq)
			}
			if got := IsSquareAttacked(&pos, target, tt.by); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v; want %v", tt.sq, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		colour chess.Colour
		want   bool
	}{
		{
			name: "initial position",
			rows: []string{
				"rnbqkbnr", "pppppppp", "........", "........",
				"........", "........", "PPPPPPPP", "RNBQKBNR",
			},
			colour: chess.White,
			want:   false,
		},
		{
			name: "rook on open file",
			rows: []string{
				"....r...", "........", "........", "........",
				"........", "........", "........", "....K..k",
			},
			colour: chess.White,
			want:   true,
		},
		{
			name: "check blocked",
			rows: []string{
				"....r...", "........", "........", "........",
				"....N...", "........", "........", "....K..k",
			},
			colour: chess.White,
			want:   false,
		},
		{
			name: "pawn check on black king",
			rows: []string{
				"........", "........", "....k...", "...P....",
				"........", "........", "........", "....K...",
			},
			colour: chess.Black,
			want:   true,
		},
		{
			name: "pawn in front is not check",
			rows: []string{
				"........", "........", "....k...", "....P...",
				"........", "........", "........", "....K...",
			},
			colour: chess.Black,
			want:   false,
		},
		{
			name: "knight check",
			rows: []string{
				"....k...", "........", "........", "........",
				"........", "...n....", "........", "....K...",
			},
			colour: chess.White,
			want:   true,
		},
		{
			name: "no king",
			rows: []string{
				"....k...", "........", "........", "........",
				"........", "........", "........", "q.......",
			},
			colour: chess.White,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, chess.White, tt.rows...)
			if got := IsInCheck(&pos, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v; want %v", tt.colour, got, tt.want)
			}
		})
	}
}
