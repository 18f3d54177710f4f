package main

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// playScript runs the play command over the given input lines with the
// board and prompt switched off.
func playScript(t *testing.T, lines ...string) string {
	t.Helper()
	cfg := config.NewConfigBuilder().WithShowBoard(false).WithPrompt("").Build()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := runPlay(cfg, in, &out, log.New(&bytes.Buffer{}, "", 0)); err != nil {
		t.Fatalf("runPlay() error = %v", err)
	}
	return out.String()
}

func TestPlay_InitialBoard(t *testing.T) {
	out := playScript(t, "quit")
	initial := chess.NewPosition()
	testutil.AssertEqual(t, out, initial.String()+"\n")
}

func TestPlay_Moves(t *testing.T) {
	out := playScript(t, "e2 e4", "e7e5", "moves g1", "quit")
	testutil.AssertContains(t, out, "f3 h3 e2\n")
	if strings.Contains(out, "error") {
		t.Errorf("unexpected error in output:\n%s", out)
	}
}

func TestPlay_ListAllMoves(t *testing.T) {
	out := playScript(t, "moves")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	testutil.AssertEqual(t, len(strings.Fields(lines[len(lines)-1])), 20)
}

func TestPlay_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"illegal move", []string{"e2 e5"}, `move "e2e5": illegal move`},
		{"wrong side", []string{"e7 e5"}, "illegal move"},
		{"bad square", []string{"e2 e9"}, "invalid square"},
		{"bad moves square", []string{"moves z9"}, `"z9": invalid square`},
		{"undo at start", []string{"undo"}, "no move to undo"},
		{"unknown command", []string{"castle the king"}, `unknown command "castle the king"`},
		{"after mate", []string{"f2f3", "e7e5", "g2g4", "d8h4", "e1f2"}, "game is over"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertContains(t, playScript(t, tt.lines...), tt.want)
		})
	}
}

func TestPlay_Status(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"check", []string{"e2e4", "f7f6", "d1h5"}, "Black is in check.\n"},
		{"fool's mate", []string{"f2f3", "e7e5", "g2g4", "d8h4"}, "Checkmate. Black wins.\n"},
		{
			"stalemate",
			// Sam Loyd's ten-move stalemate.
			[]string{
				"e2e3", "a7a5", "d1h5", "a8a6", "h5a5", "h7h5", "h2h4", "a6h6",
				"a5c7", "f7f6", "c7d7", "e8f7", "d7b7", "d8d3", "b7b8", "d3h7",
				"b8c8", "f7g6", "c8e6",
			},
			"Stalemate. The game is drawn.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := playScript(t, tt.lines...)
			testutil.AssertContains(t, out, tt.want)
			if strings.Contains(out, "error") {
				t.Errorf("unexpected error in output:\n%s", out)
			}
		})
	}
}

func TestPlay_UndoAndNew(t *testing.T) {
	out := playScript(t, "e2e4", "undo", "e2e4", "new", "undo")

	initial := chess.NewPosition()
	// Board after undo, board for the new game, then the failed undo.
	testutil.AssertEqual(t, strings.Count(out, initial.String()), 3)
	testutil.AssertContains(t, out, "no move to undo")
}

func TestPlay_ShowBoardAndMoves(t *testing.T) {
	cfg := config.NewConfigBuilder().WithPrompt("").WithShowMoves(true).Build()
	var out bytes.Buffer
	in := strings.NewReader("e2e4\n")
	if err := runPlay(cfg, in, &out, log.New(&bytes.Buffer{}, "", 0)); err != nil {
		t.Fatal(err)
	}

	testutil.AssertContains(t, out.String(), "Black to move")
	testutil.AssertContains(t, out.String(), "g8f6 g8h6")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestPlay_ReadError(t *testing.T) {
	cfg := config.NewConfig()
	err := runPlay(cfg, failingReader{}, &bytes.Buffer{}, log.New(&bytes.Buffer{}, "", 0))
	if err == nil || !strings.Contains(err.Error(), "read failed") {
		t.Errorf("runPlay() error = %v; want read failure", err)
	}
}
