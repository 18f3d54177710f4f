// Package session keeps hosted games: the current position, the moves
// played and the positions needed to take them back.
package session

import (
	"log"
	"sync"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is one game in progress. It is safe for concurrent use.
type Game struct {
	mu sync.Mutex

	id        string
	pos       chess.Position
	played    []chess.Move
	undo      []chess.Position // positions before each undoable move
	createdAt time.Time
	updatedAt time.Time

	maxUndo   int
	logger    *log.Logger
	verbosity int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger logs accepted moves and finished games when verbosity is 2
// or more.
func WithLogger(logger *log.Logger, verbosity int) Option {
	return func(g *Game) {
		g.logger = logger
		g.verbosity = verbosity
	}
}

// WithMaxUndo keeps only the last n positions for Undo (0 = no limit).
func WithMaxUndo(n int) Option {
	return func(g *Game) {
		if n >= 0 {
			g.maxUndo = n
		}
	}
}

// NewGame starts a game from the initial position.
func NewGame(opts ...Option) *Game {
	return newGame("", opts...)
}

func newGame(id string, opts ...Option) *Game {
	now := time.Now()
	g := &Game{
		id:        id,
		pos:       chess.NewPosition(),
		createdAt: now,
		updatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the id assigned by a Manager, or "" for a standalone game.
func (g *Game) ID() string {
	return g.id
}

// Position returns a copy of the current position.
func (g *Game) Position() chess.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos
}

// Status classifies the current position for the side to move.
func (g *Game) Status() engine.GameStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.Status(&g.pos)
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []chess.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]chess.Move, len(g.played))
	copy(out, g.played)
	return out
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.played)
}

// UpdatedAt returns when the game last changed.
func (g *Game) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

// LegalDestinations lists where the piece on from may move.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.LegalDestinations(&g.pos, from)
}

// Move plays from-to for the side to move. It fails with ErrGameOver once
// the game has ended and with ErrIllegalMove for any move the rules forbid;
// the position is unchanged on error.
func (g *Game) Move(from, to chess.Square) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	m := chess.Move{From: from, To: to}
	if engine.Status(&g.pos).IsTerminal() {
		return g.moveError(errors.ErrGameOver, m)
	}
	if !engine.IsLegalMove(&g.pos, from, to) {
		return g.moveError(errors.ErrIllegalMove, m)
	}

	g.undo = append(g.undo, g.pos)
	if g.maxUndo > 0 && len(g.undo) > g.maxUndo {
		g.undo = g.undo[len(g.undo)-g.maxUndo:]
	}
	g.played = append(g.played, m)
	g.pos = engine.MakeMove(&g.pos, from, to)
	g.updatedAt = time.Now()

	g.logf("%s %v", g.label(), m)
	if status := engine.Status(&g.pos); status.IsTerminal() {
		g.logf("%s %v after %d plies", g.label(), status, len(g.played))
	}
	return nil
}

// MoveByName is Move with algebraic square names such as "e2" and "e4".
func (g *Game) MoveByName(from, to string) error {
	f, okFrom := chess.ParseSquare(from)
	t, okTo := chess.ParseSquare(to)
	if !okFrom || !okTo {
		g.mu.Lock()
		defer g.mu.Unlock()
		return g.moveErrorText(errors.ErrInvalidSquare, from+to)
	}
	return g.Move(f, t)
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.undo) == 0 {
		return errors.Wrap(errors.ErrNoHistory, g.label())
	}
	last := len(g.undo) - 1
	g.pos = g.undo[last]
	g.undo = g.undo[:last]
	g.played = g.played[:len(g.played)-1]
	g.updatedAt = time.Now()

	g.logf("%s undo, %d plies", g.label(), len(g.played))
	return nil
}

// Reset returns the game to the initial position and clears its history.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pos = chess.NewPosition()
	g.played = nil
	g.undo = nil
	g.updatedAt = time.Now()

	g.logf("%s reset", g.label())
}

func (g *Game) moveError(err error, m chess.Move) error {
	return g.moveErrorText(err, m.String())
}

func (g *Game) moveErrorText(err error, move string) error {
	return &errors.MoveError{
		Err:    err,
		GameID: g.id,
		Ply:    len(g.played) + 1,
		Move:   move,
	}
}

func (g *Game) label() string {
	if g.id == "" {
		return "game"
	}
	return "game " + g.id
}

func (g *Game) logf(format string, args ...interface{}) {
	if g.logger != nil && g.verbosity >= 2 {
		g.logger.Printf(format, args...)
	}
}
