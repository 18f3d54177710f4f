package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const playHelp = `Commands:
  e2 e4 | e2e4   move a piece
  moves [sq]     list legal moves, or the destinations of one piece
  undo           take back the last move
  board          print the board
  new            start a new game
  quit           leave
`

// player runs one interactive game over a line-oriented reader and writer.
type player struct {
	cfg     *config.PlayConfig
	out     io.Writer
	logger  *log.Logger
	manager *session.Manager
	game    *session.Game
}

// runPlay reads commands from in until quit or end of input.
func runPlay(cfg *config.Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	manager := session.NewManager(
		session.WithLogger(logger, cfg.Verbosity),
		session.WithMaxUndo(cfg.Play.MaxUndo),
	)
	p := &player{
		cfg:     cfg.Play,
		out:     out,
		logger:  logger,
		manager: manager,
		game:    manager.NewGame(),
	}

	p.printBoard()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, p.cfg.Prompt)
		if !scanner.Scan() {
			break
		}
		if !p.handle(strings.Fields(scanner.Text())) {
			return nil
		}
	}
	return scanner.Err()
}

// handle executes one command and reports whether to keep reading.
func (p *player) handle(fields []string) bool {
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return false
	case "help", "?":
		fmt.Fprint(p.out, playHelp)
	case "board":
		p.printBoard()
	case "new":
		p.newGame()
	case "undo":
		if err := p.game.Undo(); err != nil {
			p.reportError(err)
			return true
		}
		p.printBoard()
	case "moves":
		p.listMoves(fields[1:])
	default:
		p.move(fields)
	}
	return true
}

func (p *player) move(fields []string) {
	var from, to string
	switch {
	case len(fields) == 2:
		from, to = fields[0], fields[1]
	case len(fields) == 1 && len(fields[0]) == 4:
		from, to = fields[0][:2], fields[0][2:]
	default:
		fmt.Fprintf(p.out, "unknown command %q (try help)\n", strings.Join(fields, " "))
		return
	}

	if err := p.game.MoveByName(from, to); err != nil {
		p.reportError(err)
		return
	}
	if p.cfg.ShowBoard {
		p.printBoard()
	}
	p.printStatus()
	if p.cfg.ShowMoves {
		p.listMoves(nil)
	}
}

func (p *player) newGame() {
	if err := p.manager.Delete(p.game.ID()); err != nil {
		p.logger.Printf("%v", err)
	}
	p.game = p.manager.NewGame()
	p.printBoard()
}

// listMoves prints the legal moves of the side to move, or only those of
// the piece on the named square.
func (p *player) listMoves(args []string) {
	var names []string
	if len(args) > 0 {
		from, ok := chess.ParseSquare(args[0])
		if !ok {
			p.reportError(errors.Wrapf(errors.ErrInvalidSquare, "%q", args[0]))
			return
		}
		for _, to := range p.game.LegalDestinations(from) {
			names = append(names, to.String())
		}
	} else {
		pos := p.game.Position()
		for _, m := range engine.LegalMoves(&pos) {
			names = append(names, m.String())
		}
	}

	if len(names) == 0 {
		fmt.Fprintln(p.out, "no legal moves")
		return
	}
	fmt.Fprintln(p.out, strings.Join(names, " "))
}

func (p *player) printBoard() {
	pos := p.game.Position()
	fmt.Fprintln(p.out, pos.String())
}

func (p *player) printStatus() {
	pos := p.game.Position()
	switch engine.Status(&pos) {
	case engine.Check:
		fmt.Fprintf(p.out, "%v is in check.\n", pos.ToMove)
	case engine.Checkmate:
		fmt.Fprintf(p.out, "Checkmate. %v wins.\n", pos.ToMove.Opposite())
	case engine.Stalemate:
		fmt.Fprintln(p.out, "Stalemate. The game is drawn.")
	}
}

func (p *player) reportError(err error) {
	fmt.Fprintf(p.out, "error: %v\n", err)
}
