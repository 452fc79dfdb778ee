// Package shell implements the interactive command loop. It owns the current
// board and move history; all rule decisions stay in the board package and
// all move selection in the engine.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jatayl/muskox/internal/archive"
	"github.com/jatayl/muskox/internal/board"
	"github.com/jatayl/muskox/internal/engine"
)

// Shell is one interactive session.
type Shell struct {
	board   board.Board
	engine  *engine.Engine
	history []board.Action
	store   *archive.Archive // nil when the archive is disabled
	counter int
	log     zerolog.Logger
}

// New creates a session on the starting position. The archive may be nil.
func New(eng *engine.Engine, store *archive.Archive) *Shell {
	return &Shell{
		board:  board.New(),
		engine: eng,
		store:  store,
		log:    log.With().Str("component", "shell").Logger(),
	}
}

// Run reads commands until exit or EOF. Errors from individual commands are
// printed and never terminate the loop or change the session state.
func (s *Shell) Run() error {
	rl, err := readline.New("")
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	for {
		rl.SetPrompt(fmt.Sprintf("\n[%d]: ", s.counter))

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.counter++

		if quit := s.execute(line); quit {
			return nil
		}
	}
}

// execute dispatches one command line. It returns true on exit.
func (s *Shell) execute(line string) bool {
	fields := strings.Fields(line)
	verb, args := fields[0], fields[1:]

	var err error
	switch verb {
	case "fen":
		err = s.handleFEN(args)
	case "validate":
		err = s.handleValidate(args)
	case "take":
		err = s.handleTake(args)
	case "generate":
		s.handleGenerate()
	case "search":
		err = s.handleSearch(args)
	case "best":
		err = s.handleBest(args)
	case "evaluate":
		err = s.handleEvaluate(args)
	case "gamestate":
		fmt.Println(s.board.GameState())
	case "turn":
		fmt.Println(s.board.Turn())
	case "print":
		fmt.Println(s.renderBoard())
	case "history":
		s.handleHistory()
	case "clear":
		s.board = board.New()
		s.history = nil
	case "save":
		err = s.handleSave(args)
	case "load":
		err = s.handleLoad(args)
	case "games":
		err = s.handleGames()
	case "stats":
		err = s.handleStats()
	case "exit":
		return true
	default:
		err = &UnknownCommandError{Verb: verb}
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	return false
}

func (s *Shell) handleFEN(args []string) error {
	if len(args) == 0 {
		fmt.Println(s.board.FEN())
		return nil
	}

	b, err := board.ParseFEN(strings.Join(args, ""))
	if err != nil {
		return err
	}
	s.board = b
	s.history = nil
	return nil
}

func (s *Shell) handleValidate(args []string) error {
	if len(args) == 0 {
		return &MissingParameterError{Parameter: "action"}
	}
	action, err := board.ParseAction(args[0])
	if err != nil {
		return err
	}
	if err := s.board.Validate(action); err != nil {
		return err
	}
	fmt.Println("Ok")
	return nil
}

func (s *Shell) handleTake(args []string) error {
	if len(args) == 0 {
		return &MissingParameterError{Parameter: "action"}
	}
	action, err := board.ParseAction(args[0])
	if err != nil {
		return err
	}
	next, err := s.board.Apply(action)
	if err != nil {
		return err
	}
	s.board = next
	s.history = append(s.history, action)
	return nil
}

func (s *Shell) handleGenerate() {
	actions := s.board.Actions()
	if len(actions) == 0 {
		fmt.Println("no valid actions")
		return
	}

	texts := make([]string, len(actions))
	for i, as := range actions {
		texts[i] = as.Action.Movetext()
	}
	fmt.Println(strings.Join(texts, ", "))
}

func (s *Shell) handleSearch(args []string) error {
	constraint, err := parseConstraint(args)
	if err != nil {
		return err
	}

	ranked := s.engine.Search(s.board, constraint)
	if len(ranked) == 0 {
		fmt.Println("no valid actions")
		return nil
	}

	texts := make([]string, len(ranked))
	for i, as := range ranked {
		texts[i] = fmt.Sprintf("%v (%v)", as.Action, as.Score)
	}
	fmt.Println(strings.Join(texts, ", "))
	return nil
}

func (s *Shell) handleBest(args []string) error {
	constraint, err := parseConstraint(args)
	if err != nil {
		return err
	}

	ranked := s.engine.Search(s.board, constraint)
	if len(ranked) == 0 {
		fmt.Println("no action to take")
		return nil
	}
	fmt.Println(ranked[0].Action)
	return nil
}

func (s *Shell) handleEvaluate(args []string) error {
	constraint, err := parseConstraint(args)
	if err != nil {
		return err
	}

	ranked := s.engine.Search(s.board, constraint)
	if len(ranked) == 0 {
		// The game is over; report the result instead.
		fmt.Println(s.board.GameState())
		return nil
	}
	fmt.Println(ranked[0].Score)
	return nil
}

func (s *Shell) handleHistory() {
	if len(s.history) == 0 {
		fmt.Println("no moves taken yet")
		return
	}

	texts := make([]string, len(s.history))
	for i, a := range s.history {
		texts[i] = a.Movetext()
	}
	fmt.Println(strings.Join(texts, ", "))
}

func (s *Shell) handleSave(args []string) error {
	if s.store == nil {
		return errors.New("archive is disabled")
	}
	if len(args) == 0 {
		return &MissingParameterError{Parameter: "name"}
	}

	moves := make([]string, len(s.history))
	for i, a := range s.history {
		moves[i] = a.Movetext()
	}

	err := s.store.SaveGame(archive.Game{
		Name:  args[0],
		FEN:   s.board.FEN(),
		Moves: moves,
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("name", args[0]).Int("moves", len(moves)).Msg("game archived")
	fmt.Println("saved")
	return nil
}

func (s *Shell) handleLoad(args []string) error {
	if s.store == nil {
		return errors.New("archive is disabled")
	}
	if len(args) == 0 {
		return &MissingParameterError{Parameter: "name"}
	}

	g, err := s.store.LoadGame(args[0])
	if err != nil {
		return err
	}

	b, err := board.ParseFEN(g.FEN)
	if err != nil {
		return fmt.Errorf("archived game %q is corrupt: %w", g.Name, err)
	}

	history := make([]board.Action, len(g.Moves))
	for i, m := range g.Moves {
		if history[i], err = board.ParseAction(m); err != nil {
			return fmt.Errorf("archived game %q is corrupt: %w", g.Name, err)
		}
	}

	s.board = b
	s.history = history
	fmt.Println(s.board.FEN())
	return nil
}

func (s *Shell) handleGames() error {
	if s.store == nil {
		return errors.New("archive is disabled")
	}

	names, err := s.store.ListGames()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no archived games")
		return nil
	}
	fmt.Println(strings.Join(names, ", "))
	return nil
}

func (s *Shell) handleStats() error {
	if s.store == nil {
		return errors.New("archive is disabled")
	}

	stats, err := s.store.LoadStats()
	if err != nil {
		return err
	}
	fmt.Printf("games saved: %d, moves archived: %d\n", stats.GamesSaved, stats.MovesTaken)
	return nil
}
