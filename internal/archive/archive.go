// Package archive persists games and lifetime play statistics. Nothing is
// written implicitly: the shell only touches the archive on an explicit
// save, load, games or stats command.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	gamePrefix = "game:"
	keyStats   = "stats"
)

// Game is one archived game: the position it reached and the moves that led
// there.
type Game struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	Moves   []string  `json:"moves"`
	SavedAt time.Time `json:"saved_at"`
}

// Stats aggregates play across all sessions.
type Stats struct {
	GamesSaved int       `json:"games_saved"`
	MovesTaken int       `json:"moves_taken"`
	LastPlayed time.Time `json:"last_played"`
}

// Archive wraps a BadgerDB store.
type Archive struct {
	db *badger.DB
}

// Open opens or creates the archive at dir.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// Close closes the underlying store.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveGame stores a game under its name, overwriting any previous snapshot.
func (a *Archive) SaveGame(g Game) error {
	g.SavedAt = time.Now()

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}

	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gamePrefix+g.Name), data)
	})
	if err != nil {
		return err
	}

	return a.bumpStats(func(s *Stats) {
		s.GamesSaved++
		s.MovesTaken += len(g.Moves)
	})
}

// LoadGame retrieves a game by name.
func (a *Archive) LoadGame(name string) (Game, error) {
	var g Game

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Game{}, fmt.Errorf("no archived game named %q", name)
	}
	if err != nil {
		return Game{}, err
	}
	return g, nil
}

// ListGames returns the names of all archived games.
func (a *Archive) ListGames() ([]string, error) {
	var names []string

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), gamePrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// LoadStats returns the aggregate statistics, zero-valued if none recorded.
func (a *Archive) LoadStats() (Stats, error) {
	var s Stats

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s)
		})
	})
	return s, err
}

func (a *Archive) bumpStats(update func(*Stats)) error {
	s, err := a.LoadStats()
	if err != nil {
		return err
	}

	update(&s)
	s.LastPlayed = time.Now()

	data, err := json.Marshal(&s)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}
