package engine

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/jatayl/muskox/internal/board"
)

const (
	clusterSize = 3

	// Approximate in-memory bytes per cluster: three entries of roughly 32
	// bytes plus the lock word. Used only to translate a megabyte budget
	// into a cluster count.
	clusterBytes = 128

	// emptyDepth marks an unused slot.
	emptyDepth = -1
)

// entry is one cached search result. The full board is stored so a probe can
// reject hash collisions outright instead of returning a wrong score.
type entry struct {
	state board.Board
	score Score
	depth int8
	gen   uint8
}

// cluster groups three entries behind one lock. Contention is limited to the
// cluster a key maps to.
type cluster struct {
	mu      sync.RWMutex
	entries [clusterSize]entry
}

// Table is a fixed-memory concurrent transposition table indexed by Zobrist
// key modulo the cluster count.
type Table struct {
	clusters []cluster
	gen      atomic.Uint32
}

// NewTable allocates a table of roughly sizeMB megabytes, but never fewer
// than one cluster.
func NewTable(sizeMB int) *Table {
	t := &Table{}
	t.alloc(sizeMB)
	return t
}

func (t *Table) alloc(sizeMB int) {
	if sizeMB < 0 {
		sizeMB = 0
	}
	n := uint64(sizeMB) << 20 / clusterBytes
	if n < 1 {
		n = 1
	}
	log.Debug().Str("component", "tt").Int("size_mb", sizeMB).Uint64("clusters", n).
		Msg("allocating transposition table")

	t.clusters = make([]cluster, n)
	for i := range t.clusters {
		for j := range t.clusters[i].entries {
			t.clusters[i].entries[j].depth = emptyDepth
		}
	}
	t.gen.Store(1)
}

// NewSearch bumps the generation counter. Entries written by earlier searches
// age out of the replacement policy four depth levels per generation.
func (t *Table) NewSearch() {
	t.gen.Store(uint32(uint8(t.gen.Load()) + 1))
}

// Resize reallocates the table at the given size, dropping all entries and
// resetting the generation.
func (t *Table) Resize(sizeMB int) {
	t.alloc(sizeMB)
}

// Probe returns the cached score for state if an entry searched at least as
// deep exists. Equality of the full state defeats Zobrist key collisions.
func (t *Table) Probe(hash uint64, state board.Board, depth int) (Score, bool) {
	c := &t.clusters[hash%uint64(len(t.clusters))]

	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.entries {
		e := &c.entries[i]
		if e.depth != emptyDepth && int(e.depth) >= depth && e.state == state {
			return e.score, true
		}
	}
	return 0, false
}

// Save stores a search result in the first empty slot, or failing that the
// first slot whose replacement priority the fresh entry strictly beats.
// Priority is depth minus four per generation of age, so stale shallow
// entries yield to current deep ones. An entry that beats nothing is
// dropped.
func (t *Table) Save(hash uint64, state board.Board, depth int, score Score) {
	c := &t.clusters[hash%uint64(len(t.clusters))]
	gen := uint8(t.gen.Load())

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		e := &c.entries[i]
		if e.depth == emptyDepth || t.priority(e, gen) < depth {
			e.state = state
			e.score = score
			e.depth = int8(depth)
			e.gen = gen
			return
		}
	}
}

func (t *Table) priority(e *entry, gen uint8) int {
	return int(e.depth) - 4*int(gen-e.gen)
}
