// muskox-bench times move generation and search over a fixed corpus of
// positions.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/jatayl/muskox/internal/board"
	"github.com/jatayl/muskox/internal/engine"
)

var corpus = []string{
	board.StartFEN,
	"B:W18,24,27,28,K10,K15:B12,16,20,K22,K25,K29",
	"W:W9,K11,19,K26,27,30:B15,22,25,K32",
	"B:WK11,3:B",
}

var (
	depth      = flag.Int("depth", 9, "search depth")
	iterations = flag.Int("n", 3, "search iterations per position")
	genRounds  = flag.Int("gen", 100000, "move generation rounds per position")
	cpuProfile = flag.Bool("cpuprofile", false, "write a CPU profile")
)

func main() {
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	boards := make([]board.Board, len(corpus))
	for i, fen := range corpus {
		b, err := board.ParseFEN(fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad corpus position %q: %v\n", fen, err)
			os.Exit(1)
		}
		boards[i] = b
	}

	fmt.Printf("generate (%d rounds each)\n", *genRounds)
	for i, b := range boards {
		start := time.Now()
		var actions int
		for r := 0; r < *genRounds; r++ {
			actions = len(b.Actions())
		}
		per := time.Since(start) / time.Duration(*genRounds)
		fmt.Printf("  position %d: %v/op (%d actions)\n", i, per, actions)
	}

	constraint, err := engine.AtDepth(*depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	eng := engine.New(engine.Material, engine.Options{TableMB: 64})
	defer eng.Close()

	fmt.Printf("search depth %d (%d iterations each)\n", *depth, *iterations)
	for i, b := range boards {
		start := time.Now()
		var ranked []engine.ActionScore
		for r := 0; r < *iterations; r++ {
			ranked = eng.Search(b, constraint)
		}
		per := time.Since(start) / time.Duration(*iterations)
		fmt.Printf("  position %d: %v/op (%d ranked)\n", i, per, len(ranked))
	}
}
