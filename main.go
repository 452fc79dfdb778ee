package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jatayl/muskox/internal/archive"
	"github.com/jatayl/muskox/internal/config"
	"github.com/jatayl/muskox/internal/engine"
	"github.com/jatayl/muskox/internal/shell"
)

var (
	configPath = flag.String("config", "muskox.toml", "path to the configuration file")
	ttSizeMB   = flag.Int("tt", 0, "transposition table size in MiB (overrides config)")
	workers    = flag.Int("workers", 0, "search worker count (overrides config)")
	depth      = flag.Int("depth", 0, "default search depth (overrides config)")
	archiveDir = flag.String("archive", "", "game archive directory (empty disables the archive)")
	logLevel   = flag.String("loglevel", "warn", "log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}
	if *ttSizeMB > 0 {
		cfg.TableMB = *ttSizeMB
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *depth > 0 {
		cfg.DefaultDepth = *depth
	}

	eng := engine.New(engine.Material, engine.Options{
		TableMB: cfg.TableMB,
		Workers: cfg.Workers,
		Depth:   cfg.DefaultDepth,
	})
	defer eng.Close()

	var store *archive.Archive
	if *archiveDir != "" {
		store, err = archive.Open(*archiveDir)
		if err != nil {
			log.Warn().Err(err).Msg("archive unavailable, continuing without it")
		} else {
			defer store.Close()
		}
	}

	fmt.Println("muskox checkers engine")

	if err := shell.New(eng, store).Run(); err != nil {
		log.Fatal().Err(err).Msg("shell terminated")
	}
}
