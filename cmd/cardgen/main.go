// The cardgen writes generated cards as json or yaml.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/spf13/afero"
)

const (
	retNoErrorCode      = 0
	retGenericErrorCode = 1
)

func main() {
	opts := options{}
	debug := false
	flag.IntVar(&opts.count, "count", cards.DefaultCount, "number of cards")
	flag.StringVar(&opts.format, "format", formatJSON, "output format (json|yaml)")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed (0 is by time)")
	flag.StringVar(&opts.out, "out", stdout, "output file name (- is stdout)")
	flag.BoolVar(&debug, "debug", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	setDefaultLogger(level)
	log := slog.Default()

	err := run(log, afero.NewOsFs(), os.Stdout, opts)
	os.Exit(exitCode(log, err))
}
