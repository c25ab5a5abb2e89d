package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/g-m-twostay/linkedbst/Trees/measure"
	"github.com/urfave/cli/v2"
)

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "search random words in a list, in trees built from it, and optionally in other containers",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "words",
			Aliases:  []string{"w"},
			Usage:    "path to the word list, one word per line",
			Required: true,
			EnvVars:  []string{"WORDSEARCH_WORDS"},
		},
		&cli.IntFlag{
			Name:    "targets",
			Usage:   "number of random words to look up",
			Value:   10000,
			EnvVars: []string{"WORDSEARCH_TARGETS"},
		},
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "only use the first N words of the list (0 for all)",
			EnvVars: []string{"WORDSEARCH_LIMIT"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed for choosing and shuffling words",
			Value:   1,
			EnvVars: []string{"WORDSEARCH_SEED"},
		},
		&cli.BoolFlag{
			Name:    "baselines",
			Usage:   "also time google/btree, GoLLRB, gods and hash map lookups",
			EnvVars: []string{"WORDSEARCH_BASELINES"},
		},
	},
	Action: runSearch,
}

func configLogger(cctx *cli.Context) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("system", "wordsearch")
}

func runSearch(cctx *cli.Context) error {
	logger := configLogger(cctx)
	cfg := measure.Config{
		WordsPath: cctx.String("words"),
		Targets:   cctx.Int("targets"),
		Limit:     cctx.Int("limit"),
		Seed:      cctx.Int64("seed"),
		Baselines: cctx.Bool("baselines"),
	}
	results, err := measure.Run(cctx.Context, cfg, logger)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "case\tfound\tbuild\tsearch\theight")
	for _, r := range results {
		h := "-"
		if r.Height >= 0 {
			h = fmt.Sprint(r.Height)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.Name, r.Found, r.Built, r.Elapsed, h)
	}
	return w.Flush()
}
