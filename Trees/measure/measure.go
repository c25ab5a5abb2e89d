// Package measure times word lookups in a LinkedBST against a plain list and
// against other containers, the way the tree is meant to be compared: a list
// search, a tree built from the sorted list, a tree built from a shuffled list,
// and the sorted tree after Rebalance.
package measure

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"
)

// Config of a Run.
type Config struct {
	WordsPath string
	Targets   int   // number of words looked up in every case.
	Limit     int   // only the first Limit words of the list are used when >0.
	Seed      int64 // seeds target selection and shuffling.
	Baselines bool  // also time the third-party containers.
}

// Scenario builds the Searcher of one case from the word list in sorted and in shuffled order.
type Scenario struct {
	Name  string
	Build func(sorted, shuffled []string) Searcher
}

// Scenarios are the cases always run.
var Scenarios = []Scenario{
	{"list", func(sorted, _ []string) Searcher { return SliceSearcher(sorted) }},
	{"tree from sorted list", func(sorted, _ []string) Searcher { return NewTreeSearcher(sorted) }},
	{"tree from shuffled list", func(_, shuffled []string) Searcher { return NewTreeSearcher(shuffled) }},
	{"rebalanced tree", func(sorted, _ []string) Searcher {
		s := NewTreeSearcher(sorted)
		s.Tree.Rebalance()
		return s
	}},
}

// Baselines are the cases run when Config.Baselines is set.
var Baselines = []Scenario{
	{"google btree", func(_, shuffled []string) Searcher { return NewBTreeSearcher(shuffled) }},
	{"llrb", func(_, shuffled []string) Searcher { return NewLLRBSearcher(shuffled) }},
	{"gods red-black tree", func(_, shuffled []string) Searcher { return NewRBTreeSearcher(shuffled) }},
	{"haxmap", func(_, shuffled []string) Searcher { return NewHaxMapSearcher(shuffled) }},
	{"cornelk hashmap", func(_, shuffled []string) Searcher { return NewHashMapSearcher(shuffled) }},
	{"xsync map", func(_, shuffled []string) Searcher { return NewXSyncSearcher(shuffled) }},
}

// Result of one case. Height is -1 for searchers that aren't trees of this module.
type Result struct {
	Name    string
	Found   int
	Built   time.Duration
	Elapsed time.Duration
	Height  int
}

// Time looks every target up in s.
func Time(s Searcher, targets []string) (found int, elapsed time.Duration) {
	start := time.Now()
	for _, w := range targets {
		if s.Find(w) {
			found++
		}
	}
	return found, time.Since(start)
}

// Run reads the word list at cfg.WordsPath and runs RunWords on it.
func Run(ctx context.Context, cfg Config, log *slog.Logger) ([]Result, error) {
	words, err := ReadWordsFile(cfg.WordsPath)
	if err != nil {
		return nil, err
	}
	log.Info("read word list", "path", cfg.WordsPath, "words", len(words))
	return RunWords(ctx, words, cfg, log)
}

// RunWords runs the Scenarios, and the Baselines if configured, on words. It stops
// between cases once ctx is done, returning the results so far with ctx's error.
func RunWords(ctx context.Context, words []string, cfg Config, log *slog.Logger) ([]Result, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("empty word list")
	}
	if cfg.Limit > 0 && cfg.Limit < len(words) {
		words = words[:cfg.Limit]
	}
	rg := rand.New(rand.NewSource(cfg.Seed))
	targets := ChooseTargets(rg, words, cfg.Targets)
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	shuffled := ChooseTargets(rg, words, len(words))

	cases := Scenarios
	if cfg.Baselines {
		cases = append(slices.Clip(cases), Baselines...)
	}
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		start := time.Now()
		s := c.Build(sorted, shuffled)
		r := Result{Name: c.Name, Built: time.Since(start), Height: -1}
		if h, ok := s.(interface{ Height() int }); ok {
			r.Height = h.Height()
		}
		r.Found, r.Elapsed = Time(s, targets)
		log.Info("searched", "case", r.Name, "targets", len(targets), "found", r.Found,
			"built", r.Built, "elapsed", r.Elapsed, "height", r.Height)
		results = append(results, r)
	}
	return results, nil
}
