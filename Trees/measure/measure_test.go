package measure

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func testWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = strings.Repeat("w", i%7+1) + string(rune('a'+i%26)) + strings.Repeat("z", i/26)
	}
	return words
}

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader("apple\n  banana \n\ncherry\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, words)
}

func TestReadWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("b\na\n"), 0o644))
	words, err := ReadWordsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, words)

	_, err = ReadWordsFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestChooseTargets(t *testing.T) {
	words := testWords(100)
	orig := slices.Clone(words)
	rg := rand.New(rand.NewSource(0))

	targets := ChooseTargets(rg, words, 10)
	assert.Len(t, targets, 10)
	for _, w := range targets {
		assert.Contains(t, words, w)
	}
	assert.Equal(t, orig, words, "input must not be shuffled")

	all := ChooseTargets(rg, words, 1000)
	assert.ElementsMatch(t, words, all)
}

func TestSearchers(t *testing.T) {
	words := testWords(300)
	builders := map[string]func([]string) Searcher{
		"slice":   func(w []string) Searcher { return SliceSearcher(w) },
		"tree":    func(w []string) Searcher { return NewTreeSearcher(w) },
		"btree":   func(w []string) Searcher { return NewBTreeSearcher(w) },
		"llrb":    func(w []string) Searcher { return NewLLRBSearcher(w) },
		"rbtree":  func(w []string) Searcher { return NewRBTreeSearcher(w) },
		"haxmap":  func(w []string) Searcher { return NewHaxMapSearcher(w) },
		"hashmap": func(w []string) Searcher { return NewHashMapSearcher(w) },
		"xsync":   func(w []string) Searcher { return NewXSyncSearcher(w) },
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			s := build(words)
			for _, w := range words {
				assert.True(t, s.Find(w), "missing %q", w)
			}
			assert.False(t, s.Find("not-a-word"))
			found, _ := Time(s, append(slices.Clone(words[:10]), "nope"))
			assert.Equal(t, 10, found)
		})
	}
}

func TestRunWords(t *testing.T) {
	words := testWords(200)
	results, err := RunWords(context.Background(), words, Config{Targets: 50, Seed: 1, Baselines: true}, discard)
	require.NoError(t, err)
	require.Len(t, results, len(Scenarios)+len(Baselines))
	for _, r := range results {
		assert.Equal(t, 50, r.Found, r.Name)
	}
	assert.Equal(t, -1, results[0].Height)
	assert.Equal(t, len(words)-1, results[1].Height, "a tree built from a sorted list is a chain")
	assert.Equal(t, 7, results[3].Height)
	assert.Equal(t, -1, results[len(results)-1].Height)
	assert.Len(t, Scenarios, 4, "baselines must not leak into Scenarios")
}

func TestRunWords_Limit(t *testing.T) {
	results, err := RunWords(context.Background(), testWords(200), Config{Targets: 500, Limit: 20}, discard)
	require.NoError(t, err)
	require.Len(t, results, len(Scenarios))
	for _, r := range results {
		assert.Equal(t, 20, r.Found, r.Name)
	}
}

func TestRunWords_Errors(t *testing.T) {
	_, err := RunWords(context.Background(), nil, Config{}, discard)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := RunWords(ctx, testWords(10), Config{Targets: 5}, discard)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(testWords(64), "\n")), 0o644))
	results, err := Run(context.Background(), Config{WordsPath: path, Targets: 64}, discard)
	require.NoError(t, err)
	require.Len(t, results, len(Scenarios))
	assert.Equal(t, 6, results[3].Height)
}
