package measure

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strings"
)

// ReadWords reads one word per line, trimming spaces and skipping blank lines.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}

// ReadWordsFile is ReadWords on the file at path.
func ReadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}

// ChooseTargets returns n words picked at random from words, or all of them in random
// order if n>=len(words). words isn't modified.
func ChooseTargets(rg *rand.Rand, words []string, n int) []string {
	s := slices.Clone(words)
	rg.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
	return s[:min(n, len(s))]
}
