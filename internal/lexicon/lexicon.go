// Package lexicon provides the read-only vocabulary source injected
// into the crossword builder and validator. A lexicon is immutable
// after load and safe to share across puzzles without locking; the
// engine owns neither its lifecycle nor its update mechanism.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	_ "embed"
)

//go:embed words.txt
var defaultWords string

// ErrEmpty reports a word source with no usable entries.
var ErrEmpty = errors.New("lexicon has no entries")

// Lexicon is a frequency-weighted word list indexed by length.
type Lexicon struct {
	freq  map[string]int
	byLen map[int][]string
}

// Load reads "WORD [frequency]" lines. Words normalize to uppercase;
// lines that are blank, start with '#', or contain non-letters are
// skipped. A missing frequency defaults to 1.
func Load(r io.Reader) (*Lexicon, error) {
	l := &Lexicon{freq: make(map[string]int), byLen: make(map[int][]string)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		word := strings.ToUpper(fields[0])
		if !alphabetic(word) {
			continue
		}
		freq := 1
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
				freq = n
			}
		}
		if _, dup := l.freq[word]; !dup {
			l.byLen[len(word)] = append(l.byLen[len(word)], word)
		}
		l.freq[word] = freq
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(l.freq) == 0 {
		return nil, ErrEmpty
	}
	// Most frequent first so the filler prefers common vocabulary.
	for _, words := range l.byLen {
		sort.SliceStable(words, func(i, j int) bool {
			return l.freq[words[i]] > l.freq[words[j]]
		})
	}
	return l, nil
}

// LoadFile reads a word list from disk.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded word list.
func Default() *Lexicon {
	l, err := Load(strings.NewReader(defaultWords))
	if err != nil {
		panic(fmt.Sprintf("lexicon: embedded word list: %v", err))
	}
	return l
}

// Len returns the entry count.
func (l *Lexicon) Len() int { return len(l.freq) }

// Contains reports whether the word is a vocabulary entry.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.freq[strings.ToUpper(word)]
	return ok
}

// Frequency returns the word's frequency metadata, or 0 if absent.
func (l *Lexicon) Frequency(word string) int {
	return l.freq[strings.ToUpper(word)]
}

// Matches returns every entry fitting the pattern: one byte per cell,
// 0 for an open cell, an uppercase letter for a fixed one. Results keep
// frequency order.
func (l *Lexicon) Matches(pattern []byte) []string {
	var out []string
	for _, w := range l.byLen[len(pattern)] {
		if fits(w, pattern) {
			out = append(out, w)
		}
	}
	return out
}

// HasMatch reports whether at least one entry fits the pattern.
func (l *Lexicon) HasMatch(pattern []byte) bool {
	for _, w := range l.byLen[len(pattern)] {
		if fits(w, pattern) {
			return true
		}
	}
	return false
}

func fits(word string, pattern []byte) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != 0 && word[i] != pattern[i] {
			return false
		}
	}
	return true
}

func alphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
