// Package lexicon loads the newline-delimited vocabulary lists
// (intransitive verbs, ergative nouns, non-DOM nouns)
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"golang.org/x/text/unicode/norm"

	"github.com/ppiankov/argstruct/internal/model"
)

// Lexicon is an ordered set of words
type Lexicon struct {
	path    string
	entries []string
	words   *collections.Set[string]
}

// New creates a lexicon from words, keeping the first occurrence of each
func New(path string, words []string) *Lexicon {
	lex := &Lexicon{path: path, words: collections.NewSet[string]()}
	for _, w := range words {
		lex.add(w)
	}
	return lex
}

func (lex *Lexicon) add(word string) {
	if word == "" || lex.words.Contains(word) {
		return
	}
	lex.words.Add(word)
	lex.entries = append(lex.entries, word)
}

// Path returns the file the lexicon was read from
func (lex *Lexicon) Path() string {
	return lex.path
}

// Contains reports whether word is in the list
func (lex *Lexicon) Contains(word string) bool {
	return lex.words.Contains(word)
}

// Entries returns the words in file order
func (lex *Lexicon) Entries() []string {
	return lex.entries
}

// Len returns the number of distinct words
func (lex *Lexicon) Len() int {
	return len(lex.entries)
}

// Load reads a vocabulary list, one word per line. Blank lines are skipped
// and surrounding whitespace is trimmed. With normalize set every word is
// converted to NFC.
func Load(path string, normalize bool) (*Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &model.IOFailureError{Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	lex, err := Read(file, normalize)
	if err != nil {
		return nil, &model.IOFailureError{Path: path, Err: err}
	}
	lex.path = path
	return lex, nil
}

// Read parses a vocabulary list from r
func Read(r io.Reader, normalize bool) (*Lexicon, error) {
	lex := New("", nil)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if normalize {
			word = norm.NFC.String(word)
		}
		lex.add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan vocabulary: %w", err)
	}
	return lex, nil
}
