// Package words loads the Word Hunt dictionary and picks the target and
// decoy words of a level.
//
// The default list is embedded. A plain text file with one word per line can
// replace it; blank lines and lines starting with '#' are ignored.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Word length bounds accepted by the loader.
const (
	MinWordLength = 3
	MaxWordLength = 9
)

//go:embed words.txt
var embeddedWords string

var (
	defaultOnce sync.Once
	defaultList *List
)

// List is an immutable, de-duplicated set of upper-case words.
type List struct {
	words []string
	set   map[string]struct{}
}

// Default returns the embedded word list, parsed once.
func Default() *List {
	defaultOnce.Do(func() {
		defaultList = New(strings.Split(embeddedWords, "\n"))
	})
	return defaultList
}

// Load reads a word list from path. An empty path returns the embedded list.
func Load(path string) (*List, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return l, nil
}

// Read parses a word list from r.
func Read(r io.Reader) (*List, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	l := New(lines)
	if l.Len() == 0 {
		return nil, fmt.Errorf("words: no usable words")
	}
	return l, nil
}

// New builds a list from raw lines, keeping only alphabetic words of
// MinWordLength to MaxWordLength letters.
func New(lines []string) *List {
	l := &List{set: make(map[string]struct{}, len(lines))}
	for _, line := range lines {
		w, ok := normalize(line)
		if !ok {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// normalize trims and upper-cases a line, rejecting comments and non-words.
func normalize(line string) (string, bool) {
	w := strings.ToUpper(strings.TrimSpace(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	if len(w) < MinWordLength || len(w) > MaxWordLength || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all upper-case ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Len returns the number of words.
func (l *List) Len() int {
	return len(l.words)
}

// Contains reports whether w is in the list, ignoring case.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToUpper(strings.TrimSpace(w))]
	return ok
}

// Words returns a copy of the list in file order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// WithLength returns the words whose length lies in [minLen, maxLen].
func (l *List) WithLength(minLen, maxLen int) []string {
	var out []string
	for _, w := range l.words {
		if len(w) >= minLen && len(w) <= maxLen {
			out = append(out, w)
		}
	}
	return out
}
