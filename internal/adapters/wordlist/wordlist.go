// Package wordlist locates and loads newline-separated dictionary files.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Stdin is the path that selects standard input instead of a file.
const Stdin = "-"

// DefaultPaths are tried in order when no words file is given.
var DefaultPaths = []string{"/usr/share/dict/words", "/usr/dict/words"}

// ErrNotFound is returned when no usable words file exists.
var ErrNotFound = errors.New("words file not found")

// List is a loaded word list. Every word is non-empty lowercase a-z.
type List struct {
	Path    string
	Words   []string
	Skipped int // lines dropped for being empty or not all letters
}

// Find resolves the words file to use. An explicit path must be a regular
// file (or Stdin). Otherwise DefaultPaths are searched on UNIX-like systems.
func Find(path string) (string, error) {
	if path == Stdin {
		return path, nil
	}
	if path != "" {
		if isFile(path) {
			return path, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return findDefault(runtime.GOOS, DefaultPaths)
}

func findDefault(goos string, candidates []string) (string, error) {
	switch goos {
	case "windows", "plan9", "js", "wasip1":
		return "", fmt.Errorf("%w: platform %s has no default words file", ErrNotFound, goos)
	}
	for _, p := range candidates {
		if isFile(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(candidates, ", "))
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// Load reads the words file at path, or standard input for Stdin.
func Load(path string) (*List, error) {
	if path == Stdin {
		l, err := Read(os.Stdin)
		if err != nil {
			return nil, err
		}
		l.Path = path
		return l, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open words file: %w", err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.Path = path
	return l, nil
}

// Read loads one word per line, lowercased. Lines that are blank or contain
// anything but letters after lowercasing are skipped and counted.
func Read(r io.Reader) (*List, error) {
	l := &List{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if !isLowerWord(w) {
			l.Skipped++
			continue
		}
		l.Words = append(l.Words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return l, nil
}

func isLowerWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
