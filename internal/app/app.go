// Package app wires configuration, the word list and the acronym searcher
// into one run of the CLI.
package app

import (
	"fmt"
	"log/slog"

	"github.com/corey/acro/internal/adapters/ahocorasick"
	"github.com/corey/acro/internal/adapters/wordlist"
	"github.com/corey/acro/internal/domain/acronym"
	"github.com/corey/acro/internal/domain/phrase"
	"github.com/corey/acro/internal/logger"
)

// Request is what one invocation asks for. Empty Start or End means no boundary.
type Request struct {
	Phrases []string
	Start   string
	End     string
}

// App runs searches against a resolved configuration.
type App struct {
	cfg *Config
	log *slog.Logger

	// load is swapped in tests.
	load func(path string) (*wordlist.List, error)
}

// New creates an App. A nil log uses the process logger.
func New(cfg *Config, log *slog.Logger) *App {
	if log == nil {
		log = logger.Logger
	}
	return &App{cfg: cfg, log: log, load: loadWords}
}

func loadWords(path string) (*wordlist.List, error) {
	resolved, err := wordlist.Find(path)
	if err != nil {
		return nil, err
	}
	return wordlist.Load(resolved)
}

// Search validates the request phrases, loads the word list and returns
// every match in output order.
func (a *App) Search(req Request) ([]acronym.Result, error) {
	// Phrase mistakes are reported before touching the filesystem.
	if err := validate(req); err != nil {
		return nil, err
	}

	a.log.Debug("config",
		"source", a.cfg.Source,
		"words_file", a.cfg.WordsFile,
		"max_wildcards", a.cfg.MaxWildcards,
		"max_unmatched", a.cfg.MaxUnmatched)

	list, err := a.load(a.cfg.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("words file: %w", err)
	}
	if list.Skipped > 0 {
		a.log.Warn("skipped malformed words", "path", list.Path, "count", list.Skipped)
	}
	a.log.Debug("loaded words", "path", list.Path, "count", len(list.Words))

	s, err := acronym.New(acronym.Config{
		Phrases:      req.Phrases,
		Start:        req.Start,
		End:          req.End,
		MaxWildcards: a.cfg.MaxWildcards,
		MaxUnmatched: a.cfg.MaxUnmatched,
		Words:        list.Words,
		Locator:      ahocorasick.Factory,
	})
	if err != nil {
		return nil, err
	}
	a.log.Debug("candidates", "count", s.Candidates())

	results := s.Search()
	a.log.Debug("search done", "results", len(results))
	return results, nil
}

func validate(req Request) error {
	for _, b := range []struct{ name, text string }{{"start", req.Start}, {"end", req.End}} {
		if b.text == "" {
			continue
		}
		if _, err := phrase.New(b.text); err != nil {
			return fmt.Errorf("%s phrase: %w", b.name, err)
		}
	}
	_, err := phrase.NewAll(req.Phrases)
	return err
}
