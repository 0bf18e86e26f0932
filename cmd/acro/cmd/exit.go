package cmd

import (
	"errors"

	"github.com/corey/acro/internal/app"
	"github.com/corey/acro/internal/domain/acronym"
	"github.com/corey/acro/internal/domain/phrase"
)

// Exit codes.
const (
	exitFailure = 1 // runtime failure, e.g. no words file
	exitUsage   = 2 // bad flags, phrases or configuration
)

// exitError carries the process exit code alongside the cause.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }

func (e exitError) Unwrap() error { return e.err }

// classify attaches an exit code: user input mistakes are usage errors,
// everything else is a failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var perr *phrase.Error
	if errors.As(err, &perr) ||
		errors.Is(err, app.ErrInvalidConfig) ||
		errors.Is(err, acronym.ErrNegativeLimit) {
		return exitError{code: exitUsage, err: err}
	}
	return exitError{code: exitFailure, err: err}
}

// ExitCode extracts the exit code from an error returned by Execute.
// Returns -1 if the error carries none.
func ExitCode(err error) int {
	var e exitError
	if errors.As(err, &e) {
		return e.code
	}
	return -1
}
