package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTokenNotConfigured is returned before any network call when no GitHub
// token is available for the release publish step.
var ErrTokenNotConfigured = errors.New(
	"github token not configured: set github_token in .gitship.yaml or the GITHUB_TOKEN environment variable")

// SpawnError means the external tool could not be started at all, e.g. git
// is not installed or not on PATH.
type SpawnError struct {
	Tool string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %q (is it installed and on PATH?): %v", e.Tool, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// CommandError means the external tool ran and exited non-zero. Stderr
// carries the captured diagnostic text.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if diag := strings.TrimSpace(e.Stderr); diag != "" {
		msg += ": " + diag
	}
	return msg
}

// APIError means the remote API rejected a request. Message is the
// server-reported error when the body could be parsed, or a generic
// fallback naming the status otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("github api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github api returned status %d with an unparseable body", e.StatusCode)
}
