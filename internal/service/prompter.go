package service

import "context"

// Prompter gathers free-form input from the user. An empty string means
// the input was withheld (cancelled or left blank); the flows translate
// that into an abort, never an error.

type Prompter interface {
	// CommitMessage asks for a single-line commit message.
	CommitMessage(ctx context.Context) (string, error)
	// TagName asks for a release tag, offering a suggested default.
	TagName(ctx context.Context, suggestion string) (string, error)
	// ReleaseNotes asks for multi-line release notes.
	ReleaseNotes(ctx context.Context) (string, error)
	// Line asks a one-off single-line question (branch name, clone URL...).
	Line(ctx context.Context, title string) (string, error)
}
