package service

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// huhPrompter is the terminal implementation of Prompter.
type huhPrompter struct{}

// NewPrompter creates a Prompter backed by interactive terminal forms.
func NewPrompter() Prompter {
	return &huhPrompter{}
}

func (p *huhPrompter) CommitMessage(ctx context.Context) (string, error) {
	return p.input(ctx, "Commit message", "")
}

func (p *huhPrompter) TagName(ctx context.Context, suggestion string) (string, error) {
	return p.input(ctx, "Tag name (e.g. v1.2.3)", suggestion)
}

func (p *huhPrompter) ReleaseNotes(ctx context.Context) (string, error) {
	var notes string
	form := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("Release notes").
			Description("Markdown, shown on the release page").
			Value(&notes),
	))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(notes), nil
}

func (p *huhPrompter) Line(ctx context.Context, title string) (string, error) {
	return p.input(ctx, title, "")
}

// input runs a single-line form. A user abort is reported as a withheld
// (empty) value, not an error; the flows decide what that means.
func (p *huhPrompter) input(ctx context.Context, title, initial string) (string, error) {
	value := initial
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Value(&value),
	))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(value), nil
}
