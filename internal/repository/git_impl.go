package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/gitship/gitship/internal/domain"
)

// gitRepository drives the external git executable through the command
// runner. Argument lists are fixed and order-significant.
type gitRepository struct {
	runner CommandRunner
}

// NewGitRepository creates a GitRepository backed by the given runner.
func NewGitRepository(runner CommandRunner) GitRepository {
	return &gitRepository{runner: runner}
}

// Status runs `git status --porcelain=v1 --branch` and parses the output.
// Parsing never fails; only the command itself can.
func (r *gitRepository) Status(ctx context.Context) (*domain.RepositoryState, error) {
	out, err := r.runner.Run(ctx, "status", "--porcelain=v1", "--branch")
	if err != nil {
		return nil, fmt.Errorf("failed to query repository status: %w", err)
	}
	return ParsePorcelainStatus(out.Stdout), nil
}

func (r *gitRepository) StageAll(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, "add", "."); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

func (r *gitRepository) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message cannot be empty")
	}
	if _, err := r.runner.Run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Push runs `git push` against the configured upstream. The confirmation
// summary usually arrives on stderr, so the preferred stream is returned.
func (r *gitRepository) Push(ctx context.Context) (string, error) {
	out, err := r.runner.Run(ctx, "push")
	if err != nil {
		return "", fmt.Errorf("failed to push: %w", err)
	}
	return strings.TrimSpace(out.Message()), nil
}

func (r *gitRepository) CreateAnnotatedTag(ctx context.Context, name, message string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("tag name cannot be empty")
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("tag message cannot be empty")
	}
	if _, err := r.runner.Run(ctx, "tag", "-a", name, "-m", message); err != nil {
		return fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return nil
}

func (r *gitRepository) PushTag(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("tag name cannot be empty")
	}
	out, err := r.runner.Run(ctx, "push", "origin", name)
	if err != nil {
		return "", fmt.Errorf("failed to push tag %q: %w", name, err)
	}
	return strings.TrimSpace(out.Message()), nil
}

func (r *gitRepository) OriginURL(ctx context.Context) (string, error) {
	out, err := r.runner.Run(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", fmt.Errorf("no URL configured for remote 'origin': %w", err)
	}
	return strings.TrimSpace(out.Stdout), nil
}

// LatestTag reads tags through go-git instead of the runner; it only feeds
// the suggested-tag default in the release prompt, so every failure mode
// (no repository, no tags) degrades to "".
func (r *gitRepository) LatestTag(_ context.Context) (string, error) {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return "", nil
	}
	tagRefs, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to read tags: %w", err)
	}
	var latestTag string
	var latestCommitTime time.Time
	err = tagRefs.ForEach(func(ref *plumbing.Reference) error {
		commit, err := repo.CommitObject(ref.Hash())
		if err != nil {
			// Annotated tags point at a tag object, not the commit.
			tag, err := repo.TagObject(ref.Hash())
			if err != nil {
				return nil
			}
			commit, err = repo.CommitObject(tag.Target)
			if err != nil {
				return nil
			}
		}
		if commit.Committer.When.After(latestCommitTime) {
			latestCommitTime = commit.Committer.When
			latestTag = ref.Name().Short()
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to iterate tags: %w", err)
	}
	return latestTag, nil
}

func (r *gitRepository) ListBranches(ctx context.Context) ([]domain.BranchRecord, error) {
	out, err := r.runner.Run(ctx, "branch")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return ParseBranchList(out.Stdout), nil
}

func (r *gitRepository) CreateBranch(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	if _, err := r.runner.Run(ctx, "branch", trimmed); err != nil {
		return fmt.Errorf("failed to create branch %q: %w", trimmed, err)
	}
	return nil
}

func (r *gitRepository) SwitchBranch(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	if _, err := r.runner.Run(ctx, "checkout", trimmed); err != nil {
		return fmt.Errorf("failed to switch to branch %q: %w", trimmed, err)
	}
	return nil
}

func (r *gitRepository) Clone(ctx context.Context, url string, sink LineSink) error {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return fmt.Errorf("repository URL cannot be empty")
	}
	if err := r.runner.Stream(ctx, sink, "clone", trimmed); err != nil {
		return fmt.Errorf("failed to clone %q: %w", trimmed, err)
	}
	return nil
}
