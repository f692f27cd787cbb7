package repository

import (
	"context"

	"github.com/gitship/gitship/internal/domain"
)

// GitRepository defines the version-control operations the workflows
// depend on. Every method maps to one external git invocation with a
// fixed argument list.

type GitRepository interface {
	// Status runs the porcelain status query and parses it.
	Status(ctx context.Context) (*domain.RepositoryState, error)
	// StageAll stages every pending change (`git add .`).
	StageAll(ctx context.Context) error
	// Commit records the staged changes with the given message.
	Commit(ctx context.Context, message string) error
	// Push sends local commits to the configured upstream and returns the
	// server confirmation text.
	Push(ctx context.Context) (string, error)
	// CreateAnnotatedTag creates a local annotated tag.
	CreateAnnotatedTag(ctx context.Context, name, message string) error
	// PushTag pushes a single tag to origin and returns the server text.
	PushTag(ctx context.Context, name string) (string, error)
	// OriginURL reads the configured URL of the origin remote.
	OriginURL(ctx context.Context) (string, error)
	// LatestTag returns the most recently created tag, or "" if none.
	LatestTag(ctx context.Context) (string, error)
	// ListBranches lists local branches in report order.
	ListBranches(ctx context.Context) ([]domain.BranchRecord, error)
	// CreateBranch creates a local branch.
	CreateBranch(ctx context.Context, name string) error
	// SwitchBranch checks out an existing branch.
	SwitchBranch(ctx context.Context, name string) error
	// Clone clones a repository, forwarding live progress lines to sink.
	Clone(ctx context.Context, url string, sink LineSink) error
}
