package orchestrator

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gitship/gitship/internal/domain"
	"github.com/gitship/gitship/internal/repository"
)

// Mock for GitRepository - implements all methods the flows depend on
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) Status(ctx context.Context) (*domain.RepositoryState, error) {
	args := m.Called(ctx)
	if state := args.Get(0); state != nil {
		return state.(*domain.RepositoryState), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGitRepository) StageAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockGitRepository) Commit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockGitRepository) Push(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) CreateAnnotatedTag(ctx context.Context, name, message string) error {
	args := m.Called(ctx, name, message)
	return args.Error(0)
}

func (m *mockGitRepository) PushTag(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) OriginURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) LatestTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) ListBranches(ctx context.Context) ([]domain.BranchRecord, error) {
	args := m.Called(ctx)
	if branches := args.Get(0); branches != nil {
		return branches.([]domain.BranchRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGitRepository) CreateBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockGitRepository) SwitchBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockGitRepository) Clone(ctx context.Context, url string, sink repository.LineSink) error {
	args := m.Called(ctx, url, sink)
	return args.Error(0)
}

// Mock for ReleasePublisher
type mockReleasePublisher struct{ mock.Mock }

func (m *mockReleasePublisher) PublishRelease(
	ctx context.Context,
	ref domain.RemoteRef,
	draft repository.ReleaseDraft,
) (string, error) {
	args := m.Called(ctx, ref, draft)
	return args.String(0), args.Error(1)
}

// Mock for Prompter
type mockPrompter struct{ mock.Mock }

func (m *mockPrompter) CommitMessage(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockPrompter) TagName(ctx context.Context, suggestion string) (string, error) {
	args := m.Called(ctx, suggestion)
	return args.String(0), args.Error(1)
}

func (m *mockPrompter) ReleaseNotes(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockPrompter) Line(ctx context.Context, title string) (string, error) {
	args := m.Called(ctx, title)
	return args.String(0), args.Error(1)
}

// stagedState builds a repository state with one staged modification.
func stagedState() *domain.RepositoryState {
	modified := domain.ChangeModified
	return &domain.RepositoryState{
		BranchSummary: "main...origin/main",
		Files:         []domain.FileRecord{{Path: "main.go", Staged: &modified}},
	}
}

// cleanState builds a repository state with nothing staged.
func cleanState() *domain.RepositoryState {
	untracked := domain.ChangeUntracked
	return &domain.RepositoryState{
		BranchSummary: "main...origin/main",
		Files:         []domain.FileRecord{{Path: "notes.txt", Staged: &untracked}},
	}
}
