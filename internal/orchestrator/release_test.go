package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gitship/gitship/internal/domain"
	"github.com/gitship/gitship/internal/repository"
)

// expectCompletedSync wires the mocks for a sync that runs to completion.
func expectCompletedSync(git *mockGitRepository, prompter *mockPrompter) {
	git.On("StageAll", mock.Anything).Return(nil)
	git.On("Status", mock.Anything).Return(stagedState(), nil)
	prompter.On("CommitMessage", mock.Anything).Return("chore: prepare release", nil)
	git.On("Commit", mock.Anything, "chore: prepare release").Return(nil)
	git.On("Push", mock.Anything).Return("main -> main", nil)
}

func TestOrchestrator_Release(t *testing.T) {
	t.Run("Should run the full flow and publish the release", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		publisher := new(mockReleasePublisher)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("v1.2.3", nil)
		prompter.On("TagName", mock.Anything, "v1.2.4").Return("v1.2.4", nil)
		prompter.On("ReleaseNotes", mock.Anything).Return("Bug fixes.", nil)
		git.On("CreateAnnotatedTag", mock.Anything, "v1.2.4", "v1.2.4").Return(nil)
		git.On("PushTag", mock.Anything, "v1.2.4").Return("new tag", nil)
		publisher.On("PublishRelease", mock.Anything,
			domain.RemoteRef{Owner: "acme", Repo: "widget"},
			repository.ReleaseDraft{TagName: "v1.2.4", Notes: "Bug fixes."},
		).Return("https://github.com/acme/widget/releases/tag/v1.2.4", nil)

		orch := New(git, publisher, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowCompleted, res.Status)
		assert.True(t, res.TagCreated)
		assert.True(t, res.TagPushed)
		assert.True(t, res.Published)
		assert.Equal(t, "v1.2.4", res.TagName)
		assert.Equal(t, "https://github.com/acme/widget/releases/tag/v1.2.4", res.ReleaseURL)
		require.NotNil(t, res.Sync)
		assert.Equal(t, domain.FlowCompleted, res.Sync.Status)
		git.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Should abort before resolving the remote when sync is skipped", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		git.On("StageAll", mock.Anything).Return(nil)
		git.On("Status", mock.Anything).Return(cleanState(), nil)

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.Equal(t, "nothing to release: no staged changes to commit", res.Reason)
		git.AssertNotCalled(t, "OriginURL", mock.Anything)
		git.AssertNotCalled(t, "CreateAnnotatedTag", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should abort when the sync itself aborts", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		git.On("StageAll", mock.Anything).Return(errors.New("disk full"))

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.Contains(t, res.Reason, "failed to stage changes")
		git.AssertNotCalled(t, "OriginURL", mock.Anything)
	})

	t.Run("Should abort when the remote URL is unrecognized", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("https://gitlab.com/acme/widget.git", nil)

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.Contains(t, res.Reason, "failed to resolve remote")
		git.AssertNotCalled(t, "LatestTag", mock.Anything)
	})

	t.Run("Should abort when the tag name is withheld", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", nil)
		prompter.On("TagName", mock.Anything, "").Return("", nil)

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.Equal(t, "release cancelled: no tag name provided", res.Reason)
		git.AssertNotCalled(t, "CreateAnnotatedTag", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should abort on an invalid tag name before touching git", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", nil)
		prompter.On("TagName", mock.Anything, "").Return("v1..0", nil)

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.Contains(t, res.Reason, "consecutive dots")
		git.AssertNotCalled(t, "CreateAnnotatedTag", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should abort when release notes are withheld", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", nil)
		prompter.On("TagName", mock.Anything, "").Return("v1.0.0", nil)
		prompter.On("ReleaseNotes", mock.Anything).Return("", nil)

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.Equal(t, "release cancelled: no release notes provided", res.Reason)
		git.AssertNotCalled(t, "CreateAnnotatedTag", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should not push the tag when creating it fails", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", nil)
		prompter.On("TagName", mock.Anything, "").Return("v1.0.0", nil)
		prompter.On("ReleaseNotes", mock.Anything).Return("Notes.", nil)
		git.On("CreateAnnotatedTag", mock.Anything, "v1.0.0", "v1.0.0").
			Return(errors.New("tag already exists"))

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.False(t, res.TagCreated)
		git.AssertNotCalled(t, "PushTag", mock.Anything, mock.Anything)
	})

	t.Run("Should keep the local tag and skip publish when the tag push fails", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		publisher := new(mockReleasePublisher)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", nil)
		prompter.On("TagName", mock.Anything, "").Return("v1.0.0", nil)
		prompter.On("ReleaseNotes", mock.Anything).Return("Notes.", nil)
		git.On("CreateAnnotatedTag", mock.Anything, "v1.0.0", "v1.0.0").Return(nil)
		git.On("PushTag", mock.Anything, "v1.0.0").Return("", errors.New("connection reset"))

		orch := New(git, publisher, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.True(t, res.TagCreated)
		assert.False(t, res.TagPushed)
		assert.Contains(t, res.Reason, "tag created locally but push failed")
		publisher.AssertNotCalled(t, "PublishRelease", mock.Anything, mock.Anything, mock.Anything)
		// One attempt only; the flow never retries the tag push.
		git.AssertNumberOfCalls(t, "PushTag", 1)
	})

	t.Run("Should abort at publish when no token is configured", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", nil)
		prompter.On("TagName", mock.Anything, "").Return("v1.0.0", nil)
		prompter.On("ReleaseNotes", mock.Anything).Return("Notes.", nil)
		git.On("CreateAnnotatedTag", mock.Anything, "v1.0.0", "v1.0.0").Return(nil)
		git.On("PushTag", mock.Anything, "v1.0.0").Return("new tag", nil)

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.Equal(t, domain.ErrTokenNotConfigured.Error(), res.Reason)
		assert.True(t, res.TagCreated)
		assert.True(t, res.TagPushed)
		assert.False(t, res.Published)
	})

	t.Run("Should surface the API failure and leave the tag in place", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		publisher := new(mockReleasePublisher)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", nil)
		prompter.On("TagName", mock.Anything, "").Return("v1.0.0", nil)
		prompter.On("ReleaseNotes", mock.Anything).Return("Notes.", nil)
		git.On("CreateAnnotatedTag", mock.Anything, "v1.0.0", "v1.0.0").Return(nil)
		git.On("PushTag", mock.Anything, "v1.0.0").Return("new tag", nil)
		publisher.On("PublishRelease", mock.Anything, mock.Anything, mock.Anything).
			Return("", &domain.APIError{StatusCode: 422, Message: "already_exists"})

		orch := New(git, publisher, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		assert.Contains(t, res.Reason, "already_exists")
		assert.True(t, res.TagPushed)
		assert.False(t, res.Published)
	})

	t.Run("Should suggest no default when the latest tag lookup fails", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", errors.New("corrupt repository"))
		prompter.On("TagName", mock.Anything, "").Return("", nil)

		orch := New(git, nil, prompter, nil)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowAborted, res.Status)
		prompter.AssertCalled(t, "TagName", mock.Anything, "")
	})

	t.Run("Should publish after a token is configured mid-session", func(t *testing.T) {
		git := new(mockGitRepository)
		prompter := new(mockPrompter)
		publisher := new(mockReleasePublisher)
		expectCompletedSync(git, prompter)
		git.On("OriginURL", mock.Anything).Return("git@github.com:acme/widget.git", nil)
		git.On("LatestTag", mock.Anything).Return("", nil)
		prompter.On("TagName", mock.Anything, "").Return("v1.0.0", nil)
		prompter.On("ReleaseNotes", mock.Anything).Return("Notes.", nil)
		git.On("CreateAnnotatedTag", mock.Anything, "v1.0.0", "v1.0.0").Return(nil)
		git.On("PushTag", mock.Anything, "v1.0.0").Return("new tag", nil)
		publisher.On("PublishRelease", mock.Anything, mock.Anything, mock.Anything).
			Return("https://github.com/acme/widget/releases/tag/v1.0.0", nil)

		orch := New(git, nil, prompter, nil)
		orch.SetPublisher(publisher)
		res, err := orch.Release(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.FlowCompleted, res.Status)
		assert.True(t, res.Published)
	})
}
