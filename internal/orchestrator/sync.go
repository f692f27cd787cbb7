package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/domain"
)

// Sync runs the stage-commit-push flow. The result is always one of
// Completed, Skipped or Aborted; an error is returned only when user input
// could not be gathered at all. A commit that fails to push is reported as
// Aborted with Committed=true so the caller can tell the user a manual
// push is needed.
func (o *Orchestrator) Sync(ctx context.Context) (*domain.SyncResult, error) {
	log := o.flowLogger("sync")

	if err := o.git.StageAll(ctx); err != nil {
		log.Warn("staging failed", zap.Error(err))
		return domain.SyncAborted(fmt.Sprintf("failed to stage changes: %v", err)), nil
	}
	log.Debug("staged all pending changes")

	state, err := o.git.Status(ctx)
	if err != nil {
		log.Warn("status query failed", zap.Error(err))
		return domain.SyncAborted(fmt.Sprintf("failed to query status: %v", err)), nil
	}
	if !state.HasStagedChanges() {
		log.Info("nothing staged, skipping commit and push")
		return &domain.SyncResult{Status: domain.FlowSkipped, Reason: "no staged changes to commit"}, nil
	}

	message, err := o.prompter.CommitMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit message: %w", err)
	}
	if message == "" {
		log.Info("commit message withheld, aborting")
		return domain.SyncAborted("commit cancelled: no message provided"), nil
	}

	if err := o.git.Commit(ctx, message); err != nil {
		// Staged changes stay staged; nothing is reset.
		log.Warn("commit failed", zap.Error(err))
		return domain.SyncAborted(fmt.Sprintf("failed to commit: %v", err)), nil
	}
	log.Info("commit created")

	serverOutput, err := o.git.Push(ctx)
	if err != nil {
		// The commit already exists locally; report partial completion so
		// the caller can suggest a manual push.
		log.Warn("push failed after commit", zap.Error(err))
		return &domain.SyncResult{
			Status:    domain.FlowAborted,
			Reason:    fmt.Sprintf("commit created but push failed, push manually: %v", err),
			Committed: true,
		}, nil
	}
	log.Info("pushed to remote")

	return &domain.SyncResult{
		Status:       domain.FlowCompleted,
		Committed:    true,
		Pushed:       true,
		ServerOutput: serverOutput,
	}, nil
}
