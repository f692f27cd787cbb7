// Package orchestrator sequences the multi-step git workflows. Steps run
// strictly one after another; a failed step aborts the current flow and
// side effects of completed steps are never rolled back, since undoing a
// remote push is unsafe. No step is ever retried.
package orchestrator

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/repository"
	"github.com/gitship/gitship/internal/service"
)

// Orchestrator runs the sync and release flows.
type Orchestrator struct {
	git       repository.GitRepository
	publisher repository.ReleasePublisher // nil when no token is configured
	prompter  service.Prompter
	log       *zap.Logger
}

// New creates an Orchestrator. publisher may be nil; the release flow then
// aborts at the publish step, before any network call.
func New(
	git repository.GitRepository,
	publisher repository.ReleasePublisher,
	prompter service.Prompter,
	log *zap.Logger,
) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		git:       git,
		publisher: publisher,
		prompter:  prompter,
		log:       log,
	}
}

// SetPublisher swaps the release publisher, e.g. after the user configures
// a token mid-session.
func (o *Orchestrator) SetPublisher(p repository.ReleasePublisher) {
	o.publisher = p
}

// flowLogger returns a logger tagged with the flow name and a fresh
// invocation ID, so the steps of one run can be correlated.
func (o *Orchestrator) flowLogger(flow string) *zap.Logger {
	return o.log.With(
		zap.String("flow", flow),
		zap.String("invocation_id", uuid.New().String()),
	)
}
