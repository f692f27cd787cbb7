package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/domain"
	"github.com/gitship/gitship/internal/repository"
)

// releasePhase enumerates the states of the release flow. Transitions only
// move forward; any phase may instead terminate in Aborted.
type releasePhase int

const (
	phaseStart releasePhase = iota
	phaseSynced
	phaseResolved
	phaseTagged
	phaseTagPushed
	phasePublished
)

// releaseContext carries values gathered by earlier phases.
type releaseContext struct {
	notes string
}

// Release runs the sync-tag-publish flow as an explicit state machine:
// Start -> Synced -> Resolved -> Tagged -> TagPushed -> Published. Each
// transition performs one guarded step; a failure terminates the flow with
// Aborted while everything already done (commit, push, tag...) stays in
// place. An error is returned only when user input could not be gathered.
func (o *Orchestrator) Release(ctx context.Context) (*domain.ReleaseResult, error) {
	log := o.flowLogger("release")
	res := &domain.ReleaseResult{Status: domain.FlowAborted}
	rctx := &releaseContext{}

	for phase := phaseStart; phase != phasePublished; {
		next, reason, err := o.releaseTransition(ctx, phase, res, rctx, log)
		if err != nil {
			return nil, err
		}
		if reason != "" {
			log.Info("release aborted", zap.String("reason", reason))
			res.Reason = reason
			return res, nil
		}
		phase = next
	}

	res.Status = domain.FlowCompleted
	log.Info("release published",
		zap.String("tag", res.TagName),
		zap.String("url", res.ReleaseURL))
	return res, nil
}

// releaseTransition advances the state machine by one step. It returns the
// next phase, or a non-empty abort reason for the terminal Aborted state.
func (o *Orchestrator) releaseTransition(
	ctx context.Context,
	phase releasePhase,
	res *domain.ReleaseResult,
	rctx *releaseContext,
	log *zap.Logger,
) (releasePhase, string, error) {
	switch phase {
	case phaseStart:
		return o.stepSync(ctx, res)
	case phaseSynced:
		return o.stepResolveRemote(ctx, res)
	case phaseResolved:
		return o.stepCreateTag(ctx, res, rctx, log)
	case phaseTagged:
		return o.stepPushTag(ctx, res)
	case phaseTagPushed:
		return o.stepPublish(ctx, res, rctx)
	default:
		return phase, "", fmt.Errorf("invalid release phase %d", phase)
	}
}

// stepSync requires a fully Completed sync before anything else: tagging
// against an unsynced or uncertain remote state is never attempted.
func (o *Orchestrator) stepSync(ctx context.Context, res *domain.ReleaseResult) (releasePhase, string, error) {
	syncRes, err := o.Sync(ctx)
	if err != nil {
		return phaseStart, "", err
	}
	res.Sync = syncRes
	switch syncRes.Status {
	case domain.FlowCompleted:
		return phaseSynced, "", nil
	case domain.FlowSkipped:
		return phaseStart, "nothing to release: " + syncRes.Reason, nil
	default:
		return phaseStart, syncRes.Reason, nil
	}
}

func (o *Orchestrator) stepResolveRemote(ctx context.Context, res *domain.ReleaseResult) (releasePhase, string, error) {
	url, err := o.git.OriginURL(ctx)
	if err != nil {
		return phaseSynced, fmt.Sprintf("failed to read origin URL: %v", err), nil
	}
	ref, err := domain.ParseRemoteURL(url)
	if err != nil {
		return phaseSynced, fmt.Sprintf("failed to resolve remote: %v", err), nil
	}
	res.Remote = ref
	return phaseResolved, "", nil
}

// stepCreateTag gathers the tag name and release notes and creates the
// annotated tag locally. The latest existing tag feeds a suggested default.
func (o *Orchestrator) stepCreateTag(
	ctx context.Context,
	res *domain.ReleaseResult,
	rctx *releaseContext,
	log *zap.Logger,
) (releasePhase, string, error) {
	latest, err := o.git.LatestTag(ctx)
	if err != nil {
		// The suggestion is a convenience only.
		log.Debug("could not determine latest tag", zap.Error(err))
		latest = ""
	}

	tag, err := o.prompter.TagName(ctx, domain.NextPatchTag(latest))
	if err != nil {
		return phaseResolved, "", fmt.Errorf("failed to read tag name: %w", err)
	}
	if tag == "" {
		return phaseResolved, "release cancelled: no tag name provided", nil
	}
	if err := ValidateTagName(tag); err != nil {
		return phaseResolved, err.Error(), nil
	}

	notes, err := o.prompter.ReleaseNotes(ctx)
	if err != nil {
		return phaseResolved, "", fmt.Errorf("failed to read release notes: %w", err)
	}
	if notes == "" {
		return phaseResolved, "release cancelled: no release notes provided", nil
	}

	if err := o.git.CreateAnnotatedTag(ctx, tag, tag); err != nil {
		return phaseResolved, fmt.Sprintf("failed to create tag: %v", err), nil
	}
	res.TagName = tag
	res.TagCreated = true
	rctx.notes = notes
	return phaseTagged, "", nil
}

func (o *Orchestrator) stepPushTag(ctx context.Context, res *domain.ReleaseResult) (releasePhase, string, error) {
	if _, err := o.git.PushTag(ctx, res.TagName); err != nil {
		// The local tag persists; deleting it would hide what happened.
		return phaseTagged, fmt.Sprintf("tag created locally but push failed: %v", err), nil
	}
	res.TagPushed = true
	return phaseTagPushed, "", nil
}

func (o *Orchestrator) stepPublish(
	ctx context.Context,
	res *domain.ReleaseResult,
	rctx *releaseContext,
) (releasePhase, string, error) {
	if o.publisher == nil {
		return phaseTagPushed, domain.ErrTokenNotConfigured.Error(), nil
	}
	url, err := o.publisher.PublishRelease(ctx, res.Remote, repository.ReleaseDraft{
		TagName: res.TagName,
		Notes:   rctx.notes,
	})
	if err != nil {
		// Tag and push stay in place; only the release page is missing.
		return phaseTagPushed, fmt.Sprintf("failed to publish release: %v", err), nil
	}
	res.Published = true
	res.ReleaseURL = url
	return phasePublished, "", nil
}
