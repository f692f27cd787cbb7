package repository

import (
	"context"

	"github.com/gitship/gitship/internal/domain"
)

// ReleaseDraft is the payload for publishing a release: the tag name doubles
// as the release title; the notes become the body. Releases are published
// immediately, neither draft nor prerelease.
type ReleaseDraft struct {
	TagName string
	Notes   string
}

// ReleasePublisher defines the single remote API operation the release
// flow depends on.

type ReleasePublisher interface {
	// PublishRelease creates the release and returns its browser URL.
	PublishRelease(ctx context.Context, ref domain.RemoteRef, draft ReleaseDraft) (string, error)
}
