package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"

	"github.com/gitship/gitship/internal/domain"
)

// githubPublisher is the implementation of the ReleasePublisher interface.
type githubPublisher struct {
	client *github.Client
}

// NewGithubPublisher creates a ReleasePublisher authenticated with the
// given token.
func NewGithubPublisher(token string) ReleasePublisher {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &githubPublisher{client: github.NewClient(tc)}
}

// PublishRelease creates a published (non-draft, non-prerelease) release
// for an existing tag. On rejection the server-reported message is
// surfaced verbatim, falling back to a generic status-only error when the
// body could not be parsed.
func (p *githubPublisher) PublishRelease(
	ctx context.Context,
	ref domain.RemoteRef,
	draft ReleaseDraft,
) (string, error) {
	release := &github.RepositoryRelease{
		TagName:    github.Ptr(draft.TagName),
		Name:       github.Ptr(draft.TagName),
		Body:       github.Ptr(draft.Notes),
		Draft:      github.Ptr(false),
		Prerelease: github.Ptr(false),
	}
	created, resp, err := p.client.Repositories.CreateRelease(ctx, ref.Owner, ref.Repo, release)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		var apiErr *github.ErrorResponse
		if errors.As(err, &apiErr) {
			return "", &domain.APIError{StatusCode: status, Message: apiErr.Message}
		}
		return "", &domain.APIError{StatusCode: status}
	}
	if url := created.GetHTMLURL(); url != "" {
		return url, nil
	}
	return fmt.Sprintf("https://github.com/%s/%s/releases/tag/%s", ref.Owner, ref.Repo, draft.TagName), nil
}
