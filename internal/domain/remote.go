package domain

import (
	"fmt"
	"strings"
)

const (
	sshRemotePrefix   = "git@github.com:"
	httpsRemotePrefix = "https://github.com/"
	remoteSuffix      = ".git"
)

// RemoteRef identifies a repository on the remote host.
type RemoteRef struct {
	Owner string
	Repo  string
}

func (r RemoteRef) String() string {
	return r.Owner + "/" + r.Repo
}

// ParseRemoteURL extracts owner and repository from an origin URL. Exactly
// two shapes are recognized, by literal prefix/suffix matching:
//
//	git@github.com:owner/repo.git
//	https://github.com/owner/repo.git
//
// Anything else fails outright. No partial result is ever returned: a
// guessed owner/repo would point API calls at the wrong repository.
func ParseRemoteURL(url string) (RemoteRef, error) {
	for _, prefix := range []string{sshRemotePrefix, httpsRemotePrefix} {
		rest, ok := strings.CutPrefix(url, prefix)
		if !ok {
			continue
		}
		path, ok := strings.CutSuffix(rest, remoteSuffix)
		if !ok {
			continue
		}
		owner, repo, ok := strings.Cut(path, "/")
		if !ok || owner == "" || repo == "" {
			continue
		}
		return RemoteRef{Owner: owner, Repo: repo}, nil
	}
	return RemoteRef{}, fmt.Errorf(
		"unrecognized remote URL %q (expected git@github.com:owner/repo.git or https://github.com/owner/repo.git)",
		url,
	)
}
