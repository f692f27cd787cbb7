package repository

import (
	"fmt"
	"strings"

	"github.com/gitship/gitship/internal/domain"
)

const branchHeaderPrefix = "## "

// ParsePorcelainStatus turns `git status --porcelain=v1 --branch` output
// into a RepositoryState.
//
// The parser is tolerant by design: malformed lines are skipped and unknown
// status characters decode to "no change". It never returns an error; only
// obtaining the raw text can fail, upstream of here.
func ParsePorcelainStatus(raw string) *domain.RepositoryState {
	state := &domain.RepositoryState{}
	if raw == "" {
		// Valid state: freshly initialized repository with no branch.
		return state
	}

	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	state.BranchSummary = strings.TrimPrefix(lines[0], branchHeaderPrefix)

	for _, line := range lines[1:] {
		if len(line) < 4 {
			continue
		}
		stagedCode, unstagedCode := line[0], line[1]
		path := strings.TrimLeft(line[2:], " ")

		if stagedCode == '?' && unstagedCode == '?' {
			untracked := domain.ChangeUntracked
			state.Files = append(state.Files, domain.FileRecord{
				Path:   path,
				Staged: &untracked,
			})
			continue
		}

		record := domain.FileRecord{Path: path}
		if kind, ok := domain.DecodeChangeKind(stagedCode); ok {
			k := kind
			record.Staged = &k
		}
		if kind, ok := domain.DecodeChangeKind(unstagedCode); ok {
			k := kind
			record.Unstaged = &k
		}

		// Renames carry "<old> -> <new>" in the path field. Reformat to a
		// single readable string; a rename code without the separator is
		// tolerated and falls through to the plain path.
		if stagedCode == 'R' || unstagedCode == 'R' {
			if old, updated, found := strings.Cut(path, " -> "); found {
				record.Path = fmt.Sprintf("%s (renamed from %s)", updated, old)
			}
		}

		state.Files = append(state.Files, record)
	}
	return state
}

// ParseBranchList turns `git branch` output into branch records. The
// current branch is marked with a leading asterisk; order is kept as
// reported (alphabetical upstream).
func ParseBranchList(raw string) []domain.BranchRecord {
	var branches []domain.BranchRecord
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		isCurrent := strings.HasPrefix(trimmed, "*")
		name := strings.TrimSpace(strings.TrimPrefix(trimmed, "*"))
		branches = append(branches, domain.BranchRecord{Name: name, IsCurrent: isCurrent})
	}
	return branches
}
