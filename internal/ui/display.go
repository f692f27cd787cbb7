// Package ui renders repository state for the terminal and drives the
// interactive menu.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitship/gitship/internal/domain"
)

var (
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	stagedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	unstagedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	untrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// RenderStatus formats a repository snapshot the way `git status` groups
// it: staged, unstaged and untracked sections under the branch header.
func RenderStatus(state *domain.RepositoryState) string {
	var b strings.Builder
	b.WriteString(branchStyle.Render(state.BranchSummary))
	b.WriteString("\n")

	if len(state.Files) == 0 {
		b.WriteString("\n" + okStyle.Render("Working tree clean. Nothing to commit."))
		return b.String()
	}

	var staged, unstaged, untracked []string
	for _, f := range state.Files {
		if f.IsUntracked() {
			untracked = append(untracked, "  "+f.Path)
			continue
		}
		if f.Staged != nil {
			staged = append(staged, fmt.Sprintf("  %-12s %s", f.Staged.String()+":", f.Path))
		}
		if f.Unstaged != nil {
			unstaged = append(unstaged, fmt.Sprintf("  %-12s %s", f.Unstaged.String()+":", f.Path))
		}
	}

	if len(staged) > 0 {
		b.WriteString("\n" + stagedStyle.Render("Changes to be committed:") + "\n")
		b.WriteString(dimStyle.Render("(use \"git reset HEAD <file>...\" to unstage)") + "\n")
		b.WriteString(strings.Join(staged, "\n") + "\n")
	}
	if len(unstaged) > 0 {
		b.WriteString("\n" + unstagedStyle.Render("Changes not staged for commit:") + "\n")
		b.WriteString(dimStyle.Render("(use \"git add <file>...\" to stage)") + "\n")
		b.WriteString(strings.Join(unstaged, "\n") + "\n")
	}
	if len(untracked) > 0 {
		b.WriteString("\n" + untrackedStyle.Render("Untracked files:") + "\n")
		b.WriteString(dimStyle.Render("(use \"git add <file>...\" to track)") + "\n")
		b.WriteString(strings.Join(untracked, "\n") + "\n")
	}
	return b.String()
}

// RenderBranches formats the branch listing, marking the current branch.
func RenderBranches(branches []domain.BranchRecord) string {
	var lines []string
	for _, br := range branches {
		if br.IsCurrent {
			lines = append(lines, okStyle.Render("* "+br.Name))
		} else {
			lines = append(lines, "  "+br.Name)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderSyncResult formats the outcome of a sync flow.
func RenderSyncResult(res *domain.SyncResult) string {
	switch res.Status {
	case domain.FlowCompleted:
		out := okStyle.Render("Synced: committed and pushed.")
		if res.ServerOutput != "" {
			out += "\n" + dimStyle.Render(res.ServerOutput)
		}
		return out
	case domain.FlowSkipped:
		return warnStyle.Render("Nothing to do: " + res.Reason)
	default:
		if res.Committed && !res.Pushed {
			return errStyle.Render("Sync aborted: ") + res.Reason + "\n" +
				warnStyle.Render("The commit exists locally; run `git push` once the problem is fixed.")
		}
		return errStyle.Render("Sync aborted: ") + res.Reason
	}
}

// RenderReleaseResult formats the outcome of a release flow.
func RenderReleaseResult(res *domain.ReleaseResult) string {
	if res.Status == domain.FlowCompleted {
		return okStyle.Render(fmt.Sprintf("Release %s published.", res.TagName)) + "\n" +
			"View it at: " + res.ReleaseURL
	}
	out := errStyle.Render("Release aborted: ") + res.Reason
	if res.TagCreated {
		note := fmt.Sprintf("Tag %s was created", res.TagName)
		if res.TagPushed {
			note += " and pushed"
		}
		out += "\n" + warnStyle.Render(note+"; it was left in place.")
	}
	return out
}
