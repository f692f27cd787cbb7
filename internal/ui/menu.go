package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/config"
	"github.com/gitship/gitship/internal/domain"
	"github.com/gitship/gitship/internal/orchestrator"
	"github.com/gitship/gitship/internal/repository"
	"github.com/gitship/gitship/internal/service"
)

const (
	actionStatus    = "status"
	actionSync      = "sync"
	actionRelease   = "release"
	actionNewBranch = "new-branch"
	actionSwitch    = "switch-branch"
	actionClone     = "clone"
	actionToken     = "token"
	actionQuit      = "quit"
)

// Menu is the interactive entry point: a select loop dispatching to the
// same operations the subcommands expose.
type Menu struct {
	orch     *orchestrator.Orchestrator
	git      repository.GitRepository
	prompter service.Prompter
	store    *config.Store
	log      *zap.Logger
	out      io.Writer

	// OnTokenSaved lets the caller rewire the release publisher after the
	// token changes mid-session.
	OnTokenSaved func(token string)
}

// NewMenu creates the interactive menu.
func NewMenu(
	orch *orchestrator.Orchestrator,
	git repository.GitRepository,
	prompter service.Prompter,
	store *config.Store,
	log *zap.Logger,
	out io.Writer,
) *Menu {
	return &Menu{orch: orch, git: git, prompter: prompter, store: store, log: log, out: out}
}

// Run loops until the user quits. Flow failures are reported and control
// returns to the menu; they never terminate the session.
func (m *Menu) Run(ctx context.Context) error {
	for {
		action, err := m.selectAction(ctx)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if action == actionQuit {
			return nil
		}
		if err := m.dispatch(ctx, action); err != nil {
			return err
		}
	}
}

func (m *Menu) selectAction(ctx context.Context) (string, error) {
	var action string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("gitship").
			Description("What do you want to do?").
			Options(
				huh.NewOption("View status", actionStatus),
				huh.NewOption("Stage, commit and push", actionSync),
				huh.NewOption("Sync and publish a release", actionRelease),
				huh.NewOption("Create a branch", actionNewBranch),
				huh.NewOption("Switch branch", actionSwitch),
				huh.NewOption("Clone a repository", actionClone),
				huh.NewOption("Configure GitHub token", actionToken),
				huh.NewOption("Quit", actionQuit),
			).
			Value(&action),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return action, nil
}

func (m *Menu) dispatch(ctx context.Context, action string) error {
	switch action {
	case actionStatus:
		return m.showStatus(ctx)
	case actionSync:
		return m.runSync(ctx)
	case actionRelease:
		return m.runRelease(ctx)
	case actionNewBranch:
		return m.createBranch(ctx)
	case actionSwitch:
		return m.switchBranch(ctx)
	case actionClone:
		return m.clone(ctx)
	case actionToken:
		return m.configureToken(ctx)
	}
	return nil
}

func (m *Menu) showStatus(ctx context.Context) error {
	state, err := m.git.Status(ctx)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, RenderStatus(state))
	return nil
}

func (m *Menu) runSync(ctx context.Context) error {
	res, err := m.orch.Sync(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, RenderSyncResult(res))
	return nil
}

func (m *Menu) runRelease(ctx context.Context) error {
	res, err := m.orch.Release(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, RenderReleaseResult(res))
	return nil
}

func (m *Menu) createBranch(ctx context.Context) error {
	name, err := m.prompter.Line(ctx, "New branch name")
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(m.out, warnStyle.Render("Cancelled."))
		return nil
	}
	if err := orchestrator.ValidateBranchName(name); err != nil {
		m.report(err)
		return nil
	}
	if err := m.git.CreateBranch(ctx, name); err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf("Branch %q created.", name)))
	return nil
}

func (m *Menu) switchBranch(ctx context.Context) error {
	branches, err := m.git.ListBranches(ctx)
	if err != nil {
		m.report(err)
		return nil
	}
	if len(branches) == 0 {
		fmt.Fprintln(m.out, warnStyle.Render("No local branches found."))
		return nil
	}
	target, err := m.selectBranch(ctx, branches)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	if err := m.git.SwitchBranch(ctx, target); err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf("Switched to branch %q.", target)))
	return nil
}

func (m *Menu) selectBranch(ctx context.Context, branches []domain.BranchRecord) (string, error) {
	options := make([]huh.Option[string], 0, len(branches))
	for _, br := range branches {
		label := "  " + br.Name
		if br.IsCurrent {
			label = "* " + br.Name
		}
		options = append(options, huh.NewOption(label, br.Name))
	}
	var target string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Switch to which branch?").
			Options(options...).
			Value(&target),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return target, nil
}

func (m *Menu) clone(ctx context.Context) error {
	url, err := m.prompter.Line(ctx, "Repository URL to clone")
	if err != nil {
		return err
	}
	if url == "" {
		fmt.Fprintln(m.out, warnStyle.Render("Cancelled."))
		return nil
	}
	fmt.Fprintf(m.out, "Cloning %s...\n", url)
	err = m.git.Clone(ctx, url, func(line string) {
		fmt.Fprintln(m.out, line)
	})
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, okStyle.Render("Repository cloned."))
	return nil
}

func (m *Menu) configureToken(ctx context.Context) error {
	token, err := m.prompter.Line(ctx, "GitHub personal access token")
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Fprintln(m.out, warnStyle.Render("Cancelled."))
		return nil
	}
	if err := m.store.Save(ctx, &config.Config{GithubToken: token}); err != nil {
		m.report(err)
		return nil
	}
	if m.OnTokenSaved != nil {
		m.OnTokenSaved(token)
	}
	m.log.Info("github token saved", zap.String("path", m.store.Path()))
	fmt.Fprintln(m.out, okStyle.Render("Token saved to "+m.store.Path()))
	return nil
}

func (m *Menu) report(err error) {
	fmt.Fprintln(m.out, errStyle.Render("Error: ")+err.Error())
}
