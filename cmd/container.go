package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/config"
	"github.com/gitship/gitship/internal/orchestrator"
	"github.com/gitship/gitship/internal/repository"
	"github.com/gitship/gitship/internal/service"
)

// container holds all the dependencies for the application.

type container struct {
	cfg      *config.Config
	store    *config.Store
	log      *zap.Logger
	gitRepo  repository.GitRepository
	prompter service.Prompter
	orch     *orchestrator.Orchestrator
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	log, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := config.NewStore(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}

	runner := repository.NewExecRunner()
	gitRepo := repository.NewGitRepository(runner)
	prompter := service.NewPrompter()

	// The publisher is optional: without a token the release flow aborts
	// at the publish step with a clear message, before any network call.
	var publisher repository.ReleasePublisher
	if cfg.HasToken() {
		publisher = repository.NewGithubPublisher(cfg.GithubToken)
	}

	orch := orchestrator.New(gitRepo, publisher, prompter, log)

	return &container{
		cfg:      cfg,
		store:    store,
		log:      log,
		gitRepo:  gitRepo,
		prompter: prompter,
		orch:     orch,
	}, nil
}

// newLogger builds the zap logger: quiet by default so flow output stays
// readable, verbose with GITSHIP_DEBUG=1.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("GITSHIP_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func (c *container) close() {
	// Sync flushes buffered log entries; stderr sync errors are expected
	// on some platforms and carry no information.
	_ = c.log.Sync()
}
