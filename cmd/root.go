package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gitship/gitship/internal/repository"
	"github.com/gitship/gitship/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "gitship",
	Short: "An interactive assistant for everyday git workflows",
	Long: `gitship sequences the everyday version-control chores - stage, commit,
push, tag and publish a GitHub release - by driving the git executable.

Run it without arguments for the interactive menu, or use the subcommands
directly.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// InitCommands initializes all commands with their dependencies.
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		defer c.close()
		menu := ui.NewMenu(c.orch, c.gitRepo, c.prompter, c.store, c.log, os.Stdout)
		menu.OnTokenSaved = func(token string) {
			c.orch.SetPublisher(repository.NewGithubPublisher(token))
		}
		return menu.Run(cmd.Context())
	}

	rootCmd.AddCommand(
		newSyncCmd(c),
		newReleaseCmd(c),
		newStatusCmd(c),
		newBranchCmd(c),
		newCloneCmd(c),
		newVersionCmd(),
	)
	return nil
}
