package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitship/gitship/internal/orchestrator"
	"github.com/gitship/gitship/internal/ui"
)

func newBranchCmd(c *container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "List, create or switch branches",
	}
	cmd.AddCommand(newBranchListCmd(c), newBranchNewCmd(c), newBranchSwitchCmd(c))
	return cmd
}

func newBranchListCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List local branches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			branches, err := c.gitRepo.ListBranches(cmd.Context())
			if err != nil {
				return err
			}
			if len(branches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No local branches found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderBranches(branches))
			return nil
		},
	}
}

func newBranchNewCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a local branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := orchestrator.ValidateBranchName(name); err != nil {
				return err
			}
			if err := c.gitRepo.CreateBranch(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Branch %q created.\n", name)
			return nil
		},
	}
}

func newBranchSwitchCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <name>",
		Short: "Switch to an existing branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := orchestrator.ValidateBranchName(name); err != nil {
				return err
			}
			if err := c.gitRepo.SwitchBranch(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to branch %q.\n", name)
			return nil
		},
	}
}
