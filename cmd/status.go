package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitship/gitship/internal/ui"
)

func newStatusCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the repository status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := c.gitRepo.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderStatus(state))
			return nil
		},
	}
}
