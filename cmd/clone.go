package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCloneCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "clone <url>",
		Short: "Clone a repository, streaming git's progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := c.gitRepo.Clone(cmd.Context(), args[0], func(line string) {
				fmt.Fprintln(out, line)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Clone finished.")
			return nil
		},
	}
}
