package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitship/gitship/internal/domain"
	"github.com/gitship/gitship/internal/ui"
)

// newSyncCmd creates the sync command: stage everything, commit, push.
func newSyncCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Stage all changes, commit and push",
		Long: `Stage every pending change, prompt for a commit message, commit and
push. If nothing ends up staged the flow is skipped without committing.
A push failure leaves the commit in place and says so.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.orch.Sync(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSyncResult(res))
			if res.Status == domain.FlowAborted {
				return fmt.Errorf("sync did not complete")
			}
			return nil
		},
	}
}
