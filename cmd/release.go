package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitship/gitship/internal/domain"
	"github.com/gitship/gitship/internal/ui"
)

// newReleaseCmd creates the release command: sync, tag, publish.
func newReleaseCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "release",
		Short: "Sync, create an annotated tag and publish a GitHub release",
		Long: `Run the sync flow, then tag the result and publish a GitHub release.

The release only proceeds from a fully completed sync; it then resolves
the origin remote, prompts for a tag name and release notes, creates an
annotated tag, pushes it and publishes the release. Steps already done
are never undone when a later step fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.orch.Release(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderReleaseResult(res))
			if res.Status != domain.FlowCompleted {
				return fmt.Errorf("release did not complete")
			}
			return nil
		},
	}
}
