package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitship/gitship/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gitship %s\n", version.Summary())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", safeValue(version.CommitHash))
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", safeValue(version.BuildDate))
		},
	}
}

func safeValue(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
