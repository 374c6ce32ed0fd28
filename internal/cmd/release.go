package cmd

import (
	"github.com/spf13/cobra"
)

// NewReleaseCmd creates the release command group.
func NewReleaseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "release",
		Short: "Build and compare releases",
		Long: `Build a release from a compiled main component and its dependencies, or
compare two release specifications.`,
	}

	c.AddCommand(NewReleaseBuildCmd())
	c.AddCommand(NewReleaseDiffCmd())

	return c
}
