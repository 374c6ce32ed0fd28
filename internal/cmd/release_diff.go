package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loomrt/relkit/internal/diff"
	"github.com/loomrt/relkit/internal/output"
)

// NewReleaseDiffCmd creates the release diff command.
func NewReleaseDiffCmd() *cobra.Command {
	var reportFlag bool

	c := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare two release specifications",
		Long: `Compare two release specification files and report which applications were
added, removed, or changed version between them.

Examples:
  # Compare two releases
  relkit release diff ./v1/_release/svc.rel ./v2/_release/svc.rel

  # Include the full structural document diff
  relkit release diff old.rel new.rel --report`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return exitify(runReleaseDiff(args[0], args[1], reportFlag))
		},
	}

	c.Flags().BoolVar(&reportFlag, "report", false, "Show the full structural document diff")

	return c
}

// runReleaseDiff executes the release diff command.
func runReleaseDiff(oldPath, newPath string, showReport bool) error {
	result, err := diff.Releases(oldPath, newPath)
	if err != nil {
		return WrapNotFound(err, "comparing releases")
	}

	changed := make([]output.ChangedItem, 0, len(result.Changed))
	for _, app := range result.Changed {
		changed = append(changed, output.ChangedItem{Name: app.Name, Diff: app.Detail()})
	}
	output.Print(output.RenderDiff(result.Added, result.Removed, changed))

	if result.RuntimeChanged {
		output.Warn("platform runtime version changed")
	}
	if showReport && result.Report != "" {
		output.Println(result.Report)
	}

	return nil
}
