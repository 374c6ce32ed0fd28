package cmd

import (
	"github.com/spf13/cobra"
)

// NewBundleCmd creates the bundle command group.
func NewBundleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "bundle",
		Short: "Assemble and verify deployable bundles",
		Long: `Assemble a deployable bundle tree from release artifacts and component
outputs, or verify an assembled bundle.`,
	}

	c.AddCommand(NewBundleAssembleCmd())
	c.AddCommand(NewBundleVerifyCmd())

	return c
}
