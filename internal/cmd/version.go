package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomrt/relkit/internal/output"
	"github.com/loomrt/relkit/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show relkit version information.

Displays the relkit version, commit, build date, Go version, and the
embedded CUE SDK version used to parse component metadata.`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	output.Println(fmt.Sprintf("relkit version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:   %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:    %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:       %s", info.GoVersion))
	output.Println(fmt.Sprintf("  CUE SDK:  %s", info.CUESDKVersion))

	return nil
}
