package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomrt/relkit/internal/bundle"
	"github.com/loomrt/relkit/internal/output"
)

// NewBundleVerifyCmd creates the bundle verify command.
func NewBundleVerifyCmd() *cobra.Command {
	var formatFlag string

	c := &cobra.Command{
		Use:   "verify DIR",
		Short: "Verify an assembled bundle",
		Long: `Verify an assembled bundle tree: re-read its release specification, check
the fixed layout paths, cross-check the lib/ tree against the application
list, and print the bundle's content digest.

Examples:
  # Verify a bundle
  relkit bundle verify ./dist/svc

  # Machine-readable report
  relkit bundle verify ./dist/svc --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return exitify(runBundleVerify(args[0], formatFlag))
		},
	}

	c.Flags().StringVar(&formatFlag, "format", "text", "Output format: text, json")

	return c
}

// runBundleVerify executes the bundle verify command.
func runBundleVerify(dir, formatValue string) error {
	format, ok := output.ParseOutputFormat(formatValue)
	if !ok || (format != output.FormatText && format != output.FormatJSON) {
		return NewExitError(
			fmt.Errorf("invalid output format %q (valid: %v)", formatValue, output.ValidVerifyFormats()),
			ExitGeneralError,
		)
	}

	report, err := bundle.Verify(dir)
	if err != nil {
		return WrapNotFound(err, "verifying bundle")
	}

	if format == output.FormatJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding verification report: %w", err)
		}
		output.Println(string(data))
	} else {
		showVerifyReport(report)
	}

	if !report.OK() {
		return NewExitError(fmt.Errorf("%w: %s", ErrInvalidBundle, report.Summary()), ExitAssemblyError)
	}

	return nil
}

// showVerifyReport renders a verification report as text.
func showVerifyReport(report *bundle.Report) {
	for _, path := range report.Missing {
		output.Error("missing", "path", path)
	}
	for _, path := range report.Extra {
		output.Error("unexpected", "path", path)
	}
	for _, name := range report.PlatformProvided {
		output.Debug("application provided by platform installation", "application", name)
	}

	output.Println(fmt.Sprintf("Digest: %s", report.Digest))
	if report.OK() {
		output.Println(output.FormatCheckmark(report.Summary()))
	} else {
		output.Println(report.Summary())
	}
}
