package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/loomrt/relkit/internal/config"
	"github.com/loomrt/relkit/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the relkit CLI.`,
	}

	c.AddCommand(NewConfigInitCmd())
	c.AddCommand(NewConfigVetCmd())

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new configuration file",
		Long: `Create a new relkit configuration file with default values.

The configuration file is created at ~/.relkit/config.yaml by default.
Use the --config flag to specify a different location.`,
		RunE: func(c *cobra.Command, args []string) error {
			return exitify(runConfigInit(forceFlag))
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file")

	return c
}

// runConfigInit executes the config init command.
func runConfigInit(force bool) error {
	path, err := targetConfigFile()
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte("# relkit configuration\n\n"), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("config file created: %s", path)))
	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the relkit configuration file against the internal schema.

The command validates the configuration file at ~/.relkit/config.yaml by
default. Use the --config flag to specify a different location.`,
		RunE: func(c *cobra.Command, args []string) error {
			return exitify(runConfigVet())
		},
	}
}

// runConfigVet executes the config vet command.
func runConfigVet() error {
	path, err := targetConfigFile()
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return NewExitError(
			fmt.Errorf("config file %s: %w", path, ErrNotFound),
			ExitNotFound,
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, e := range validationErrs {
				output.Error("invalid config value", "field", e.Field, "message", e.Message)
			}
			return NewExitError(err, ExitInputError)
		}
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("config file valid: %s", path)))
	return nil
}

// targetConfigFile resolves which config file the config subcommands act
// on: the --config flag when set, else the default location.
func targetConfigFile() (string, error) {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expanded, nil
}
