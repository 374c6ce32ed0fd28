package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loomrt/relkit/internal/config"
	"github.com/loomrt/relkit/internal/output"
)

var (
	// Global flags
	configFlag       string
	platformRootFlag string
	verboseFlag      bool

	// Loaded configuration (set during PersistentPreRunE)
	relkitConfig *config.Config
)

// NewRootCmd creates the root command for the relkit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "relkit",
		Short:         "Loom release and bundle assembler",
		Long: `relkit assembles deployable runtime bundles for Loom applications: it
resolves the full set of required components, emits release artifacts with a
bootable start specification, and packages everything into a self-contained
bundle tree with a launcher.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: RELKIT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&platformRootFlag, "platform-root", "", "Loom platform installation directory (env: RELKIT_PLATFORM_ROOT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewReleaseCmd())
	rootCmd.AddCommand(NewBundleCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Commands that never touch the platform still work without a
		// readable config file.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	relkitConfig = cfg

	root := resolvePlatformRoot()
	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{
			{Key: "platform-root", Value: root.Root, Source: root.Source, Shadowed: root.Shadowed},
		})
	}

	return nil
}

// resolvePlatformRoot applies flag > env > config > default precedence.
func resolvePlatformRoot() config.ResolvePlatformRootResult {
	var configValue string
	if relkitConfig != nil {
		configValue = relkitConfig.Platform.Root
	}
	return config.ResolvePlatformRoot(config.ResolvePlatformRootOptions{
		FlagValue:   platformRootFlag,
		ConfigValue: configValue,
	})
}

// runtimeVersionOverride returns the configured runtime version override,
// when any.
func runtimeVersionOverride() string {
	if relkitConfig != nil {
		return relkitConfig.Platform.RuntimeVersion
	}
	return ""
}
