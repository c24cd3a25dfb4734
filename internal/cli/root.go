package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nsboot/pkg/config"
	"nsboot/pkg/logger"
)

var (
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "nsboot",
	Short: "Start a process inside fresh Linux namespaces",
	Long: `nsboot creates a process in new namespaces, writes its uid/gid mapping,
reduces its capabilities to an allow-list and replaces it with the target
command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// This runs before any subcommand except init
		return loadConfig(cmd)
	},
}

// ExitError carries the process exit code a command wants. Err is nil when
// the code is the container's own status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to the configuration file (default: $NSBOOT_CONFIG_PATH, ./nsboot.yaml, /etc/nsboot/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newHelpConfigCmd())
	rootCmd.AddCommand(newInitCmd())
}

// loadConfig runs as rootCmd's PersistentPreRunE and reaches the root
// flags through cmd.
func loadConfig(cmd *cobra.Command) error {
	var (
		source string
		err    error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
		source = configPath
	} else {
		cfg, source, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	if level, _ := cmd.Root().PersistentFlags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := configureLogging(cfg.Logging); err != nil {
		return err
	}

	logger.Debug("configuration loaded", "source", source)
	return nil
}

func configureLogging(logging config.LoggingConfig) error {
	level, err := logger.ParseLevel(logging.Level)
	if err != nil {
		return err
	}
	output, err := logger.OpenOutput(logging.Output)
	if err != nil {
		return err
	}

	logger.Configure(logger.Config{Level: level, Output: output, Format: logging.Format})
	return nil
}
