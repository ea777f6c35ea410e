package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/comparefiles/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand(global *GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or create the comparefiles configuration file.`,
	}

	cmd.AddCommand(newConfigShowCommand(global))
	cmd.AddCommand(newConfigInitCommand(global))

	return cmd
}

func newConfigShowCommand(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(global.ConfigFile)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Prefix Size: %d\n", cfg.Compare.PrefixSize)
			fmt.Fprintf(w, "Block Size: %d\n", cfg.Compare.BlockSize)
			fmt.Fprintf(w, "Single Pass: %t\n", cfg.Compare.SinglePass)
			fmt.Fprintf(w, "Parallel: %t\n", cfg.Compare.Parallel)
			fmt.Fprintf(w, "Output Format: %s\n", cfg.Output.Format)
			fmt.Fprintf(w, "Progress: %t\n", cfg.Output.Progress)
			fmt.Fprintf(w, "Timing: %t\n", cfg.Output.Timing)
			fmt.Fprintf(w, "Logging Enabled: %t\n", cfg.Logging.Enabled)
			fmt.Fprintf(w, "Log Format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(w, "Log Level: %s\n", cfg.Logging.Level)
			if cfg.Logging.File != "" {
				fmt.Fprintf(w, "Log File: %s\n", cfg.Logging.File)
			}

			return nil
		},
	}
}

func newConfigInitCommand(global *GlobalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := global.ConfigFile
			if path == "" {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return err
				}
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("failed to check config file: %w", err)
				}
			}

			if err := config.SaveToFile(config.Default(), path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")

	return cmd
}
