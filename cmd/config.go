package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mysticguide/internal/config"
)

// newConfigCmd represents the config command group
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the config file and data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.LoadConfig(); err != nil {
				return fmt.Errorf("error initializing config: %w", err)
			}

			dataDir := config.GetDataDir()
			if err := os.MkdirAll(dataDir, 0755); err != nil {
				return fmt.Errorf("error creating data directory: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
			fmt.Fprintln(out, "Readings will be saved under:", dataDir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get [key]",
		Short: "Print one config value, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			keys := config.Keys()
			if len(args) == 1 {
				keys = args
			}
			for _, key := range keys {
				v, err := cfg.Get(key)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", key, v)
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set [key] [value]",
		Short: "Change one config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set(args[0], args[1]); err != nil {
				return fmt.Errorf("error setting %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", args[0], args[1])
			return nil
		},
	})

	return cmd
}
