// Command wordsnap is the operator CLI: it runs extractions against local
// image files, normalizes saved model replies, and moves device libraries
// in and out of the database.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsnap-backend/internal/app"
	"github.com/heartmarshall/wordsnap-backend/internal/config"
)

var (
	configPath string
	envFile    string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "wordsnap",
		Short:        "Scan vocabulary lists into study sets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile == "" {
				return nil
			}
			if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "config file path")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config (empty to skip)")

	cmd.AddCommand(extractCmd())
	cmd.AddCommand(rescanCmd())
	cmd.AddCommand(normalizeCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(studyCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Read(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLoggerTo(os.Stderr, cfg.Log), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func versionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := app.BuildInfo()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
