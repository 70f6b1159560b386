// Package main provides the CLI entry point for nodealloc.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ukaji3/nodealloc-go/internal/config"
	"github.com/ukaji3/nodealloc-go/internal/logger"
	"github.com/ukaji3/nodealloc-go/pkg/nodealloc"
	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"
	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/output"
)

type flags struct {
	date       string
	configPath string
	sheet      string
	logLevel   string
	envFile    string
}

func main() {
	rootCmd := newRootCmd(os.Stdout, nodealloc.SystemClock{})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer, clock nodealloc.Clock) *cobra.Command {
	var fl flags
	rootCmd := &cobra.Command{
		Use:   "nodealloc [flags] FILE.xlsx",
		Short: "Print who is assigned to each compute node on a date",
		Long: `nodealloc reads an allocation spreadsheet and prints the user assigned
to each compute node on the given date (today by default).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, clock, fl, args[0])
		},
	}

	rootCmd.Flags().StringVarP(&fl.date, "date", "d", "", "Print allocation for the given date (YYYY-MM-DD, default: today)")
	rootCmd.Flags().StringVarP(&fl.configPath, "config", "c", "", "Schema configuration file (.yaml, .yml or .json)")
	rootCmd.Flags().StringVarP(&fl.sheet, "sheet", "s", "", "Worksheet name (overrides the configuration)")
	rootCmd.Flags().StringVar(&fl.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&fl.envFile, "env-file", ".env", "Optional dotenv file with NODEALLOC_ overrides")

	return rootCmd
}

func run(stdout io.Writer, clock nodealloc.Clock, fl flags, inputPath string) error {
	if err := logger.SetLevel(fl.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", fl.logLevel, err)
	}
	log := logger.New("cli")

	if fl.envFile != "" {
		if err := godotenv.Load(fl.envFile); err != nil {
			log.Debugf("no env file loaded from %s: %v", fl.envFile, err)
		}
	}

	cfg, err := config.Load(fl.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if fl.sheet != "" {
		cfg.Sheet = fl.sheet
	}
	schema, err := cfg.Schema()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	target := nodealloc.Today(clock)
	if fl.date != "" {
		if target, err = models.ParseDate(fl.date); err != nil {
			return err
		}
	}
	log.Debugf("looking up %s in %s", target, inputPath)

	report, err := nodealloc.Lookup(inputPath, target, nodealloc.Options{
		Schema: schema,
		Logger: logger.New("lookup"),
	})
	if err != nil {
		return err
	}

	return output.WriteText(stdout, report)
}
