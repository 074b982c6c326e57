package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/internal/logger"
	"github.com/joshuapare/verkit/pkg/peinfo"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "verinfo",
	Short: "Inspect version resources of Windows PE files",
	Long: `verinfo reads the language-neutral VS_VERSIONINFO resource of a
Windows executable or DLL and reports its file and product versions, the
fixed file info record, and the neutral string table. It never loads or
runs the image.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		logger.Debug("running command", "command", cmd.CommandPath(), "args", args)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append debug logs to this file")
}

func setup() error {
	if noColor {
		color.NoColor = true
	}
	return logger.Init(logger.Options{
		Enabled: verbose || logFile != "",
		Level:   slog.LevelDebug,
		Writer:  os.Stderr,
		File:    logFile,
	})
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("command failed", "error", err)
	}
	if cerr := logger.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close log file: %w", cerr)
	}
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func peOptions() *peinfo.Options {
	return &peinfo.Options{Logger: logger.L}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printWarning prints a highlighted warning to stderr unless quiet
func printWarning(format string, args ...any) {
	if !quiet {
		fmt.Fprint(os.Stderr, color.YellowString("Warning: "+format, args...))
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
