package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/pkg/peinfo"
	"github.com/joshuapare/verkit/pkg/types"
)

var (
	checkMin     string
	checkMax     string
	checkProduct bool
)

// errOutOfRange is returned when the checked version falls outside the range.
var errOutOfRange = errors.New("version out of range")

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check that a file version falls within a range",
		Long: `The check command compares the file version of a PE file against an
inclusive range and exits non-zero when it falls outside, or when the file
carries no fixed file info at all. Versions accept one to four
dot-separated components; missing components are zero.

Example:
  verinfo check app.exe --min 4.0
  verinfo check app.exe --min 4.0.0.2000 --max 4.1
  verinfo check app.exe --product --min 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVar(&checkMin, "min", "", "Lowest acceptable version (inclusive)")
	cmd.Flags().StringVar(&checkMax, "max", "", "Highest acceptable version (inclusive)")
	cmd.Flags().BoolVar(&checkProduct, "product", false, "Check the product version instead of the file version")
	return cmd
}

type checkResult struct {
	File    string         `json:"file"`
	Version types.Version  `json:"version"`
	Min     *types.Version `json:"min,omitempty"`
	Max     *types.Version `json:"max,omitempty"`
	OK      bool           `json:"ok"`
}

func parseBound(flag, s string) (*types.Version, error) {
	if s == "" {
		return nil, nil
	}
	v, err := types.ParseVersion(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return &v, nil
}

func runCheck(ctx context.Context, args []string) error {
	path := args[0]

	lo, err := parseBound("min", checkMin)
	if err != nil {
		return err
	}
	hi, err := parseBound("max", checkMax)
	if err != nil {
		return err
	}
	if lo == nil && hi == nil {
		return errors.New("at least one of --min or --max is required")
	}
	if lo != nil && hi != nil && hi.Less(*lo) {
		return fmt.Errorf("--max %s is below --min %s", hi, lo)
	}

	info, err := peinfo.GetFileVersionInfo(ctx, path, peOptions())
	if err != nil {
		return fmt.Errorf("failed to read version info: %w", err)
	}
	got := info.FileVersion
	if checkProduct {
		got = info.ProductVersion
	}
	if got == nil {
		return fmt.Errorf("%s: no fixed file info", path)
	}

	res := checkResult{File: path, Version: *got, Min: lo, Max: hi, OK: true}
	if lo != nil && got.Less(*lo) {
		res.OK = false
	}
	if hi != nil && hi.Less(*got) {
		res.OK = false
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		verdict := color.New(color.FgGreen, color.Bold).Sprint("OK")
		if !res.OK {
			verdict = color.New(color.FgRed, color.Bold).Sprint("FAIL")
		}
		printInfo("%s %s %s (want %s)\n", verdict, path, got, rangeString(lo, hi))
	}

	if !res.OK {
		return fmt.Errorf("%s: %s not in %s: %w", path, got, rangeString(lo, hi), errOutOfRange)
	}
	return nil
}

func rangeString(lo, hi *types.Version) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("%s..%s", lo, hi)
	case lo != nil:
		return fmt.Sprintf(">= %s", lo)
	default:
		return fmt.Sprintf("<= %s", hi)
	}
}
