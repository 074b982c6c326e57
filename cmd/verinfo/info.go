package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/internal/logger"
	"github.com/joshuapare/verkit/pkg/peinfo"
	"github.com/joshuapare/verkit/pkg/types"
	"github.com/joshuapare/verkit/verinfo"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show the version information of a PE file",
		Long: `The info command decodes the language-neutral version resource of a
PE file and prints the file and product versions, the fixed file info
fields, and the neutral string table in table order.

Example:
  verinfo info notepad.exe
  verinfo info notepad.exe --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args)
		},
	}
	return cmd
}

type infoOutput struct {
	File           string                 `json:"file"`
	Size           int64                  `json:"size"`
	FileVersion    *types.Version         `json:"fileVersion,omitempty"`
	ProductVersion *types.Version         `json:"productVersion,omitempty"`
	Fixed          *verinfo.FixedFileInfo `json:"fixed,omitempty"`
	Strings        []verinfo.StringEntry  `json:"strings"`
}

func runInfo(ctx context.Context, args []string) error {
	path := args[0]

	printVerbose("Reading version resource: %s\n", path)

	info, err := peinfo.GetFileVersionInfo(ctx, path, peOptions())
	if err != nil {
		return fmt.Errorf("failed to read version info: %w", err)
	}

	var size int64
	if stat, err := os.Stat(path); err == nil {
		size = stat.Size()
	}

	strs := make([]verinfo.StringEntry, 0, len(info.Keys))
	for _, k := range info.Keys {
		strs = append(strs, verinfo.StringEntry{Key: k, Value: info.Strings[k]})
	}

	if jsonOut {
		return printJSON(infoOutput{
			File:           path,
			Size:           size,
			FileVersion:    info.FileVersion,
			ProductVersion: info.ProductVersion,
			Fixed:          info.Fixed,
			Strings:        strs,
		})
	}

	printInfo("\nVersion Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Size: %s\n", humanize.IBytes(uint64(size)))

	if info.Fixed == nil {
		printInfo("  Fixed file info: none\n")
	} else {
		f := info.Fixed
		if !f.HasSignature() {
			logger.Warn("unexpected fixed file info signature", "path", path, "signature", f.Signature)
			printWarning("fixed file info signature is 0x%08x, expected 0xfeef04bd\n", f.Signature)
		}
		flags := "none"
		if names := f.FlagNames(); len(names) > 0 {
			flags = strings.Join(names, ", ")
		}
		printInfo("  File version: %s\n", info.FileVersion)
		printInfo("  Product version: %s\n", info.ProductVersion)
		printInfo("  File flags: %s\n", flags)
		printInfo("  File type: %s\n", f.FileTypeName())
		printInfo("  File OS: 0x%08x\n", f.FileOS)
	}

	if len(strs) == 0 {
		printInfo("\nStrings: none\n")
		return nil
	}

	width := 0
	for _, s := range strs {
		width = max(width, len(s.Key))
	}
	printInfo("\nStrings:\n")
	for _, s := range strs {
		printInfo("  %-*s  %s\n", width, s.Key, s.Value)
	}
	return nil
}
