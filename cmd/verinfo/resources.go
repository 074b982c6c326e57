package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/internal/peimage"
	"github.com/joshuapare/verkit/pkg/peinfo"
)

func init() {
	rootCmd.AddCommand(newResourcesCmd())
}

func newResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources <file>",
		Short: "List every resource in the .rsrc section",
		Long: `The resources command walks the resource directory of a PE file and
lists each leaf by type, name, and language with its size and code page.

Example:
  verinfo resources notepad.exe
  verinfo resources notepad.exe --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResources(cmd.Context(), args)
		},
	}
	return cmd
}

type resourceRow struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Language string `json:"language"`
	RVA      uint32 `json:"rva"`
	Size     uint32 `json:"size"`
	CodePage uint32 `json:"codePage"`
}

func typeLabel(id peimage.ResourceID) string {
	if id.IsNamed() {
		return id.Name
	}
	return peimage.ResourceType(id.ID).String()
}

func runResources(ctx context.Context, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	printVerbose("Walking resource directory: %s\n", path)

	section, err := peinfo.ResourceSection(ctx, f, peOptions())
	if err != nil {
		return fmt.Errorf("failed to read resources: %w", err)
	}
	entries, err := section.ListResources()
	if err != nil {
		return fmt.Errorf("failed to walk resource directory: %w", err)
	}

	rows := make([]resourceRow, 0, len(entries))
	var total uint64
	for _, e := range entries {
		rows = append(rows, resourceRow{
			Type:     typeLabel(e.Type),
			Name:     e.Name.String(),
			Language: e.Language.String(),
			RVA:      e.RVA,
			Size:     e.Size,
			CodePage: e.CodePage,
		})
		total += uint64(e.Size)
	}

	if jsonOut {
		return printJSON(rows)
	}
	if quiet {
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Type", "Name", "Language", "RVA", "Size", "Code Page"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, r := range rows {
		table.Append([]string{
			r.Type,
			r.Name,
			r.Language,
			fmt.Sprintf("%#x", r.RVA),
			humanize.IBytes(uint64(r.Size)),
			strconv.FormatUint(uint64(r.CodePage), 10),
		})
	}
	table.Render()

	printInfo("\n%s in %d resource(s)\n", humanize.IBytes(total), len(rows))
	return nil
}
