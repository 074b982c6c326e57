package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/peinfo"
	"github.com/joshuapare/verkit/vsblock"
)

func init() {
	rootCmd.AddCommand(newTreeCmd())
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Dump the raw block tree of the version resource",
		Long: `The tree command decodes the language-neutral version resource into
its generic block tree and prints every block with its type, length, and
value, without interpreting keys.

Example:
  verinfo tree notepad.exe
  verinfo tree notepad.exe --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd.Context(), args)
		},
	}
	return cmd
}

type treeNode struct {
	Key         string     `json:"key"`
	Type        string     `json:"type"`
	Offset      uint32     `json:"offset"`
	Length      uint16     `json:"length"`
	ValueLength uint16     `json:"valueLength"`
	Text        *string    `json:"text,omitempty"`
	Binary      string     `json:"binary,omitempty"`
	Children    []treeNode `json:"children,omitempty"`
}

func toTreeNode(el vsblock.Element, b []byte) (treeNode, error) {
	n := treeNode{
		Key:         el.Key,
		Type:        "binary",
		Offset:      el.Offset,
		Length:      el.Length,
		ValueLength: el.ValueLength,
	}
	if el.IsText() {
		n.Type = "text"
		if el.ValueLength != 0 {
			s, err := format.DecodeUTF16(format.TrimUTF16Z(el.Value(b)))
			if err != nil {
				return n, fmt.Errorf("block %q: %w", el.Key, err)
			}
			n.Text = &s
		}
	} else if el.ValueLength != 0 {
		n.Binary = hex.EncodeToString(el.Value(b))
	}
	for _, c := range el.Children {
		cn, err := toTreeNode(c, b)
		if err != nil {
			return n, err
		}
		n.Children = append(n.Children, cn)
	}
	return n, nil
}

func runTree(ctx context.Context, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	printVerbose("Reading version resource: %s\n", path)

	data, err := peinfo.VersionResource(ctx, f, peOptions())
	if err != nil {
		return fmt.Errorf("failed to read version resource: %w", err)
	}
	root, err := vsblock.Read(data, 0)
	if err != nil {
		return fmt.Errorf("failed to decode version resource: %w", err)
	}

	if jsonOut {
		n, err := toTreeNode(root, data)
		if err != nil {
			return err
		}
		return printJSON(n)
	}

	if quiet {
		return nil
	}
	var out bytes.Buffer
	if err := vsblock.Fprint(&out, root, data); err != nil {
		return err
	}
	_, err = os.Stdout.Write(out.Bytes())
	return err
}
