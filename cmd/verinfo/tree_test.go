package main

import (
	"context"
	"encoding/json"
	"testing"
)

func TestTreeCommand(t *testing.T) {
	tests := []struct {
		name        string
		wantJSON    bool
		wantContain []string
	}{
		{
			name: "text",
			wantContain: []string{
				"VS_VERSION_INFO [binary]",
				"\n  StringFileInfo [text]",
				"\n    000004b0 [text]",
				`FileVersion [text] len=`,
				`= "4.0.0.2283"`,
				"\n  VarFileInfo [text]",
				"Translation [binary]",
			},
		},
		{
			name:     "json",
			wantJSON: true,
			wantContain: []string{
				`"key": "VS_VERSION_INFO"`,
				`"text": "Contoso Ltd."`,
				`"binary": "0000b004"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON

			args := []string{writeImage(t, widgetResource())}

			output, err := captureOutput(t, func() error {
				return runTree(context.Background(), args)
			})
			if err != nil {
				t.Fatalf("runTree() error = %v\nOutput: %s", err, output)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestTreeCommand_JSONShape(t *testing.T) {
	resetFlags()
	jsonOut = true

	args := []string{writeImage(t, widgetResource())}
	output, err := captureOutput(t, func() error {
		return runTree(context.Background(), args)
	})
	if err != nil {
		t.Fatalf("runTree() error = %v", err)
	}

	var root treeNode
	if err := json.Unmarshal([]byte(output), &root); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if root.Type != "binary" || root.ValueLength != 52 {
		t.Errorf("unexpected root: %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected StringFileInfo and VarFileInfo, got %d children", len(root.Children))
	}
	table := root.Children[0].Children[0]
	if table.Key != "000004b0" || len(table.Children) != 3 {
		t.Errorf("unexpected string table: %+v", table)
	}
}
