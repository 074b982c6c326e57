package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/joshuapare/verkit/internal/testutil"
	"github.com/joshuapare/verkit/pkg/types"
	"github.com/joshuapare/verkit/verinfo"
)

// resetFlags restores every global flag to its default
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = false
	logFile = ""
	checkMin = ""
	checkMax = ""
	checkProduct = false
	color.NoColor = true
}

// widgetResource is the version resource most command tests read
func widgetResource() verinfo.Resource {
	fixed := verinfo.NewFixedFileInfo(
		types.Version{Major: 4, Minor: 0, Build: 0, Revision: 2283},
		types.Version{Major: 10, Minor: 1},
	)
	return verinfo.Resource{
		Fixed: &fixed,
		Strings: []verinfo.StringEntry{
			{Key: "CompanyName", Value: "Contoso Ltd."},
			{Key: "FileVersion", Value: "4.0.0.2283"},
			{Key: "ProductName", Value: "Widget"},
		},
	}
}

// writeImage builds a PE image carrying res plus any extra resources and
// returns its path
func writeImage(t *testing.T, res verinfo.Resource, extra ...testutil.Resource) string {
	t.Helper()
	b, err := verinfo.Marshal(res)
	if err != nil {
		t.Fatalf("failed to marshal resource: %v", err)
	}
	resources := append([]testutil.Resource{testutil.VersionResource(b)}, extra...)
	return testutil.WriteTemp(t, "widget.exe", testutil.BuildImage(resources...))
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
