package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/verkit/internal/format"
)

// ResourceVA is the virtual address fixtures load their .rsrc section at.
const ResourceVA = 0x3000

// VersionResource is a language-neutral RT_VERSION leaf carrying data.
func VersionResource(data []byte) Resource {
	return Resource{
		Type:     format.ResourceTypeVersion,
		Name:     format.ResourceNameVersion,
		Language: format.ResourceLanguageNeutral,
		Data:     data,
	}
}

// BuildImage returns an image with a .text section and a .rsrc section
// holding resources.
//
// Example:
//
//	img := testutil.BuildImage(testutil.VersionResource(res))
func BuildImage(resources ...Resource) []byte {
	return BuildPE([]Section{
		{Name: ".text", VirtualAddress: 0x1000, Data: []byte{0xc3}},
		{Name: format.ResourceSectionName, VirtualAddress: ResourceVA, Data: BuildResourceSection(ResourceVA, resources)},
	})
}

// WriteTemp writes data to a file named name in a per-test temporary
// directory and returns its path. Calls t.Fatal if the write fails.
func WriteTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}
