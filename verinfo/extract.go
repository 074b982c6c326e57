package verinfo

import (
	"fmt"

	"github.com/joshuapare/verkit/internal/buf"
	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/types"
	"github.com/joshuapare/verkit/vsblock"
)

// VersionInfo is the interpreted content of a VS_VERSIONINFO resource.
type VersionInfo struct {
	// FileVersion and ProductVersion are nil when the root block carries no
	// VS_FIXEDFILEINFO value.
	FileVersion    *types.Version `json:"fileVersion,omitempty"`
	ProductVersion *types.Version `json:"productVersion,omitempty"`
	Fixed          *FixedFileInfo `json:"fixed,omitempty"`

	// Strings holds the neutral string table. It is never nil.
	Strings map[string]string `json:"strings"`

	// Keys lists Strings' names in the order they first appear in the table.
	Keys []string `json:"-"`
}

// Lookup returns the named entry of the neutral string table.
func (v *VersionInfo) Lookup(name string) (string, bool) {
	s, ok := v.Strings[name]
	return s, ok
}

func (v *VersionInfo) setString(name, value string) {
	if _, seen := v.Strings[name]; !seen {
		v.Keys = append(v.Keys, name)
	}
	// A repeated name keeps the value that comes last in the table.
	v.Strings[name] = value
}

// Parse decodes the block tree at the start of b and extracts its version
// information.
func Parse(b []byte) (*VersionInfo, error) {
	root, err := vsblock.Read(b, 0)
	if err != nil {
		return nil, err
	}
	return Extract(root, b)
}

// Extract interprets root, decoded from b, as a VS_VERSIONINFO tree.
// It fails with types.ErrNotAVersionResource when the root key is anything
// but "VS_VERSION_INFO", regardless of how well-formed the children are.
func Extract(root vsblock.Element, b []byte) (*VersionInfo, error) {
	if root.Key != format.KeyVersionInfo {
		return nil, fmt.Errorf("verinfo: root key %q: %w", root.Key, types.ErrNotAVersionResource)
	}

	info := &VersionInfo{Strings: make(map[string]string)}

	if root.ValueLength != 0 {
		raw, ok := buf.Slice(b, int(root.ValueOffset), format.FixedFileInfoSize)
		if !ok {
			return nil, fmt.Errorf("verinfo: fixed file info at %#x (buffer %d bytes): %w",
				root.ValueOffset, len(b), types.ErrTruncated)
		}
		fixed := decodeFixedFileInfo(raw)
		fileVersion, productVersion := fixed.FileVersion(), fixed.ProductVersion()
		info.Fixed = &fixed
		info.FileVersion = &fileVersion
		info.ProductVersion = &productVersion
	}

	sfi, ok := root.Child(format.KeyStringFileInfo)
	if !ok {
		return info, nil
	}
	table, ok := sfi.Child(format.KeyNeutralStringTable)
	if !ok {
		return info, nil
	}

	for _, s := range table.Children {
		value, err := format.DecodeUTF16(format.TrimUTF16Z(stringValue(s, b)))
		if err != nil {
			return nil, fmt.Errorf("verinfo: string %q at %#x: %w", s.Key, s.ValueOffset, err)
		}
		info.setString(s.Key, value)
	}
	return info, nil
}

// stringValue returns the 2*wValueLength bytes at the element's value
// offset, clamped to b. String entries count code units whatever wType says.
func stringValue(el vsblock.Element, b []byte) []byte {
	start := int(el.ValueOffset)
	if start >= len(b) {
		return nil
	}
	end := start + int(el.ValueLength)*format.UTF16UnitSize
	if end > len(b) {
		end = len(b)
	}
	return b[start:end]
}
