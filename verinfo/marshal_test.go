package verinfo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/vsblock"
)

func TestMarshal_TreeShape(t *testing.T) {
	fixed := NewFixedFileInfo(v4, v4)
	b, err := Marshal(Resource{Fixed: &fixed, Strings: []StringEntry{{"ProductVersion", "4.0.0.2283"}}})
	require.NoError(t, err)

	root, err := vsblock.Read(b, 0)
	require.NoError(t, err)
	require.Equal(t, format.KeyVersionInfo, root.Key)
	require.Equal(t, uint16(format.FixedFileInfoSize), root.ValueLength)
	require.Equal(t, len(b), root.End())

	sfi, ok := root.Child(format.KeyStringFileInfo)
	require.True(t, ok)
	tbl, ok := sfi.Child(format.KeyNeutralStringTable)
	require.True(t, ok)
	require.Len(t, tbl.Children, 1)
	require.Equal(t, uint16(len("4.0.0.2283")+1), tbl.Children[0].ValueLength, "text length in code units")

	vfi, ok := root.Child(format.KeyVarFileInfo)
	require.True(t, ok)
	tr, ok := vfi.Child(format.KeyTranslation)
	require.True(t, ok)
	require.Equal(t, []byte{0x00, 0x00, 0xb0, 0x04}, tr.Value(b))
}

func TestMarshal_NoStringsOmitsStringFileInfo(t *testing.T) {
	b, err := Marshal(Resource{})
	require.NoError(t, err)

	root, err := vsblock.Read(b, 0)
	require.NoError(t, err)
	require.Zero(t, root.ValueLength)
	_, ok := root.Child(format.KeyStringFileInfo)
	require.False(t, ok)
	require.Len(t, root.Children, 1)
}
