package peimage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/verkit/internal/testutil"
)

func TestFindSection(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	img := testutil.BuildImage(testutil.VersionResource(payload))

	s, err := FindSection(bytes.NewReader(img), ".rsrc")
	require.NoError(t, err)
	require.Equal(t, ".rsrc", s.Name)
	require.Equal(t, uint32(testutil.ResourceVA), s.VirtualAddress)
	require.Equal(t, testutil.BuildResourceSection(testutil.ResourceVA, []testutil.Resource{
		testutil.VersionResource(payload),
	}), s.Data)

	text, err := FindSection(bytes.NewReader(img), ".text")
	require.NoError(t, err)
	require.Equal(t, []byte{0xc3}, text.Data)
}

func TestFindSection_Missing(t *testing.T) {
	img := testutil.BuildPE([]testutil.Section{
		{Name: ".text", VirtualAddress: 0x1000, Data: []byte{0xc3}},
	})

	_, err := FindSection(bytes.NewReader(img), ".rsrc")
	require.ErrorIs(t, err, ErrSectionNotFound)
}

func TestFindSection_NoSections(t *testing.T) {
	_, err := FindSection(bytes.NewReader(testutil.BuildPE(nil)), ".rsrc")
	require.ErrorIs(t, err, ErrSectionNotFound)
}

func TestFindSection_NotAnImage(t *testing.T) {
	_, err := FindSection(bytes.NewReader([]byte("MZ")), ".rsrc")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSectionNotFound)
}
