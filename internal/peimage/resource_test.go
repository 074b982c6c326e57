package peimage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/internal/testutil"
	"github.com/joshuapare/verkit/pkg/types"
)

// --- helpers ---

const va = 0x5000

func section(resources ...testutil.Resource) *Section {
	return &Section{
		Name:           ".rsrc",
		VirtualAddress: va,
		Data:           testutil.BuildResourceSection(va, resources),
	}
}

var (
	neutral  = testutil.Resource{Type: 16, Name: 1, Language: 0, Data: []byte("neutral!")}
	english  = testutil.Resource{Type: 16, Name: 1, Language: 1033, Data: []byte("en-US")}
	manifest = testutil.Resource{Type: 24, Name: 1, Language: 0, CodePage: 65001, Data: []byte("<assembly/>")}
)

// --- FindResource ---

func TestFindResource(t *testing.T) {
	s := section(manifest, english, neutral)

	data, err := s.FindResource(16, 1, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("neutral!"), data)

	data, err = s.FindResource(24, 1, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("<assembly/>"), data)
}

func TestFindResource_IgnoresOtherLanguages(t *testing.T) {
	s := section(english)

	_, err := s.FindResource(16, 1, 0)
	require.ErrorIs(t, err, ErrResourceNotFound)

	data, err := s.FindResource(16, 1, 1033)
	require.NoError(t, err)
	require.Equal(t, []byte("en-US"), data)
}

func TestFindResource_MissingLevels(t *testing.T) {
	s := section(neutral)

	for _, path := range [][3]uint32{{3, 1, 0}, {16, 2, 0}, {16, 1, 7}} {
		_, err := s.FindResource(path[0], path[1], path[2])
		require.ErrorIs(t, err, ErrResourceNotFound, "path %v", path)
	}
}

func TestFindResource_SkipsNamedEntries(t *testing.T) {
	s := section(testutil.Resource{Type: 16, NameString: "VERSION", Language: 0, Data: []byte{1}})

	_, err := s.FindResource(16, 0, 0)
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestFindResource_EmptyDirectory(t *testing.T) {
	s := section()
	require.Len(t, s.Data, format.ResourceDirectorySize)

	_, err := s.FindResource(16, 1, 0)
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestFindResource_Truncated(t *testing.T) {
	s := section(neutral)

	for _, n := range []int{0, 10, 20, 40, 70, 80} {
		cut := &Section{Name: s.Name, VirtualAddress: s.VirtualAddress, Data: s.Data[:n]}
		_, err := cut.FindResource(16, 1, 0)
		require.ErrorIs(t, err, types.ErrTruncated, "cut at %d", n)
		_, err = cut.ListResources()
		require.ErrorIs(t, err, types.ErrTruncated, "list cut at %d", n)
	}
}

func TestFindResource_LeafAtTypeLevel(t *testing.T) {
	// One type entry whose data field points straight at a data entry.
	b := make([]byte, 40)
	format.PutU16(b, format.ResourceIDEntriesOffset, 1)
	format.PutU32(b, 16+format.ResourceEntryNameOffset, 16)
	format.PutU32(b, 16+format.ResourceEntryDataOffset, 24)
	s := &Section{Name: ".rsrc", VirtualAddress: va, Data: b}

	_, err := s.FindResource(16, 1, 0)
	require.ErrorIs(t, err, types.ErrCorrupt)

	_, err = s.ListResources()
	require.ErrorIs(t, err, types.ErrCorrupt)
}

func TestBytes(t *testing.T) {
	s := section(neutral)

	_, err := s.Bytes(va-1, 1)
	require.ErrorIs(t, err, types.ErrCorrupt)

	_, err = s.Bytes(va, uint32(len(s.Data)+1))
	require.ErrorIs(t, err, types.ErrTruncated)

	data, err := s.Bytes(va, 4)
	require.NoError(t, err)
	require.Equal(t, s.Data[:4], data)
}

// --- ListResources ---

func TestListResources(t *testing.T) {
	s := section(manifest, english, neutral)

	entries, err := s.ListResources()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	want := []testutil.Resource{neutral, english, manifest}
	for i, e := range entries {
		require.Equal(t, want[i].Type, e.Type.ID)
		require.Equal(t, want[i].Name, e.Name.ID)
		require.Equal(t, want[i].Language, e.Language.ID)
		require.Equal(t, want[i].CodePage, e.CodePage)
		require.Equal(t, uint32(len(want[i].Data)), e.Size)

		data, err := s.Bytes(e.RVA, e.Size)
		require.NoError(t, err)
		require.Equal(t, want[i].Data, data)
	}
}

func TestListResources_NamedEntries(t *testing.T) {
	s := section(
		testutil.Resource{Type: 3, Name: 1, Language: 0, Data: []byte{0}},
		testutil.Resource{Type: 14, NameString: "MAINICON", Language: 1033, Data: []byte{1, 2}},
	)

	entries, err := s.ListResources()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.False(t, entries[0].Name.IsNamed())
	require.True(t, entries[1].Name.IsNamed())
	require.Equal(t, "MAINICON", entries[1].Name.String())
	require.Equal(t, "1033", entries[1].Language.String())
}

func TestListResources_Empty(t *testing.T) {
	entries, err := section().ListResources()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestResourceTypeString(t *testing.T) {
	require.Equal(t, "Version", ResourceTypeVersion.String())
	require.Equal(t, "Manifest", ResourceType(24).String())
	require.Equal(t, "#99", ResourceType(99).String())
}
