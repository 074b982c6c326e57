package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFromWords(t *testing.T) {
	v := VersionFromWords(0x00040000, 0x000008EB)
	require.Equal(t, Version{Major: 4, Minor: 0, Build: 0, Revision: 2283}, v)
	require.Equal(t, "4.0.0.2283", v.String())

	ms, ls := v.Words()
	require.Equal(t, uint32(0x00040000), ms)
	require.Equal(t, uint32(0x000008EB), ls)

	v = VersionFromWords(0xFFFF0001, 0x00020003)
	require.Equal(t, Version{Major: 0xFFFF, Minor: 1, Build: 2, Revision: 3}, v)
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 2, 3, 4}, Version{1, 2, 3, 4}, 0},
		{Version{1, 2, 3, 4}, Version{1, 2, 3, 5}, -1},
		{Version{1, 2, 4, 0}, Version{1, 2, 3, 9}, 1},
		{Version{1, 3, 0, 0}, Version{1, 2, 9, 9}, 1},
		{Version{0, 9, 9, 9}, Version{1, 0, 0, 0}, -1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_vs_%s", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
			assert.Equal(t, tt.want == 0, tt.a.Equal(tt.b))
		})
	}
}

func TestVersionSortIsLexicographic(t *testing.T) {
	vs := []Version{{2, 0, 0, 0}, {1, 10, 0, 0}, {1, 2, 0, 1}, {1, 2, 0, 0}}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
	require.Equal(t, []Version{{1, 2, 0, 0}, {1, 2, 0, 1}, {1, 10, 0, 0}, {2, 0, 0, 0}}, vs)
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("4.0.0.2283")
	require.NoError(t, err)
	require.Equal(t, Version{4, 0, 0, 2283}, v)

	v, err = ParseVersion(" 10.2 ")
	require.NoError(t, err)
	require.Equal(t, Version{10, 2, 0, 0}, v)

	for _, bad := range []string{"", "1.2.3.4.5", "1.x", "65536", "1..2", "-1"} {
		_, err := ParseVersion(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestVersionJSON(t *testing.T) {
	type wrapper struct {
		V *Version `json:"v,omitempty"`
	}
	out, err := json.Marshal(wrapper{V: &Version{1, 2, 3, 4}})
	require.NoError(t, err)
	require.JSONEq(t, `{"v":"1.2.3.4"}`, string(out))

	var back wrapper
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, Version{1, 2, 3, 4}, *back.V)

	out, err = json.Marshal(wrapper{})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(out))
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("block at depth 3: %w", ErrUnterminatedString)
	require.ErrorIs(t, err, ErrUnterminatedString)
	require.NotErrorIs(t, err, ErrNotAVersionResource)

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, ErrKindFormat, kind)

	kind, ok = KindOf(fmt.Errorf("lookup: %w", ErrNoNeutralVersionResource))
	require.True(t, ok)
	require.Equal(t, ErrKindIO, kind)

	_, ok = KindOf(errors.New("plain"))
	require.False(t, ok)

	wrapped := &Error{Kind: ErrKindCorrupt, Msg: "child", Err: ErrTruncated}
	require.Equal(t, "child: truncated buffer", wrapped.Error())
	require.ErrorIs(t, wrapped, ErrTruncated)
	require.Equal(t, "corrupt", ErrKindCorrupt.String())
}

func TestErrKind_String(t *testing.T) {
	for kind, want := range map[ErrKind]string{
		ErrKindFormat:  "format",
		ErrKindCorrupt: "corrupt",
		ErrKindIO:      "io",
		ErrKindIO + 1:  "unknown",
	} {
		require.Equal(t, want, kind.String())
	}
}
