package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCutUTF16Z(t *testing.T) {
	b := []byte{'A', 0, 'B', 0, 0, 0, 'C', 0}
	s, n, ok := CutUTF16Z(b)
	require.True(t, ok)
	require.Equal(t, []byte{'A', 0, 'B', 0}, s)
	require.Equal(t, 6, n)

	_, _, ok = CutUTF16Z([]byte{'A', 0, 'B'})
	require.False(t, ok, "odd trailing byte is not a terminator")

	_, _, ok = CutUTF16Z(nil)
	require.False(t, ok)

	s, n, ok = CutUTF16Z([]byte{0, 0})
	require.True(t, ok)
	require.Empty(t, s)
	require.Equal(t, 2, n)
}

func TestTrimUTF16Z(t *testing.T) {
	require.Equal(t, []byte{'4', 0}, TrimUTF16Z([]byte{'4', 0, 0, 0, '.', 0}))
	require.Equal(t, []byte{'4', 0, '.', 0}, TrimUTF16Z([]byte{'4', 0, '.', 0, 7}))
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"ascii", []byte{'V', 0, 'S', 0, '_', 0}, "VS_"},
		{"latin1", []byte{0xe9, 0x00, 't', 0}, "ét"},
		{"cjk", []byte{0x2d, 0x4e, 0x87, 0x65}, "中文"},
		{"surrogate pair", []byte{0x3d, 0xd8, 0x00, 0xde}, "\U0001F600"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeUTF16(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeUTF16RoundTrip(t *testing.T) {
	for _, s := range []string{"ProductVersion", "© Contoso", "中文", "\U0001F600"} {
		b, err := EncodeUTF16Z(s)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0}, b[len(b)-2:])

		body, n, ok := CutUTF16Z(b)
		require.True(t, ok)
		require.Equal(t, len(b), n)

		got, err := DecodeUTF16(body)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}
