package vsblock

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	b, err := Encode(Node{Key: "root", Type: TypeBinary, Value: []byte{1, 2, 3, 4}, Children: []Node{
		Text("Name", "Hi"),
		{Key: "Empty", Type: TypeText},
	}})
	require.NoError(t, err)

	root, err := Read(b, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Fprint(&out, root, b))
	require.Equal(t,
		"root [binary] len=64 value=4B @0x10\n"+
			"  Name [text] len=24 = \"Hi\"\n"+
			"  Empty [text] len=20 @0x2c\n",
		out.String())
}
