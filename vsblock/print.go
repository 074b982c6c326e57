package vsblock

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/verkit/internal/format"
)

// Fprint writes an indented dump of root to w, one block per line. Text
// values are decoded; binary values are summarised by size.
//
// Example output:
//
//	VS_VERSION_INFO [binary] len=724 value=52B @0x28
//	  StringFileInfo [text] len=576 @0x5c
//	    000004b0 [text] len=552 @0x80
//	      ProductVersion [text] len=62 = "4.0.0.2283"
func Fprint(w io.Writer, root Element, b []byte) error {
	return root.Walk(func(el Element, depth int) error {
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(el.Key)
		if el.IsText() {
			sb.WriteString(" [text]")
		} else {
			sb.WriteString(" [binary]")
		}
		fmt.Fprintf(&sb, " len=%d", el.Length)

		switch {
		case el.ValueLength == 0:
			fmt.Fprintf(&sb, " @%#x", el.Offset)
		case el.IsText():
			s, err := format.DecodeUTF16(format.TrimUTF16Z(el.Value(b)))
			if err != nil {
				return fmt.Errorf("vsblock: print %q: %w", el.Key, err)
			}
			fmt.Fprintf(&sb, " = %q", s)
		default:
			fmt.Fprintf(&sb, " value=%dB @%#x", el.ValueSize(), el.ValueOffset)
		}
		sb.WriteByte('\n')

		_, err := io.WriteString(w, sb.String())
		return err
	})
}
