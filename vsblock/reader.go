package vsblock

import (
	"fmt"

	"github.com/joshuapare/verkit/internal/buf"
	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/types"
)

// Read decodes the block starting at off and, recursively, all of its
// children. The buffer is never modified and no partial tree is returned on
// error.
//
// Errors wrap types.ErrTruncated when a header runs past the buffer,
// types.ErrUnterminatedString when a key has no terminator, and
// types.ErrCorrupt when a child declares a zero length or a span that ends
// past its parent's.
func Read(b []byte, off int) (Element, error) {
	return read(b, off, 0)
}

func read(b []byte, off, depth int) (Element, error) {
	if !buf.Has(b, off, format.BlockHeaderSize) {
		return Element{}, fmt.Errorf("vsblock: header at depth %d offset %#x (buffer %d bytes): %w",
			depth, off, len(b), types.ErrTruncated)
	}

	h := Header{
		Length:      format.ReadU16(b, off+format.BlockLengthOffset),
		ValueLength: format.ReadU16(b, off+format.BlockValueLengthOffset),
		Type:        format.ReadU16(b, off+format.BlockTypeOffset),
		Offset:      uint32(off),
	}

	keyOff := off + format.BlockKeyOffset
	rawKey, consumed, ok := format.CutUTF16Z(b[keyOff:])
	if !ok {
		return Element{}, fmt.Errorf("vsblock: key at depth %d offset %#x: %w",
			depth, keyOff, types.ErrUnterminatedString)
	}
	key, err := format.DecodeUTF16(rawKey)
	if err != nil {
		return Element{}, fmt.Errorf("vsblock: key at depth %d offset %#x: %w", depth, keyOff, err)
	}
	h.Key = key

	valueOff := format.Align4(keyOff + consumed)
	childOff := format.Align4(valueOff + h.ValueSize())
	h.ValueOffset = uint32(valueOff)
	h.ChildrenOffset = uint32(childOff)

	el := Element{Header: h}
	end := h.End()
	for pos := childOff; pos < end; {
		length, ok := buf.U16At(b, pos+format.BlockLengthOffset)
		if !ok {
			return Element{}, fmt.Errorf("vsblock: header at depth %d offset %#x (buffer %d bytes): %w",
				depth+1, pos, len(b), types.ErrTruncated)
		}
		if length == 0 {
			return Element{}, fmt.Errorf("vsblock: child at depth %d offset %#x has zero length: %w",
				depth+1, pos, types.ErrCorrupt)
		}
		// Children nest inside their parent's span.
		if pos+int(length) > end {
			return Element{}, fmt.Errorf("vsblock: child at depth %d offset %#x ends at %#x past parent end %#x: %w",
				depth+1, pos, pos+int(length), end, types.ErrCorrupt)
		}
		child, err := read(b, pos, depth+1)
		if err != nil {
			return Element{}, err
		}
		el.Children = append(el.Children, child)
		pos = format.Align4(pos + int(length))
	}
	return el, nil
}
