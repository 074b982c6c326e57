// Package buf contains bounds-checked little-endian readers shared by the
// resource decoders.
package buf

import "encoding/binary"

// U16At reads a little-endian uint16 at off, reporting false when the two
// bytes are not inside b.
func U16At(b []byte, off int) (uint16, bool) {
	s, ok := Slice(b, off, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s), true
}

// U32At reads a little-endian uint32 at off, reporting false when the four
// bytes are not inside b.
func U32At(b []byte, off int) (uint32, bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}
