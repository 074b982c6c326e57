package vsblock

import "github.com/joshuapare/verkit/internal/format"

// Value types carried in Header.Type.
const (
	TypeBinary = format.BlockTypeBinary
	TypeText   = format.BlockTypeText
)

// Header is the decoded fixed part of a block plus the absolute offsets the
// reader derived from it. Offsets are relative to the start of the buffer
// passed to Read.
type Header struct {
	Length         uint16
	ValueLength    uint16
	Type           uint16
	Key            string
	Offset         uint32
	ValueOffset    uint32
	ChildrenOffset uint32
}

// ValueSize returns the value length in bytes.
func (h Header) ValueSize() int {
	if h.Type == TypeBinary {
		return int(h.ValueLength)
	}
	return int(h.ValueLength) * format.UTF16UnitSize
}

// End returns the offset one past the block's declared span.
func (h Header) End() int {
	return int(h.Offset) + int(h.Length)
}

// IsText reports whether the value holds UTF-16 text.
func (h Header) IsText() bool {
	return h.Type != TypeBinary
}

// Element is one decoded block and its children in file order.
type Element struct {
	Header
	Children []Element
}

// Value returns the element's value bytes from buf. The span is clamped to
// the end of buf, so a declared length that overshoots yields a short slice.
func (e Element) Value(buf []byte) []byte {
	start := int(e.ValueOffset)
	if start >= len(buf) {
		return nil
	}
	end := start + e.ValueSize()
	if end > len(buf) {
		end = len(buf)
	}
	return buf[start:end]
}

// Child returns the first direct child whose key equals key exactly.
func (e Element) Child(key string) (Element, bool) {
	for _, c := range e.Children {
		if c.Key == key {
			return c, true
		}
	}
	return Element{}, false
}

// Walk visits e and its descendants depth-first in file order. Returning an
// error from fn stops the walk and returns that error.
func (e Element) Walk(fn func(el Element, depth int) error) error {
	return e.walk(fn, 0)
}

func (e Element) walk(fn func(el Element, depth int) error, depth int) error {
	if err := fn(e, depth); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}
	return nil
}
