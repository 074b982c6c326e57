package buf

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow indicates an offset or size computation exceeded int.
	ErrOverflow = errors.New("buf: arithmetic overflow")
	// ErrOutOfBounds indicates a range ends past the buffer.
	ErrOutOfBounds = errors.New("buf: range out of bounds")
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// span returns off+n when [off, off+n) lies within [0, size].
func span(size, off, n int) (int, error) {
	if off < 0 || n < 0 {
		return 0, fmt.Errorf("negative range %d+%d: %w", off, n, ErrOutOfBounds)
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok {
		return 0, fmt.Errorf("offset %d + size %d: %w", off, n, ErrOverflow)
	}
	if end > size {
		return 0, fmt.Errorf("end %d > len %d: %w", end, size, ErrOutOfBounds)
	}
	return end, nil
}

// CheckListBounds validates that count elements of elementSize bytes, starting
// at offset, fit in a buffer of bufLen bytes, and returns the end offset.
// Errors wrap ErrOverflow or ErrOutOfBounds.
//
// Resource directory entry arrays are validated this way before iterating:
//
//	end, err := buf.CheckListBounds(len(data), off, int(count), entrySize)
//	if err != nil {
//	    return fmt.Errorf("resource directory: %w", err)
//	}
func CheckListBounds(bufLen, offset, count, elementSize int) (int, error) {
	total, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, fmt.Errorf("%d elements of %d bytes: %w", count, elementSize, ErrOverflow)
	}
	return span(bufLen, offset, total)
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	end, err := span(len(b), off, n)
	if err != nil {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, err := span(len(b), off, n)
	return err == nil
}
