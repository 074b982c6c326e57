package format

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// CutUTF16Z scans b for a zero UTF-16 code unit. It returns the bytes before
// the terminator and the number of bytes consumed including the terminator.
// ok is false when b ends (or leaves a dangling odd byte) before a zero unit.
func CutUTF16Z(b []byte) (s []byte, consumed int, ok bool) {
	for i := 0; i+1 < len(b); i += UTF16UnitSize {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i], i + UTF16UnitSize, true
		}
	}
	return nil, 0, false
}

// TrimUTF16Z returns b up to its first zero code unit, or all of b (minus a
// dangling odd byte) when no terminator is present.
func TrimUTF16Z(b []byte) []byte {
	if s, _, ok := CutUTF16Z(b); ok {
		return s
	}
	return b[:len(b)&^1]
}

// DecodeUTF16 converts UTF-16LE bytes to a UTF-8 string. Unpaired surrogates
// become U+FFFD.
func DecodeUTF16(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	// Fast path: keys and most version strings are plain ASCII.
	if len(b)%UTF16UnitSize == 0 {
		ascii := true
		for i := 0; i < len(b); i += UTF16UnitSize {
			if b[i+1] != 0 || b[i] >= UTF16ASCIIThreshold {
				ascii = false
				break
			}
		}
		if ascii {
			var sb strings.Builder
			sb.Grow(len(b) / UTF16UnitSize)
			for i := 0; i < len(b); i += UTF16UnitSize {
				sb.WriteByte(b[i])
			}
			return sb.String(), nil
		}
	}

	out, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeUTF16 converts s to UTF-16LE bytes without a terminator or BOM.
func EncodeUTF16(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return utf16LE.NewEncoder().Bytes([]byte(s))
}

// EncodeUTF16Z converts s to UTF-16LE bytes followed by a zero code unit.
func EncodeUTF16Z(s string) ([]byte, error) {
	b, err := EncodeUTF16(s)
	if err != nil {
		return nil, err
	}
	return append(b, 0, 0), nil
}
