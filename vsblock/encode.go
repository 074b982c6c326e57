package vsblock

import (
	"fmt"

	"github.com/joshuapare/verkit/internal/format"
)

// Node describes a block to encode. For text blocks, Text is encoded as
// NUL-terminated UTF-16LE unless Value is already set; binary blocks use
// Value verbatim.
type Node struct {
	Key      string
	Type     uint16
	Value    []byte
	Text     string
	Children []Node
}

// Text returns a leaf text node, the shape of a String entry.
func Text(key, value string) Node {
	return Node{Key: key, Type: TypeText, Text: value}
}

// Binary returns a leaf binary node.
func Binary(key string, value []byte) Node {
	return Node{Key: key, Type: TypeBinary, Value: value}
}

// Encode lays out n and its children as a single buffer starting at offset 0.
// Key and value are each padded to a 4-byte boundary and wLength includes
// that padding, so every block's value and children offsets fall inside its
// declared span.
func Encode(n Node) ([]byte, error) {
	var e encoder
	if err := e.node(n); err != nil {
		return nil, err
	}
	return e.out, nil
}

type encoder struct {
	out []byte
}

func (e *encoder) pad() {
	for range format.Pad4(len(e.out)) {
		e.out = append(e.out, 0)
	}
}

func (n Node) payload() (value []byte, valueLength int, err error) {
	if n.Type == TypeBinary {
		return n.Value, len(n.Value), nil
	}
	value = n.Value
	if value == nil && n.Text != "" {
		value, err = format.EncodeUTF16Z(n.Text)
		if err != nil {
			return nil, 0, fmt.Errorf("vsblock: encode value of %q: %w", n.Key, err)
		}
	}
	if len(value)%format.UTF16UnitSize != 0 {
		return nil, 0, fmt.Errorf("vsblock: text value of %q has odd length %d", n.Key, len(value))
	}
	return value, len(value) / format.UTF16UnitSize, nil
}

func (e *encoder) node(n Node) error {
	key, err := format.EncodeUTF16Z(n.Key)
	if err != nil {
		return fmt.Errorf("vsblock: encode key %q: %w", n.Key, err)
	}
	value, valueLength, err := n.payload()
	if err != nil {
		return err
	}
	if valueLength > format.MaxBlockLength {
		return fmt.Errorf("vsblock: value of %q is %d units, limit %d", n.Key, valueLength, format.MaxBlockLength)
	}

	start := len(e.out)
	e.out = append(e.out, make([]byte, format.BlockHeaderSize)...)
	e.out = append(e.out, key...)
	e.pad()
	e.out = append(e.out, value...)
	e.pad()
	for _, c := range n.Children {
		if err := e.node(c); err != nil {
			return err
		}
	}

	length := len(e.out) - start
	if length > format.MaxBlockLength {
		return fmt.Errorf("vsblock: block %q spans %d bytes, limit %d", n.Key, length, format.MaxBlockLength)
	}
	format.PutU16(e.out, start+format.BlockLengthOffset, uint16(length))
	format.PutU16(e.out, start+format.BlockValueLengthOffset, uint16(valueLength))
	format.PutU16(e.out, start+format.BlockTypeOffset, n.Type)
	return nil
}
