// Package testutil builds synthetic PE images for tests.
package testutil

import (
	"cmp"
	"slices"

	"github.com/joshuapare/verkit/internal/format"
)

const (
	dosHeaderSize     = 0x40
	peHeaderOffset    = dosHeaderSize
	coffHeaderSize    = 20
	sectionHeaderSize = 40
	fileAlignment     = 0x200
	machineAMD64      = 0x8664
)

// Section is one section of a synthetic image.
type Section struct {
	Name           string
	VirtualAddress uint32
	Data           []byte
}

// Resource is one leaf of a synthetic resource directory. A non-empty
// NameString makes the name-level entry a named entry instead of Name.
type Resource struct {
	Type       uint32
	Name       uint32
	NameString string
	Language   uint32
	CodePage   uint32
	Data       []byte
}

// BuildPE lays out a minimal image: a DOS stub pointing at a COFF header
// with no optional header, followed by the section table and each
// section's raw data at file-aligned offsets.
func BuildPE(sections []Section) []byte {
	headers := peHeaderOffset + 4 + coffHeaderSize + sectionHeaderSize*len(sections)
	out := make([]byte, alignUp(headers, fileAlignment))

	out[0], out[1] = 'M', 'Z'
	format.PutU32(out, 0x3c, peHeaderOffset)
	copy(out[peHeaderOffset:], "PE\x00\x00")

	coff := peHeaderOffset + 4
	format.PutU16(out, coff, machineAMD64)
	format.PutU16(out, coff+2, uint16(len(sections)))
	format.PutU16(out, coff+18, 0x0022) // EXECUTABLE_IMAGE | LARGE_ADDRESS_AWARE

	for i, s := range sections {
		raw := len(out)
		out = append(out, s.Data...)
		out = append(out, make([]byte, alignUp(len(out), fileAlignment)-len(out))...)

		sh := coff + coffHeaderSize + i*sectionHeaderSize
		copy(out[sh:sh+8], s.Name)
		format.PutU32(out, sh+8, uint32(len(s.Data)))
		format.PutU32(out, sh+12, s.VirtualAddress)
		format.PutU32(out, sh+16, uint32(len(s.Data)))
		format.PutU32(out, sh+20, uint32(raw))
		format.PutU32(out, sh+36, 0x40000040) // INITIALIZED_DATA | MEM_READ
	}
	return out
}

// BuildResourceSection encodes a .rsrc section that will be loaded at va.
// Entries at each level are sorted: named entries first, then IDs ascending.
func BuildResourceSection(va uint32, resources []Resource) []byte {
	root := &dirNode{}
	for i := range resources {
		r := &resources[i]
		t := root.child(resourceKey{id: r.Type})
		n := t.child(resourceKey{id: r.Name, name: r.NameString})
		l := n.child(resourceKey{id: r.Language})
		l.leaf = r
	}
	b := &rsrcBuilder{va: va}
	b.dir(root.children)
	return b.out
}

type resourceKey struct {
	id   uint32
	name string
}

type dirNode struct {
	key      resourceKey
	children []*dirNode
	leaf     *Resource
}

func (d *dirNode) child(k resourceKey) *dirNode {
	for _, c := range d.children {
		if c.key == k {
			return c
		}
	}
	c := &dirNode{key: k}
	d.children = append(d.children, c)
	slices.SortStableFunc(d.children, func(a, b *dirNode) int {
		switch {
		case a.key.name != "" && b.key.name == "":
			return -1
		case a.key.name == "" && b.key.name != "":
			return 1
		case a.key.name != "":
			return cmp.Compare(a.key.name, b.key.name)
		}
		return cmp.Compare(a.key.id, b.key.id)
	})
	return c
}

type rsrcBuilder struct {
	va  uint32
	out []byte
}

func (b *rsrcBuilder) grow(n int) int {
	off := len(b.out)
	b.out = append(b.out, make([]byte, n)...)
	return off
}

func (b *rsrcBuilder) dir(nodes []*dirNode) int {
	off := b.grow(format.ResourceDirectorySize + format.ResourceDirectoryEntrySize*len(nodes))
	named := 0
	for _, n := range nodes {
		if n.key.name != "" {
			named++
		}
	}
	format.PutU16(b.out, off+format.ResourceNamedEntriesOffset, uint16(named))
	format.PutU16(b.out, off+format.ResourceIDEntriesOffset, uint16(len(nodes)-named))

	for i, n := range nodes {
		e := off + format.ResourceDirectorySize + i*format.ResourceDirectoryEntrySize
		nameField := n.key.id
		if n.key.name != "" {
			nameField = format.ResourceHighBit | uint32(b.name(n.key.name))
		}
		format.PutU32(b.out, e+format.ResourceEntryNameOffset, nameField)

		var dataField uint32
		if n.leaf != nil {
			dataField = uint32(b.data(n.leaf))
		} else {
			dataField = format.ResourceHighBit | uint32(b.dir(n.children))
		}
		format.PutU32(b.out, e+format.ResourceEntryDataOffset, dataField)
	}
	return off
}

func (b *rsrcBuilder) name(s string) int {
	units, err := format.EncodeUTF16(s)
	if err != nil {
		panic(err)
	}
	off := b.grow(2)
	format.PutU16(b.out, off, uint16(len(units)/format.UTF16UnitSize))
	b.out = append(b.out, units...)
	b.grow(alignUp(len(b.out), format.BlockAlignment) - len(b.out))
	return off
}

func (b *rsrcBuilder) data(r *Resource) int {
	off := b.grow(format.ResourceDataEntrySize)
	start := len(b.out)
	b.out = append(b.out, r.Data...)
	b.grow(alignUp(len(b.out), format.BlockAlignment) - len(b.out))

	format.PutU32(b.out, off+format.ResourceDataRVAOffset, b.va+uint32(start))
	format.PutU32(b.out, off+format.ResourceDataSizeOffset, uint32(len(r.Data)))
	format.PutU32(b.out, off+format.ResourceDataCodePageOffset, r.CodePage)
	return off
}

func alignUp(n, a int) int {
	return (n + a - 1) &^ (a - 1)
}
