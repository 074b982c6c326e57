// Package peimage locates resources inside a PE image: the .rsrc section via
// the section table, and individual resource leaves via the three-level
// resource directory (type, name, language) stored in that section.
//
// Nothing here validates that the image is runnable; only the structures on
// the path to a resource are read.
package peimage

import (
	"debug/pe"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrSectionNotFound indicates the section table has no matching entry.
	ErrSectionNotFound = errors.New("peimage: section not found")
	// ErrResourceNotFound indicates the resource directory has no leaf at
	// the requested (type, name, language) path.
	ErrResourceNotFound = errors.New("peimage: resource not found")
)

// Section is a PE section loaded into memory.
type Section struct {
	Name           string
	VirtualAddress uint32
	Data           []byte
}

// FindSection reads the section table of the image in r and loads the raw
// data of the section called name. Names compare after NUL padding is
// stripped, so ".rsrc" matches the on-disk ".rsrc\x00\x00\x00".
func FindSection(r io.ReaderAt, name string) (*Section, error) {
	f, err := pe.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("peimage: read headers: %w", err)
	}
	defer f.Close()

	s := f.Section(name)
	if s == nil {
		return nil, fmt.Errorf("peimage: %q: %w", name, ErrSectionNotFound)
	}
	data, err := s.Data()
	if err != nil {
		return nil, fmt.Errorf("peimage: read section %q: %w", name, err)
	}
	return &Section{
		Name:           s.Name,
		VirtualAddress: s.VirtualAddress,
		Data:           data,
	}, nil
}
