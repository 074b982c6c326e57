package peimage

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/verkit/internal/buf"
	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/types"
)

// ResourceType identifies a resource type (RT_*).
type ResourceType uint32

// https://learn.microsoft.com/windows/win32/menurc/resource-types
const (
	ResourceTypeCursor       ResourceType = 1
	ResourceTypeBitmap       ResourceType = 2
	ResourceTypeIcon         ResourceType = 3
	ResourceTypeMenu         ResourceType = 4
	ResourceTypeDialog       ResourceType = 5
	ResourceTypeString       ResourceType = 6
	ResourceTypeFontDir      ResourceType = 7
	ResourceTypeFont         ResourceType = 8
	ResourceTypeAccelerator  ResourceType = 9
	ResourceTypeRcData       ResourceType = 10
	ResourceTypeMessageTable ResourceType = 11
	ResourceTypeGroupCursor  ResourceType = 12
	ResourceTypeGroupIcon    ResourceType = 14
	ResourceTypeVersion      ResourceType = format.ResourceTypeVersion
	ResourceTypeDlgInclude   ResourceType = 17
	ResourceTypePlugPlay     ResourceType = 19
	ResourceTypeVXD          ResourceType = 20
	ResourceTypeAniCursor    ResourceType = 21
	ResourceTypeAniIcon      ResourceType = 22
	ResourceTypeHTML         ResourceType = 23
	ResourceTypeManifest     ResourceType = 24
)

var resourceTypeNames = map[ResourceType]string{
	ResourceTypeCursor:       "Cursor",
	ResourceTypeBitmap:       "Bitmap",
	ResourceTypeIcon:         "Icon",
	ResourceTypeMenu:         "Menu",
	ResourceTypeDialog:       "Dialog",
	ResourceTypeString:       "String",
	ResourceTypeFontDir:      "FontDir",
	ResourceTypeFont:         "Font",
	ResourceTypeAccelerator:  "Accelerator",
	ResourceTypeRcData:       "RcData",
	ResourceTypeMessageTable: "MessageTable",
	ResourceTypeGroupCursor:  "GroupCursor",
	ResourceTypeGroupIcon:    "GroupIcon",
	ResourceTypeVersion:      "Version",
	ResourceTypeDlgInclude:   "DlgInclude",
	ResourceTypePlugPlay:     "PlugPlay",
	ResourceTypeVXD:          "VXD",
	ResourceTypeAniCursor:    "AniCursor",
	ResourceTypeAniIcon:      "AniIcon",
	ResourceTypeHTML:         "HTML",
	ResourceTypeManifest:     "Manifest",
}

// String returns the RT_* name, or "#n" for unknown types.
func (t ResourceType) String() string {
	if name, ok := resourceTypeNames[t]; ok {
		return name
	}
	return "#" + strconv.FormatUint(uint64(t), 10)
}

// ResourceID is one path component of a resource: either a numeric ID or,
// for named entries, a UTF-16 name.
type ResourceID struct {
	ID   uint32
	Name string
}

// IsNamed reports whether the entry is identified by name.
func (id ResourceID) IsNamed() bool { return id.Name != "" }

func (id ResourceID) String() string {
	if id.IsNamed() {
		return id.Name
	}
	return strconv.FormatUint(uint64(id.ID), 10)
}

// ResourceEntry describes one leaf of the resource directory.
type ResourceEntry struct {
	Type     ResourceID
	Name     ResourceID
	Language ResourceID
	RVA      uint32
	Size     uint32
	CodePage uint32
}

type dirEntry struct {
	id     ResourceID
	target uint32
	subdir bool
}

// readDir decodes the directory at off. Named entries come first on disk.
func (s *Section) readDir(off int) ([]dirEntry, error) {
	named, ok1 := buf.U16At(s.Data, off+format.ResourceNamedEntriesOffset)
	ids, ok2 := buf.U16At(s.Data, off+format.ResourceIDEntriesOffset)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("peimage: resource directory at %#x: %w", off, types.ErrTruncated)
	}
	count := int(named) + int(ids)
	first := off + format.ResourceDirectorySize
	if _, err := buf.CheckListBounds(len(s.Data), first, count, format.ResourceDirectoryEntrySize); err != nil {
		return nil, fmt.Errorf("peimage: resource directory at %#x: %v: %w", off, err, types.ErrTruncated)
	}

	entries := make([]dirEntry, 0, count)
	for i := range count {
		e := first + i*format.ResourceDirectoryEntrySize
		nameField := format.ReadU32(s.Data, e+format.ResourceEntryNameOffset)
		dataField := format.ReadU32(s.Data, e+format.ResourceEntryDataOffset)

		var id ResourceID
		if nameField&format.ResourceHighBit != 0 {
			name, err := s.readName(int(nameField & format.ResourceOffsetMask))
			if err != nil {
				return nil, err
			}
			id.Name = name
		} else {
			id.ID = nameField & format.ResourceIDMask
		}
		entries = append(entries, dirEntry{
			id:     id,
			target: dataField & format.ResourceOffsetMask,
			subdir: dataField&format.ResourceHighBit != 0,
		})
	}
	return entries, nil
}

// readName decodes an IMAGE_RESOURCE_DIR_STRING_U: a uint16 character count
// followed by that many UTF-16LE code units.
func (s *Section) readName(off int) (string, error) {
	n, ok := buf.U16At(s.Data, off)
	if !ok {
		return "", fmt.Errorf("peimage: resource name at %#x: %w", off, types.ErrTruncated)
	}
	raw, ok := buf.Slice(s.Data, off+2, int(n)*format.UTF16UnitSize)
	if !ok {
		return "", fmt.Errorf("peimage: resource name at %#x: %w", off, types.ErrTruncated)
	}
	return format.DecodeUTF16(raw)
}

// readData resolves an IMAGE_RESOURCE_DATA_ENTRY at off.
func (s *Section) readData(off int) (rva, size, codePage uint32, err error) {
	rva, ok1 := buf.U32At(s.Data, off+format.ResourceDataRVAOffset)
	size, ok2 := buf.U32At(s.Data, off+format.ResourceDataSizeOffset)
	codePage, ok3 := buf.U32At(s.Data, off+format.ResourceDataCodePageOffset)
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, fmt.Errorf("peimage: resource data entry at %#x: %w", off, types.ErrTruncated)
	}
	return rva, size, codePage, nil
}

// Bytes returns the section bytes an entry's RVA and size point at.
func (s *Section) Bytes(rva, size uint32) ([]byte, error) {
	if rva < s.VirtualAddress {
		return nil, fmt.Errorf("peimage: rva %#x below section %q at %#x: %w",
			rva, s.Name, s.VirtualAddress, types.ErrCorrupt)
	}
	data, ok := buf.Slice(s.Data, int(rva-s.VirtualAddress), int(size))
	if !ok {
		return nil, fmt.Errorf("peimage: rva %#x+%d outside section %q (%d bytes): %w",
			rva, size, s.Name, len(s.Data), types.ErrTruncated)
	}
	return data, nil
}

// FindResource returns the raw bytes of the resource at (typ, name, lang),
// matching numeric IDs only. Missing path components yield
// ErrResourceNotFound.
func (s *Section) FindResource(typ, name, lang uint32) ([]byte, error) {
	path := [format.ResourceDirectoryMaxDepth]uint32{typ, name, lang}
	off := 0
	for level, want := range path {
		entries, err := s.readDir(off)
		if err != nil {
			return nil, err
		}
		var hit *dirEntry
		for i := range entries {
			if !entries[i].id.IsNamed() && entries[i].id.ID == want {
				hit = &entries[i]
				break
			}
		}
		if hit == nil {
			return nil, fmt.Errorf("peimage: resource %d/%d/%d (level %d): %w",
				typ, name, lang, level, ErrResourceNotFound)
		}
		last := level == len(path)-1
		if hit.subdir == last {
			return nil, fmt.Errorf("peimage: resource %d/%d/%d: unexpected entry kind at level %d: %w",
				typ, name, lang, level, types.ErrCorrupt)
		}
		off = int(hit.target)
	}

	rva, size, _, err := s.readData(off)
	if err != nil {
		return nil, err
	}
	return s.Bytes(rva, size)
}

// ListResources enumerates every leaf in directory order.
func (s *Section) ListResources() ([]ResourceEntry, error) {
	var out []ResourceEntry
	var walk func(off, level int, path [format.ResourceDirectoryMaxDepth]ResourceID) error
	walk = func(off, level int, path [format.ResourceDirectoryMaxDepth]ResourceID) error {
		entries, err := s.readDir(off)
		if err != nil {
			return err
		}
		for _, e := range entries {
			path[level] = e.id
			last := level == format.ResourceDirectoryMaxDepth-1
			if e.subdir {
				if last {
					return fmt.Errorf("peimage: subdirectory below language level at %#x: %w",
						e.target, types.ErrCorrupt)
				}
				if err := walk(int(e.target), level+1, path); err != nil {
					return err
				}
				continue
			}
			if !last {
				return fmt.Errorf("peimage: data entry at level %d (%#x): %w", level, e.target, types.ErrCorrupt)
			}
			rva, size, codePage, err := s.readData(int(e.target))
			if err != nil {
				return err
			}
			out = append(out, ResourceEntry{
				Type: path[0], Name: path[1], Language: path[2],
				RVA: rva, Size: size, CodePage: codePage,
			})
		}
		return nil
	}
	if err := walk(0, 0, [format.ResourceDirectoryMaxDepth]ResourceID{}); err != nil {
		return nil, err
	}
	return out, nil
}
