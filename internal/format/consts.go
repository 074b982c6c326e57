// Package format houses the low-level layout of the Windows version resource
// family: the self-describing block header shared by VS_VERSIONINFO,
// StringFileInfo and VarFileInfo, the fixed VS_FIXEDFILEINFO record, and the
// PE resource directory records used to locate them. The goal is to keep the
// byte-level details in one place so the decoders above only deal in offsets
// and keys.
package format

const (
	// BlockHeaderSize is the fixed part of every block:
	//   0x00  wLength       total byte span of the block, children included
	//   0x02  wValueLength  value size (bytes for binary, code units for text)
	//   0x04  wType         0 = binary value, 1 = text value
	//   0x06  szKey         NUL-terminated UTF-16LE key
	BlockHeaderSize = 6

	BlockLengthOffset      = 0x00
	BlockValueLengthOffset = 0x02
	BlockTypeOffset        = 0x04
	BlockKeyOffset         = 0x06

	// MaxBlockLength is the largest span a block can declare.
	MaxBlockLength = 0xFFFF

	// BlockAlignment is the boundary values and children start on, measured
	// from the start of the resource buffer.
	BlockAlignment     = 4
	BlockAlignmentMask = BlockAlignment - 1

	// UTF16UnitSize is the byte width of one UTF-16 code unit.
	UTF16UnitSize = 2

	// UTF16ASCIIThreshold is the first code unit that needs real decoding.
	UTF16ASCIIThreshold = 0x80
)

// Block value types.
const (
	BlockTypeBinary uint16 = 0
	BlockTypeText   uint16 = 1
)

// Well-known block keys.
const (
	KeyVersionInfo    = "VS_VERSION_INFO"
	KeyStringFileInfo = "StringFileInfo"
	KeyVarFileInfo    = "VarFileInfo"
	KeyTranslation    = "Translation"

	// KeyNeutralStringTable selects language 0x0000, code page 1200 (Unicode).
	KeyNeutralStringTable = "000004b0"
)

const (
	// FixedFileInfoSize is the size of VS_FIXEDFILEINFO: 13 little-endian DWORDs.
	FixedFileInfoSize = 52

	// FixedFileInfoSignature is dwSignature of a well-formed VS_FIXEDFILEINFO.
	FixedFileInfoSignature = 0xFEEF04BD

	// FixedFileInfoStructVersion is the only dwStrucVersion Windows writes.
	FixedFileInfoStructVersion = 0x00010000

	// NeutralTranslation is the Translation value paired with the neutral
	// string table: language 0x0000 in the low word, code page 0x04B0 high.
	NeutralTranslation = 0x04B00000
)

// PE resource directory layout.
//
// IMAGE_RESOURCE_DIRECTORY:
//
//	0x00  Characteristics       uint32
//	0x04  TimeDateStamp         uint32
//	0x08  MajorVersion          uint16
//	0x0A  MinorVersion          uint16
//	0x0C  NumberOfNamedEntries  uint16
//	0x0E  NumberOfIdEntries     uint16
//
// followed by NumberOfNamedEntries+NumberOfIdEntries 8-byte entries.
const (
	ResourceDirectorySize      = 16
	ResourceNamedEntriesOffset = 0x0C
	ResourceIDEntriesOffset    = 0x0E
	ResourceDirectoryEntrySize = 8
	ResourceEntryNameOffset    = 0x00
	ResourceEntryDataOffset    = 0x04
	ResourceDataEntrySize      = 16
	ResourceDataRVAOffset      = 0x00
	ResourceDataSizeOffset     = 0x04
	ResourceDataCodePageOffset = 0x08
	ResourceHighBit            = 0x80000000
	ResourceOffsetMask         = 0x7FFFFFFF
	ResourceIDMask             = 0xFFFF
	ResourceDirectoryMaxDepth  = 3
	ResourceSectionName        = ".rsrc"
	ResourceTypeVersion        = 16
	ResourceNameVersion        = 1
	ResourceLanguageNeutral    = 0
)
