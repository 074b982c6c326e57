package verinfo

import (
	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/types"
)

// FixedFileInfo mirrors VS_FIXEDFILEINFO field for field.
type FixedFileInfo struct {
	Signature        uint32 `json:"signature"`
	StructVersion    uint32 `json:"structVersion"`
	FileVersionMS    uint32 `json:"fileVersionMS"`
	FileVersionLS    uint32 `json:"fileVersionLS"`
	ProductVersionMS uint32 `json:"productVersionMS"`
	ProductVersionLS uint32 `json:"productVersionLS"`
	FileFlagsMask    uint32 `json:"fileFlagsMask"`
	FileFlags        uint32 `json:"fileFlags"`
	FileOS           uint32 `json:"fileOS"`
	FileType         uint32 `json:"fileType"`
	FileSubtype      uint32 `json:"fileSubtype"`
	FileDateMS       uint32 `json:"fileDateMS"`
	FileDateLS       uint32 `json:"fileDateLS"`
}

// File flag bits (VS_FF_*).
const (
	FlagDebug        = 0x01
	FlagPrerelease   = 0x02
	FlagPatched      = 0x04
	FlagPrivateBuild = 0x08
	FlagInfoInferred = 0x10
	FlagSpecialBuild = 0x20

	FlagsMaskAll = 0x3F
)

// File types (VFT_*).
const (
	FileTypeUnknown   = 0
	FileTypeApp       = 1
	FileTypeDLL       = 2
	FileTypeDriver    = 3
	FileTypeFont      = 4
	FileTypeVXD       = 5
	FileTypeStaticLib = 7
)

// Target operating systems (VOS_*).
const (
	OSUnknown      = 0x00000000
	OSWindows32    = 0x00000004
	OSNT           = 0x00040000
	OSNTWindows32  = 0x00040004
	OSDOSWindows32 = 0x00010004
)

var flagNames = []struct {
	bit  uint32
	name string
}{
	{FlagDebug, "debug"},
	{FlagPrerelease, "prerelease"},
	{FlagPatched, "patched"},
	{FlagPrivateBuild, "private-build"},
	{FlagInfoInferred, "info-inferred"},
	{FlagSpecialBuild, "special-build"},
}

var fileTypeNames = map[uint32]string{
	FileTypeUnknown:   "unknown",
	FileTypeApp:       "application",
	FileTypeDLL:       "dll",
	FileTypeDriver:    "driver",
	FileTypeFont:      "font",
	FileTypeVXD:       "vxd",
	FileTypeStaticLib: "static-library",
}

// NewFixedFileInfo returns a well-formed record for an application with the
// given versions and no flags set.
func NewFixedFileInfo(file, product types.Version) FixedFileInfo {
	f := FixedFileInfo{
		Signature:     format.FixedFileInfoSignature,
		StructVersion: format.FixedFileInfoStructVersion,
		FileFlagsMask: FlagsMaskAll,
		FileOS:        OSNTWindows32,
		FileType:      FileTypeApp,
	}
	f.FileVersionMS, f.FileVersionLS = file.Words()
	f.ProductVersionMS, f.ProductVersionLS = product.Words()
	return f
}

// decodeFixedFileInfo reads the 13 DWORDs from b, which must hold at least
// format.FixedFileInfoSize bytes.
func decodeFixedFileInfo(b []byte) FixedFileInfo {
	var w [13]uint32
	for i := range w {
		w[i] = format.ReadU32(b, i*4)
	}
	return FixedFileInfo{
		Signature:        w[0],
		StructVersion:    w[1],
		FileVersionMS:    w[2],
		FileVersionLS:    w[3],
		ProductVersionMS: w[4],
		ProductVersionLS: w[5],
		FileFlagsMask:    w[6],
		FileFlags:        w[7],
		FileOS:           w[8],
		FileType:         w[9],
		FileSubtype:      w[10],
		FileDateMS:       w[11],
		FileDateLS:       w[12],
	}
}

func (f FixedFileInfo) encode() []byte {
	out := make([]byte, 0, format.FixedFileInfoSize)
	for _, v := range []uint32{
		f.Signature, f.StructVersion,
		f.FileVersionMS, f.FileVersionLS,
		f.ProductVersionMS, f.ProductVersionLS,
		f.FileFlagsMask, f.FileFlags,
		f.FileOS, f.FileType, f.FileSubtype,
		f.FileDateMS, f.FileDateLS,
	} {
		out = format.AppendU32(out, v)
	}
	return out
}

// FileVersion unpacks FileVersionMS/LS.
func (f FixedFileInfo) FileVersion() types.Version {
	return types.VersionFromWords(f.FileVersionMS, f.FileVersionLS)
}

// ProductVersion unpacks ProductVersionMS/LS.
func (f FixedFileInfo) ProductVersion() types.Version {
	return types.VersionFromWords(f.ProductVersionMS, f.ProductVersionLS)
}

// HasSignature reports whether Signature holds 0xFEEF04BD. Decoding never
// requires it.
func (f FixedFileInfo) HasSignature() bool {
	return f.Signature == format.FixedFileInfoSignature
}

// FlagNames lists the VS_FF_* flags that are both set and valid per
// FileFlagsMask.
func (f FixedFileInfo) FlagNames() []string {
	set := f.FileFlags & f.FileFlagsMask
	var names []string
	for _, fl := range flagNames {
		if set&fl.bit != 0 {
			names = append(names, fl.name)
		}
	}
	return names
}

// FileTypeName returns a short name for FileType.
func (f FixedFileInfo) FileTypeName() string {
	if name, ok := fileTypeNames[f.FileType]; ok {
		return name
	}
	return "other"
}
