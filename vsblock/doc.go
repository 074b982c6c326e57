// Package vsblock decodes the self-describing block format Windows uses for
// version resources (VS_VERSIONINFO, StringFileInfo, StringTable, String,
// VarFileInfo, Var) into an ordered tree.
//
// Every block starts with a 6-byte header (length, value length, type),
// followed by a NUL-terminated UTF-16LE key, an optional value, and child
// blocks. Values and children start on 4-byte boundaries measured from the
// start of the resource buffer:
//
//	+0  wLength       uint16
//	+2  wValueLength  uint16   bytes (type 0) or UTF-16 code units (type 1)
//	+4  wType         uint16
//	+6  szKey         UTF-16LE, NUL-terminated
//	    padding       to 4
//	    Value
//	    padding       to 4
//	    Children      each padded to 4, until Offset+wLength
//
// The package knows nothing about what the keys mean; see package verinfo
// for the VERSIONINFO interpretation. Encode writes the same layout back out,
// which is mostly useful for building fixtures.
package vsblock
