package verinfo

import (
	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/vsblock"
)

// StringEntry is one name/value pair of a string table.
type StringEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Resource describes a VS_VERSIONINFO resource to build.
type Resource struct {
	// Fixed becomes the root value; nil writes wValueLength 0.
	Fixed *FixedFileInfo

	// Strings fill the neutral "000004b0" table in order. When empty, no
	// StringFileInfo block is written.
	Strings []StringEntry
}

// Tree returns the block tree for r: VS_VERSION_INFO with an optional
// StringFileInfo/000004b0 table and a VarFileInfo/Translation entry.
func (r Resource) Tree() vsblock.Node {
	root := vsblock.Node{Key: format.KeyVersionInfo, Type: vsblock.TypeBinary}
	if r.Fixed != nil {
		root.Value = r.Fixed.encode()
	}

	if len(r.Strings) > 0 {
		table := vsblock.Node{Key: format.KeyNeutralStringTable, Type: vsblock.TypeText}
		for _, s := range r.Strings {
			table.Children = append(table.Children, vsblock.Text(s.Key, s.Value))
		}
		root.Children = append(root.Children, vsblock.Node{
			Key:      format.KeyStringFileInfo,
			Type:     vsblock.TypeText,
			Children: []vsblock.Node{table},
		})
	}

	root.Children = append(root.Children, vsblock.Node{
		Key:  format.KeyVarFileInfo,
		Type: vsblock.TypeText,
		Children: []vsblock.Node{
			vsblock.Binary(format.KeyTranslation, format.AppendU32(nil, format.NeutralTranslation)),
		},
	})
	return root
}

// Marshal encodes r as the raw bytes of an RT_VERSION resource.
func Marshal(r Resource) ([]byte, error) {
	return vsblock.Encode(r.Tree())
}
