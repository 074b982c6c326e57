// Package verinfo interprets a decoded VS_VERSIONINFO block tree.
//
// Quick start:
//
//	info, err := verinfo.Parse(resourceBytes)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(info.FileVersion, info.Strings["ProductVersion"])
//
// Only the language-neutral Unicode string table ("000004b0") is consulted;
// other StringFileInfo tables and VarFileInfo are ignored. A missing
// VS_FIXEDFILEINFO, StringFileInfo or neutral table leaves the matching
// fields empty rather than failing. The VS_FIXEDFILEINFO signature is decoded
// but not enforced; see FixedFileInfo.HasSignature.
package verinfo
