package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a four-part Windows version number. Each part is a 16-bit
// half of the MS/LS DWORD pairs stored in VS_FIXEDFILEINFO.
type Version struct {
	Major    uint16
	Minor    uint16
	Build    uint16
	Revision uint16
}

// VersionFromWords unpacks a version from its most- and least-significant
// DWORDs: MS = major<<16 | minor, LS = build<<16 | revision.
func VersionFromWords(ms, ls uint32) Version {
	return Version{
		Major:    uint16(ms >> 16),
		Minor:    uint16(ms),
		Build:    uint16(ls >> 16),
		Revision: uint16(ls),
	}
}

// Words packs v back into its MS and LS DWORDs.
func (v Version) Words() (ms, ls uint32) {
	return uint32(v.Major)<<16 | uint32(v.Minor), uint32(v.Build)<<16 | uint32(v.Revision)
}

// Compare returns -1, 0 or +1 ordering v against o by major, minor, build,
// then revision.
func (v Version) Compare(o Version) int {
	a := [4]uint16{v.Major, v.Minor, v.Build, v.Revision}
	b := [4]uint16{o.Major, o.Minor, o.Build, o.Revision}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether v orders before o.
func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// Equal reports whether all four parts match.
func (v Version) Equal(o Version) bool { return v == o }

// String renders the canonical "major.minor.build.revision" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// ParseVersion parses one to four dot-separated decimal parts. Missing
// trailing parts are zero, so "4.0" equals "4.0.0.0".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("parse version: empty string")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 4 {
		return Version{}, fmt.Errorf("parse version %q: too many parts", s)
	}
	var nums [4]uint16
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Version{}, fmt.Errorf("parse version %q: part %d: %w", s, i+1, err)
		}
		nums[i] = uint16(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Build: nums[2], Revision: nums[3]}, nil
}

// MarshalText encodes v in its canonical string form.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the form produced by MarshalText.
func (v *Version) UnmarshalText(b []byte) error {
	parsed, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
