package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // well-formed bytes that are not what was asked for
	ErrKindCorrupt                 // structural corruption (bad sizes/offsets)
	ErrKindIO                      // the file lacks the section or resource being located
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (wrapped) by the decoders.
var (
	// ErrUnterminatedString indicates a block key ran to the end of the buffer
	// without a zero code unit.
	ErrUnterminatedString = &Error{Kind: ErrKindFormat, Msg: "unterminated UTF-16 string"}
	// ErrNotAVersionResource indicates the root block key is not VS_VERSION_INFO.
	ErrNotAVersionResource = &Error{Kind: ErrKindFormat, Msg: "not a VS_VERSION_INFO resource"}
	// ErrTruncated indicates a structure extends past the end of its buffer.
	ErrTruncated = &Error{Kind: ErrKindCorrupt, Msg: "truncated buffer"}
	// ErrCorrupt indicates a structural inconsistency such as a zero-length child.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt resource structure"}
	// ErrNoResourceSection indicates the image has no .rsrc section.
	ErrNoResourceSection = &Error{Kind: ErrKindIO, Msg: "no .rsrc section"}
	// ErrNoNeutralVersionResource indicates the resource directory has no
	// RT_VERSION entry with name 1 and the neutral language.
	ErrNoNeutralVersionResource = &Error{Kind: ErrKindIO, Msg: "no language-neutral version resource"}
)

// KindOf reports the category of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
