// Package types defines the small value types and typed errors shared by the
// version resource decoders and their callers.
//
// Design goals:
//   - Typed errors with stable categories (format/corrupt/not-found/io) so
//     callers can branch on intent rather than text.
//   - A comparable, totally ordered four-part Version that downstream
//     compatibility tables can key off of.
//
// This package has no dependencies beyond the standard library.
package types
