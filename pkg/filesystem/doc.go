// Package filesystem provides filesystem implementations for netloc.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem. Tests use the in-memory
// implementation from pkg/testutil instead.
package filesystem
