// Package locations answers questions about network locations against
// the shell's network-shortcuts container.
//
// A location identity (types.Location) is cheap to build and carries no
// live state except a resolve-once cache of its shortcut entry. The
// Resolver supplies everything stateful: live reachability of the
// share, presence of the entry on disk, its label, renames, and
// container enumeration. Filesystem access and link decoding are
// injected, so every behavior is testable without a Windows shell.
package locations
