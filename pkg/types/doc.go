// Package types defines the core domain types for netloc: network
// location identities, shortcut entries, their serialization records,
// and the capability interfaces used to inject filesystem and link
// resolution behavior.
//
// A Location names a network share by server and share segments. Its
// shortcut entry inside the shell's network-shortcuts container is
// resolved lazily, at most once per identity, by the locations package.
package types
