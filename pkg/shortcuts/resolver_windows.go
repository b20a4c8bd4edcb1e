//go:build windows

package shortcuts

import "github.com/kn327/NetworkLocationInfo/pkg/types"

// NewResolver returns the link resolver for this platform: the shell's
// own link machinery, which also resolves links this package's decoder
// does not cover, such as MSI advertised shortcuts.
func NewResolver(fsys types.FS) types.LinkResolver {
	return NewShellResolver(fsys)
}
