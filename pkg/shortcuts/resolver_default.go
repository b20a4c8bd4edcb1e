//go:build !windows

package shortcuts

import "github.com/kn327/NetworkLocationInfo/pkg/types"

// NewResolver returns the link resolver for this platform. Outside
// Windows there is no shell to ask, so link files are decoded directly.
func NewResolver(fsys types.FS) types.LinkResolver {
	return NewFileResolver(fsys)
}
