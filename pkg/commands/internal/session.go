// Package internal carries wiring shared by the command packages.
package internal

import (
	"github.com/kn327/NetworkLocationInfo/pkg/filesystem"
	"github.com/kn327/NetworkLocationInfo/pkg/locations"
	"github.com/kn327/NetworkLocationInfo/pkg/paths"
	"github.com/kn327/NetworkLocationInfo/pkg/shortcuts"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
)

// Session carries the resolved dependencies a command runs with: the
// filesystem, the link resolver, the container directory, and a
// location resolver wired over all three.
type Session struct {
	FS       types.FS
	Links    types.LinkResolver
	Dir      string
	Resolver *locations.Resolver
}

// NewSession applies the usual command defaults: the OS filesystem
// when none is given, the platform link resolver when none is given,
// and the configured shortcuts container when no directory override is
// given.
func NewSession(fsys types.FS, links types.LinkResolver, dir string) (*Session, error) {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if links == nil {
		links = shortcuts.NewResolver(fsys)
	}
	if dir == "" {
		p, err := paths.New("")
		if err != nil {
			return nil, err
		}
		dir = p.ShortcutsDir()
	}

	return &Session{
		FS:       fsys,
		Links:    links,
		Dir:      dir,
		Resolver: locations.New(fsys, links, dir),
	}, nil
}
