package testutil

import (
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
)

// ContainerDir is the shortcuts container directory used by test
// environments.
const ContainerDir = "/virtual/Network Shortcuts"

// Env bundles the pieces command tests need: an in-memory filesystem
// holding a network-shortcuts container, a scripted link resolver kept
// in sync with the fixtures, and helpers to lay out entries and shares.
//
// The fixture files are real shell link blobs, so tests may drive
// either the scripted resolver or the production file resolver against
// the same environment.
type Env struct {
	T            *testing.T
	FS           *MemoryFS
	Links        *FakeLinks
	ShortcutsDir string
}

// NewEnv creates an environment with an empty shortcuts container.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	fsys := NewMemoryFS()
	require.NoError(t, fsys.MkdirAll(ContainerDir, 0o755))

	return &Env{
		T:            t,
		FS:           fsys,
		Links:        NewFakeLinks(),
		ShortcutsDir: ContainerDir,
	}
}

// AddNetworkLocation lays out a folder-style entry whose nested target
// link stores target, the shape Windows gives a network location.
func (e *Env) AddNetworkLocation(name, target string) {
	e.T.Helper()

	dir := path.Join(e.ShortcutsDir, name)
	require.NoError(e.T, e.FS.MkdirAll(dir, 0o755))
	require.NoError(e.T, e.FS.WriteFile(path.Join(dir, "target.lnk"), LinkData(target), 0o644))
	e.Links.Targets[name] = target
}

// AddFlatShortcut lays out a flat link file entry. The name is used
// verbatim, so callers normally pass one ending in .lnk.
func (e *Env) AddFlatShortcut(name, target string) {
	e.T.Helper()

	require.NoError(e.T, e.FS.WriteFile(path.Join(e.ShortcutsDir, name), LinkData(target), 0o644))
	e.Links.Targets[name] = target
}

// AddBrokenShortcut lays out a folder-style entry whose target link is
// garbage, and scripts the fake resolver to fail on it the same way the
// file resolver would.
func (e *Env) AddBrokenShortcut(name string) {
	e.T.Helper()

	dir := path.Join(e.ShortcutsDir, name)
	require.NoError(e.T, e.FS.MkdirAll(dir, 0o755))
	require.NoError(e.T, e.FS.WriteFile(path.Join(dir, "target.lnk"), []byte("not a link"), 0o644))
	e.Links.Errs[name] = errors.New(errors.ErrLinkParse, "cannot decode link file")
}

// AddPlainFolder lays out a folder entry that is not a shortcut at all.
func (e *Env) AddPlainFolder(name string) {
	e.T.Helper()

	require.NoError(e.T, e.FS.MkdirAll(path.Join(e.ShortcutsDir, name), 0o755))
}

// AddShare creates the root directory of a UNC share, making the
// location reachable.
func (e *Env) AddShare(uncPath string) {
	e.T.Helper()

	require.NoError(e.T, e.FS.MkdirAll(uncPath, 0o755))
}
