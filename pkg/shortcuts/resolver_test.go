// pkg/shortcuts/resolver_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test mapping container entries to link targets across entry shapes

package shortcuts_test

import (
	"path"
	"testing"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/shortcuts"
	"github.com/kn327/NetworkLocationInfo/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget_FolderEntry(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddNetworkLocation("Projects", `\\fileserver\projects`)
	resolver := shortcuts.NewFileResolver(env.FS)

	target, err := resolver.ResolveTarget(env.ShortcutsDir, "Projects")

	require.NoError(t, err)
	assert.Equal(t, `\\fileserver\projects`, target)
}

func TestResolveTarget_FlatLinkFile(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddFlatShortcut("Media.lnk", `\\nas\media`)
	resolver := shortcuts.NewFileResolver(env.FS)

	target, err := resolver.ResolveTarget(env.ShortcutsDir, "Media.lnk")

	require.NoError(t, err)
	assert.Equal(t, `\\nas\media`, target)
}

func TestResolveTarget_SymlinkEntry(t *testing.T) {
	env := testutil.NewEnv(t)
	require.NoError(t, env.FS.Symlink(`\\backup\archive`, path.Join(env.ShortcutsDir, "Archive")))
	resolver := shortcuts.NewFileResolver(env.FS)

	target, err := resolver.ResolveTarget(env.ShortcutsDir, "Archive")

	require.NoError(t, err)
	assert.Equal(t, `\\backup\archive`, target)
}

func TestResolveTarget_LocalTargetPassesThrough(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddNetworkLocation("Docs", `C:\Users\dev\docs`)
	resolver := shortcuts.NewFileResolver(env.FS)

	target, err := resolver.ResolveTarget(env.ShortcutsDir, "Docs")

	// Filtering non-UNC targets is the caller's job.
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\dev\docs`, target)
}

func TestResolveTarget_NonShortcutEntries(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddPlainFolder("Just A Folder")
	require.NoError(t, env.FS.WriteFile(path.Join(env.ShortcutsDir, "readme.txt"), []byte("hi"), 0o644))
	resolver := shortcuts.NewFileResolver(env.FS)

	tests := []struct {
		name  string
		entry string
	}{
		{"plain folder", "Just A Folder"},
		{"plain file", "readme.txt"},
		{"missing entry", "Nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := resolver.ResolveTarget(env.ShortcutsDir, tt.entry)

			require.NoError(t, err, "non-shortcut entries are not errors")
			assert.Empty(t, target)
		})
	}
}

func TestResolveTarget_CorruptNestedLink(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddBrokenShortcut("Broken")
	resolver := shortcuts.NewFileResolver(env.FS)

	_, err := resolver.ResolveTarget(env.ShortcutsDir, "Broken")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrLinkParse))
}

func TestResolveTarget_CorruptFlatLink(t *testing.T) {
	env := testutil.NewEnv(t)
	require.NoError(t, env.FS.WriteFile(path.Join(env.ShortcutsDir, "Bad.lnk"), []byte("junk"), 0o644))
	resolver := shortcuts.NewFileResolver(env.FS)

	_, err := resolver.ResolveTarget(env.ShortcutsDir, "Bad.lnk")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrLinkParse))
}

func TestResolveTarget_FolderWithEmptyLink(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddNetworkLocation("Empty", "")
	resolver := shortcuts.NewFileResolver(env.FS)

	target, err := resolver.ResolveTarget(env.ShortcutsDir, "Empty")

	require.NoError(t, err)
	assert.Empty(t, target, "a link without path info has no target")
}
