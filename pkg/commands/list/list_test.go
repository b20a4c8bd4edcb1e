// pkg/commands/list/list_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, production link decoder
// PURPOSE: Test container enumeration end to end over real shell link blobs

package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kn327/NetworkLocationInfo/pkg/commands/list"
	"github.com/kn327/NetworkLocationInfo/pkg/testutil"
)

func TestLocations(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddNetworkLocation("Team Projects", `\\fileserver\projects`)
	env.AddFlatShortcut("Media.lnk", `\\nas\media`)
	env.AddShare(`\\fileserver\projects`)

	result, err := list.Locations(list.Options{
		ShortcutsDir: env.ShortcutsDir,
		FileSystem:   env.FS,
	})
	require.NoError(t, err)

	assert.Equal(t, env.ShortcutsDir, result.ShortcutsDir)
	require.Len(t, result.Locations, 2)

	media := result.Locations[0]
	assert.Equal(t, `\\nas\media`, media.RootDirectory)
	assert.Equal(t, "Media", media.ShareLabel)
	assert.False(t, media.IsReady, "share was never created")
	assert.True(t, media.IsMapped)

	projects := result.Locations[1]
	assert.Equal(t, `\\fileserver\projects`, projects.RootDirectory)
	assert.Equal(t, "Team Projects", projects.ShareLabel)
	assert.True(t, projects.IsReady)
	assert.True(t, projects.IsMapped)
}

func TestLocations_SkipsForeignEntries(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddNetworkLocation("Scans", `\\printsrv\scans`)
	env.AddBrokenShortcut("Broken")
	env.AddPlainFolder("Stuff")
	env.AddFlatShortcut("Local.lnk", `C:\local\dir`)

	result, err := list.Locations(list.Options{
		ShortcutsDir: env.ShortcutsDir,
		FileSystem:   env.FS,
	})
	require.NoError(t, err)

	require.Len(t, result.Locations, 1)
	assert.Equal(t, `\\printsrv\scans`, result.Locations[0].RootDirectory)
}

func TestLocations_EmptyContainer(t *testing.T) {
	env := testutil.NewEnv(t)

	result, err := list.Locations(list.Options{
		ShortcutsDir: env.ShortcutsDir,
		FileSystem:   env.FS,
	})
	require.NoError(t, err)

	assert.NotNil(t, result.Locations)
	assert.Empty(t, result.Locations)
}

func TestLocations_MissingContainer(t *testing.T) {
	env := testutil.NewEnv(t)

	result, err := list.Locations(list.Options{
		ShortcutsDir: "/no/such/dir",
		FileSystem:   env.FS,
	})
	require.NoError(t, err)

	assert.NotNil(t, result.Locations)
	assert.Empty(t, result.Locations)
}
