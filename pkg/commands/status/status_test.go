// pkg/commands/status/status_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, production link decoder
// PURPOSE: Test per-path status rows, error rows for bad input, and live reachability

package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kn327/NetworkLocationInfo/pkg/commands/status"
	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/testutil"
)

func TestCheck(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddNetworkLocation("Team Projects", `\\fileserver\projects`)
	env.AddShare(`\\fileserver\projects`)

	result, err := status.Check(status.Options{
		Paths:        []string{`\\fileserver\projects\2024`, `\\nowhere\nothing`},
		ShortcutsDir: env.ShortcutsDir,
		FileSystem:   env.FS,
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, 0, result.Failed)

	mapped := result.Rows[0]
	assert.Equal(t, `\\fileserver\projects\2024`, mapped.Path, "rows echo the path as requested")
	require.NotNil(t, mapped.Location)
	assert.Equal(t, `\\fileserver\projects`, mapped.Location.RootDirectory)
	assert.Equal(t, "Team Projects", mapped.Location.ShareLabel)
	assert.True(t, mapped.Location.IsReady)
	assert.True(t, mapped.Location.IsMapped)
	assert.Empty(t, mapped.Error)

	unmapped := result.Rows[1]
	require.NotNil(t, unmapped.Location)
	assert.False(t, unmapped.Location.IsReady)
	assert.False(t, unmapped.Location.IsMapped)
	assert.Empty(t, unmapped.Location.ShareLabel)
}

func TestCheck_BadPathsBecomeErrorRows(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddNetworkLocation("Scans", `\\printsrv\scans`)

	result, err := status.Check(status.Options{
		Paths:        []string{`C:\temp`, `\\printsrv\scans`, "   "},
		ShortcutsDir: env.ShortcutsDir,
		FileSystem:   env.FS,
	})
	require.NoError(t, err, "bad paths must not fail the whole command")

	require.Len(t, result.Rows, 3)
	assert.Equal(t, 2, result.Failed)

	assert.Nil(t, result.Rows[0].Location)
	assert.NotEmpty(t, result.Rows[0].Error)

	assert.NotNil(t, result.Rows[1].Location)
	assert.Empty(t, result.Rows[1].Error)

	assert.Nil(t, result.Rows[2].Location)
	assert.NotEmpty(t, result.Rows[2].Error)
}

func TestCheck_NoPaths(t *testing.T) {
	env := testutil.NewEnv(t)

	_, err := status.Check(status.Options{
		ShortcutsDir: env.ShortcutsDir,
		FileSystem:   env.FS,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidInput))
}
