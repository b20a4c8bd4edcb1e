// pkg/testutil/memoryfs_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test in-memory filesystem semantics the resolver relies on

package testutil_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/kn327/NetworkLocationInfo/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_NormalizesUNCPaths(t *testing.T) {
	fsys := testutil.NewMemoryFS()

	require.NoError(t, fsys.MkdirAll(`\\fileserver\projects`, 0o755))

	// The same location must be visible under every separator spelling.
	for _, spelling := range []string{`\\fileserver\projects`, "/fileserver/projects", `//fileserver\projects`} {
		fi, err := fsys.Stat(spelling)
		require.NoError(t, err, "spelling %q", spelling)
		assert.True(t, fi.IsDir())
	}
}

func TestMemoryFS_WriteAndReadFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()

	require.NoError(t, fsys.WriteFile("/dir/sub/file.txt", []byte("content"), 0o644))

	data, err := fsys.ReadFile("/dir/sub/file.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	// Parents are created on demand
	fi, err := fsys.Stat("/dir/sub")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestMemoryFS_ReadDirSortsEntries(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/container/zeta", 0o755))
	require.NoError(t, fsys.MkdirAll("/container/alpha", 0o755))
	require.NoError(t, fsys.WriteFile("/container/mid.lnk", nil, 0o644))

	entries, err := fsys.ReadDir("/container")

	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Equal(t, []string{"alpha", "mid.lnk", "zeta"}, names)
}

func TestMemoryFS_RenameFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/container/Old.lnk", []byte("x"), 0o644))

	require.NoError(t, fsys.Rename("/container/Old.lnk", "/container/New.lnk"))

	_, err := fsys.Stat("/container/Old.lnk")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	data, err := fsys.ReadFile("/container/New.lnk")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

func TestMemoryFS_RenameDirectoryCarriesChildren(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/container/Projects/target.lnk", []byte("link"), 0o644))

	require.NoError(t, fsys.Rename("/container/Projects", "/container/Team Projects"))

	data, err := fsys.ReadFile("/container/Team Projects/target.lnk")
	require.NoError(t, err)
	assert.Equal(t, []byte("link"), data)

	_, err = fsys.Stat("/container/Projects/target.lnk")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "old key must be gone")
}

func TestMemoryFS_RenameErrors(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/a", nil, 0o644))
	require.NoError(t, fsys.WriteFile("/b", nil, 0o644))

	err := fsys.Rename("/missing", "/x")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = fsys.Rename("/a", "/b")
	assert.True(t, errors.Is(err, fs.ErrExist))
}

func TestMemoryFS_StatFollowsSymlinks(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/real/dir", 0o755))
	require.NoError(t, fsys.Symlink("/real/dir", "/link"))

	fi, err := fsys.Stat("/link")
	require.NoError(t, err)
	assert.True(t, fi.IsDir(), "Stat must follow the link")

	fi, err = fsys.Lstat("/link")
	require.NoError(t, err)
	assert.False(t, fi.IsDir(), "Lstat must not follow the link")
	assert.NotZero(t, fi.Mode()&fs.ModeSymlink)
}

func TestMemoryFS_ReadlinkReturnsDestVerbatim(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/container", 0o755))
	require.NoError(t, fsys.Symlink(`\\fileserver\projects`, "/container/Projects"))

	dest, err := fsys.Readlink("/container/Projects")
	require.NoError(t, err)
	assert.Equal(t, `\\fileserver\projects`, dest, "UNC form must survive untouched")
}

func TestMemoryFS_ErrorInjection(t *testing.T) {
	boom := errors.New("disk on fire")
	fsys := testutil.NewMemoryFS().WithError("/container/bad", boom)
	require.NoError(t, fsys.MkdirAll("/container", 0o755))

	_, err := fsys.Stat("/container/bad")
	assert.True(t, errors.Is(err, boom))

	err = fsys.WriteFile("/container/bad", nil, 0o644)
	assert.True(t, errors.Is(err, boom))
}
