package shortcuts

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
)

// TargetFileName is the link file nested inside a folder-style entry of
// the network-shortcuts container.
const TargetFileName = "target.lnk"

// FileResolver resolves link targets by decoding shell link files
// directly, without going through the Windows shell. It works on any
// platform and backs the default resolver everywhere except Windows.
//
// Besides the two Windows entry shapes (a folder nesting a target link,
// and a flat link file), it resolves symlink entries by their link
// destination, which is how test fixtures and non-Windows containers
// spell out a target.
type FileResolver struct {
	fs types.FS
}

// NewFileResolver creates a resolver that reads link files through fsys.
func NewFileResolver(fsys types.FS) *FileResolver {
	return &FileResolver{fs: fsys}
}

// ResolveTarget implements types.LinkResolver. Entries that do not
// carry a link yield ("", nil); link files that exist but cannot be
// read or decoded yield an error.
func (r *FileResolver) ResolveTarget(dir, name string) (string, error) {
	full := filepath.Join(dir, name)
	fi, err := r.fs.Lstat(full)
	if err != nil {
		return "", nil
	}

	switch {
	case fi.Mode()&os.ModeSymlink != 0:
		target, err := r.fs.Readlink(full)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrIOFailure, "cannot read entry symlink").WithDetail("entry", name)
		}
		return target, nil
	case fi.IsDir():
		return r.readLinkFile(filepath.Join(full, TargetFileName), name, true)
	case strings.EqualFold(filepath.Ext(name), types.LinkExt):
		return r.readLinkFile(full, name, false)
	default:
		return "", nil
	}
}

// readLinkFile decodes the link file at path. When optional is set, a
// missing file is not an error: a folder without a nested target link
// is just a folder.
func (r *FileResolver) readLinkFile(path, entry string, optional bool) (string, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		if optional {
			return "", nil
		}
		return "", errors.Wrap(err, errors.ErrIOFailure, "cannot read link file").WithDetail("entry", entry)
	}
	link, err := Decode(data)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrLinkParse, "cannot decode link file").WithDetail("entry", entry)
	}
	return link.TargetPath(), nil
}
