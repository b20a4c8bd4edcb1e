//go:build windows

package shortcuts

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
)

// ShellResolver resolves link targets through the Windows Script Host
// shell object, the same machinery Explorer uses.
type ShellResolver struct {
	fs types.FS
}

// NewShellResolver creates a resolver backed by WScript.Shell. The
// filesystem is only used to map container entries to their link files;
// the link decoding itself happens inside the shell.
func NewShellResolver(fsys types.FS) *ShellResolver {
	return &ShellResolver{fs: fsys}
}

var (
	shellOnce sync.Once
	shellDisp *ole.IDispatch
	shellErr  error
)

// sharedShell initializes COM and creates the WScript.Shell dispatch
// once per process. The dispatch is never released; it lives as long as
// the process does.
func sharedShell() (*ole.IDispatch, error) {
	shellOnce.Do(func() {
		if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
			shellErr = err
			return
		}
		unknown, err := oleutil.CreateObject("WScript.Shell")
		if err != nil {
			shellErr = err
			return
		}
		shellDisp, shellErr = unknown.QueryInterface(ole.IID_IDispatch)
	})
	return shellDisp, shellErr
}

// ResolveTarget implements types.LinkResolver. Entries that do not
// carry a link yield ("", nil); links the shell cannot open yield an
// error.
func (r *ShellResolver) ResolveTarget(dir, name string) (string, error) {
	linkPath, ok := r.linkFile(dir, name)
	if !ok {
		return "", nil
	}

	shell, err := sharedShell()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "windows shell unavailable")
	}

	sc, err := oleutil.CallMethod(shell, "CreateShortcut", linkPath)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrLinkParse, "cannot open shell link").WithDetail("entry", name)
	}
	defer sc.Clear()

	target, err := oleutil.GetProperty(sc.ToIDispatch(), "TargetPath")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrLinkParse, "cannot read link target").WithDetail("entry", name)
	}
	defer target.Clear()

	return target.ToString(), nil
}

// linkFile maps a container entry to the link file holding its target:
// folder entries nest one under TargetFileName, flat entries are the
// link file itself.
func (r *ShellResolver) linkFile(dir, name string) (string, bool) {
	full := filepath.Join(dir, name)
	fi, err := r.fs.Lstat(full)
	if err != nil {
		return "", false
	}
	if fi.IsDir() {
		nested := filepath.Join(full, TargetFileName)
		if _, err := r.fs.Stat(nested); err != nil {
			return "", false
		}
		return nested, true
	}
	if strings.EqualFold(filepath.Ext(name), types.LinkExt) {
		return full, true
	}
	return "", false
}
