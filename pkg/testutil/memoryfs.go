package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. Paths are
// normalized to forward slashes, so UNC-style fixtures like
// \\server\share land on the key /server/share and behave the same on
// every platform.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode
	umask os.FileMode

	// Error injection
	errorPaths map[string]error

	// Statistics
	readCount  int
	writeCount int
}

// fileNode represents a file, directory, or symlink in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	isLink   bool
	linkDest string
	children map[string]*fileNode
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:     "/",
		mode:     0755 | os.ModeDir,
		modTime:  time.Now(),
		isDir:    true,
		children: make(map[string]*fileNode),
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		umask:      0022,
		errorPaths: make(map[string]error),
	}
}

// normalizePath converts a path to its slash-separated absolute form
func (m *MemoryFS) normalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// getNode retrieves the node at the given path without following a
// final symlink
func (m *MemoryFS) getNode(p string) (*fileNode, error) {
	p = m.normalizePath(p)

	if err, ok := m.errorPaths[p]; ok {
		return nil, err
	}

	node, exists := m.files[p]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}

	return node, nil
}

// followLinks resolves a chain of symlinks starting at node
func (m *MemoryFS) followLinks(p string, node *fileNode) (*fileNode, error) {
	for depth := 0; node.isLink; depth++ {
		if depth > 8 {
			return nil, &fs.PathError{Op: "stat", Path: p, Err: errors.New("too many links")}
		}
		dest := node.linkDest
		if !strings.HasPrefix(strings.ReplaceAll(dest, `\`, "/"), "/") {
			dest = path.Join(path.Dir(p), dest)
		}
		dest = m.normalizePath(dest)
		next, err := m.getNode(dest)
		if err != nil {
			return nil, err
		}
		p = dest
		node = next
	}
	return node, nil
}

// getParentAndName splits a path into parent directory node and filename
func (m *MemoryFS) getParentAndName(p string) (parent *fileNode, name string, err error) {
	p = m.normalizePath(p)
	dir := path.Dir(p)
	name = path.Base(p)

	parent, err = m.getNode(dir)
	if err != nil {
		return nil, "", err
	}

	if !parent.isDir {
		return nil, "", &fs.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
	}

	return parent, name, nil
}

// Stat returns file info, following symlinks
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	node, err = m.followLinks(m.normalizePath(name), node)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: path.Base(m.normalizePath(name))}, nil
}

// Lstat returns file info without following symlinks
func (m *MemoryFS) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: path.Base(m.normalizePath(name))}, nil
}

// ReadDir reads a directory and returns its entries sorted by name,
// matching os.ReadDir
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.readCount++

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for childName, child := range node.children {
		entries = append(entries, &dirEntry{
			name: childName,
			info: &fileInfo{node: child, name: childName},
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return entries, nil
}

// ReadFile reads the entire file content, following symlinks
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.readCount++

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	node, err = m.followLinks(m.normalizePath(name), node)
	if err != nil {
		return nil, err
	}

	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	// Return a copy to prevent mutation
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile writes data to a file, creating it and any missing parent
// directories
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	p := m.normalizePath(name)

	if err, ok := m.errorPaths[p]; ok {
		return err
	}

	parent, filename, err := m.getParentAndName(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := m.mkdirAll(path.Dir(p), 0755); err != nil {
			return err
		}
		parent, filename, err = m.getParentAndName(p)
		if err != nil {
			return err
		}
	}

	node := &fileNode{
		name:    filename,
		mode:    perm &^ m.umask,
		modTime: time.Now(),
		content: make([]byte, len(data)),
	}
	copy(node.content, data)

	parent.children[filename] = node
	m.files[p] = node

	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mkdirAll(p, perm)
}

// mkdirAll is the internal implementation without locking
func (m *MemoryFS) mkdirAll(p string, perm os.FileMode) error {
	p = m.normalizePath(p)

	if node, err := m.getNode(p); err == nil {
		if !node.isDir {
			return &fs.PathError{Op: "mkdir", Path: p, Err: errors.New("file exists")}
		}
		return nil
	}

	parts := strings.Split(p, "/")
	current := "/"
	currentNode := m.files["/"]

	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}

		next := path.Join(current, parts[i])

		if child, exists := currentNode.children[parts[i]]; exists {
			if !child.isDir {
				return &fs.PathError{Op: "mkdir", Path: next, Err: errors.New("not a directory")}
			}
			currentNode = child
			current = next
			continue
		}

		newDir := &fileNode{
			name:     parts[i],
			mode:     perm | os.ModeDir,
			modTime:  time.Now(),
			isDir:    true,
			children: make(map[string]*fileNode),
		}

		currentNode.children[parts[i]] = newDir
		m.files[next] = newDir

		currentNode = newDir
		current = next
	}

	return nil
}

// Rename moves a file or directory, carrying any descendants along
func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	op := m.normalizePath(oldpath)
	np := m.normalizePath(newpath)

	if err, ok := m.errorPaths[op]; ok {
		return err
	}
	if err, ok := m.errorPaths[np]; ok {
		return err
	}

	node, exists := m.files[op]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if op == np {
		return nil
	}
	if _, exists := m.files[np]; exists {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrExist}
	}

	oldParent, oldName, err := m.getParentAndName(op)
	if err != nil {
		return err
	}
	newParent, newName, err := m.getParentAndName(np)
	if err != nil {
		return err
	}

	delete(oldParent.children, oldName)
	delete(m.files, op)

	node.name = newName
	node.modTime = time.Now()
	newParent.children[newName] = node
	m.files[np] = node

	// Rebase keys of everything underneath a moved directory. The node
	// graph itself is untouched; only the path index changes.
	prefix := op + "/"
	var moved []string
	for k := range m.files {
		if strings.HasPrefix(k, prefix) {
			moved = append(moved, k)
		}
	}
	for _, k := range moved {
		n := m.files[k]
		delete(m.files, k)
		m.files[np+"/"+strings.TrimPrefix(k, prefix)] = n
	}

	return nil
}

// Remove removes a file or empty directory
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.normalizePath(name)

	node, err := m.getNode(p)
	if err != nil {
		return err
	}

	if node.isDir && len(node.children) > 0 {
		return &fs.PathError{Op: "remove", Path: name, Err: errors.New("directory not empty")}
	}

	parent, filename, err := m.getParentAndName(p)
	if err != nil {
		return err
	}

	delete(parent.children, filename)
	delete(m.files, p)

	return nil
}

// Symlink creates a symbolic link. The destination is stored verbatim,
// so Readlink hands back exactly what was written here.
func (m *MemoryFS) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	linkPath := m.normalizePath(newname)

	if err, ok := m.errorPaths[linkPath]; ok {
		return err
	}

	if _, err := m.getNode(linkPath); err == nil {
		return &fs.PathError{Op: "symlink", Path: newname, Err: os.ErrExist}
	}

	parent, filename, err := m.getParentAndName(linkPath)
	if err != nil {
		return err
	}

	node := &fileNode{
		name:     filename,
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		isLink:   true,
		linkDest: oldname,
	}

	parent.children[filename] = node
	m.files[linkPath] = node

	return nil
}

// Readlink returns the destination of a symbolic link
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.readCount++

	node, err := m.getNode(name)
	if err != nil {
		return "", err
	}

	if !node.isLink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.New("not a symbolic link")}
	}

	return node.linkDest, nil
}

// WithError configures the filesystem to return an error for a specific
// path
func (m *MemoryFS) WithError(p string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[m.normalizePath(p)] = err
	return m
}

// Stats returns filesystem operation statistics
func (m *MemoryFS) Stats() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readCount, m.writeCount
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }

// dirEntry implements fs.DirEntry
type dirEntry struct {
	name string
	info os.FileInfo
}

func (de *dirEntry) Name() string               { return de.name }
func (de *dirEntry) IsDir() bool                { return de.info.IsDir() }
func (de *dirEntry) Type() os.FileMode          { return de.info.Mode().Type() }
func (de *dirEntry) Info() (os.FileInfo, error) { return de.info, nil }
