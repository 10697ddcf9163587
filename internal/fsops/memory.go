package fsops

import (
	"os"
	"path"
	"sort"
)

// MemoryFileSystem implements FileSystem in memory, for Pane Model tests
// that need a reload/rename/mkdir sequence without touching a real disk.
// Grounded on config/memory_filesystem.go, generalized from flat config
// files to a directory tree.
type MemoryFileSystem struct {
	dirs  map[string]bool
	files map[string]DirEntry
}

// NewMemoryFileSystem returns an empty in-memory tree rooted at "/".
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		dirs:  map[string]bool{"/": true},
		files: make(map[string]DirEntry),
	}
}

// MkdirAll registers path and every ancestor as an existing directory.
func (m *MemoryFileSystem) MkdirAll(dir string) {
	clean := path.Clean(dir)
	for clean != "/" && clean != "." {
		m.dirs[clean] = true
		clean = path.Dir(clean)
	}
	m.dirs["/"] = true
}

// PutFile registers a file entry at dir/name, creating dir if needed.
func (m *MemoryFileSystem) PutFile(dir, name string, size int64, mtime int64, isDir bool) {
	m.MkdirAll(dir)
	full := path.Join(dir, name)
	if isDir {
		m.dirs[full] = true
	}
	m.files[full] = DirEntry{Name: name, Size: size, ModTime: mtime, IsDir: isDir}
}

// Touch updates an existing entry's ModTime, simulating an external edit
// the mtime-polling reload (internal/pane) should notice.
func (m *MemoryFileSystem) Touch(full string, mtime int64) {
	e := m.files[full]
	e.ModTime = mtime
	m.files[full] = e
}

func (m *MemoryFileSystem) ReadDir(dir string) ([]DirEntry, error) {
	clean := path.Clean(dir)
	if !m.dirs[clean] {
		return nil, &os.PathError{Op: "open", Path: dir, Err: os.ErrNotExist}
	}
	var out []DirEntry
	seen := map[string]bool{}
	prefix := clean
	if prefix != "/" {
		prefix += "/"
	} else {
		prefix = "/"
	}
	for full, e := range m.files {
		d, base := path.Split(full)
		d = path.Clean(d)
		if d != clean {
			continue
		}
		if seen[base] {
			continue
		}
		seen[base] = true
		out = append(out, e)
	}
	for full := range m.dirs {
		if full == clean {
			continue
		}
		d, base := path.Split(path.Clean(full))
		d = path.Clean(d)
		if d != clean || base == "" {
			continue
		}
		if seen[base] {
			continue
		}
		seen[base] = true
		out = append(out, DirEntry{Name: base, IsDir: true})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryFileSystem) Stat(p string) (DirEntry, error) {
	return m.Lstat(p)
}

func (m *MemoryFileSystem) Lstat(p string) (DirEntry, error) {
	clean := path.Clean(p)
	if e, ok := m.files[clean]; ok {
		return e, nil
	}
	if m.dirs[clean] {
		return DirEntry{Name: path.Base(clean), IsDir: true}, nil
	}
	return DirEntry{}, &os.PathError{Op: "stat", Path: p, Err: os.ErrNotExist}
}

func (m *MemoryFileSystem) Realpath(p string) (string, error) { return path.Clean(p), nil }
func (m *MemoryFileSystem) Readlink(p string) (string, error) { return "", os.ErrInvalid }

func (m *MemoryFileSystem) Rmdir(p string) error {
	clean := path.Clean(p)
	if !m.dirs[clean] {
		return &os.PathError{Op: "rmdir", Path: p, Err: os.ErrNotExist}
	}
	delete(m.dirs, clean)
	return nil
}

func (m *MemoryFileSystem) Remove(p string) error {
	clean := path.Clean(p)
	if _, ok := m.files[clean]; !ok {
		return &os.PathError{Op: "remove", Path: p, Err: os.ErrNotExist}
	}
	delete(m.files, clean)
	return nil
}

func (m *MemoryFileSystem) Rename(oldpath, newpath string) error {
	clean := path.Clean(oldpath)
	e, ok := m.files[clean]
	if !ok {
		return &os.PathError{Op: "rename", Path: oldpath, Err: os.ErrNotExist}
	}
	e.Name = path.Base(newpath)
	m.files[path.Clean(newpath)] = e
	delete(m.files, clean)
	return nil
}

func (m *MemoryFileSystem) Mkdir(p string, _ os.FileMode) error {
	m.dirs[path.Clean(p)] = true
	return nil
}
