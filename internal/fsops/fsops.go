// Package fsops abstracts the filesystem and child-process collaborators
// spec.md §6 lists as external interfaces, so the Pane Model and Ex-Command
// Dispatch can be driven against an in-memory double in tests.
//
// Grounded on config/filesystem.go's FileSystem interface + OSFileSystem,
// generalized from "read/write a config file" to "list/stat/rename/mkdir a
// directory tree" for the Pane Model (internal/pane).
package fsops

import (
	"os"
	"path/filepath"
)

// DirEntry is the subset of os.DirEntry/os.FileInfo the Pane Model needs,
// kept narrow so MemoryFileSystem doesn't have to fake a full os.FileInfo.
type DirEntry struct {
	Name    string
	Size    int64
	Mode    os.FileMode
	ModTime int64 // unix seconds
	IsDir   bool
	IsLink  bool
}

// FileSystem is the directory/file surface the core requires from the OS
// (spec.md §6: list_dir, stat/lstat, realpath, rmdir, rename, unlink,
// mkdir, readlink, opendir/readdir).
type FileSystem interface {
	ReadDir(dir string) ([]DirEntry, error)
	Stat(path string) (DirEntry, error)
	Lstat(path string) (DirEntry, error)
	Realpath(path string) (string, error)
	Readlink(path string) (string, error)
	Rmdir(path string) error
	Remove(path string) error
	Rename(oldpath, newpath string) error
	Mkdir(path string, perm os.FileMode) error
}

// OSFileSystem implements FileSystem using real OS operations.
type OSFileSystem struct{}

// NewOSFileSystem returns the production FileSystem.
func NewOSFileSystem() *OSFileSystem { return &OSFileSystem{} }

func toDirEntry(name string, fi os.FileInfo) DirEntry {
	return DirEntry{
		Name:    name,
		Size:    fi.Size(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime().Unix(),
		IsDir:   fi.IsDir(),
		IsLink:  fi.Mode()&os.ModeSymlink != 0,
	}
}

// ReadDir lists the entries of dir, each stat'd with Lstat so symlinks are
// reported as links rather than resolved.
func (OSFileSystem) ReadDir(dir string) ([]DirEntry, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]DirEntry, 0, len(ents))
	for _, e := range ents {
		fi, err := e.Info()
		if err != nil {
			continue // transient stat failure: caller treats as filtered
		}
		out = append(out, toDirEntry(e.Name(), fi))
	}
	return out, nil
}

// Stat follows symlinks.
func (OSFileSystem) Stat(path string) (DirEntry, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return DirEntry{}, err
	}
	return toDirEntry(filepath.Base(path), fi), nil
}

// Lstat does not follow symlinks.
func (OSFileSystem) Lstat(path string) (DirEntry, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return DirEntry{}, err
	}
	return toDirEntry(filepath.Base(path), fi), nil
}

// Realpath resolves path to its absolute, symlink-free form.
func (OSFileSystem) Realpath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Readlink returns the target of a symbolic link.
func (OSFileSystem) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

// Rmdir removes an empty directory.
func (OSFileSystem) Rmdir(path string) error { return os.Remove(path) }

// Remove deletes a file.
func (OSFileSystem) Remove(path string) error { return os.Remove(path) }

// Rename moves oldpath to newpath.
func (OSFileSystem) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

// Mkdir creates a single directory level.
func (OSFileSystem) Mkdir(path string, perm os.FileMode) error { return os.Mkdir(path, perm) }
