package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileOps is the concrete production implementation of internal/normal's FS
// collaborator (Copy/Move/Remove/Rename), built on top of FileSystem plus a
// trash directory. Grounded on config/filesystem.go's OSFileSystem for the
// raw syscalls and spec.md §4.3's dd/yy/p trash semantics: a "remove to
// trash" moves the entry aside instead of unlinking it.
type FileOps struct {
	FS       FileSystem
	TrashDir string

	now func() int64
}

// NewFileOps wires a FileOps over fs, storing trashed entries under trashDir.
func NewFileOps(fs FileSystem, trashDir string) *FileOps {
	return &FileOps{FS: fs, TrashDir: trashDir, now: func() int64 { return time.Now().Unix() }}
}

// Copy duplicates srcDir/name into dstDir, recursing into directories.
func (f *FileOps) Copy(srcDir, name, dstDir string) error {
	src := filepath.Join(srcDir, name)
	dst := filepath.Join(dstDir, name)
	return f.copyPath(src, dst)
}

func (f *FileOps) copyPath(src, dst string) error {
	info, err := f.FS.Lstat(src)
	if err != nil {
		return err
	}
	if info.IsLink {
		target, err := f.FS.Readlink(src)
		if err != nil {
			return err
		}
		return os.Symlink(target, dst)
	}
	if info.IsDir {
		if err := f.FS.Mkdir(dst, info.Mode.Perm()); err != nil && !os.IsExist(err) {
			return err
		}
		ents, err := f.FS.ReadDir(src)
		if err != nil {
			return err
		}
		for _, e := range ents {
			if err := f.copyPath(filepath.Join(src, e.Name), filepath.Join(dst, e.Name)); err != nil {
				return err
			}
		}
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode.Perm())
}

// Move relocates srcDir/name into dstDir, falling back to copy+remove when
// Rename fails across a filesystem boundary (the trash directory is
// frequently on a different mount than the source).
func (f *FileOps) Move(srcDir, name, dstDir string) error {
	src := filepath.Join(srcDir, name)
	dst := filepath.Join(dstDir, name)
	if err := f.FS.Rename(src, dst); err == nil {
		return nil
	}
	if err := f.copyPath(src, dst); err != nil {
		return err
	}
	return f.removeAll(src)
}

func (f *FileOps) removeAll(path string) error {
	info, err := f.FS.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir {
		ents, err := f.FS.ReadDir(path)
		if err != nil {
			return err
		}
		for _, e := range ents {
			if err := f.removeAll(filepath.Join(path, e.Name)); err != nil {
				return err
			}
		}
		return f.FS.Rmdir(path)
	}
	return f.FS.Remove(path)
}

// Remove deletes dir/name. When toTrash is true (spec.md §4.3's dd, as
// opposed to a permanent delete), the entry is moved into TrashDir under a
// timestamp-qualified name instead of being unlinked.
func (f *FileOps) Remove(dir, name string, toTrash bool) error {
	if !toTrash {
		return f.removeAll(filepath.Join(dir, name))
	}
	if err := f.FS.Mkdir(f.TrashDir, 0700); err != nil && !os.IsExist(err) {
		return err
	}
	trashName := fmt.Sprintf("%d_%s", f.now(), name)
	if err := f.Move(dir, name, f.TrashDir); err != nil {
		return err
	}
	return f.renameInTrash(name, trashName)
}

// renameInTrash gives a just-trashed entry its timestamp-qualified name so
// repeated deletes of same-named entries don't collide.
func (f *FileOps) renameInTrash(name, trashName string) error {
	return f.FS.Rename(filepath.Join(f.TrashDir, name), filepath.Join(f.TrashDir, trashName))
}

// Rename renames oldName to newName within dir.
func (f *FileOps) Rename(dir, oldName, newName string) error {
	return f.FS.Rename(filepath.Join(dir, oldName), filepath.Join(dir, newName))
}
