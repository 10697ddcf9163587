package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestFileOps(t *testing.T) (*FileOps, string) {
	t.Helper()
	root := t.TempDir()
	trash := filepath.Join(root, "trash")
	ops := NewFileOps(OSFileSystem{}, trash)
	ops.now = func() int64 { return 42 }
	return ops, root
}

func TestFileOpsCopyFile(t *testing.T) {
	ops, root := newTestFileOps(t)
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	if err := os.Mkdir(src, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(dst, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "a.txt"), []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ops.Copy(src, "a.txt", dst); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hi" {
		t.Fatalf("got %q", data)
	}
	if _, err := os.Stat(filepath.Join(src, "a.txt")); err != nil {
		t.Fatalf("source should still exist after copy: %v", err)
	}
}

func TestFileOpsCopyDirRecursive(t *testing.T) {
	ops, root := newTestFileOps(t)
	src := filepath.Join(root, "src")
	if err := os.MkdirAll(filepath.Join(src, "sub"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "sub", "f.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(root, "dst")
	if err := os.Mkdir(dst, 0700); err != nil {
		t.Fatal(err)
	}

	if err := ops.Copy(root, "src", dst); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dst, "src", "sub", "f.txt")); err != nil {
		t.Fatalf("expected recursive copy: %v", err)
	}
}

func TestFileOpsMoveRemovesSource(t *testing.T) {
	ops, root := newTestFileOps(t)
	if err := os.WriteFile(filepath.Join(root, "m.txt"), []byte("y"), 0600); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(root, "dst")
	if err := os.Mkdir(dst, 0700); err != nil {
		t.Fatal(err)
	}

	if err := ops.Move(root, "m.txt", dst); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "m.txt")); !os.IsNotExist(err) {
		t.Fatalf("source should be gone after move, got err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "m.txt")); err != nil {
		t.Fatalf("expected file at destination: %v", err)
	}
}

func TestFileOpsRemoveToTrash(t *testing.T) {
	ops, root := newTestFileOps(t)
	if err := os.WriteFile(filepath.Join(root, "doomed.txt"), []byte("z"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ops.Remove(root, "doomed.txt", true); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "doomed.txt")); !os.IsNotExist(err) {
		t.Fatalf("original should be gone, got err=%v", err)
	}
	want := filepath.Join(ops.TrashDir, "42_doomed.txt")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected trashed file at %s: %v", want, err)
	}
}

func TestFileOpsRemovePermanent(t *testing.T) {
	ops, root := newTestFileOps(t)
	if err := os.WriteFile(filepath.Join(root, "gone.txt"), []byte("z"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ops.Remove(root, "gone.txt", false); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "gone.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected permanent removal, got err=%v", err)
	}
	if _, err := os.Stat(ops.TrashDir); !os.IsNotExist(err) {
		t.Fatalf("permanent delete should never create a trash dir, got err=%v", err)
	}
}

func TestFileOpsRename(t *testing.T) {
	ops, root := newTestFileOps(t)
	if err := os.WriteFile(filepath.Join(root, "old.txt"), []byte("r"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ops.Rename(root, "old.txt", "new.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "new.txt")); err != nil {
		t.Fatalf("expected renamed file: %v", err)
	}
}

func TestMountSourceAndUnmount(t *testing.T) {
	runner := NewProcessRunner()
	if err := MountSource(runner, "true", "src", "mnt"); err != nil {
		t.Fatal(err)
	}
	if err := Unmount(runner, "true", "mnt"); err != nil {
		t.Fatal(err)
	}
}
