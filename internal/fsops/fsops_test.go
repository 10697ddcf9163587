package fsops

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOSFileSystemReadDirAndStat(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFileSystem()
	ents, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 2 {
		t.Fatalf("got %+v", ents)
	}

	fi, err := fs.Stat(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.IsDir || fi.Size != 2 {
		t.Fatalf("got %+v", fi)
	}
}

func TestOSFileSystemRenameRemoveMkdir(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()
	src := filepath.Join(dir, "src.txt")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "dst.txt")
	if err := fs.Rename(src, dst); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Stat(dst); err != nil {
		t.Fatalf("expected renamed file to exist: %v", err)
	}
	if err := fs.Remove(dst); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Stat(dst); err == nil {
		t.Fatal("expected removed file to be gone")
	}
	if err := fs.Mkdir(filepath.Join(dir, "newdir"), 0755); err != nil {
		t.Fatal(err)
	}
	fi, err := fs.Stat(filepath.Join(dir, "newdir"))
	if err != nil || !fi.IsDir {
		t.Fatalf("got %+v err=%v", fi, err)
	}
}

func TestMemoryFileSystemReadDirAndRename(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.PutFile("/home/user", "a.txt", 10, 100, false)
	fs.PutFile("/home/user", "b.txt", 20, 200, false)
	fs.MkdirAll("/home/user/sub")

	ents, err := fs.ReadDir("/home/user")
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 3 {
		t.Fatalf("got %+v", ents)
	}

	if err := fs.Rename("/home/user/a.txt", "/home/user/renamed.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Lstat("/home/user/renamed.txt"); err != nil {
		t.Fatalf("expected renamed entry: %v", err)
	}
	if _, err := fs.Lstat("/home/user/a.txt"); err == nil {
		t.Fatal("expected old name to be gone")
	}
}

func TestMemoryFileSystemTouchUpdatesModTime(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.PutFile("/d", "f", 1, 100, false)
	fs.Touch("/d/f", 999)
	e, err := fs.Lstat("/d/f")
	if err != nil {
		t.Fatal(err)
	}
	if e.ModTime != 999 {
		t.Fatalf("got %+v", e)
	}
}

func TestMemoryFileSystemMissingDirReadDirFails(t *testing.T) {
	fs := NewMemoryFileSystem()
	if _, err := fs.ReadDir("/nope"); err == nil {
		t.Fatal("expected an error for a nonexistent directory")
	}
}

func TestProcessRunnerSpawnAndReadLine(t *testing.T) {
	r := NewProcessRunner()
	j, err := r.Spawn("echo hello", SpawnOpts{CaptureStdout: true})
	if err != nil {
		t.Fatal(err)
	}
	line, err := r.ReadLine(j)
	if err != nil {
		t.Fatal(err)
	}
	if line != "hello\n" {
		t.Fatalf("got %q", line)
	}
	if err := r.Wait(j); err != nil {
		t.Fatal(err)
	}
}

func TestProcessRunnerBackgroundAndJobTable(t *testing.T) {
	r := NewProcessRunner()
	table := NewJobTable()
	j, err := r.Spawn("true", SpawnOpts{Background: true})
	if err != nil {
		t.Fatal(err)
	}
	table.Track(r, j)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := table.Drain(); len(got) > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for job table to drain a finished job")
}

func TestProcessRunnerKill(t *testing.T) {
	r := NewProcessRunner()
	j, err := r.Spawn("sleep 5", SpawnOpts{Background: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Kill(j); err != nil {
		t.Fatal(err)
	}
}
