package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCopyFilePreservesContentsAndTimes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pref")
	dst := filepath.Join(dir, "dst.pref")

	if err := os.WriteFile(src, []byte("pref data"), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "pref data" {
		t.Errorf("contents = %q", got)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), mtime)
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a"), make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b"), make([]byte, 50), 0o644); err != nil {
		t.Fatal(err)
	}

	size, err := DirSize(dir)
	if err != nil {
		t.Fatalf("DirSize: %v", err)
	}
	if size != 150 {
		t.Errorf("size = %d, want 150", size)
	}
}

func TestWritable(t *testing.T) {
	if !Writable(t.TempDir()) {
		t.Error("temp dir should be writable")
	}
	if Writable(filepath.Join(t.TempDir(), "does-not-exist")) {
		t.Error("missing dir should not be writable")
	}
}
