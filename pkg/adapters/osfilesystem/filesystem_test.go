package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "chart.png")

	if err := fs.WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected %q, got %q", "second", data)
	}
}

func TestFileSystem_WriteFileLeavesNoTempFiles(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	if err := fs.WriteFile(filepath.Join(dir, "out.png"), []byte("data")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.png" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected directory contents: %v", names)
	}

	info, err := os.Stat(filepath.Join(dir, "out.png"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("unexpected mode %v", info.Mode().Perm())
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "a", "b", "c", "snowflake.png")

	if err := fs.WriteFile(path, []byte("test")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := fs.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}
}

func TestFileSystem_MkdirAllAndRemove(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "debug", "histogram")

	if err := fs.MkdirAll(path); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if exists, _ := fs.Exists(path); !exists {
		t.Fatal("expected directory to exist")
	}

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := fs.Exists(path); exists {
		t.Error("expected directory to be removed")
	}
}

func TestFileSystem_ExistsMissing(t *testing.T) {
	fs := New()

	exists, err := fs.Exists(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected missing file to not exist")
	}
}
