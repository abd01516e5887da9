package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestIsTextFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"book.txt", true},
		{"dir/book.txt", true},
		{".txt", true},
		{"book.TXT", false},
		{"book.txt.gz", false},
		{"book.md", false},
		{"txt", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTextFile(tt.path); got != tt.want {
			t.Errorf("IsTextFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOpenTextFile(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{}
	path := writeFile(t, dir, "ok.txt", "hello world")

	f, err := s.OpenTextFile(path)
	if err != nil {
		t.Fatalf("OpenTextFile() error = %v", err)
	}
	defer f.Close()

	if f.SizeBytes != int64(len("hello world")) {
		t.Errorf("SizeBytes = %d, want %d", f.SizeBytes, len("hello world"))
	}
	if f.Path != path {
		t.Errorf("Path = %q, want %q", f.Path, path)
	}
}

func TestOpenTextFile_Errors(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{}
	upper := writeFile(t, dir, "upper.TXT", "x")
	if err := os.Mkdir(filepath.Join(dir, "folder.txt"), 0755); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"uppercase extension", upper, ErrNotTextFile},
		{"wrong extension", filepath.Join(dir, "missing.csv"), ErrNotTextFile},
		{"missing", filepath.Join(dir, "missing.txt"), ErrFileUnreadable},
		{"directory", filepath.Join(dir, "folder.txt"), ErrFileUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.OpenTextFile(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("OpenTextFile(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestOpenAll_AbortsOnFirstInvalid(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{}
	good := writeFile(t, dir, "a.txt", "a")
	bad := writeFile(t, dir, "b.md", "b")

	files, err := s.OpenAll([]string{good, bad, good})
	if !errors.Is(err, ErrNotTextFile) {
		t.Fatalf("OpenAll() error = %v, want %v", err, ErrNotTextFile)
	}
	if files != nil {
		t.Errorf("OpenAll() files = %v, want nil", files)
	}

	files, err = s.OpenAll([]string{good, good})
	if err != nil {
		t.Fatalf("OpenAll() error = %v", err)
	}
	defer CloseAll(files)
	if len(files) != 2 {
		t.Errorf("len(files) = %d, want 2", len(files))
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{}
	path := filepath.Join(dir, "out.txt")

	if err := s.SaveFile(path, []byte("first")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if err := s.SaveFile(path, []byte("second")); err != nil {
		t.Fatalf("SaveFile() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the saved file", len(entries))
	}
}

func TestSaveFile_MissingDir(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "nope", "out.txt")

	if err := s.SaveFile(path, []byte("x")); err == nil {
		t.Fatal("SaveFile() error = nil, want error for missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Stat() error = %v, want not-exist", err)
	}
}
