package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TextExtension is matched case-sensitively against the last four characters of a path.
const TextExtension = ".txt"

var (
	ErrNotTextFile    = errors.New("file is not .txt format")
	ErrFileUnreadable = errors.New("text file doesn't exist or cannot be read")
)

type Storage struct{}

// File is an opened, validated input file.
type File struct {
	*os.File
	Path      string
	SizeBytes int64
}

// IsTextFile reports whether path ends in the literal ".txt".
func IsTextFile(path string) bool {
	return len(path) >= len(TextExtension) && path[len(path)-len(TextExtension):] == TextExtension
}

// OpenTextFile validates the extension before touching the filesystem, then
// opens path for reading.
func (s *Storage) OpenTextFile(path string) (*File, error) {
	if !IsTextFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotTextFile, path)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: is a directory", ErrFileUnreadable, path)
	}

	return &File{File: f, Path: path, SizeBytes: info.Size()}, nil
}

// OpenAll opens every path in order. If any path fails validation the files
// opened so far are closed and the first error is returned.
func (s *Storage) OpenAll(paths []string) ([]*File, error) {
	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		f, err := s.OpenTextFile(path)
		if err != nil {
			CloseAll(files)
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// CloseAll closes every file, ignoring errors from read-only handles.
func CloseAll(files []*File) {
	for _, f := range files {
		_ = f.Close()
	}
}

// SaveFile writes content to a temporary file next to filePath and renames it
// into place, so readers never observe a partially written file.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error saving file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error saving file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error saving file: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error saving file: %w", err)
	}

	return nil
}
