package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// File keeps the save in a JSON file on disk
type File struct {
	path string
}

// NewFile returns a File store at the path
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the save file
func (f *File) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}

	return data, err
}

// Save writes to a temporary file and renames it over the save
// A crash mid-write leaves the previous save intact
func (f *File) Save(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), f.path)
}

// Delete removes the save file
func (f *File) Delete(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
