package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("file not found")

// Storage persists uploaded files and hands back opaque references.
type Storage interface {
	Save(data []byte, ext string) (string, error)
	Open(ref string) ([]byte, error)
	Path(ref string) (string, error)
}

type diskStorage struct {
	dir string
}

// NewDisk stores files under dir, creating it if needed.
func NewDisk(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &diskStorage{dir: dir}, nil
}

func (d *diskStorage) Save(data []byte, ext string) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	ref := uuid.New().String()
	if ext != "" {
		ref += "." + ext
	}
	if err := os.WriteFile(filepath.Join(d.dir, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return ref, nil
}

func (d *diskStorage) Open(ref string) ([]byte, error) {
	path, err := d.Path(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Path resolves a reference to its on-disk location, rejecting refs that
// would escape the storage directory.
func (d *diskStorage) Path(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) {
		return "", ErrNotFound
	}
	return filepath.Join(d.dir, ref), nil
}
