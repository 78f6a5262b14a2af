package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var _ Storage = &Disk{}

// Disk stores uploads as regular files under dir and serves them at
// baseURL (e.g. "/uploads"). Filenames are expected to be unique already;
// writes use O_EXCL so a collision fails instead of overwriting.
type Disk struct {
	dir     string
	baseURL string
	logger  *zap.Logger
}

func NewDisk(dir, baseURL string, logger *zap.Logger) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Disk{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Dir returns the directory files are written to.
func (d *Disk) Dir() string {
	return d.dir
}

func (d *Disk) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	// Strip any path component a client could smuggle in.
	filename = filepath.Base(filename)

	path := filepath.Join(d.dir, filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close file: %w", err)
	}

	return d.baseURL + "/" + filename, nil
}

func (d *Disk) Remove(ctx context.Context, url string) error {
	if !d.IsLocal(url) {
		return fmt.Errorf("not a locally hosted url: %s", url)
	}

	filename := filepath.Base(strings.TrimPrefix(url, d.baseURL+"/"))
	path := filepath.Join(d.dir, filename)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}

	return nil
}

func (d *Disk) IsLocal(url string) bool {
	return strings.HasPrefix(url, d.baseURL+"/")
}
