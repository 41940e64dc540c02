package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// LocalProvider implements file storage on the local filesystem
type LocalProvider struct {
	basePath string // Base directory for uploads
}

// NewLocalProvider creates a new local file storage provider
func NewLocalProvider(basePath string) (*LocalProvider, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalProvider{basePath: basePath}, nil
}

// Save writes the file into the base directory
func (p *LocalProvider) Save(_ context.Context, filename string, content io.Reader, _ string) (int64, error) {
	filePath := filepath.Join(p.basePath, filename)

	out, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	size, err := io.Copy(out, content)
	if err != nil {
		os.Remove(filePath)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	return size, nil
}

// Open opens a stored file for reading
func (p *LocalProvider) Open(_ context.Context, filename string) (*File, error) {
	f, err := os.Open(filepath.Join(p.basePath, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}

	return &File{
		Body:        f,
		ContentType: detectContentType(filename),
		Size:        info.Size(),
	}, nil
}

// Delete deletes a file from local filesystem
func (p *LocalProvider) Delete(_ context.Context, filename string) error {
	if err := os.Remove(filepath.Join(p.basePath, filename)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetProviderName returns the provider name
func (p *LocalProvider) GetProviderName() string {
	return "Local Storage"
}

// detectContentType detects the content type based on file extension
func detectContentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
