package upload

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a stored file does not exist
var ErrNotFound = errors.New("file not found")

// UploadResult represents the result of a file upload
type UploadResult struct {
	Filename    string `json:"filename"`     // Generated storage name
	URL         string `json:"url"`          // Retrieval URL relative to the API host
	Size        int64  `json:"size"`         // File size in bytes
	ContentType string `json:"content_type"` // MIME type reported by the client
}

// File is an opened stored file. The caller closes Body.
type File struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Provider defines the interface for blob storage providers
type Provider interface {
	// Save stores the content under filename
	Save(ctx context.Context, filename string, content io.Reader, contentType string) (int64, error)

	// Open returns the stored file or ErrNotFound
	Open(ctx context.Context, filename string) (*File, error)

	// Delete removes a stored file
	Delete(ctx context.Context, filename string) error

	// GetProviderName returns the provider name
	GetProviderName() string
}
