package upload

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/metrics"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
)

// Kind is the accepted media family of an upload endpoint
type Kind string

const (
	KindImage Kind = "image"
	KindAudio Kind = "audio"
)

// URLPrefix is where stored files are served from
const URLPrefix = "/api/uploads/"

func (k Kind) rejection() string {
	if k == KindAudio {
		return "File must be an audio file"
	}
	return "File must be an image"
}

// Service validates uploads and stores them through a Provider
type Service struct {
	provider Provider
	maxSize  int64
}

// NewService creates a new upload service. maxSize <= 0 disables the size limit.
func NewService(provider Provider, maxSize int64) *Service {
	return &Service{
		provider: provider,
		maxSize:  maxSize,
	}
}

// UploadMultipart checks the declared content type against kind and stores the
// file under a fresh "<uuid>.<ext>" name.
func (s *Service) UploadMultipart(ctx context.Context, fileHeader *multipart.FileHeader, kind Kind) (*UploadResult, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, string(kind)+"/") {
		return nil, apperror.BadRequest(kind.rejection())
	}

	if s.maxSize > 0 && fileHeader.Size > s.maxSize {
		return nil, apperror.BadRequest(fmt.Sprintf("File exceeds maximum size of %d bytes", s.maxSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.Internal("Failed to read uploaded file", err)
	}
	defer file.Close()

	name := uuid.NewString() + "." + extensionFor(fileHeader.Filename, contentType)

	size, err := s.provider.Save(ctx, name, file, contentType)
	if err != nil {
		return nil, apperror.Internal("Failed to store uploaded file", err)
	}
	if size < 0 {
		size = fileHeader.Size
	}

	metrics.RecordUpload(string(kind))

	return &UploadResult{
		Filename:    name,
		URL:         URLPrefix + name,
		Size:        size,
		ContentType: contentType,
	}, nil
}

// Open returns a stored file. Names that are not a single path element are
// reported as ErrNotFound.
func (s *Service) Open(ctx context.Context, filename string) (*File, error) {
	if !validName(filename) {
		return nil, ErrNotFound
	}
	return s.provider.Open(ctx, filename)
}

// Delete removes a stored file
func (s *Service) Delete(ctx context.Context, filename string) error {
	if !validName(filename) {
		return ErrNotFound
	}
	return s.provider.Delete(ctx, filename)
}

// StoredName extracts the file name from a URL this service handed out.
// Anything else, including external image URLs, reports false.
func StoredName(url string) (string, bool) {
	name, ok := strings.CutPrefix(url, URLPrefix)
	if !ok || !validName(name) {
		return "", false
	}
	return name, true
}

// GetProviderName returns the current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}

// extensionFor keeps the client's extension, falling back to one registered
// for the content type.
func extensionFor(filename, contentType string) string {
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filepath.Base(filename))), "."); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return strings.TrimPrefix(exts[0], ".")
	}
	return "bin"
}
