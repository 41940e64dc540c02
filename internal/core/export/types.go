package export

import (
	"errors"
	"io"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatHTML   ExportFormat = "html"
	FormatJSON   ExportFormat = "json"
	FormatIframe ExportFormat = "iframe"
)

// ErrUnsupportedFormat is returned for formats without an exporter
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Exporter is the interface for all export formats
type Exporter interface {
	Export(page *models.Page, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}
