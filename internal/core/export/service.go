package export

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// Service provides high-level export functionality
type Service struct {
	exporters map[ExportFormat]Exporter
}

// NewService creates a new export service
func NewService(frontendURL string) *Service {
	return &Service{
		exporters: map[ExportFormat]Exporter{
			FormatHTML:   NewHTMLExporter(),
			FormatJSON:   NewJSONExporter(),
			FormatIframe: NewIframeExporter(frontendURL),
		},
	}
}

// Result is an exported page ready to be sent as a download
type Result struct {
	Content     []byte
	ContentType string
	FileName    string
	Format      ExportFormat
}

// ParseFormat normalizes a user-supplied format, defaulting to html
func ParseFormat(raw string) ExportFormat {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return FormatHTML
	}
	return f
}

// Export exports the page to the specified format
func (s *Service) Export(page *models.Page, format ExportFormat) (*Result, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	var buf bytes.Buffer
	if err := exporter.Export(page, &buf); err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	return &Result{
		Content:     buf.Bytes(),
		ContentType: exporter.GetContentType(),
		FileName:    BaseFileName(page.Title) + exporter.GetFileExtension(),
		Format:      format,
	}, nil
}

// HTML renders the page document
func (s *Service) HTML(page *models.Page) ([]byte, error) {
	res, err := s.Export(page, FormatHTML)
	if err != nil {
		return nil, err
	}
	return res.Content, nil
}

// BaseFileName derives a download name from the page title: spaces become
// underscores, path separators and control characters are dropped. The
// result is also sent verbatim on the FTP control channel.
func BaseFileName(title string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		switch r {
		case ' ':
			return '_'
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return -1
		}
		return r
	}, strings.TrimSpace(title))
	name = strings.Trim(name, ".")
	if name == "" {
		return "landing_page"
	}
	return name
}
