package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/render"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// HTMLExporter writes the standalone HTML document
type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

func (e *HTMLExporter) Export(page *models.Page, writer io.Writer) error {
	_, err := io.WriteString(writer, render.Page(page))
	return err
}

func (e *HTMLExporter) GetContentType() string {
	return "text/html; charset=utf-8"
}

func (e *HTMLExporter) GetFileExtension() string {
	return ".html"
}

// JSONExporter writes the page document itself, for re-import
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(page *models.Page, writer io.Writer) error {
	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}
	_, err = writer.Write(data)
	return err
}

func (e *JSONExporter) GetContentType() string {
	return "application/json"
}

func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// IframeExporter writes a minimal HTML file that frames the hosted preview
type IframeExporter struct {
	frontendURL string
}

func NewIframeExporter(frontendURL string) *IframeExporter {
	return &IframeExporter{frontendURL: frontendURL}
}

func (e *IframeExporter) Export(page *models.Page, writer io.Writer) error {
	snippet, err := EmbedCode(EmbedIframe, e.frontendURL, page)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n    <meta charset=\"UTF-8\">\n    <title>%s</title>\n</head>\n<body style=\"margin: 0;\">\n%s\n</body>\n</html>\n",
		escape(page.Title), snippet)
	return err
}

func (e *IframeExporter) GetContentType() string {
	return "text/html; charset=utf-8"
}

func (e *IframeExporter) GetFileExtension() string {
	return "_embed.html"
}
