package services

import (
	"context"
	"errors"
	"strings"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/metrics"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
)

// ExportService produces downloads and embed snippets for stored pages
type ExportService struct {
	pages       *PageService
	exporter    *export.Service
	frontendURL string
}

func NewExportService(pages *PageService, exporter *export.Service, frontendURL string) *ExportService {
	return &ExportService{pages: pages, exporter: exporter, frontendURL: frontendURL}
}

func (s *ExportService) Export(ctx context.Context, pageID, format string) (*export.Result, error) {
	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}

	res, err := s.exporter.Export(page, export.ParseFormat(format))
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return nil, apperror.BadRequest("Unsupported export format. Use html, json or iframe")
		}
		return nil, apperror.Internal("Export failed", err)
	}

	metrics.RecordExport(string(res.Format))
	return res, nil
}

func (s *ExportService) EmbedCode(ctx context.Context, pageID, format string) (*models.EmbedCodeResponse, error) {
	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}

	f := export.EmbedFormat(strings.ToLower(strings.TrimSpace(format)))
	if f == "" {
		f = export.EmbedIframe
	}
	code, err := export.EmbedCode(f, s.frontendURL, page)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedEmbedFormat) {
			return nil, apperror.BadRequest("Unsupported embed format. Use iframe, javascript or html")
		}
		return nil, apperror.Internal("Embed code generation failed", err)
	}

	return &models.EmbedCodeResponse{EmbedCode: code, Format: string(f)}, nil
}
