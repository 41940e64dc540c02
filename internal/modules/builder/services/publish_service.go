package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/metrics"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/publish"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
)

// Publisher pushes a rendered document to a remote host
type Publisher interface {
	Publish(ctx context.Context, target publish.Target, filename string, content []byte) (*publish.Result, error)
}

// PublishService renders a page and uploads it with per-request credentials
type PublishService struct {
	pages     *PageService
	exporter  *export.Service
	publisher Publisher
}

func NewPublishService(pages *PageService, exporter *export.Service, publisher Publisher) *PublishService {
	return &PublishService{pages: pages, exporter: exporter, publisher: publisher}
}

func (s *PublishService) FTPUpload(ctx context.Context, pageID string, req models.FTPUploadRequest) (*models.FTPUploadResponse, error) {
	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}

	html, err := s.exporter.HTML(page)
	if err != nil {
		return nil, apperror.Internal("Export failed", err)
	}

	target := publish.Target{
		Host:       req.FTPHost,
		Username:   req.FTPUsername,
		Password:   req.FTPPassword,
		RemotePath: req.RemotePath,
	}
	filename := export.BaseFileName(page.Title) + ".html"

	res, err := s.publisher.Publish(ctx, target, filename, html)
	metrics.RecordFTPPublish(err == nil)
	if err != nil {
		log.Warn().Err(err).Str("page_id", pageID).Str("host", req.FTPHost).Msg("⚠️ FTP upload failed")
		return nil, apperror.External("FTP upload failed", err)
	}

	return &models.FTPUploadResponse{Message: res.Message, RemotePath: res.RemotePath}, nil
}
