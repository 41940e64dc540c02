package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/email"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
)

const (
	ShareFormatHTML = "html"
	ShareFormatLink = "link"
)

// ShareService emails a page, either as an attached HTML document or as a
// preview link.
type ShareService struct {
	pages       *PageService
	exporter    *export.Service
	mailer      *email.Service
	frontendURL string
}

func NewShareService(pages *PageService, exporter *export.Service, mailer *email.Service, frontendURL string) *ShareService {
	return &ShareService{pages: pages, exporter: exporter, mailer: mailer, frontendURL: frontendURL}
}

func (s *ShareService) Email(ctx context.Context, pageID string, req models.EmailRequest) (*models.EmailResponse, error) {
	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "Check out my landing page: " + page.Title
	}

	link := export.PreviewURL(s.frontendURL, page.ID)
	msg := email.Message{
		To:      req.ToEmail,
		Subject: subject,
		Text:    strings.TrimSpace(req.Message + "\n\n" + link),
	}

	switch strings.ToLower(req.Format) {
	case "", ShareFormatHTML:
		html, err := s.exporter.HTML(page)
		if err != nil {
			return nil, apperror.Internal("Export failed", err)
		}
		msg.HTML = email.ShareBody(page.Title, req.Message, "")
		msg.Attachments = []email.Attachment{{
			Name:    export.BaseFileName(page.Title) + ".html",
			Content: html,
		}}
	case ShareFormatLink:
		msg.HTML = email.ShareBody(page.Title, req.Message, link)
	default:
		return nil, apperror.BadRequest("Unsupported email format. Use html or link")
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("page_id", pageID).Str("provider", s.mailer.GetProviderName()).Msg("❌ Email sending failed")
		return nil, apperror.Internal("Email sending failed", err)
	}

	resp := &models.EmailResponse{
		Message:   "Email sent successfully",
		ToEmail:   req.ToEmail,
		Provider:  s.mailer.GetProviderName(),
		Simulated: s.mailer.Simulated(),
	}
	if resp.Simulated {
		resp.Message = "Email simulated successfully (no delivery provider configured)"
	}
	return resp, nil
}
