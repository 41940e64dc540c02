package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/upload"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/modules/builder/repositories"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
)

const (
	pageNotFound      = "Landing page not found"
	componentNotFound = "Component not found"
)

// Clock returns the current time. Stored timestamps are UTC with
// millisecond precision so every store round-trips them unchanged.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// translate maps repository sentinels onto request errors
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return apperror.NotFound(pageNotFound)
	case errors.Is(err, repositories.ErrComponentNotFound):
		return apperror.NotFound(componentNotFound)
	case errors.Is(err, repositories.ErrDuplicateComponent):
		return apperror.Conflict("Component already exists")
	case errors.Is(err, repositories.ErrDuplicatePage):
		return apperror.Conflict("Landing page already exists")
	default:
		return apperror.Internal("Storage error", err)
	}
}

// BlobStore removes uploaded files a page stopped referencing
type BlobStore interface {
	Delete(ctx context.Context, filename string) error
}

type PageService struct {
	repo  repositories.PageRepo
	now   Clock
	blobs BlobStore
}

func NewPageService(repo repositories.PageRepo, now Clock) *PageService {
	if now == nil {
		now = SystemClock
	}
	return &PageService{repo: repo, now: now}
}

// WithBlobs makes Update delete the previous uploaded background image
// once a page points at a different one.
func (s *PageService) WithBlobs(blobs BlobStore) *PageService {
	s.blobs = blobs
	return s
}

// Create stores a new page with defaults applied
func (s *PageService) Create(ctx context.Context, req models.CreatePageRequest) (*models.Page, error) {
	now := s.now()
	page := &models.Page{
		ID:              uuid.NewString(),
		Title:           req.Title,
		BackgroundColor: strings.TrimSpace(req.BackgroundColor),
		Theme:           req.Theme,
		Components:      []models.Component{},
		Settings:        map[string]any{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if page.BackgroundColor == "" {
		page.BackgroundColor = models.DefaultBackgroundColor
	}
	if page.Theme == "" {
		page.Theme = models.DefaultTheme
	}

	if err := s.repo.Create(ctx, page); err != nil {
		return nil, translate(err)
	}
	return page, nil
}

func (s *PageService) List(ctx context.Context) ([]models.Page, error) {
	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return pages, nil
}

func (s *PageService) Get(ctx context.Context, id string) (*models.Page, error) {
	page, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return page, nil
}

// Update merges the present fields of req. updated_at is refreshed even when
// nothing else changes.
func (s *PageService) Update(ctx context.Context, id string, req models.UpdatePageRequest) (*models.Page, error) {
	changes := models.PageChanges{
		Title:           req.Title,
		BackgroundImage: req.BackgroundImage,
		BackgroundColor: req.BackgroundColor,
		Theme:           req.Theme,
		Settings:        req.Settings,
		UpdatedAt:       s.now(),
	}
	if req.Components != nil {
		comps := make([]models.Component, len(*req.Components))
		for i, c := range *req.Components {
			c.Normalize()
			comps[i] = c
		}
		changes.Components = &comps
	}

	var previousImage string
	if req.BackgroundImage != nil && s.blobs != nil {
		prev, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, translate(err)
		}
		previousImage = prev.BackgroundImageURL()
	}

	page, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, translate(err)
	}

	if previousImage != "" && previousImage != page.BackgroundImageURL() {
		s.releaseBlob(ctx, previousImage)
	}
	return page, nil
}

// releaseBlob deletes a replaced upload. Failures are logged; the page
// update has already succeeded.
func (s *PageService) releaseBlob(ctx context.Context, url string) {
	name, ok := upload.StoredName(url)
	if !ok {
		return
	}
	if err := s.blobs.Delete(ctx, name); err != nil && !errors.Is(err, upload.ErrNotFound) {
		log.Warn().Err(err).Str("file", name).Msg("⚠️ failed to delete replaced upload")
		return
	}
	log.Debug().Str("file", name).Msg("🗑️ replaced upload deleted")
}

func (s *PageService) Delete(ctx context.Context, id string) error {
	return translate(s.repo.Delete(ctx, id))
}

func (s *PageService) AddComponent(ctx context.Context, pageID string, c models.Component) (*models.Page, error) {
	c.Normalize()
	page, err := s.repo.AddComponent(ctx, pageID, c, s.now())
	if err != nil {
		return nil, translate(err)
	}
	return page, nil
}

// UpdateComponent replaces the component body. The id from the path wins
// over any id in the body.
func (s *PageService) UpdateComponent(ctx context.Context, pageID, componentID string, c models.Component) (*models.Page, error) {
	c.ID = componentID
	c.Normalize()
	page, err := s.repo.ReplaceComponent(ctx, pageID, c, s.now())
	if err != nil {
		return nil, translate(err)
	}
	return page, nil
}

func (s *PageService) RemoveComponent(ctx context.Context, pageID, componentID string) (*models.Page, error) {
	page, err := s.repo.RemoveComponent(ctx, pageID, componentID, s.now())
	if err != nil {
		return nil, translate(err)
	}
	return page, nil
}
