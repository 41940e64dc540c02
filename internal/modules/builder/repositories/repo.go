// Package repositories persists landing pages and status checks. Every
// driver (mongo, postgres, memory) satisfies the same PageRepo/StatusRepo
// contract, including the component-level operations and the rule that
// updated_at never moves backwards.
package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// ListLimit caps every list query
const ListLimit = 1000

var (
	ErrNotFound           = errors.New("page not found")
	ErrDuplicatePage      = errors.New("page already exists")
	ErrComponentNotFound  = errors.New("component not found")
	ErrDuplicateComponent = errors.New("component already exists")
)

type PageRepo interface {
	Create(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id string) (*models.Page, error)
	List(ctx context.Context) ([]models.Page, error)
	// Update applies the non-nil fields of changes. id and created_at are never written.
	Update(ctx context.Context, id string, changes models.PageChanges) (*models.Page, error)
	Delete(ctx context.Context, id string) error

	AddComponent(ctx context.Context, pageID string, component models.Component, at time.Time) (*models.Page, error)
	ReplaceComponent(ctx context.Context, pageID string, component models.Component, at time.Time) (*models.Page, error)
	RemoveComponent(ctx context.Context, pageID, componentID string, at time.Time) (*models.Page, error)
}

type StatusRepo interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context) ([]models.StatusCheck, error)
}

// laterOf keeps updated_at monotonic
func laterOf(prev, at time.Time) time.Time {
	if at.Before(prev) {
		return prev
	}
	return at
}

func indexOfComponent(components []models.Component, id string) int {
	for i := range components {
		if components[i].ID == id {
			return i
		}
	}
	return -1
}

// The component mutators below implement the in-process variant of the
// component operations; the postgres and memory drivers run them against a
// page they hold exclusively.

func appendComponent(page *models.Page, c models.Component) error {
	if indexOfComponent(page.Components, c.ID) >= 0 {
		return ErrDuplicateComponent
	}
	page.Components = append(page.Components, c)
	return nil
}

func replaceComponent(page *models.Page, c models.Component) error {
	i := indexOfComponent(page.Components, c.ID)
	if i < 0 {
		return ErrComponentNotFound
	}
	page.Components[i] = c
	return nil
}

func dropComponent(page *models.Page, id string) error {
	i := indexOfComponent(page.Components, id)
	if i < 0 {
		return ErrComponentNotFound
	}
	page.Components = append(page.Components[:i], page.Components[i+1:]...)
	return nil
}

func applyChanges(page *models.Page, ch models.PageChanges) {
	if ch.Title != nil {
		page.Title = *ch.Title
	}
	if ch.BackgroundImage != nil {
		img := *ch.BackgroundImage
		page.BackgroundImage = &img
	}
	if ch.BackgroundColor != nil {
		page.BackgroundColor = *ch.BackgroundColor
	}
	if ch.Theme != nil {
		page.Theme = *ch.Theme
	}
	if ch.Components != nil {
		page.Components = append([]models.Component{}, (*ch.Components)...)
	}
	if ch.Settings != nil {
		page.Settings = ch.Settings
	}
	page.UpdatedAt = laterOf(page.UpdatedAt, ch.UpdatedAt)
}
