package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// memoryPageRepo keeps pages in process. Pages are copied on the way in and
// out so callers never share state with the store.
type memoryPageRepo struct {
	mu    sync.RWMutex
	pages map[string]*models.Page
	order []string
}

func NewMemoryPageRepo() PageRepo {
	return &memoryPageRepo{pages: map[string]*models.Page{}}
}

func (r *memoryPageRepo) Create(_ context.Context, page *models.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[page.ID]; ok {
		return ErrDuplicatePage
	}
	r.pages[page.ID] = clonePage(page)
	r.order = append(r.order, page.ID)
	return nil
}

func (r *memoryPageRepo) GetByID(_ context.Context, id string) (*models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePage(p), nil
}

func (r *memoryPageRepo) List(_ context.Context) ([]models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Page, 0, min(len(r.order), ListLimit))
	for _, id := range r.order {
		if len(list) == ListLimit {
			break
		}
		list = append(list, *clonePage(r.pages[id]))
	}
	return list, nil
}

func (r *memoryPageRepo) Update(_ context.Context, id string, changes models.PageChanges) (*models.Page, error) {
	return r.mutate(id, func(p *models.Page) error {
		applyChanges(p, changes)
		return nil
	})
}

func (r *memoryPageRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[id]; !ok {
		return ErrNotFound
	}
	delete(r.pages, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryPageRepo) AddComponent(_ context.Context, pageID string, c models.Component, at time.Time) (*models.Page, error) {
	return r.mutate(pageID, func(p *models.Page) error {
		if err := appendComponent(p, cloneComponent(c)); err != nil {
			return err
		}
		p.UpdatedAt = laterOf(p.UpdatedAt, at)
		return nil
	})
}

func (r *memoryPageRepo) ReplaceComponent(_ context.Context, pageID string, c models.Component, at time.Time) (*models.Page, error) {
	return r.mutate(pageID, func(p *models.Page) error {
		if err := replaceComponent(p, cloneComponent(c)); err != nil {
			return err
		}
		p.UpdatedAt = laterOf(p.UpdatedAt, at)
		return nil
	})
}

func (r *memoryPageRepo) RemoveComponent(_ context.Context, pageID, componentID string, at time.Time) (*models.Page, error) {
	return r.mutate(pageID, func(p *models.Page) error {
		if err := dropComponent(p, componentID); err != nil {
			return err
		}
		p.UpdatedAt = laterOf(p.UpdatedAt, at)
		return nil
	})
}

// mutate runs fn on a working copy and stores it only when fn succeeds
func (r *memoryPageRepo) mutate(id string, fn func(*models.Page) error) (*models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.pages[id]
	if !ok {
		return nil, ErrNotFound
	}
	work := clonePage(stored)
	if err := fn(work); err != nil {
		return nil, err
	}
	r.pages[id] = work
	return clonePage(work), nil
}

type memoryStatusRepo struct {
	mu     sync.RWMutex
	checks []models.StatusCheck
}

func NewMemoryStatusRepo() StatusRepo {
	return &memoryStatusRepo{}
}

func (r *memoryStatusRepo) Create(_ context.Context, check *models.StatusCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, *check)
	return nil
}

func (r *memoryStatusRepo) List(_ context.Context) ([]models.StatusCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := min(len(r.checks), ListLimit)
	list := make([]models.StatusCheck, n)
	copy(list, r.checks[:n])
	return list, nil
}

func clonePage(p *models.Page) *models.Page {
	out := *p
	if p.BackgroundImage != nil {
		img := *p.BackgroundImage
		out.BackgroundImage = &img
	}
	out.Components = make([]models.Component, len(p.Components))
	for i, c := range p.Components {
		out.Components[i] = cloneComponent(c)
	}
	out.Settings = cloneMap(p.Settings)
	out.Normalize()
	return &out
}

func cloneComponent(c models.Component) models.Component {
	c.Content = cloneMap(c.Content)
	c.Style = cloneMap(c.Style)
	return c
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
