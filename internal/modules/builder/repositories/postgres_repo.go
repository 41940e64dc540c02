package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// pageRecord is the relational form of a page: components and settings
// live in jsonb columns, mirroring the embedded document layout.
type pageRecord struct {
	ID              string                               `gorm:"primaryKey;type:text"`
	Title           string                               `gorm:"type:text;not null"`
	BackgroundImage *string                              `gorm:"type:text"`
	BackgroundColor string                               `gorm:"type:text;not null"`
	Theme           string                               `gorm:"type:text;not null"`
	Components      datatypes.JSONSlice[models.Component] `gorm:"type:jsonb;not null"`
	Settings        datatypes.JSONMap                    `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time                            `gorm:"autoCreateTime:false;not null"`
	UpdatedAt       time.Time                            `gorm:"autoUpdateTime:false;not null"`
}

func (pageRecord) TableName() string { return "builder_pages" }

func toPageRecord(p *models.Page) *pageRecord {
	return &pageRecord{
		ID:              p.ID,
		Title:           p.Title,
		BackgroundImage: p.BackgroundImage,
		BackgroundColor: p.BackgroundColor,
		Theme:           string(p.Theme),
		Components:      datatypes.JSONSlice[models.Component](p.Components),
		Settings:        datatypes.JSONMap(p.Settings),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *pageRecord) toModel() *models.Page {
	p := &models.Page{
		ID:              r.ID,
		Title:           r.Title,
		BackgroundImage: r.BackgroundImage,
		BackgroundColor: r.BackgroundColor,
		Theme:           models.Theme(r.Theme),
		Components:      []models.Component(r.Components),
		Settings:        map[string]any(r.Settings),
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
	p.Normalize()
	return p
}

type statusRecord struct {
	ID         string    `gorm:"primaryKey;type:text"`
	ClientName string    `gorm:"type:text;not null"`
	Timestamp  time.Time `gorm:"not null"`
}

func (statusRecord) TableName() string { return "builder_status_checks" }

type postgresPageRepo struct {
	db *gorm.DB
}

func NewPostgresPageRepo(db *gorm.DB) PageRepo {
	return &postgresPageRepo{db: db}
}

func (r *postgresPageRepo) Create(ctx context.Context, page *models.Page) error {
	if err := r.db.WithContext(ctx).Create(toPageRecord(page)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePage
		}
		return fmt.Errorf("insert page: %w", err)
	}
	return nil
}

func (r *postgresPageRepo) GetByID(ctx context.Context, id string) (*models.Page, error) {
	var rec pageRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find page: %w", err)
	}
	return rec.toModel(), nil
}

func (r *postgresPageRepo) List(ctx context.Context) ([]models.Page, error) {
	var recs []pageRecord
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Limit(ListLimit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("find pages: %w", err)
	}

	pages := make([]models.Page, 0, len(recs))
	for i := range recs {
		pages = append(pages, *recs[i].toModel())
	}
	return pages, nil
}

func (r *postgresPageRepo) Update(ctx context.Context, id string, ch models.PageChanges) (*models.Page, error) {
	updates := map[string]any{
		"updated_at": gorm.Expr("GREATEST(updated_at, ?)", ch.UpdatedAt),
	}
	if ch.Title != nil {
		updates["title"] = *ch.Title
	}
	if ch.BackgroundImage != nil {
		updates["background_image"] = *ch.BackgroundImage
	}
	if ch.BackgroundColor != nil {
		updates["background_color"] = *ch.BackgroundColor
	}
	if ch.Theme != nil {
		updates["theme"] = string(*ch.Theme)
	}
	if ch.Components != nil {
		updates["components"] = datatypes.JSONSlice[models.Component](*ch.Components)
	}
	if ch.Settings != nil {
		updates["settings"] = datatypes.JSONMap(ch.Settings)
	}

	res := r.db.WithContext(ctx).Model(&pageRecord{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update page: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *postgresPageRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&pageRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete page: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresPageRepo) AddComponent(ctx context.Context, pageID string, c models.Component, at time.Time) (*models.Page, error) {
	return r.mutateComponents(ctx, pageID, at, func(p *models.Page) error {
		return appendComponent(p, c)
	})
}

func (r *postgresPageRepo) ReplaceComponent(ctx context.Context, pageID string, c models.Component, at time.Time) (*models.Page, error) {
	return r.mutateComponents(ctx, pageID, at, func(p *models.Page) error {
		return replaceComponent(p, c)
	})
}

func (r *postgresPageRepo) RemoveComponent(ctx context.Context, pageID, componentID string, at time.Time) (*models.Page, error) {
	return r.mutateComponents(ctx, pageID, at, func(p *models.Page) error {
		return dropComponent(p, componentID)
	})
}

// mutateComponents edits the component array under a row lock
func (r *postgresPageRepo) mutateComponents(ctx context.Context, pageID string, at time.Time, fn func(*models.Page) error) (*models.Page, error) {
	var out *models.Page
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec pageRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, "id = ?", pageID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("lock page: %w", err)
		}

		page := rec.toModel()
		if err := fn(page); err != nil {
			return err
		}
		page.UpdatedAt = laterOf(page.UpdatedAt, at)

		err = tx.Model(&pageRecord{}).Where("id = ?", pageID).Updates(map[string]any{
			"components": datatypes.JSONSlice[models.Component](page.Components),
			"updated_at": page.UpdatedAt,
		}).Error
		if err != nil {
			return fmt.Errorf("update components: %w", err)
		}
		out = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type postgresStatusRepo struct {
	db *gorm.DB
}

func NewPostgresStatusRepo(db *gorm.DB) StatusRepo {
	return &postgresStatusRepo{db: db}
}

func (r *postgresStatusRepo) Create(ctx context.Context, check *models.StatusCheck) error {
	rec := statusRecord{ID: check.ID, ClientName: check.ClientName, Timestamp: check.Timestamp}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *postgresStatusRepo) List(ctx context.Context) ([]models.StatusCheck, error) {
	var recs []statusRecord
	if err := r.db.WithContext(ctx).Order(`"timestamp"`).Limit(ListLimit).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}

	checks := make([]models.StatusCheck, 0, len(recs))
	for _, rec := range recs {
		checks = append(checks, models.StatusCheck{
			ID:         rec.ID,
			ClientName: rec.ClientName,
			Timestamp:  rec.Timestamp.UTC(),
		})
	}
	return checks, nil
}
