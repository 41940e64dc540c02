package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

const (
	PagesCollection  = "landing_pages"
	StatusCollection = "status_checks"
)

// EnsureIndexes creates the unique id indexes the repositories look up by
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{PagesCollection, StatusCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, unique); err != nil {
			return fmt.Errorf("create index on %s: %w", name, err)
		}
	}
	return nil
}

type mongoPageRepo struct {
	coll *mongo.Collection
}

func NewMongoPageRepo(db *mongo.Database) PageRepo {
	return &mongoPageRepo{coll: db.Collection(PagesCollection)}
}

var withoutObjectID = bson.M{"_id": 0}

func (r *mongoPageRepo) Create(ctx context.Context, page *models.Page) error {
	if _, err := r.coll.InsertOne(ctx, page); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePage
		}
		return fmt.Errorf("insert page: %w", err)
	}
	return nil
}

func (r *mongoPageRepo) GetByID(ctx context.Context, id string) (*models.Page, error) {
	var page models.Page
	err := r.coll.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(withoutObjectID)).Decode(&page)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find page: %w", err)
	}
	plainPage(&page)
	return &page, nil
}

func (r *mongoPageRepo) List(ctx context.Context) ([]models.Page, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(withoutObjectID).SetLimit(ListLimit))
	if err != nil {
		return nil, fmt.Errorf("find pages: %w", err)
	}

	pages := []models.Page{}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, fmt.Errorf("decode pages: %w", err)
	}
	for i := range pages {
		plainPage(&pages[i])
	}
	return pages, nil
}

func (r *mongoPageRepo) Update(ctx context.Context, id string, ch models.PageChanges) (*models.Page, error) {
	set := bson.M{}
	if ch.Title != nil {
		set["title"] = *ch.Title
	}
	if ch.BackgroundImage != nil {
		set["background_image"] = *ch.BackgroundImage
	}
	if ch.BackgroundColor != nil {
		set["background_color"] = *ch.BackgroundColor
	}
	if ch.Theme != nil {
		set["theme"] = *ch.Theme
	}
	if ch.Components != nil {
		set["components"] = *ch.Components
	}
	if ch.Settings != nil {
		set["settings"] = ch.Settings
	}

	update := bson.M{"$max": bson.M{"updated_at": ch.UpdatedAt}}
	if len(set) > 0 {
		update["$set"] = set
	}
	return r.findAndUpdate(ctx, bson.M{"id": id}, update)
}

func (r *mongoPageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPageRepo) AddComponent(ctx context.Context, pageID string, c models.Component, at time.Time) (*models.Page, error) {
	filter := bson.M{"id": pageID, "components.id": bson.M{"$ne": c.ID}}
	update := bson.M{
		"$push": bson.M{"components": c},
		"$max":  bson.M{"updated_at": at},
	}
	page, err := r.findAndUpdate(ctx, filter, update)
	if errors.Is(err, ErrNotFound) {
		return nil, r.missing(ctx, pageID, ErrDuplicateComponent)
	}
	return page, err
}

func (r *mongoPageRepo) ReplaceComponent(ctx context.Context, pageID string, c models.Component, at time.Time) (*models.Page, error) {
	filter := bson.M{"id": pageID, "components.id": c.ID}
	update := bson.M{
		"$set": bson.M{"components.$": c},
		"$max": bson.M{"updated_at": at},
	}
	page, err := r.findAndUpdate(ctx, filter, update)
	if errors.Is(err, ErrNotFound) {
		return nil, r.missing(ctx, pageID, ErrComponentNotFound)
	}
	return page, err
}

func (r *mongoPageRepo) RemoveComponent(ctx context.Context, pageID, componentID string, at time.Time) (*models.Page, error) {
	filter := bson.M{"id": pageID, "components.id": componentID}
	update := bson.M{
		"$pull": bson.M{"components": bson.M{"id": componentID}},
		"$max":  bson.M{"updated_at": at},
	}
	page, err := r.findAndUpdate(ctx, filter, update)
	if errors.Is(err, ErrNotFound) {
		return nil, r.missing(ctx, pageID, ErrComponentNotFound)
	}
	return page, err
}

func (r *mongoPageRepo) findAndUpdate(ctx context.Context, filter, update bson.M) (*models.Page, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutObjectID)

	var page models.Page
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&page); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update page: %w", err)
	}
	plainPage(&page)
	return &page, nil
}

// missing tells apart "no such page" from a failed component precondition
// after a filtered update matched nothing.
func (r *mongoPageRepo) missing(ctx context.Context, pageID string, componentErr error) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": pageID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("count page: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return componentErr
}

type mongoStatusRepo struct {
	coll *mongo.Collection
}

func NewMongoStatusRepo(db *mongo.Database) StatusRepo {
	return &mongoStatusRepo{coll: db.Collection(StatusCollection)}
}

func (r *mongoStatusRepo) Create(ctx context.Context, check *models.StatusCheck) error {
	if _, err := r.coll.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *mongoStatusRepo) List(ctx context.Context) ([]models.StatusCheck, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(withoutObjectID).SetLimit(ListLimit))
	if err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}

	checks := []models.StatusCheck{}
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}
	return checks, nil
}

// plainPage turns decoded BSON containers inside the open maps into plain
// Go maps and slices, and restores UTC timestamps.
func plainPage(p *models.Page) {
	p.Settings = plainMap(p.Settings)
	for i := range p.Components {
		p.Components[i].Content = plainMap(p.Components[i].Content)
		p.Components[i].Style = plainMap(p.Components[i].Style)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	p.Normalize()
}

func plainMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	for k, v := range m {
		m[k] = plainValue(v)
	}
	return m
}

func plainValue(v any) any {
	switch t := v.(type) {
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case bson.M:
		return plainMap(map[string]any(t))
	case map[string]any:
		return plainMap(t)
	case bson.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = plainValue(e)
		}
		return t
	case bson.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}
