package models

import "time"

// Theme is the colour scheme a landing page is edited and exported with
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const (
	DefaultBackgroundColor = "#000000"
	DefaultTheme           = ThemeDark
)

// Page is a landing-page document. Components are embedded and ordered:
// array order is paint order in the exported document.
type Page struct {
	ID              string         `json:"id" bson:"id"`
	Title           string         `json:"title" bson:"title"`
	BackgroundImage *string        `json:"background_image" bson:"background_image"`
	BackgroundColor string         `json:"background_color" bson:"background_color"`
	Theme           Theme          `json:"theme" bson:"theme"`
	Components      []Component    `json:"components" bson:"components"`
	Settings        map[string]any `json:"settings" bson:"settings"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" bson:"updated_at"`
}

// Normalize replaces nil collections with empty ones so a page always
// serializes "components": [] and "settings": {}.
func (p *Page) Normalize() {
	if p.Components == nil {
		p.Components = []Component{}
	}
	if p.Settings == nil {
		p.Settings = map[string]any{}
	}
	for i := range p.Components {
		p.Components[i].Normalize()
	}
}

// BackgroundImageURL returns the background image or an empty string.
func (p *Page) BackgroundImageURL() string {
	if p.BackgroundImage == nil {
		return ""
	}
	return *p.BackgroundImage
}

// PageChanges is a partial update. Nil fields are left untouched.
type PageChanges struct {
	Title           *string
	BackgroundImage *string
	BackgroundColor *string
	Theme           *Theme
	Components      *[]Component
	Settings        map[string]any
	UpdatedAt       time.Time
}
