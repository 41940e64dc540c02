package models

// Known component types. Types outside this list are stored as-is and
// skipped by the exporter.
const (
	ComponentText     = "text"
	ComponentButton   = "button"
	ComponentForm     = "form"
	ComponentTimer    = "timer"
	ComponentAudio    = "audio"
	ComponentVideo    = "video"
	ComponentLogo     = "logo"
	ComponentChatbot  = "chatbot"
	ComponentLivechat = "livechat"
)

// Position is the pixel offset of a component inside the page container
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Component is one positioned element of a Page. Content fields depend on
// Type; Style holds free-form CSS-ish properties (color, fontSize, ...).
type Component struct {
	ID       string         `json:"id" bson:"id" validate:"required"`
	Type     string         `json:"type" bson:"type" validate:"required"`
	Content  map[string]any `json:"content" bson:"content"`
	Position Position       `json:"position" bson:"position"`
	Style    map[string]any `json:"style" bson:"style"`
}

// Normalize replaces nil maps with empty ones
func (c *Component) Normalize() {
	if c.Content == nil {
		c.Content = map[string]any{}
	}
	if c.Style == nil {
		c.Style = map[string]any{}
	}
}
