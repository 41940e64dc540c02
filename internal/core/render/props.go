package render

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// props is a read-only view over an open content/style mapping. Every
// accessor falls back to its default when the key is missing, null or of a
// type that cannot be shown as text.
type props map[string]any

func (p props) str(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return def
	}
}

// px returns a CSS length without unit so callers can append "px"
func (p props) px(key, def string) string {
	s := strings.TrimSpace(p.str(key, def))
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return def
	}
	return s
}

func (p props) flag(key string) bool {
	switch t := p[key].(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	default:
		return false
	}
}

type textProps struct {
	Tag      string
	Text     string
	Color    string
	FontSize string
}

func textOf(c models.Component) textProps {
	content, style := props(c.Content), props(c.Style)
	return textProps{
		Tag:      safeTag(content.str("tag", "p")),
		Text:     content.str("text", ""),
		Color:    style.str("color", "#ffffff"),
		FontSize: style.px("fontSize", "16"),
	}
}

type buttonProps struct {
	Text         string
	Action       string
	Background   string
	Color        string
	Padding      string
	BorderRadius string
}

func buttonOf(c models.Component) buttonProps {
	content, style := props(c.Content), props(c.Style)
	return buttonProps{
		Text:         content.str("text", "Button"),
		Action:       content.str("action", ""),
		Background:   style.str("background", "rgba(255,255,255,0.1)"),
		Color:        style.str("color", "#ffffff"),
		Padding:      style.str("padding", "12px 24px"),
		BorderRadius: style.str("borderRadius", "12px"),
	}
}

type chatbotProps struct {
	Title       string
	Greeting    string
	Placeholder string
}

func chatbotOf(c models.Component) chatbotProps {
	content := props(c.Content)
	return chatbotProps{
		Title:       content.str("title", "Chat Assistant"),
		Greeting:    content.str("greeting", "Hi! How can I help you today?"),
		Placeholder: content.str("placeholder", "Type your message..."),
	}
}

type livechatProps struct {
	Provider string
}

func livechatOf(c models.Component) livechatProps {
	provider := props(c.Content).str("provider", "tidio")
	// a Caser keeps state, so one per call
	return livechatProps{Provider: cases.Title(language.Und).String(provider)}
}

type mediaProps struct {
	Src      string
	Width    string
	Alt      string
	Autoplay bool
	Loop     bool
}

func logoOf(c models.Component) mediaProps {
	content, style := props(c.Content), props(c.Style)
	return mediaProps{
		Src:   content.str("src", content.str("url", "")),
		Alt:   content.str("alt", "Logo"),
		Width: style.px("width", "120"),
	}
}

func videoOf(c models.Component) mediaProps {
	content, style := props(c.Content), props(c.Style)
	return mediaProps{
		Src:      content.str("src", content.str("url", "")),
		Width:    style.px("width", "320"),
		Autoplay: content.flag("autoplay"),
		Loop:     content.flag("loop"),
	}
}

func audioOf(c models.Component) mediaProps {
	content := props(c.Content)
	return mediaProps{
		Src:      content.str("src", content.str("url", "")),
		Autoplay: content.flag("autoplay"),
		Loop:     content.flag("loop"),
	}
}

type formProps struct {
	Placeholder string
	ButtonText  string
}

func formOf(c models.Component) formProps {
	content := props(c.Content)
	return formProps{
		Placeholder: content.str("placeholder", "Enter your email"),
		ButtonText:  content.str("buttonText", "Subscribe"),
	}
}

type timerProps struct {
	TargetDate string
	Label      string
	Color      string
}

func timerOf(c models.Component) timerProps {
	content, style := props(c.Content), props(c.Style)
	return timerProps{
		TargetDate: content.str("targetDate", ""),
		Label:      content.str("label", "Launching in"),
		Color:      style.str("color", "#ffffff"),
	}
}

var allowedTags = map[string]bool{
	"p": true, "span": true, "div": true, "blockquote": true, "small": true, "strong": true, "em": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// safeTag keeps the text element within a known set of text tags
func safeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if allowedTags[tag] {
		return tag
	}
	return "p"
}
