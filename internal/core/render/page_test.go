package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

func demoPage(components ...models.Component) *models.Page {
	return &models.Page{
		ID:              "page-1",
		Title:           "Demo",
		BackgroundColor: "#1a1a2e",
		Theme:           models.ThemeDark,
		Components:      components,
		Settings:        map[string]any{},
	}
}

func TestPage_TextScenario(t *testing.T) {
	page := demoPage(models.Component{
		ID:       "t1",
		Type:     "text",
		Content:  map[string]any{"text": "Hi", "tag": "h1"},
		Position: models.Position{X: 10, Y: 20},
		Style:    map[string]any{"color": "#fff"},
	})

	out := Page(page)
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "left:10px; top:20px")
	require.Contains(t, out, `<h1 style="color: #fff; font-size: 16px;">Hi</h1>`)
	require.Contains(t, out, "<title>Demo</title>")
	require.Contains(t, out, "linear-gradient(135deg, #1a1a2e 0%, #000000 100%)")
}

func TestPage_Deterministic(t *testing.T) {
	page := demoPage(
		models.Component{ID: "a", Type: "button", Content: map[string]any{"text": "Go", "action": "alert(1)"}},
		models.Component{ID: "b", Type: "chatbot", Position: models.Position{X: 1.5, Y: 2}},
		models.Component{ID: "c", Type: "livechat", Content: map[string]any{"provider": "crisp"}},
	)
	require.Equal(t, Page(page), Page(page))
}

func TestPage_UnknownTypeSkipped(t *testing.T) {
	known := models.Component{ID: "t1", Type: "text", Content: map[string]any{"text": "kept"}}
	unknown := models.Component{ID: "x1", Type: "hologram", Content: map[string]any{"text": "dropped"}}

	withUnknown := Page(demoPage(known, unknown))
	without := Page(demoPage(known))

	require.Equal(t, without, withUnknown)
	require.Contains(t, withUnknown, "kept")
	require.NotContains(t, withUnknown, "dropped")
}

func TestPage_ArrayOrderPreserved(t *testing.T) {
	out := Page(demoPage(
		models.Component{ID: "first", Type: "text", Content: map[string]any{"text": "one"}},
		models.Component{ID: "second", Type: "text", Content: map[string]any{"text": "two"}},
	))
	require.Less(t, strings.Index(out, ">one<"), strings.Index(out, ">two<"))
}

func TestPage_DocumentChrome(t *testing.T) {
	img := "https://cdn.example.com/bg.jpg"
	page := demoPage()
	page.BackgroundImage = &img

	out := Page(page)
	require.Contains(t, out, fmt.Sprintf("@media (max-width: %dpx)", mobileBreakpoint))
	require.Contains(t, out, "@media (max-width: 768px)")
	require.NotContains(t, out, "{{")
	require.Contains(t, out, "url('https://cdn.example.com/bg.jpg')")
	require.Contains(t, out, `class="watermark"`)
	require.Contains(t, out, "addEventListener('mouseenter'")
	require.Contains(t, out, "fonts.googleapis.com/css2?family=Inter")
}

func TestPage_NoBackgroundImageOmitsLayer(t *testing.T) {
	out := Page(demoPage())
	require.NotContains(t, out, `class="page-background-image"`)
}

func TestPage_EscapesTitleAndText(t *testing.T) {
	page := demoPage(models.Component{ID: "t", Type: "text", Content: map[string]any{"text": "<script>x</script>"}})
	page.Title = `Tom & "Jerry"`

	out := Page(page)
	require.Contains(t, out, "<title>Tom &amp; &#34;Jerry&#34;</title>")
	require.Contains(t, out, "&lt;script&gt;x&lt;/script&gt;")
}

func TestPage_BackgroundColorCannotBreakStyle(t *testing.T) {
	page := demoPage()
	page.BackgroundColor = "red;} body{display:none"

	out := Page(page)
	require.Contains(t, out, "linear-gradient(135deg, red bodydisplay:none 0%")
}

func TestPage_EmptyBackgroundColorFallsBack(t *testing.T) {
	page := demoPage()
	page.BackgroundColor = ""
	require.Contains(t, Page(page), "linear-gradient(135deg, #000000 0%")
}

func TestPage_LightTheme(t *testing.T) {
	page := demoPage()
	page.Theme = models.ThemeLight
	require.Contains(t, Page(page), `<body class="theme-light">`)

	page.Theme = "neon"
	require.Contains(t, Page(page), `<body class="theme-dark">`)
}

func TestPage_NilComponents(t *testing.T) {
	page := &models.Page{Title: "Empty"}
	require.NotPanics(t, func() { _ = Page(page) })
}
