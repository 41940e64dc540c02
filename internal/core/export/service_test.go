package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

func samplePage() *models.Page {
	return &models.Page{
		ID:              "4b1f-page",
		Title:           "Spring Launch",
		BackgroundColor: "#1a1a2e",
		Theme:           models.ThemeDark,
		Components: []models.Component{
			{ID: "t1", Type: "text", Content: map[string]any{"text": "Hi", "tag": "h1"}, Position: models.Position{X: 10, Y: 20}},
		},
		Settings: map[string]any{},
	}
}

func TestExport_HTML(t *testing.T) {
	svc := NewService("http://localhost:3000")

	res, err := svc.Export(samplePage(), FormatHTML)
	require.NoError(t, err)
	require.Equal(t, "Spring_Launch.html", res.FileName)
	require.Equal(t, "text/html; charset=utf-8", res.ContentType)
	require.True(t, strings.HasPrefix(string(res.Content), "<!DOCTYPE html>"))
	require.Contains(t, string(res.Content), ">Hi</h1>")
}

func TestExport_JSONRoundTrips(t *testing.T) {
	svc := NewService("http://localhost:3000")

	res, err := svc.Export(samplePage(), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "Spring_Launch.json", res.FileName)

	var decoded models.Page
	require.NoError(t, json.Unmarshal(res.Content, &decoded))
	require.Equal(t, "4b1f-page", decoded.ID)
	require.Len(t, decoded.Components, 1)
}

func TestExport_Iframe(t *testing.T) {
	svc := NewService("https://app.example.com/")

	res, err := svc.Export(samplePage(), FormatIframe)
	require.NoError(t, err)
	require.Equal(t, "Spring_Launch_embed.html", res.FileName)
	require.Contains(t, string(res.Content), `<iframe src="https://app.example.com/preview/4b1f-page"`)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	svc := NewService("http://localhost:3000")

	_, err := svc.Export(samplePage(), ExportFormat("pdf"))
	require.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestExport_Idempotent(t *testing.T) {
	svc := NewService("http://localhost:3000")
	page := samplePage()

	first, err := svc.HTML(page)
	require.NoError(t, err)
	second, err := svc.HTML(page)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseFormat(t *testing.T) {
	require.Equal(t, FormatHTML, ParseFormat(""))
	require.Equal(t, FormatJSON, ParseFormat(" JSON "))
	require.Equal(t, ExportFormat("zip"), ParseFormat("zip"))
}

func TestBaseFileName(t *testing.T) {
	require.Equal(t, "My_Landing_Page", BaseFileName("My Landing Page"))
	require.Equal(t, "etcpasswd", BaseFileName("../etc/passwd"))
	require.Equal(t, "landing_page", BaseFileName("  "))
	require.Equal(t, "aDELE_x", BaseFileName("a\r\nDELE x"))
	require.Equal(t, "tabbedname", BaseFileName("tabbed\tname\x00\x7f"))
	require.Equal(t, "landing_page", BaseFileName("\r\n"))
}
