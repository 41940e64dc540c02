package upload

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
)

func newTestApp(t *testing.T, maxSize int64) (*fiber.App, string) {
	t.Helper()

	dir := t.TempDir()
	provider, err := NewLocalProvider(dir)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apperror.ErrorHandler})
	NewHandler(NewService(provider, maxSize)).Register(app.Group("/api"))
	return app, dir
}

func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func decode(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestUploadImage_StoresAndServes(t *testing.T) {
	app, dir := newTestApp(t, 0)
	png := []byte("\x89PNG fake image bytes")

	body, ct := multipartBody(t, "hero.PNG", "image/png", png)
	req := httptest.NewRequest(fiber.MethodPost, "/api/upload/image", body)
	req.Header.Set(fiber.HeaderContentType, ct)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode(t, resp.Body)
	name, _ := out["filename"].(string)
	require.True(t, strings.HasSuffix(name, ".png"))
	require.Len(t, strings.TrimSuffix(name, ".png"), 36)
	require.Equal(t, "/api/uploads/"+name, out["url"])

	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Equal(t, png, stored)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/uploads/"+name, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, png, got)
}

func TestUploadImage_RejectsPDF(t *testing.T) {
	app, dir := newTestApp(t, 0)

	body, ct := multipartBody(t, "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(fiber.MethodPost, "/api/upload/image", body)
	req.Header.Set(fiber.HeaderContentType, ct)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "File must be an image", decode(t, resp.Body)["detail"])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestUploadAudio_RejectsImage(t *testing.T) {
	app, _ := newTestApp(t, 0)

	body, ct := multipartBody(t, "hero.png", "image/png", []byte("png"))
	req := httptest.NewRequest(fiber.MethodPost, "/api/upload/audio", body)
	req.Header.Set(fiber.HeaderContentType, ct)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "File must be an audio file", decode(t, resp.Body)["detail"])
}

func TestUploadAudio_Accepts(t *testing.T) {
	app, _ := newTestApp(t, 0)

	body, ct := multipartBody(t, "theme.mp3", "audio/mpeg", []byte("ID3"))
	req := httptest.NewRequest(fiber.MethodPost, "/api/upload/audio", body)
	req.Header.Set(fiber.HeaderContentType, ct)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, strings.HasSuffix(decode(t, resp.Body)["filename"].(string), ".mp3"))
}

func TestUpload_SizeLimit(t *testing.T) {
	app, _ := newTestApp(t, 4)

	body, ct := multipartBody(t, "big.png", "image/png", []byte("0123456789"))
	req := httptest.NewRequest(fiber.MethodPost, "/api/upload/image", body)
	req.Header.Set(fiber.HeaderContentType, ct)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpload_MissingFile(t *testing.T) {
	app, _ := newTestApp(t, 0)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("other", "x"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/upload/image", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "No file uploaded", decode(t, resp.Body)["detail"])
}

func TestGetFile_NotFound(t *testing.T) {
	app, _ := newTestApp(t, 0)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/uploads/missing.png", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "File not found", decode(t, resp.Body)["detail"])
}

func TestStoredName(t *testing.T) {
	name, ok := StoredName("/api/uploads/abc.png")
	require.True(t, ok)
	require.Equal(t, "abc.png", name)

	for _, url := range []string{"https://cdn.example.com/abc.png", "/api/uploads/", "/api/uploads/../etc/passwd", ""} {
		_, ok := StoredName(url)
		require.False(t, ok, url)
	}
}

func TestValidName(t *testing.T) {
	require.True(t, validName("a.png"))
	require.False(t, validName(""))
	require.False(t, validName(".."))
	require.False(t, validName("../a.png"))
	require.False(t, validName(`..\a.png`))
}

func TestExtensionFor(t *testing.T) {
	require.Equal(t, "jpg", extensionFor("photo.JPG", "image/jpeg"))
	require.Equal(t, "bin", extensionFor("noext", "application/x-unknown-thing"))
}
