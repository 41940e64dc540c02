package export

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// EmbedFormat selects the snippet style handed to third-party sites
type EmbedFormat string

const (
	EmbedIframe     EmbedFormat = "iframe"
	EmbedJavaScript EmbedFormat = "javascript"
	EmbedHTML       EmbedFormat = "html"
)

var ErrUnsupportedEmbedFormat = errors.New("unsupported embed format")

// PreviewURL is where the frontend serves the live page
func PreviewURL(frontendURL, pageID string) string {
	return strings.TrimRight(frontendURL, "/") + "/preview/" + pageID
}

// EmbedCode builds the snippet for the given format. An empty format means iframe.
func EmbedCode(format EmbedFormat, frontendURL string, page *models.Page) (string, error) {
	src := escape(PreviewURL(frontendURL, page.ID))

	switch format {
	case "", EmbedIframe:
		return fmt.Sprintf(`<iframe src="%s" width="100%%" height="600" frameborder="0" scrolling="auto" title="%s"></iframe>`,
			src, escape(page.Title)), nil

	case EmbedJavaScript:
		containerID := "onederpage-" + escape(page.ID)
		var b strings.Builder
		fmt.Fprintf(&b, "<div id=\"%s\"></div>\n", containerID)
		b.WriteString("<script>\n(function () {\n")
		b.WriteString("    var iframe = document.createElement('iframe');\n")
		fmt.Fprintf(&b, "    iframe.src = '%s';\n", jsString(PreviewURL(frontendURL, page.ID)))
		b.WriteString("    iframe.width = '100%';\n")
		b.WriteString("    iframe.height = '600';\n")
		b.WriteString("    iframe.frameBorder = '0';\n")
		b.WriteString("    iframe.style.border = 'none';\n")
		fmt.Fprintf(&b, "    document.getElementById('%s').appendChild(iframe);\n", jsString("onederpage-"+page.ID))
		b.WriteString("})();\n</script>")
		return b.String(), nil

	case EmbedHTML:
		bg := escape(page.BackgroundColor)
		if bg == "" {
			bg = models.DefaultBackgroundColor
		}
		style := fmt.Sprintf("width: 100%%; min-height: 600px; background: linear-gradient(135deg, %s 0%%, #000000 100%%);", bg)
		if img := page.BackgroundImageURL(); img != "" {
			style += fmt.Sprintf(" background-image: url('%s'); background-size: cover; background-position: center;", escape(img))
		}
		return fmt.Sprintf(`<div class="onederpage-embed" style="%s"><iframe src="%s" width="100%%" height="600" frameborder="0" style="background: transparent;" allowtransparency="true"></iframe></div>`,
			style, src), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEmbedFormat, format)
	}
}

func escape(s string) string {
	return html.EscapeString(s)
}

// jsString makes s safe inside a single-quoted JS literal within a <script> block
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "<", `\x3c`, ">", `\x3e`)
	return r.Replace(s)
}
