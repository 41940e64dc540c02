// Package render turns a landing page into a standalone HTML document.
//
// Rendering is pure: the same page always produces the same bytes. Every
// content and style field has a default, so malformed components never
// fail a render. Components whose type has no rule are skipped.
package render

import (
	"strconv"
	"strings"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// mobileBreakpoint is the viewport width in px below which components fall
// back to normal document flow.
const mobileBreakpoint = 768

var pageStyle = strings.Replace(documentStyle, "{{MOBILE_BREAKPOINT}}", strconv.Itoa(mobileBreakpoint), 1)

// Page renders the whole document. Components are emitted in array order.
func Page(page *models.Page) string {
	var fragments strings.Builder
	for _, c := range page.Components {
		if fragment, ok := Component(c); ok {
			fragments.WriteString(fragment)
		}
	}

	theme := page.Theme
	if theme != models.ThemeLight {
		theme = models.ThemeDark
	}
	bgColor := cssValue(page.BackgroundColor)
	if bgColor == "" {
		bgColor = models.DefaultBackgroundColor
	}

	var b strings.Builder
	b.Grow(len(documentHead) + len(pageStyle) + len(documentScript) + fragments.Len() + 512)

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(documentHead)
	b.WriteString("    <title>" + esc(page.Title) + "</title>\n")
	b.WriteString(strings.Replace(pageStyle, "{{BACKGROUND_COLOR}}", bgColor, 1))
	b.WriteString("</head>\n")
	b.WriteString(`<body class="theme-` + string(theme) + `">` + "\n")
	b.WriteString(`    <div class="page-background"></div>` + "\n")
	if img := cssValue(page.BackgroundImageURL()); img != "" {
		b.WriteString(`    <div class="page-background-image" style="background-image: url('` + esc(img) + `');"></div>` + "\n")
	}
	b.WriteString(`    <div class="container">`)
	b.WriteString(fragments.String())
	b.WriteString("\n    </div>\n")
	b.WriteString(watermark)
	b.WriteString(documentScript)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// cssValue strips characters that could close a declaration, a quoted
// url() or the surrounding element.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}', ';', '"', '\'', '\\', '\n', '\r':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

const documentHead = `<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="generator" content="ONEderpage">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap" rel="stylesheet">
`

const documentStyle = `    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
            min-height: 100vh;
            position: relative;
            overflow-x: hidden;
            color: #ffffff;
        }

        body.theme-light {
            color: #111111;
        }

        .page-background {
            position: fixed;
            inset: 0;
            z-index: -2;
            background: linear-gradient(135deg, {{BACKGROUND_COLOR}} 0%, #000000 100%);
        }

        .page-background-image {
            position: fixed;
            inset: 0;
            z-index: -1;
            background-size: cover;
            background-position: center;
            background-attachment: fixed;
            opacity: 0.85;
        }

        .container {
            position: relative;
            width: 100%;
            min-height: 100vh;
        }

        .component {
            backdrop-filter: blur(12px);
            -webkit-backdrop-filter: blur(12px);
            transition: transform 0.3s ease;
        }

        .glass-panel {
            background: rgba(255, 255, 255, 0.08);
            border: 1px solid rgba(255, 255, 255, 0.18);
            border-radius: 16px;
            padding: 16px;
            backdrop-filter: blur(16px);
            -webkit-backdrop-filter: blur(16px);
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.25);
        }

        .glass-button {
            cursor: pointer;
            transition: all 0.3s ease;
            font-weight: 500;
            text-decoration: none;
            display: inline-block;
        }

        .glass-button:hover {
            transform: translateY(-2px);
            box-shadow: 0 10px 20px rgba(0, 0, 0, 0.2);
            background: rgba(255, 255, 255, 0.2) !important;
        }

        .chatbot-panel {
            display: flex;
            flex-direction: column;
            gap: 12px;
        }

        .chatbot-header {
            font-weight: 600;
        }

        .chatbot-messages {
            flex: 1;
            overflow-y: auto;
        }

        .chatbot-message {
            display: inline-block;
            padding: 10px 14px;
            border-radius: 12px;
            background: rgba(255, 255, 255, 0.12);
        }

        .chatbot-input {
            display: flex;
            gap: 8px;
        }

        .chatbot-input input, .form-panel input {
            flex: 1;
            padding: 10px 12px;
            border-radius: 10px;
            border: 1px solid rgba(255, 255, 255, 0.2);
            background: rgba(0, 0, 0, 0.2);
            color: inherit;
        }

        .chatbot-input button, .form-panel button {
            padding: 10px 16px;
            border-radius: 10px;
            border: 1px solid rgba(255, 255, 255, 0.2);
            background: rgba(255, 255, 255, 0.1);
            color: inherit;
        }

        .livechat-panel {
            display: flex;
            align-items: center;
            gap: 10px;
        }

        .livechat-indicator {
            width: 10px;
            height: 10px;
            border-radius: 50%;
            background: #22c55e;
        }

        .form-panel {
            display: flex;
            gap: 8px;
        }

        .timer-value {
            font-size: 32px;
            font-weight: 700;
            letter-spacing: 2px;
        }

        .glass-media {
            border-radius: 12px;
        }

        .watermark {
            position: fixed;
            right: 16px;
            bottom: 16px;
            padding: 6px 12px;
            border-radius: 999px;
            font-size: 12px;
            font-weight: 600;
            color: rgba(255, 255, 255, 0.75);
            background: rgba(0, 0, 0, 0.35);
            backdrop-filter: blur(8px);
            -webkit-backdrop-filter: blur(8px);
            pointer-events: none;
            z-index: 1000;
        }

        @media (max-width: {{MOBILE_BREAKPOINT}}px) {
            .component {
                position: relative !important;
                left: 0 !important;
                top: auto !important;
                margin: 20px auto;
                text-align: center;
            }
        }
    </style>
`

const watermark = `    <div class="watermark">Made with ONEderpage</div>
`

const documentScript = `    <script>
        document.querySelectorAll('.component').forEach(function (el) {
            el.addEventListener('mouseenter', function () { el.style.transform = 'scale(1.02)'; });
            el.addEventListener('mouseleave', function () { el.style.transform = 'scale(1)'; });
        });

        document.querySelectorAll('[data-target]').forEach(function (el) {
            var target = Date.parse(el.getAttribute('data-target'));
            if (isNaN(target)) { return; }
            var pad = function (n) { return String(n).padStart(2, '0'); };
            var tick = function () {
                var left = Math.max(0, Math.floor((target - Date.now()) / 1000));
                el.textContent = pad(Math.floor(left / 3600)) + ':' + pad(Math.floor(left % 3600 / 60)) + ':' + pad(left % 60);
            };
            tick();
            setInterval(tick, 1000);
        });
    </script>
`
