package email

import (
	"html"
	"strings"
)

// ShareBody builds the HTML body of a page share email. link may be empty.
func ShareBody(title, message, link string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Inter, Arial, sans-serif; line-height: 1.6; color: #222; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a1a2e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f6f6f9; }
        .footer { padding: 10px; text-align: center; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>`)
	b.WriteString(html.EscapeString(title))
	b.WriteString("</h1></div>\n        <div class=\"content\">\n")
	if message != "" {
		b.WriteString("            <p>" + html.EscapeString(message) + "</p>\n")
	}
	if link != "" {
		b.WriteString(`            <p><a href="` + html.EscapeString(link) + `">View the landing page</a></p>` + "\n")
	}
	b.WriteString(`        </div>
        <div class="footer"><p>Made with ONEderpage</p></div>
    </div>
</body>
</html>`)
	return b.String()
}
