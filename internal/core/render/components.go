package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

// rule renders the inner markup of one component. ok=false means the
// component has nothing to show (e.g. a video without a source).
type rule func(c models.Component) (inner string, ok bool)

var rules = map[string]rule{
	models.ComponentText:     renderText,
	models.ComponentButton:   renderButton,
	models.ComponentChatbot:  renderChatbot,
	models.ComponentLivechat: renderLivechat,
	models.ComponentLogo:     renderLogo,
	models.ComponentVideo:    renderVideo,
	models.ComponentAudio:    renderAudio,
	models.ComponentForm:     renderForm,
	models.ComponentTimer:    renderTimer,
}

// Component renders one positioned fragment. Unknown types yield ("", false).
func Component(c models.Component) (string, bool) {
	r, ok := rules[c.Type]
	if !ok {
		return "", false
	}
	inner, ok := r(c)
	if !ok {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n        <div class=\"component %s-component\" data-component-id=\"%s\" style=\"position:absolute; left:%spx; top:%spx;\">\n",
		c.Type, esc(c.ID), num(c.Position.X), num(c.Position.Y))
	b.WriteString(inner)
	b.WriteString("\n        </div>")
	return b.String(), true
}

func renderText(c models.Component) (string, bool) {
	p := textOf(c)
	return fmt.Sprintf(`            <%s style="color: %s; font-size: %spx;">%s</%s>`,
		p.Tag, esc(p.Color), esc(p.FontSize), esc(p.Text), p.Tag), true
}

// The click handler is written verbatim: saved pages carry their own JS.
func renderButton(c models.Component) (string, bool) {
	p := buttonOf(c)
	return fmt.Sprintf(`            <button class="glass-button" onclick="%s" style="background: %s; color: %s; padding: %s; border-radius: %s; border: 1px solid rgba(255,255,255,0.2); backdrop-filter: blur(10px);">%s</button>`,
		p.Action, esc(p.Background), esc(p.Color), esc(p.Padding), esc(p.BorderRadius), esc(p.Text)), true
}

func renderChatbot(c models.Component) (string, bool) {
	p := chatbotOf(c)
	var b strings.Builder
	b.WriteString(`            <div class="glass-panel chatbot-panel" style="width: 320px; height: 400px;">` + "\n")
	fmt.Fprintf(&b, `                <div class="chatbot-header">%s</div>`+"\n", esc(p.Title))
	fmt.Fprintf(&b, `                <div class="chatbot-messages"><div class="chatbot-message">%s</div></div>`+"\n", esc(p.Greeting))
	fmt.Fprintf(&b, `                <div class="chatbot-input"><input type="text" placeholder="%s"><button class="glass-button">Send</button></div>`+"\n", esc(p.Placeholder))
	b.WriteString(`            </div>`)
	return b.String(), true
}

func renderLivechat(c models.Component) (string, bool) {
	p := livechatOf(c)
	return fmt.Sprintf(`            <div class="glass-panel livechat-panel" style="width: 280px; height: 72px;"><span class="livechat-indicator"></span><span>Live chat powered by %s</span></div>`,
		esc(p.Provider)), true
}

func renderLogo(c models.Component) (string, bool) {
	p := logoOf(c)
	if p.Src == "" {
		return "", false
	}
	return fmt.Sprintf(`            <img class="logo-image" src="%s" alt="%s" style="width: %spx; height: auto;">`,
		esc(p.Src), esc(p.Alt), esc(p.Width)), true
}

func renderVideo(c models.Component) (string, bool) {
	p := videoOf(c)
	if p.Src == "" {
		return "", false
	}
	return fmt.Sprintf(`            <video class="glass-media" src="%s" style="width: %spx;" controls%s%s></video>`,
		esc(p.Src), esc(p.Width), boolAttr(" autoplay muted", p.Autoplay), boolAttr(" loop", p.Loop)), true
}

func renderAudio(c models.Component) (string, bool) {
	p := audioOf(c)
	if p.Src == "" {
		return "", false
	}
	return fmt.Sprintf(`            <audio class="glass-media" src="%s" controls%s%s></audio>`,
		esc(p.Src), boolAttr(" autoplay", p.Autoplay), boolAttr(" loop", p.Loop)), true
}

func renderForm(c models.Component) (string, bool) {
	p := formOf(c)
	return fmt.Sprintf(`            <form class="glass-panel form-panel" onsubmit="event.preventDefault(); this.reset();"><input type="email" placeholder="%s" required><button type="submit" class="glass-button">%s</button></form>`,
		esc(p.Placeholder), esc(p.ButtonText)), true
}

func renderTimer(c models.Component) (string, bool) {
	p := timerOf(c)
	return fmt.Sprintf(`            <div class="glass-panel timer-panel" style="color: %s;"><div class="timer-label">%s</div><div class="timer-value" data-target="%s">--:--:--</div></div>`,
		esc(p.Color), esc(p.Label), esc(p.TargetDate)), true
}

func esc(s string) string {
	return html.EscapeString(s)
}

// num formats a coordinate without a trailing ".0"
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func boolAttr(attr string, on bool) string {
	if on {
		return attr
	}
	return ""
}
