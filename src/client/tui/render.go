package tui

import (
	"strings"

	"github.com/apimgr/ghuser/src/client/api"
	"github.com/apimgr/ghuser/src/common/terminal"
)

// RenderProfile renders a profile as a styled block. It shows the same
// fields as UserProfile.String.
func RenderProfile(p *api.UserProfile) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(p.Login))
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		sb.WriteString(" " + nameStyle.Render("("+strings.TrimSpace(*p.Name)+")"))
	}

	for _, f := range p.Fields() {
		sb.WriteString("\n  ")
		sb.WriteString(labelStyle.Render(f.Label + ":"))
		switch f.Label {
		case "Followers", "Following", "Repos", "Gists":
			sb.WriteString(countStyle.Render(f.Value))
		case "URL", "Blog":
			sb.WriteString(urlStyle.Render(f.Value))
		default:
			sb.WriteString(valueStyle.Render(f.Value))
		}
	}
	return sb.String()
}

// RenderError renders an error message
func RenderError(err error) string {
	return errorStyle.Render(terminal.GetSymbols().Error + " " + err.Error())
}

// RenderNoMatch renders the line shown when a search finds nobody
func RenderNoMatch(query string) string {
	return warnStyle.Render(terminal.GetSymbols().Stop + " No match for " + query)
}

// RenderInfo renders a progress or status line
func RenderInfo(msg string) string {
	return helpStyle.Render(msg)
}
