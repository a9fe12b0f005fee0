// Package markdown turns element documents into README markdown text.
// Generation is pure: the same element list always yields the same string,
// and elements with an unrecognized kind contribute nothing.
package markdown

import (
	"fmt"
	"strings"

	"github.com/mithrel/readmekit/pkg/api"
)

// Generate renders elements in order, one template per kind.
func Generate(elements []api.Element) string {
	var b strings.Builder
	for _, e := range elements {
		b.WriteString(renderElement(e))
	}
	return b.String()
}

func renderElement(e api.Element) string {
	switch e.Kind {
	case api.KindHeader:
		return renderHeader(e)
	case api.KindText:
		return e.Text + "\n\n"
	case api.KindBanner:
		return renderBanner(e)
	case api.KindQuote:
		return renderQuote(e)
	case api.KindBadge:
		return renderBadge(e)
	case api.KindTechStack:
		return renderTechStack(e)
	case api.KindImage:
		return renderImage(e)
	case api.KindCodeBlock:
		return fmt.Sprintf("```%s\n%s\n```\n\n", e.Language, strings.TrimRight(e.Code, "\n"))
	case api.KindTable:
		return renderTable(e)
	case api.KindList:
		return renderList(e)
	case api.KindDivider:
		return renderDivider(e)
	case api.KindInstallation:
		return renderInstallation(e)
	case api.KindSocials:
		return renderSocials(e)
	case api.KindStats:
		return renderStats(e)
	case api.KindSpacer:
		return "<br/>\n\n"
	default:
		return ""
	}
}

func renderHeader(e api.Element) string {
	level := e.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + e.Text + "\n\n"
}

func renderBanner(e api.Element) string {
	var b strings.Builder
	b.WriteString("<div align=\"center\">\n\n")
	b.WriteString("# " + e.Title + "\n\n")
	if e.Subtitle != "" {
		b.WriteString(e.Subtitle + "\n\n")
	}
	b.WriteString("</div>\n\n")
	return b.String()
}

func renderQuote(e api.Element) string {
	lines := strings.Split(strings.TrimRight(e.Text, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("> " + line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func renderBadge(e api.Element) string {
	color := e.Color
	if color == "" {
		color = "blue"
	}
	url := fmt.Sprintf("https://img.shields.io/badge/%s-%s-%s",
		badgeEscape(e.Label), badgeEscape(e.Message), color)
	return fmt.Sprintf("![%s](%s)\n\n", e.Label, url)
}

func renderTechStack(e api.Element) string {
	if len(e.Items) == 0 {
		return ""
	}
	color := e.Color
	if color == "" {
		color = "05122A"
	}
	badges := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		url := fmt.Sprintf("https://img.shields.io/badge/-%s-%s?style=flat", badgeEscape(item), color)
		badges = append(badges, fmt.Sprintf("![%s](%s)", item, url))
	}
	return strings.Join(badges, " ") + "\n\n"
}

func renderImage(e api.Element) string {
	if e.Width > 0 {
		return fmt.Sprintf("<img src=%q alt=%q width=\"%d\">\n\n", e.URL, e.Alt, e.Width)
	}
	return fmt.Sprintf("![%s](%s)\n\n", e.Alt, e.URL)
}

// renderTable emits a header row, a separator row with one dash cell per
// column, then the data rows. Short rows are padded with empty cells and
// long rows truncated to the column count.
func renderTable(e api.Element) string {
	if len(e.Columns) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("| " + strings.Join(e.Columns, " | ") + " |\n")
	sep := make([]string, len(e.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range e.Rows {
		cells := make([]string, len(e.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
	return b.String()
}

func renderList(e api.Element) string {
	if len(e.Items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range e.Items {
		if e.Ordered {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		} else {
			b.WriteString("- " + item + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderDivider(e api.Element) string {
	switch e.Style {
	case "dots":
		return "<div align=\"center\">• • •</div>\n\n"
	case "asterisks":
		return "***\n\n"
	default:
		return "---\n\n"
	}
}

func renderInstallation(e api.Element) string {
	title := e.Title
	if title == "" {
		title = "Installation"
	}
	lang := e.Language
	if lang == "" {
		lang = "bash"
	}
	var b strings.Builder
	b.WriteString("## " + title + "\n\n")
	b.WriteString("```" + lang + "\n")
	for _, step := range e.Items {
		b.WriteString(step + "\n")
	}
	b.WriteString("```\n\n")
	return b.String()
}

func renderSocials(e api.Element) string {
	if len(e.Links) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.Links))
	for _, l := range e.Links {
		parts = append(parts, fmt.Sprintf("[%s](%s)", l.Name, l.URL))
	}
	return strings.Join(parts, " • ") + "\n\n"
}

func renderStats(e api.Element) string {
	if e.Username == "" {
		return ""
	}
	alt := e.Alt
	if alt == "" {
		alt = "GitHub stats"
	}
	url := fmt.Sprintf("https://github-readme-stats.vercel.app/api?username=%s&show_icons=true", e.Username)
	return fmt.Sprintf("![%s](%s)\n\n", alt, url)
}

// badgeEscape applies shields.io static badge escaping: dashes and
// underscores double, spaces become underscores.
func badgeEscape(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
