package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"github.com/mithrel/readmekit/internal/markdown"
	"github.com/mithrel/readmekit/pkg/api"
)

// WritePretty renders the generated markdown for the terminal using glamour.
func WritePretty(w io.Writer, elements []api.Element, style string, wrap int) error {
	if style == "" {
		style = "dracula"
	}
	if wrap <= 0 {
		wrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(markdown.Generate(elements))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
