package present

import (
	"context"
	"io"

	"github.com/mithrel/readmekit/internal/present/format"
	"github.com/mithrel/readmekit/internal/present/tui"
	"github.com/mithrel/readmekit/pkg/api"
)

type Mode int

const (
	ModeMarkdown Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
	ModeTUI
)

type Options struct {
	Mode       Mode
	View       api.ViewMode
	JSONIndent bool
	Style      string // glamour style name for pretty/tui output
	WordWrap   int
	ExportDir  string
	ExportName string
}

// ParseMode parses a string like "markdown", "pretty", "json", "ndjson", "tui".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "markdown", "md":
		return ModeMarkdown, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	case "tui":
		return ModeTUI, true
	default:
		return ModeMarkdown, false
	}
}

// Render filters the document for the requested view and writes it in the
// requested output mode. The TUI mode takes over the terminal and ignores w.
func Render(ctx context.Context, w io.Writer, doc api.Document, opts Options) error {
	visible := api.Filter(doc.Elements, opts.View)
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONElements(w, visible, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONElements(w, visible)
	case ModePretty:
		return format.WritePretty(w, visible, opts.Style, opts.WordWrap)
	case ModeTUI:
		return tui.RenderPreview(ctx, doc, tui.Options{
			View:       opts.View,
			Style:      opts.Style,
			WordWrap:   opts.WordWrap,
			ExportDir:  opts.ExportDir,
			ExportName: opts.ExportName,
		})
	default:
		return format.WriteMarkdown(w, visible)
	}
}
