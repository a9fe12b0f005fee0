package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mithrel/readmekit/pkg/api"
)

// FormatDocument returns a human-readable detail view of a library
// document, matching the `docs show` output.
func FormatDocument(d api.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", d.Name)
	fmt.Fprintf(&b, "ID: %s\n", d.ID)
	fmt.Fprintf(&b, "Hash: %s\n", d.Hash())
	fmt.Fprintf(&b, "Updated: %s\n", humanize.Time(d.UpdatedAt))
	fmt.Fprintf(&b, "Elements: %d\n", len(d.Elements))
	b.WriteString("---\n")
	for i, e := range d.Elements {
		fmt.Fprintf(&b, "%2d. %-14s %s\n", i+1, e.Kind, elementSummary(e))
	}
	return b.String()
}

// elementSummary picks the most descriptive field for a one-line listing.
func elementSummary(e api.Element) string {
	switch {
	case e.Text != "":
		return truncate(firstLine(e.Text), 60)
	case e.Title != "":
		return truncate(e.Title, 60)
	case e.Label != "":
		return truncate(e.Label, 60)
	case len(e.Items) > 0:
		return truncate(strings.Join(e.Items, ", "), 60)
	case len(e.Columns) > 0:
		return fmt.Sprintf("%d columns, %d rows", len(e.Columns), len(e.Rows))
	case e.URL != "":
		return truncate(e.URL, 60)
	case e.Username != "":
		return e.Username
	default:
		return ""
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
