package format

import (
	"io"

	"github.com/mithrel/readmekit/internal/markdown"
	"github.com/mithrel/readmekit/pkg/api"
)

// WriteMarkdown writes the raw generated markdown for the given elements.
func WriteMarkdown(w io.Writer, elements []api.Element) error {
	_, err := io.WriteString(w, markdown.Generate(elements))
	return err
}
