package api

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the document content: the
// name plus every element's fields in order. Timestamps and the document
// ID are excluded so an unchanged save can be detected as a no-op.
func (d Document) Hash() string {
	h := blake3.New()

	h.Write([]byte(d.Name))
	h.Write([]byte{0})

	for _, e := range d.Elements {
		writeDelim(h, string(e.Kind))
		writeDelim(h, e.Text)
		writeDelim(h, strconv.Itoa(e.Level))
		writeDelim(h, e.Title)
		writeDelim(h, e.Subtitle)
		writeDelim(h, e.Label)
		writeDelim(h, e.Message)
		writeDelim(h, e.Color)
		for _, it := range e.Items {
			writeDelim(h, it)
		}
		h.Write([]byte{0}) // end of items
		writeDelim(h, strconv.FormatBool(e.Ordered))
		writeDelim(h, e.URL)
		writeDelim(h, e.Alt)
		writeDelim(h, strconv.Itoa(e.Width))
		writeDelim(h, e.Language)
		writeDelim(h, e.Code)
		for _, c := range e.Columns {
			writeDelim(h, c)
		}
		h.Write([]byte{0}) // end of columns
		for _, row := range e.Rows {
			for _, cell := range row {
				writeDelim(h, cell)
			}
			h.Write([]byte{0}) // end of row
		}
		h.Write([]byte{0}) // end of rows
		writeDelim(h, e.Style)
		for _, l := range e.Links {
			writeDelim(h, l.Name)
			writeDelim(h, l.URL)
		}
		h.Write([]byte{0}) // end of links
		writeDelim(h, e.Username)
		h.Write([]byte{0}) // end of element
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}

func writeDelim(h *blake3.Hasher, s string) {
	h.Write([]byte(s))
	h.Write([]byte{0})
}
