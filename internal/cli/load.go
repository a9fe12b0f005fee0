package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/pkg/api"
)

// libraryPrefix marks a document argument as a library name instead of a path.
const libraryPrefix = "name:"

// loadDocument resolves a document argument: "-" reads JSON from stdin,
// "name:<x>" loads from the library, anything else is a JSON file path.
// The file may contain either a full Document or a bare element array.
func loadDocument(cmd *cobra.Command, arg string) (api.Document, error) {
	if strings.HasPrefix(arg, libraryPrefix) {
		name := strings.TrimPrefix(arg, libraryPrefix)
		app := getApp(cmd)
		s, err := app.Store(cmd.Context())
		if err != nil {
			return api.Document{}, err
		}
		return s.Get(cmd.Context(), name)
	}

	var r io.Reader
	name := "stdin"
	if arg == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return api.Document{}, err
		}
		defer f.Close()
		r = f
		name = strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return api.Document{}, err
	}
	return decodeDocument(data, name)
}

// decodeDocument accepts a Document object or a bare element array.
func decodeDocument(data []byte, fallbackName string) (api.Document, error) {
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "[") {
		var elements []api.Element
		if err := json.Unmarshal(data, &elements); err != nil {
			return api.Document{}, fmt.Errorf("failed to parse element array: %w", err)
		}
		return api.Document{Name: fallbackName, Elements: elements}, nil
	}

	var doc api.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return api.Document{}, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Name == "" {
		doc.Name = fallbackName
	}
	return doc, nil
}
