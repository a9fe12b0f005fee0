package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/pkg/api"
)

func newInitCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample element document to get started",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := sampleDocument()
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if _, err := os.Stat(out); err == nil {
				return fmt.Errorf("%s already exists", out)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "readme.json", "output path, or - for stdout")
	return cmd
}

// sampleDocument covers one element of each commonly used kind so the
// generated file doubles as format documentation.
func sampleDocument() api.Document {
	return api.Document{
		Name: "sample",
		Elements: []api.Element{
			{ID: api.NewID(), Kind: api.KindBanner, Title: "Project Name", Subtitle: "One line about what it does"},
			{ID: api.NewID(), Kind: api.KindBadge, Label: "build", Message: "passing", Color: "brightgreen"},
			{ID: api.NewID(), Kind: api.KindTechStack, Items: []string{"Go", "SQLite", "Docker"}},
			{ID: api.NewID(), Kind: api.KindDivider, Style: "dots"},
			{ID: api.NewID(), Kind: api.KindHeader, Text: "About", Level: 2},
			{ID: api.NewID(), Kind: api.KindText, Text: "Longer description aimed at every audience."},
			{ID: api.NewID(), Kind: api.KindInstallation, Items: []string{"git clone https://example.com/project.git", "cd project", "make install"}},
			{ID: api.NewID(), Kind: api.KindCodeBlock, Language: "go", Code: "func main() {\n\tfmt.Println(\"hello\")\n}"},
			{ID: api.NewID(), Kind: api.KindTable, Columns: []string{"Flag", "Meaning"}, Rows: [][]string{{"--view", "audience filter"}, {"--out", "output file"}}},
			{ID: api.NewID(), Kind: api.KindQuote, Text: "Ship the README with the code."},
			{ID: api.NewID(), Kind: api.KindSocials, Links: []api.Link{{Name: "Website", URL: "https://example.com"}, {Name: "GitHub", URL: "https://github.com/example"}}},
			{ID: api.NewID(), Kind: api.KindStats, Username: "example"},
		},
	}
}
