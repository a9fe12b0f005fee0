package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/internal/ui"
	"github.com/mithrel/readmekit/pkg/api"
)

func newDocsListCmd() *cobra.Command {
	var filter string
	var plain bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List library documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := getApp(cmd).Store(cmd.Context())
			if err != nil {
				return err
			}
			docs, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			if filter != "" {
				docs = fuzzyFilterDocs(docs, filter)
			}
			if len(docs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no documents")
				return nil
			}
			if plain {
				return writePlainDocs(cmd, docs)
			}
			return ui.RenderDocumentsTable(cmd.Context(), docs)
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy filter on document names")
	cmd.Flags().BoolVar(&plain, "plain", false, "plain tab-separated output instead of the table UI")
	return cmd
}

// fuzzyFilterDocs keeps documents whose name fuzzy-matches the pattern,
// best matches first.
func fuzzyFilterDocs(docs []api.Document, pattern string) []api.Document {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	matches := fuzzy.Find(pattern, names)
	out := make([]api.Document, 0, len(matches))
	for _, m := range matches {
		out = append(out, docs[m.Index])
	}
	return out
}

func writePlainDocs(cmd *cobra.Command, docs []api.Document) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, d := range docs {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			d.Name, len(d.Elements), d.UpdatedAt.UTC().Format("2006-01-02 15:04"), d.ID)
	}
	return tw.Flush()
}
