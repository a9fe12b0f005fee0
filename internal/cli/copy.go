package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/internal/export"
	"github.com/mithrel/readmekit/internal/markdown"
	"github.com/mithrel/readmekit/pkg/api"
)

func newCopyCmd() *cobra.Command {
	var viewFlag string
	cmd := &cobra.Command{
		Use:   "copy <doc.json | name:doc | ->",
		Short: "Generate markdown and place it on the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			view, err := resolveView(cmd, viewFlag)
			if err != nil {
				return err
			}
			md := markdown.Generate(api.Filter(doc.Elements, view))
			if err := export.Clipboard(md); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Copied %d bytes to clipboard (%s view)\n", len(md), view)
			return nil
		},
	}
	cmd.Flags().StringVar(&viewFlag, "view", "", "audience view: developer, recruiter, client")
	return cmd
}

func resolveView(cmd *cobra.Command, viewFlag string) (api.ViewMode, error) {
	viewStr := viewFlag
	if viewStr == "" {
		viewStr = getApp(cmd).Cfg.GetString("view")
	}
	view, ok := api.ParseViewMode(viewStr)
	if !ok {
		return api.ViewDeveloper, fmt.Errorf("unknown view %q", viewStr)
	}
	return view, nil
}
