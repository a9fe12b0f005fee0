package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/internal/export"
	"github.com/mithrel/readmekit/internal/markdown"
	"github.com/mithrel/readmekit/pkg/api"
)

func newExportCmd() *cobra.Command {
	var viewFlag, dir, name string
	cmd := &cobra.Command{
		Use:   "export <doc.json | name:doc | ->",
		Short: "Generate markdown and write it as a README file",
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
			cfg := getApp(cmd).Cfg
			if dir == "" {
				dir = cfg.GetString("export.dir")
			}
			if name == "" {
				name = cfg.GetString("export.filename")
			}

			md := markdown.Generate(api.Filter(doc.Elements, view))
			path, err := export.WriteFile(dir, name, md)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s view)\n", path, view)
			return nil
		},
	}
	cmd.Flags().StringVar(&viewFlag, "view", "", "audience view: developer, recruiter, client")
	cmd.Flags().StringVar(&dir, "dir", "", "directory to write into (default export.dir or current directory)")
	cmd.Flags().StringVar(&name, "name", "", "output filename (default export.filename)")
	return cmd
}
