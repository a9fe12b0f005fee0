package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/internal/present"
)

func newPreviewCmd() *cobra.Command {
	var viewFlag string
	cmd := &cobra.Command{
		Use:   "preview <doc.json | name:doc | ->",
		Short: "Open the interactive README preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			opts, err := presentOptions(cmd, viewFlag, "tui", false)
			if err != nil {
				return err
			}
			return present.Render(cmd.Context(), cmd.OutOrStdout(), doc, opts)
		},
	}
	cmd.Flags().StringVar(&viewFlag, "view", "", "initial audience view: developer, recruiter, client")
	return cmd
}
