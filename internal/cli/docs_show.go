package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/internal/store"
	"github.com/mithrel/readmekit/internal/ui"
)

func newDocsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Display a library document's metadata and elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := getApp(cmd).Store(cmd.Context())
			if err != nil {
				return err
			}
			doc, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no document named %q", args[0])
				}
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), ui.FormatDocument(doc))
			return nil
		},
	}
	return cmd
}
