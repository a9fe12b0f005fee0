package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/internal/editor"
	"github.com/mithrel/readmekit/internal/store"
)

func newDocsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit a library document's JSON in $EDITOR",
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

			initial, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			path, err := editor.TempPath(doc.Name)
			if err != nil {
				return err
			}
			edited, changed, err := editor.OpenAt(path, append(initial, '\n'))
			if err != nil {
				return err
			}
			if !changed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes")
				return nil
			}

			updated, err := decodeDocument(edited, doc.Name)
			if err != nil {
				return err
			}
			updated.Name = doc.Name // renames go through save --name
			if _, _, err := s.Save(cmd.Context(), updated); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", doc.Name)
			return nil
		},
	}
	return cmd
}
