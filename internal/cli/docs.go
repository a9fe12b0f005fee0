package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/internal/store"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage the local document library",
	}
	cmd.AddCommand(newDocsSaveCmd())
	cmd.AddCommand(newDocsListCmd())
	cmd.AddCommand(newDocsShowCmd())
	cmd.AddCommand(newDocsEditCmd())
	cmd.AddCommand(newDocsDeleteCmd())
	return cmd
}

func newDocsSaveCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "save <doc.json | ->",
		Short: "Save a document into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if name != "" {
				doc.Name = name
			}
			if doc.Name == "" {
				return fmt.Errorf("document has no name; pass --name")
			}

			s, err := getApp(cmd).Store(cmd.Context())
			if err != nil {
				return err
			}
			saved, changed, err := s.Save(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if !changed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s unchanged\n", saved.Name)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d elements)\n", saved.Name, len(saved.Elements))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "library name (overrides the document's own name)")
	return cmd
}

func newDocsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a document from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := getApp(cmd).Store(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no document named %q", args[0])
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
	return cmd
}
