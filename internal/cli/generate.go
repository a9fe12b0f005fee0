package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mithrel/readmekit/internal/present"
	"github.com/mithrel/readmekit/pkg/api"
)

func newGenerateCmd() *cobra.Command {
	var viewFlag, outputFlag, outFile string
	var indent bool
	cmd := &cobra.Command{
		Use:   "generate <doc.json | name:doc | ->",
		Short: "Generate markdown (or JSON) from an element document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			opts, err := presentOptions(cmd, viewFlag, outputFlag, indent)
			if err != nil {
				return err
			}
			if opts.Mode == present.ModeTUI {
				return fmt.Errorf("use the preview command for tui output")
			}

			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return err
				}
				defer f.Close()
				return present.Render(cmd.Context(), f, doc, opts)
			}
			return present.Render(cmd.Context(), cmd.OutOrStdout(), doc, opts)
		},
	}
	cmd.Flags().StringVar(&viewFlag, "view", "", "audience view: developer, recruiter, client")
	cmd.Flags().StringVar(&outputFlag, "output", "", "output mode: markdown, pretty, json, ndjson")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	return cmd
}

// presentOptions merges flags over config defaults.
func presentOptions(cmd *cobra.Command, viewFlag, outputFlag string, indent bool) (present.Options, error) {
	cfg := getApp(cmd).Cfg

	viewStr := viewFlag
	if viewStr == "" {
		viewStr = cfg.GetString("view")
	}
	view, ok := api.ParseViewMode(viewStr)
	if !ok {
		return present.Options{}, fmt.Errorf("unknown view %q", viewStr)
	}

	modeStr := outputFlag
	if modeStr == "" {
		modeStr = cfg.GetString("output")
	}
	mode, ok := present.ParseMode(modeStr)
	if !ok {
		return present.Options{}, fmt.Errorf("unknown output mode %q", modeStr)
	}

	return present.Options{
		Mode:       mode,
		View:       view,
		JSONIndent: indent,
		Style:      cfg.GetString("style"),
		WordWrap:   cfg.GetInt("word_wrap"),
		ExportDir:  cfg.GetString("export.dir"),
		ExportName: cfg.GetString("export.filename"),
	}, nil
}
