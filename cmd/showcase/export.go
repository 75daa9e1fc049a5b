package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/showcase"
	"github.com/3-lines-studio/showcase/internal/adapters/cli"
)

func newExportCommand(root *rootOptions) *cobra.Command {
	var (
		dir   string
		clean bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page as static HTML and JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.ExportDir = dir
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			out := cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
			app, err := newApp(cfg, logger)
			if err != nil {
				out.PrintError("%v", err)
				return err
			}

			_, err = app.Export(cmd.Context(), showcase.ExportOptions{
				Dir:    cfg.ExportDir,
				Clean:  clean,
				Output: out,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "out", "o", "", "output directory (default: SHOWCASE_EXPORT_DIR)")
	cmd.Flags().BoolVar(&clean, "clean", false, "remove the output directory first")
	return cmd
}
