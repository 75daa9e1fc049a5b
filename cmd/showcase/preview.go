package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPreviewCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [page]",
		Short: "Print a page outline to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}

			app, err := newApp(cfg, zap.NewNop())
			if err != nil {
				return err
			}

			var name string
			switch {
			case len(args) == 1:
				name = args[0]
			case len(app.Site().Pages) > 0:
				name = app.Site().Pages[0].Name
			default:
				return errors.New("site has no pages")
			}
			return app.Preview(cmd.OutOrStdout(), name, !root.noColor)
		},
	}
}
