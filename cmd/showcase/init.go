package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/showcase/internal/adapters/cli"
	"github.com/3-lines-studio/showcase/internal/adapters/fs"
	"github.com/3-lines-studio/showcase/internal/initcmd"
)

func newInitCommand() *cobra.Command {
	var (
		templateName string
		siteName     string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a site directory with a starter site.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			out := cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return initcmd.Run(dir, templateName, siteName, fs.NewOSFileSystem(), out)
		},
	}

	cmd.Flags().StringVarP(&templateName, "template", "t", "starter", "template to scaffold from")
	cmd.Flags().StringVar(&siteName, "name", "", "site name (default: derived from the directory)")
	return cmd
}
