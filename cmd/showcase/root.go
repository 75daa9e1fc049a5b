package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3-lines-studio/showcase"
	"github.com/3-lines-studio/showcase/internal/adapters/fs"
	"github.com/3-lines-studio/showcase/internal/config"
	"github.com/3-lines-studio/showcase/internal/content"
	"github.com/3-lines-studio/showcase/internal/core"
	"github.com/3-lines-studio/showcase/internal/logging"
)

type rootOptions struct {
	envFile     string
	contentPath string
	noColor     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "showcase",
		Short:        "Render and serve section-based landing pages",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.StringVar(&opts.contentPath, "content", "", "site YAML file (default: SHOWCASE_CONTENT or the bundled site)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newServeCommand(opts),
		newExportCommand(opts),
		newPreviewCommand(opts),
		newCheckCommand(opts),
		newInitCommand(),
	)
	return cmd
}

func (o *rootOptions) config() (*config.Config, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}
	if o.contentPath != "" {
		cfg.ContentPath = o.contentPath
	}
	return cfg, nil
}

func loadSite(cfg *config.Config) (core.Site, string, error) {
	if cfg.ContentPath == "" {
		site, err := content.Default()
		return site, "bundled:" + content.DefaultSitePath, err
	}
	site, err := content.LoadFile(fs.NewOSFileSystem(), cfg.ContentPath)
	return site, cfg.ContentPath, err
}

func newApp(cfg *config.Config, logger *zap.Logger) (*showcase.App, error) {
	site, _, err := loadSite(cfg)
	if err != nil {
		return nil, err
	}

	opts := []showcase.Option{
		showcase.WithDev(cfg.Mode() == config.ModeDev),
		showcase.WithCacheTTL(cfg.CacheTTL),
		showcase.WithLogger(logger),
	}
	if cfg.Markdown {
		opts = append(opts, showcase.WithMarkdown())
	}
	return showcase.New(site, opts...)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.NewLogger(cfg.LogLevel, cfg.Mode() == config.ModeDev)
}
