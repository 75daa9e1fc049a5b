package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/showcase/internal/adapters/cli"
	"github.com/3-lines-studio/showcase/internal/adapters/html"
	"github.com/3-lines-studio/showcase/internal/adapters/jsonview"
	"github.com/3-lines-studio/showcase/internal/core"
)

var errCheckFailed = errors.New("check failed")

func newCheckCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate site content, routes and rendering",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}

			out := cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintHeader("Showcase Check")

			site, source, err := loadSite(cfg)
			report := cli.NewCheckReport(out, source)
			if err != nil {
				report.Fail("content parses", err)
				report.Render()
				return errCheckFailed
			}
			report.Pass("content parses")
			report.SetPageCount(len(site.Pages))

			checkSite(report, site)
			report.Render()
			if report.HasFailures() {
				return errCheckFailed
			}
			return nil
		},
	}
}

func checkSite(report *cli.CheckReport, site core.Site) {
	if err := site.Validate(); err != nil {
		report.Fail("site is valid", err)
		return
	}
	report.Pass("site is valid")

	renderer := core.NewPageRenderer(nil)
	backends := []core.Backend{html.New(), jsonview.New()}
	renderFailed := false
	unresolved := false

	for _, page := range site.Pages {
		root, err := renderer.Render(page.Page)
		if err != nil {
			report.AddError(page.Name, "render failed", []string{err.Error()})
			renderFailed = true
			continue
		}

		doc := core.Document{Site: site.Name, Page: page.Name, Meta: page.Meta, Root: root}
		for _, b := range backends {
			if err := b.Render(io.Discard, doc); err != nil {
				report.AddError(page.Name, fmt.Sprintf("%s output failed", b.Format()), []string{err.Error()})
				renderFailed = true
			}
		}

		var missing []string
		for _, action := range core.Actions(root) {
			if _, ok := site.Routes[action.Action.Destination]; !ok {
				missing = append(missing, fmt.Sprintf("%s -> %s", action.ID, action.Action.Destination))
			}
		}
		if len(missing) > 0 {
			report.AddError(page.Name, "links point at unknown route keys", missing)
			unresolved = true
		}

		var noAlt []string
		core.Walk(&root, func(n *core.Node) bool {
			if n.Kind == core.NodeImage && n.Alt == "" {
				noAlt = append(noAlt, n.Src)
			}
			return true
		})
		if len(noAlt) > 0 {
			report.AddWarning(page.Name, "images without alt text", noAlt)
		}
	}

	if renderFailed {
		report.Fail("pages render", errors.New("see errors below"))
	} else {
		report.Pass("pages render")
	}
	if unresolved {
		report.Fail("links resolve", errors.New("see errors below"))
	} else {
		report.Pass("links resolve")
	}
}
