package usecase

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/3-lines-studio/showcase/internal/core"
	"github.com/3-lines-studio/showcase/internal/logging"
)

const (
	manifestFile = "manifest.json"
	staticDir    = "static"
)

type ExportInput struct {
	OutDir string
	// Clean removes OutDir before writing.
	Clean bool
}

type ExportOutput struct {
	Manifest *core.Manifest
	Files    []string
	Error    error
}

// AssetSource lists and reads the files copied under static/.
type AssetSource interface {
	Files() ([]string, error)
	ReadFile(path string) ([]byte, error)
}

type ExportService struct {
	site     core.Site
	renderer *core.PageRenderer
	html     Backend
	json     Backend
	assets   AssetSource
	fs       FileSystem
	output   CLIOutput
}

// NewExportService writes every page of site through html and, when non-nil,
// json. assets may be nil.
func NewExportService(site core.Site, html, json Backend, assets AssetSource, fs FileSystem, output CLIOutput) *ExportService {
	return &ExportService{
		site:     site,
		renderer: core.NewPageRenderer(nil),
		html:     html,
		json:     json,
		assets:   assets,
		fs:       fs,
		output:   output,
	}
}

func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	logger := logging.FromContext(ctx)
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("export: output directory is required")}
	}

	s.output.PrintHeader(fmt.Sprintf("Exporting %s", s.site.Name))

	if input.Clean {
		if err := s.fs.RemoveAll(input.OutDir); err != nil {
			return ExportOutput{Error: fmt.Errorf("clean %s: %w", input.OutDir, err)}
		}
	}
	if err := s.fs.MkdirAll(input.OutDir, 0o755); err != nil {
		return ExportOutput{Error: fmt.Errorf("create %s: %w", input.OutDir, err)}
	}

	manifest := &core.Manifest{
		Site:    s.site.Name,
		Entries: make(map[string]core.ManifestEntry, len(s.site.Pages)),
	}
	var files []string

	for _, page := range s.site.Pages {
		if err := ctx.Err(); err != nil {
			return ExportOutput{Error: err}
		}

		htmlPath := core.OutputPathForPattern(page.Pattern)
		body, err := renderDocument(s.renderer, s.html, s.site, page)
		if err != nil {
			s.output.PrintError("%s: %v", page.Name, err)
			return ExportOutput{Error: err}
		}
		if err := s.write(input.OutDir, htmlPath, body); err != nil {
			return ExportOutput{Error: err}
		}
		files = append(files, htmlPath)

		entry := core.ManifestEntry{
			Pattern: core.NormalizePath(page.Pattern),
			HTML:    htmlPath,
			ETag:    core.ETag(body),
		}

		if s.json != nil {
			jsonPath := strings.TrimSuffix(htmlPath, ".html") + ".json"
			data, err := renderDocument(s.renderer, s.json, s.site, page)
			if err != nil {
				s.output.PrintError("%s: %v", page.Name, err)
				return ExportOutput{Error: err}
			}
			if err := s.write(input.OutDir, jsonPath, data); err != nil {
				return ExportOutput{Error: err}
			}
			files = append(files, jsonPath)
			entry.JSON = jsonPath
		}

		manifest.Entries[core.EntryNameForPattern(page.Pattern)] = entry
		s.output.PrintStep("📄", "%s -> %s", entry.Pattern, htmlPath)
		logger.Debug("page exported", zap.String("page", page.Name), zap.String("file", htmlPath))
	}

	assets, err := s.copyAssets(input.OutDir)
	if err != nil {
		return ExportOutput{Error: err}
	}
	manifest.Assets = assets
	files = append(files, assets...)
	if len(assets) > 0 {
		s.output.PrintStep("📦", "Copied %d static assets", len(assets))
	}

	data, err := manifest.Encode()
	if err != nil {
		return ExportOutput{Error: fmt.Errorf("encode manifest: %w", err)}
	}
	if err := s.write(input.OutDir, manifestFile, data); err != nil {
		return ExportOutput{Error: err}
	}
	files = append(files, manifestFile)

	s.output.PrintSuccess("Exported %d pages to %s", len(s.site.Pages), input.OutDir)
	return ExportOutput{Manifest: manifest, Files: files}
}

func (s *ExportService) copyAssets(outDir string) ([]string, error) {
	if s.assets == nil {
		return nil, nil
	}

	names, err := s.assets.Files()
	if err != nil {
		return nil, fmt.Errorf("list static assets: %w", err)
	}

	copied := make([]string, 0, len(names))
	for _, name := range names {
		data, err := s.assets.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read static asset %s: %w", name, err)
		}
		rel := path.Join(staticDir, name)
		if err := s.write(outDir, rel, data); err != nil {
			return nil, err
		}
		copied = append(copied, rel)
	}
	return copied, nil
}

func (s *ExportService) write(outDir, rel string, data []byte) error {
	full := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := s.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := s.fs.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
