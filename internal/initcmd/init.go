package initcmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	localfs "github.com/3-lines-studio/showcase/internal/adapters/fs"
	"github.com/3-lines-studio/showcase/internal/content"
	"github.com/3-lines-studio/showcase/internal/templates"
	"github.com/3-lines-studio/showcase/internal/usecase"
)

// Run scaffolds a site directory from templateName. The directory must be
// missing or empty.
func Run(projectDir, templateName, siteName string, fsys localfs.FileSystem, out usecase.CLIOutput) error {
	out.PrintHeader("Showcase Init")

	if entries, err := fsys.ReadDir(projectDir); err == nil && len(entries) > 0 {
		return fmt.Errorf("directory '%s' already exists and is not empty", projectDir)
	}

	templateFS, err := templates.GetTemplate(templateName)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidTemplate) {
			return fmt.Errorf("invalid template '%s' (available: %v)", templateName, templates.Names())
		}
		return err
	}

	if siteName == "" {
		siteName = templates.DeriveSiteName(projectDir)
	}
	data := templates.TemplateData{Site: siteName}

	if err := fsys.MkdirAll(projectDir, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	createdCount := 0
	err = fs.WalkDir(templateFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		raw, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		targetPath, isTemplate := templates.ProcessFilename(path)
		targetPath = filepath.Join(projectDir, targetPath)
		processed := templates.ProcessContent(raw, isTemplate, data)

		if filepath.Ext(targetPath) == ".yaml" {
			if _, err := content.Decode(bytes.NewReader(processed)); err != nil {
				return fmt.Errorf("template %s produced an invalid site: %w", path, err)
			}
		}

		if err := fsys.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", targetPath, err)
		}
		if err := fsys.WriteFile(targetPath, processed, 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		out.PrintFile(targetPath)
		createdCount++
		return nil
	})
	if err != nil {
		return err
	}

	out.PrintSuccess("Created %d files for %s", createdCount, siteName)
	out.PrintDone(fmt.Sprintf("\nNext: cd %s && showcase serve", projectDir))
	return nil
}
