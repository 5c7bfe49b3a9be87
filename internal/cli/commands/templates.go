package commands

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed all:templates
var templateFS embed.FS

// templateData is passed to files ending in .tmpl.
type templateData struct {
	Backend string
}

// copyTemplate copies an embedded template directory to targetDir.
// Files ending in .tmpl are executed with data and written without the
// suffix. Existing files are kept unless force is set.
func copyTemplate(templateName, targetDir string, data templateData, force bool) ([]string, error) {
	root := filepath.ToSlash(filepath.Join("templates", templateName))
	var written []string

	err := fs.WalkDir(templateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath := strings.TrimPrefix(strings.TrimPrefix(path, root), "/")
		if relPath == "" {
			return nil
		}
		targetPath := filepath.Join(targetDir, filepath.FromSlash(strings.TrimSuffix(relPath, ".tmpl")))

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0750)
		}

		if !force {
			if _, err := os.Stat(targetPath); err == nil {
				return nil
			}
		}

		content, err := templateFS.ReadFile(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, ".tmpl") {
			tmpl, err := template.New(relPath).Parse(string(content))
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, data); err != nil {
				return err
			}
			content = buf.Bytes()
		}

		if err := os.WriteFile(targetPath, content, 0600); err != nil {
			return err
		}
		written = append(written, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})

	return written, err
}
