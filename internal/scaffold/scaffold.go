package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"go.yaml.in/yaml/v3"
)

//go:embed templates
var templateFS embed.FS

// descriptorName is the per-set metadata file. It is consumed here and
// never rendered into the output directory.
const descriptorName = "template.yaml"

// Descriptor is the template.yaml metadata carried by every template set.
type Descriptor struct {
	Name            string            `yaml:"name"`
	Description     string            `yaml:"description"`
	Scripts         map[string]string `yaml:"scripts,omitempty"`
	Dependencies    []string          `yaml:"dependencies,omitempty"`
	DevDependencies []string          `yaml:"devDependencies,omitempty"`
}

// Data holds the template variables available to scaffold templates.
type Data struct {
	Name        string // normalized project name, e.g. "my-tool"
	Description string // human-readable description
	Author      string // from config, may be empty
	Version     string // semver, e.g. "1.0.0"
	Year        int    // current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir  string
	Files      []string
	Descriptor *Descriptor
}

// NewData creates a Data with derived fields populated.
func NewData(name, author string) *Data {
	return &Data{
		Name:        name,
		Description: fmt.Sprintf("%s project", name),
		Author:      author,
		Version:     "1.0.0",
		Year:        time.Now().Year(),
	}
}

// List returns the names of the available template sets, sorted.
func List() ([]string, error) {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadDescriptor parses the template.yaml of a template set.
func LoadDescriptor(setName string) (*Descriptor, error) {
	data, err := fs.ReadFile(templateFS, filepath.ToSlash(filepath.Join("templates", setName, descriptorName)))
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing %s for set %q: %w", descriptorName, setName, err)
	}
	return &d, nil
}

// Generate renders a template set into outputDir. It refuses to write into
// a non-empty directory so existing work is never clobbered.
func Generate(setName string, data *Data, outputDir string) (*Result, error) {
	desc, err := LoadDescriptor(setName)
	if err != nil {
		return nil, err
	}

	setDir := "templates/" + setName
	entries, err := fs.ReadDir(templateFS, setDir)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{
		OutputDir:  outputDir,
		Descriptor: desc,
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == descriptorName {
			continue
		}

		tmplPath := setDir + "/" + entry.Name()
		tmplBytes, err := fs.ReadFile(templateFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		// Strip .tmpl extension for the output filename. Files named
		// "dot.<name>.tmpl" become dotfiles ("dot.gitignore" → ".gitignore"),
		// keeping the embedded tree free of hidden files.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		if rest, ok := strings.CutPrefix(outName, "dot."); ok {
			outName = "." + rest
		}
		outPath := filepath.Join(outputDir, outName)

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	sort.Strings(result.Files)
	return result, nil
}
