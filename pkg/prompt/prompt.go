// Package prompt builds the analysis prompt handed to an AI coding assistant.
// The tool does not analyze source code itself beyond a keyword scan for
// likely entry points; the heavy lifting is delegated to the assistant via
// the generated text.
package prompt

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poulpybifle/buslog/pkg/log"
	"github.com/poulpybifle/buslog/pkg/store"
)

// maxScanSize caps how much of a file the keyword scan reads.
const maxScanSize = 1 << 20

// EntryPoint is one detected candidate entry point.
type EntryPoint struct {
	Type    string
	File    string
	Keyword string
}

// Generator assembles analysis prompts for one project.
type Generator struct {
	Store    *store.Store
	Patterns []Pattern
}

// NewGenerator returns a Generator over the given store using the bundled
// pattern table.
func NewGenerator(s *store.Store) (*Generator, error) {
	patterns, err := DefaultPatterns()
	if err != nil {
		return nil, err
	}
	return &Generator{Store: s, Patterns: patterns}, nil
}

// Generate builds the full analysis prompt. Project name and languages come
// from the config record when present, otherwise from the directory itself.
func (g *Generator) Generate() (string, error) {
	projectName := filepath.Base(g.Store.ProjectRoot)
	if abs, err := filepath.Abs(g.Store.ProjectRoot); err == nil {
		projectName = filepath.Base(abs)
	}
	var languages []string
	if cfg, err := g.Store.LoadConfig(); err == nil {
		if cfg.ProjectName != "" {
			projectName = cfg.ProjectName
		}
		languages = cfg.Languages
	}

	entryPoints := g.DetectEntryPoints()
	log.Debug("entry point scan finished", "count", len(entryPoints))

	languageList := "Auto-detect"
	if len(languages) > 0 {
		languageList = strings.Join(languages, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, projectName, projectName, languageList, len(entryPoints))
	b.WriteString(promptTask)
	b.WriteString(promptOutputFormat)
	b.WriteString("\n## Detected Entry Points\n\n")
	b.WriteString(FormatEntryPoints(entryPoints))
	b.WriteString(promptGuidelines)
	return b.String(), nil
}

// DetectEntryPoints walks the project tree once and matches every file
// against the pattern table. One hit per file per pattern.
func (g *Generator) DetectEntryPoints() []EntryPoint {
	var found []EntryPoint
	root := g.Store.ProjectRoot

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if shouldSkipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(d.Name())
		var candidates []Pattern
		for _, p := range g.Patterns {
			if matchesExtension(p, ext) {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxScanSize {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		content := string(data)

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		for _, p := range candidates {
			for _, kw := range p.Keywords {
				if strings.Contains(content, kw) {
					found = append(found, EntryPoint{Type: p.Name, File: rel, Keyword: kw})
					break
				}
			}
		}
		return nil
	})

	return found
}

func matchesExtension(p Pattern, ext string) bool {
	if len(p.Extensions) == 0 {
		return true
	}
	for _, e := range p.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func shouldSkipDir(name string) bool {
	switch name {
	case ".git", ".venv", "node_modules", "vendor", "dist", store.DirName:
		return true
	}
	return false
}

// FormatEntryPoints renders detected entry points grouped by pattern type,
// capped at five files per group.
func FormatEntryPoints(entryPoints []EntryPoint) string {
	if len(entryPoints) == 0 {
		return "_No entry points detected. You'll need to explore the codebase manually._\n"
	}

	var order []string
	grouped := map[string][]string{}
	for _, ep := range entryPoints {
		if _, ok := grouped[ep.Type]; !ok {
			order = append(order, ep.Type)
		}
		grouped[ep.Type] = append(grouped[ep.Type], ep.File)
	}

	var b strings.Builder
	for _, epType := range order {
		files := grouped[epType]
		fmt.Fprintf(&b, "### %s\n", epType)
		for i, file := range files {
			if i == 5 {
				fmt.Fprintf(&b, "- _(+%d more)_\n", len(files)-5)
				break
			}
			fmt.Fprintf(&b, "- `%s`\n", file)
		}
		b.WriteString("\n")
	}
	return b.String()
}
