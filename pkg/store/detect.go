package store

import (
	"io/fs"
	"path/filepath"
	"sort"
)

var languageExtensions = map[string]string{
	".py":   "Python",
	".js":   "JavaScript",
	".ts":   "TypeScript",
	".java": "Java",
	".go":   "Go",
	".rs":   "Rust",
	".rb":   "Ruby",
	".php":  "PHP",
	".cs":   "C#",
	".cpp":  "C++",
	".c":    "C",
}

var skipDirs = map[string]bool{
	".git":         true,
	".venv":        true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	DirName:        true,
}

// detectLanguages walks the project tree and maps file extensions to language
// names. Used once at init time to seed config.json.
func (s *Store) detectLanguages() []string {
	seen := map[string]bool{}
	_ = filepath.WalkDir(s.ProjectRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are not fatal here
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if lang, ok := languageExtensions[filepath.Ext(d.Name())]; ok {
			seen[lang] = true
		}
		return nil
	})

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
