package prompt

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed patterns.yml
var defaultPatternsYAML []byte

// Pattern describes one family of entry points to look for.
type Pattern struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
	Keywords   []string `yaml:"keywords"`
}

type patternFile struct {
	Patterns []Pattern `yaml:"patterns"`
}

// DefaultPatterns returns the bundled pattern table.
func DefaultPatterns() ([]Pattern, error) {
	return parsePatterns(defaultPatternsYAML)
}

// LoadPatterns reads a pattern table from a YAML file, for projects that want
// to extend the bundled defaults.
func LoadPatterns(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patterns: %w", err)
	}
	return parsePatterns(data)
}

func parsePatterns(data []byte) ([]Pattern, error) {
	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing patterns: %w", err)
	}
	return file.Patterns, nil
}
