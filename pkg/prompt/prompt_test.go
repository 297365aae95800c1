package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poulpybifle/buslog/pkg/store"
)

func newTestGenerator(t *testing.T) (*Generator, *store.Store) {
	t.Helper()
	s := store.New(t.TempDir())
	g, err := NewGenerator(s)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g, s
}

func TestDefaultPatterns(t *testing.T) {
	patterns, err := DefaultPatterns()
	if err != nil {
		t.Fatalf("DefaultPatterns: %v", err)
	}
	if len(patterns) == 0 {
		t.Fatal("expected bundled patterns, got none")
	}
	for _, p := range patterns {
		if p.Name == "" {
			t.Error("pattern with empty name")
		}
		if len(p.Keywords) == 0 {
			t.Errorf("pattern %q has no keywords", p.Name)
		}
	}
}

func TestDetectEntryPoints(t *testing.T) {
	g, s := newTestGenerator(t)

	writeFile(t, filepath.Join(s.ProjectRoot, "api.py"), "@app.get('/users')\ndef users(): ...\n")
	writeFile(t, filepath.Join(s.ProjectRoot, "server.js"), "app.get('/health', handler)\n")
	writeFile(t, filepath.Join(s.ProjectRoot, "readme.txt"), "app.get mentioned in prose\n")
	writeFile(t, filepath.Join(s.ProjectRoot, "node_modules", "dep", "index.js"), "app.get('/skip', handler)\n")

	entryPoints := g.DetectEntryPoints()

	byFile := map[string][]string{}
	for _, ep := range entryPoints {
		byFile[ep.File] = append(byFile[ep.File], ep.Type)
	}

	if len(byFile["api.py"]) == 0 {
		t.Error("expected api.py to be detected")
	}
	if len(byFile["server.js"]) == 0 {
		t.Error("expected server.js to be detected")
	}
	if len(byFile["readme.txt"]) != 0 {
		t.Error("non-source extension should not match")
	}
	for file := range byFile {
		if strings.Contains(file, "node_modules") {
			t.Errorf("node_modules should be skipped, matched %s", file)
		}
	}
}

func TestDetectEntryPointsOneHitPerFilePerPattern(t *testing.T) {
	g, s := newTestGenerator(t)

	// Two keywords of the same pattern in one file must yield one hit.
	writeFile(t, filepath.Join(s.ProjectRoot, "api.py"), "@app.get\n@router.post\n")

	entryPoints := g.DetectEntryPoints()
	count := 0
	for _, ep := range entryPoints {
		if ep.Type == "Python FastAPI/Flask" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 1 hit for the FastAPI pattern, got %d", count)
	}
}

func TestGenerateUsesConfig(t *testing.T) {
	g, s := newTestGenerator(t)
	writeFile(t, filepath.Join(s.ProjectRoot, "main.go"), "package main\n")
	if _, err := s.Initialize("Acme Shop"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	out, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, want := range []string{
		"**Acme Shop**",
		"- **Languages**: Go",
		"## Output Format",
		"## Déclencheurs",
		"## Detected Entry Points",
		"## Analysis Guidelines",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateWithoutConfig(t *testing.T) {
	g, _ := newTestGenerator(t)

	out, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "- **Languages**: Auto-detect") {
		t.Error("expected Auto-detect languages without config")
	}
	if !strings.Contains(out, "_No entry points detected") {
		t.Error("expected empty entry point placeholder")
	}
}

func TestFormatEntryPointsCapsGroups(t *testing.T) {
	var eps []EntryPoint
	for i := 0; i < 8; i++ {
		eps = append(eps, EntryPoint{Type: "CLI Commands", File: "cmd" + string(rune('a'+i)) + ".go"})
	}
	out := FormatEntryPoints(eps)
	if !strings.Contains(out, "### CLI Commands") {
		t.Error("missing group heading")
	}
	if !strings.Contains(out, "_(+3 more)_") {
		t.Errorf("expected +3 more marker, got:\n%s", out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
