// Package store is the file-backed record store behind buslog. It owns the
// .business-logic/ layout: one markdown file per workflow, one JSON file per
// workflow's annotations, plus the project config record and index page.
//
// The store keeps no state between calls. Every operation reads the directory
// as it is on disk, so files added or removed by hand (or by git) are always
// visible. Annotation appends are read-modify-write without a cross-process
// lock: two processes appending to the same workflow at the same time can lose
// one entry. That is a documented limitation, not a bug to paper over with
// caching or in-memory indexes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	// DirName is the documentation root created inside the project.
	DirName = ".business-logic"

	workflowsDirName   = "workflows"
	annotationsDirName = "annotations"
	configFileName     = "config.json"
	indexFileName      = "index.md"

	// SchemaVersion marks the config.json layout version.
	SchemaVersion = "0.1.0"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Store provides CRUD over workflow records and annotations for one project.
// The project root is explicit; there is no implicit "current project".
type Store struct {
	ProjectRoot string

	now func() time.Time
}

// New returns a Store rooted at projectRoot.
func New(projectRoot string) *Store {
	return &Store{
		ProjectRoot: projectRoot,
		now:         time.Now,
	}
}

// Dir returns the documentation root path.
func (s *Store) Dir() string { return filepath.Join(s.ProjectRoot, DirName) }

// WorkflowsDir returns the directory holding workflow markdown files.
func (s *Store) WorkflowsDir() string { return filepath.Join(s.Dir(), workflowsDirName) }

// AnnotationsDir returns the directory holding annotation JSON files.
func (s *Store) AnnotationsDir() string { return filepath.Join(s.Dir(), annotationsDirName) }

// ConfigPath returns the path of the config record.
func (s *Store) ConfigPath() string { return filepath.Join(s.Dir(), configFileName) }

// IndexPath returns the path of the landing document.
func (s *Store) IndexPath() string { return filepath.Join(s.Dir(), indexFileName) }

func (s *Store) workflowPath(slug string) string {
	return filepath.Join(s.WorkflowsDir(), slug+".md")
}

func (s *Store) annotationPath(slug string) string {
	return filepath.Join(s.AnnotationsDir(), slug+".json")
}

// Settings holds display preferences stored in config.json.
type Settings struct {
	AutoDetect        bool   `json:"auto_detect"`
	MermaidTheme      string `json:"mermaid_theme"`
	ShowLineNumbers   bool   `json:"show_line_numbers"`
	CollapseByDefault bool   `json:"collapse_by_default"`
}

// Metadata holds repository information stored in config.json.
type Metadata struct {
	Repository string   `json:"repository"`
	MainBranch string   `json:"main_branch"`
	Authors    []string `json:"authors"`
}

// Config is the project configuration record persisted as config.json.
type Config struct {
	ProjectName string   `json:"project_name"`
	Version     string   `json:"version"`
	CreatedAt   string   `json:"created_at"`
	Languages   []string `json:"languages"`
	Frameworks  []string `json:"frameworks"`
	Workflows   []string `json:"workflows"`
	Settings    Settings `json:"settings"`
	Metadata    Metadata `json:"metadata"`
}

// Workflow is one workflow record read from disk.
type Workflow struct {
	Slug       string    `json:"slug"`
	Path       string    `json:"path"`
	Content    string    `json:"content"`
	ModifiedAt time.Time `json:"modified"`
}

// WorkflowSummary is one entry of a workflow listing.
type WorkflowSummary struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	File        string `json:"file"`
	Description string `json:"description"`
}

// Annotation is a timestamped team note attached to a workflow.
type Annotation struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Date   string `json:"date"`
}

type annotationFile struct {
	Annotations []Annotation `json:"annotations"`
}

// ValidateSlug checks the workflow identifier grammar: lowercase ASCII
// letters, digits and hyphens, non-empty, no leading/trailing/double hyphens.
// The grammar excludes path separators by construction.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %q (use lowercase letters, digits and hyphens, e.g. user-authentication)", ErrInvalidSlug, slug)
	}
	return nil
}

// IsInitialized reports whether the documentation root exists with its config
// record and workflows directory.
func (s *Store) IsInitialized() bool {
	for _, p := range []string{s.Dir(), s.ConfigPath(), s.WorkflowsDir()} {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}

// Initialize creates the documentation root, its subdirectories, the config
// record and the index page. It fails with ErrAlreadyInitialized when a config
// record is already present and leaves the directory untouched in that case.
// An empty projectName defaults to the project root's directory name.
func (s *Store) Initialize(projectName string) (*Config, error) {
	if _, err := os.Stat(s.ConfigPath()); err == nil {
		return nil, fmt.Errorf("%w: config record exists at %s", ErrAlreadyInitialized, s.ConfigPath())
	}

	if projectName == "" {
		abs, err := filepath.Abs(s.ProjectRoot)
		if err != nil {
			return nil, err
		}
		projectName = filepath.Base(abs)
	}

	for _, dir := range []string{s.Dir(), s.WorkflowsDir(), s.AnnotationsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	now := s.now()
	cfg := &Config{
		ProjectName: projectName,
		Version:     SchemaVersion,
		CreatedAt:   now.Format(time.RFC3339),
		Languages:   s.detectLanguages(),
		Frameworks:  []string{},
		Workflows:   []string{},
		Settings: Settings{
			MermaidTheme:    "default",
			ShowLineNumbers: true,
		},
		Metadata: Metadata{
			MainBranch: "main",
			Authors:    []string{},
		},
	}
	if err := s.SaveConfig(cfg); err != nil {
		return nil, err
	}

	index, err := renderIndexTemplate(projectName, now)
	if err != nil {
		return nil, err
	}
	if err := writeFileAtomic(s.IndexPath(), index, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", indexFileName, err)
	}

	return cfg, nil
}

// LoadConfig reads the config record. Missing record means the project was
// never initialized.
func (s *Store) LoadConfig() (*Config, error) {
	data, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no %s in %s (run 'buslog init')", ErrNotInitialized, configFileName, s.Dir())
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}
	return &cfg, nil
}

// SaveConfig writes the config record atomically.
func (s *Store) SaveConfig(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.ConfigPath(), append(data, '\n'), 0o644)
}

// CreateWorkflow renders the workflow template into a new file for slug and
// returns the created path. It never overwrites: an existing file fails with
// ErrDuplicateWorkflow.
func (s *Store) CreateWorkflow(slug string) (string, error) {
	if err := ValidateSlug(slug); err != nil {
		return "", err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return "", err
	}

	path := s.workflowPath(slug)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDuplicateWorkflow, slug)
	}

	author := ""
	if len(cfg.Metadata.Authors) > 0 {
		author = cfg.Metadata.Authors[0]
	}
	content, err := renderWorkflowTemplate(slug, author, s.now())
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing workflow %s: %w", slug, err)
	}

	// Best-effort bookkeeping. Listing scans the directory and never trusts
	// this list, so a failure here does not invalidate the created file.
	s.recordWorkflowInConfig(cfg, slug)

	return path, nil
}

func (s *Store) recordWorkflowInConfig(cfg *Config, slug string) {
	for _, w := range cfg.Workflows {
		if w == slug {
			return
		}
	}
	cfg.Workflows = append(cfg.Workflows, slug)
	_ = s.SaveConfig(cfg)
}

// GetWorkflow reads the workflow file verbatim along with its filesystem
// modification time.
func (s *Store) GetWorkflow(slug string) (*Workflow, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}
	path := s.workflowPath(slug)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Workflow{
		Slug:       slug,
		Path:       path,
		Content:    string(data),
		ModifiedAt: info.ModTime(),
	}, nil
}

// ListWorkflows scans the workflow directory and returns one summary per
// markdown file, ordered lexicographically by slug. The description is a
// best-effort extraction; a workflow that cannot be read or parsed still
// appears in the listing with an empty description. A missing directory
// yields an empty slice.
func (s *Store) ListWorkflows() ([]WorkflowSummary, error) {
	entries, err := os.ReadDir(s.WorkflowsDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []WorkflowSummary{}, nil
		}
		return nil, err
	}

	summaries := make([]WorkflowSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		desc := ""
		if data, err := os.ReadFile(filepath.Join(s.WorkflowsDir(), entry.Name())); err == nil {
			desc = ExtractDescription(string(data))
		}
		summaries = append(summaries, WorkflowSummary{
			Slug:        slug,
			Name:        TitleFromSlug(slug),
			File:        entry.Name(),
			Description: desc,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Slug < summaries[j].Slug
	})
	return summaries, nil
}

// GetAnnotations returns the annotation sequence for slug. The workflow file
// must exist; the annotation file need not, in which case the sequence is
// empty.
func (s *Store) GetAnnotations(slug string) ([]Annotation, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.workflowPath(slug)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, err
	}
	return s.readAnnotations(slug)
}

func (s *Store) readAnnotations(slug string) ([]Annotation, error) {
	data, err := os.ReadFile(s.annotationPath(slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Annotation{}, nil
		}
		return nil, err
	}
	var file annotationFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing annotations for %s: %w", slug, err)
	}
	if file.Annotations == nil {
		file.Annotations = []Annotation{}
	}
	return file.Annotations, nil
}

// AppendAnnotation appends one entry to the workflow's annotation sequence and
// rewrites the full file. Concurrent appends from separate processes can race;
// last write wins.
func (s *Store) AppendAnnotation(slug, text, author string) (Annotation, error) {
	if strings.TrimSpace(text) == "" {
		return Annotation{}, fmt.Errorf("%w: annotation text is empty", ErrValidation)
	}
	existing, err := s.GetAnnotations(slug)
	if err != nil {
		return Annotation{}, err
	}
	entry := Annotation{
		Text:   text,
		Author: author,
		Date:   s.now().Format("2006-01-02"),
	}
	if err := s.writeAnnotations(slug, append(existing, entry)); err != nil {
		return Annotation{}, err
	}
	return entry, nil
}

// ReplaceAnnotations overwrites the full annotation sequence for slug. The
// web client composes the complete list, prior entries included, before
// posting it here.
func (s *Store) ReplaceAnnotations(slug string, annotations []Annotation) error {
	if err := ValidateSlug(slug); err != nil {
		return err
	}
	if _, err := os.Stat(s.workflowPath(slug)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return err
	}
	return s.writeAnnotations(slug, annotations)
}

func (s *Store) writeAnnotations(slug string, annotations []Annotation) error {
	if annotations == nil {
		annotations = []Annotation{}
	}
	if err := os.MkdirAll(s.AnnotationsDir(), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(annotationFile{Annotations: annotations}, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.annotationPath(slug), append(data, '\n'), 0o644)
}
