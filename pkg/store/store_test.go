package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	s.now = func() time.Time { return time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC) }
	return s
}

func initTestStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	_, err := s.Initialize("Demo")
	require.NoError(t, err)
	return s
}

func TestInitializeCreatesLayout(t *testing.T) {
	s := newTestStore(t)

	cfg, err := s.Initialize("Demo")
	require.NoError(t, err)

	assert.Equal(t, "Demo", cfg.ProjectName)
	assert.Equal(t, SchemaVersion, cfg.Version)
	assert.Equal(t, "2025-03-14T10:30:00Z", cfg.CreatedAt)

	assert.DirExists(t, s.WorkflowsDir())
	assert.DirExists(t, s.AnnotationsDir())
	assert.FileExists(t, s.ConfigPath())
	assert.FileExists(t, s.IndexPath())
	assert.True(t, s.IsInitialized())
}

func TestInitializeDefaultsProjectName(t *testing.T) {
	s := newTestStore(t)

	cfg, err := s.Initialize("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(s.ProjectRoot), cfg.ProjectName)
}

func TestInitializeTwiceFails(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Initialize("Demo")
	require.NoError(t, err)

	before := readTree(t, s.Dir())

	_, err = s.Initialize("Demo")
	require.ErrorIs(t, err, ErrAlreadyInitialized)

	// The failed second call must leave the directory byte-identical.
	assert.Equal(t, before, readTree(t, s.Dir()))
}

func TestInitializeDetectsLanguages(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.ProjectRoot, "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.ProjectRoot, "app.py"), []byte("print()\n"), 0o644))

	cfg, err := s.Initialize("Demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python"}, cfg.Languages)
}

func TestCreateAndGetWorkflow(t *testing.T) {
	s := initTestStore(t)

	path, err := s.CreateWorkflow("user-authentication")
	require.NoError(t, err)
	assert.Equal(t, s.workflowPath("user-authentication"), path)

	wf, err := s.GetWorkflow("user-authentication")
	require.NoError(t, err)
	assert.Contains(t, wf.Content, "# Workflow: User Authentication")
	assert.Contains(t, wf.Content, "**Créé le**: 2025-03-14")
	assert.False(t, wf.ModifiedAt.IsZero())
}

func TestCreateWorkflowDuplicateLeavesFileUnchanged(t *testing.T) {
	s := initTestStore(t)

	path, err := s.CreateWorkflow("checkout")
	require.NoError(t, err)

	edited := []byte("# Workflow: Checkout\n\nhand edits\n")
	require.NoError(t, os.WriteFile(path, edited, 0o644))

	_, err = s.CreateWorkflow("checkout")
	require.ErrorIs(t, err, ErrDuplicateWorkflow)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, edited, got)
}

func TestCreateWorkflowInvalidSlug(t *testing.T) {
	s := initTestStore(t)

	for _, slug := range []string{"", "../etc", "a/b", "UPPER", "hy phen", "-lead", "trail-", "a--b", "café"} {
		_, err := s.CreateWorkflow(slug)
		assert.ErrorIs(t, err, ErrInvalidSlug, "slug %q", slug)
	}

	// No stray files anywhere in the store.
	entries, err := os.ReadDir(s.WorkflowsDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = os.Stat(filepath.Join(s.ProjectRoot, "etc.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestCreateWorkflowRequiresInit(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateWorkflow("checkout")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestGetWorkflowNotFound(t *testing.T) {
	s := initTestStore(t)
	_, err := s.GetWorkflow("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListWorkflowsSortedBySlug(t *testing.T) {
	s := initTestStore(t)

	// Creation order must not leak into listing order.
	_, err := s.CreateWorkflow("b-flow")
	require.NoError(t, err)
	_, err = s.CreateWorkflow("a-flow")
	require.NoError(t, err)

	list, err := s.ListWorkflows()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a-flow", list[0].Slug)
	assert.Equal(t, "b-flow", list[1].Slug)
	assert.Equal(t, "A Flow", list[0].Name)
	assert.Equal(t, "a-flow.md", list[0].File)
}

func TestListWorkflowsEmptyAndMissingDir(t *testing.T) {
	s := initTestStore(t)
	list, err := s.ListWorkflows()
	require.NoError(t, err)
	assert.Empty(t, list)

	// Directory removed out-of-band: still not an error.
	require.NoError(t, os.RemoveAll(s.WorkflowsDir()))
	list, err = s.ListWorkflows()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListWorkflowsSeesManualFiles(t *testing.T) {
	s := initTestStore(t)

	// A file dropped in by hand, no template structure at all.
	raw := []byte("just some notes\n")
	require.NoError(t, os.WriteFile(filepath.Join(s.WorkflowsDir(), "manual-flow.md"), raw, 0o644))

	list, err := s.ListWorkflows()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "manual-flow", list[0].Slug)
	assert.Equal(t, "", list[0].Description)
}

func TestGetAnnotationsEmptyForExistingWorkflow(t *testing.T) {
	s := initTestStore(t)
	_, err := s.CreateWorkflow("checkout")
	require.NoError(t, err)

	annotations, err := s.GetAnnotations("checkout")
	require.NoError(t, err)
	assert.Empty(t, annotations)
}

func TestGetAnnotationsMissingWorkflow(t *testing.T) {
	s := initTestStore(t)
	_, err := s.GetAnnotations("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendAnnotationOrder(t *testing.T) {
	s := initTestStore(t)
	_, err := s.CreateWorkflow("checkout")
	require.NoError(t, err)

	_, err = s.AppendAnnotation("checkout", "needs review", "alice")
	require.NoError(t, err)
	_, err = s.AppendAnnotation("checkout", "looks good", "bob")
	require.NoError(t, err)

	annotations, err := s.GetAnnotations("checkout")
	require.NoError(t, err)
	require.Len(t, annotations, 2)
	assert.Equal(t, "needs review", annotations[0].Text)
	assert.Equal(t, "alice", annotations[0].Author)
	assert.Equal(t, "looks good", annotations[1].Text)
	assert.Equal(t, "bob", annotations[1].Author)
	assert.Equal(t, "2025-03-14", annotations[0].Date)
}

func TestAppendAnnotationValidation(t *testing.T) {
	s := initTestStore(t)
	_, err := s.CreateWorkflow("checkout")
	require.NoError(t, err)

	_, err = s.AppendAnnotation("checkout", "   ", "alice")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.AppendAnnotation("missing", "note", "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceAnnotations(t *testing.T) {
	s := initTestStore(t)
	_, err := s.CreateWorkflow("checkout")
	require.NoError(t, err)

	_, err = s.AppendAnnotation("checkout", "old note", "alice")
	require.NoError(t, err)

	replacement := []Annotation{
		{Text: "first", Author: "bob", Date: "2025-03-01"},
		{Text: "second", Author: "carol", Date: "2025-03-02"},
	}
	require.NoError(t, s.ReplaceAnnotations("checkout", replacement))

	annotations, err := s.GetAnnotations("checkout")
	require.NoError(t, err)
	assert.Equal(t, replacement, annotations)

	err = s.ReplaceAnnotations("missing", replacement)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadConfigNotInitialized(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadConfig()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestCreateWorkflowRecordsSlugInConfig(t *testing.T) {
	s := initTestStore(t)
	_, err := s.CreateWorkflow("checkout")
	require.NoError(t, err)

	cfg, err := s.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"checkout"}, cfg.Workflows)
}

// readTree maps relative path to file content for every file under root.
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return tree
}
