package store

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
	"time"
)

//go:embed templates/workflow.md templates/index.md
var templateFS embed.FS

var (
	workflowTmpl = template.Must(template.ParseFS(templateFS, "templates/workflow.md"))
	indexTmpl    = template.Must(template.ParseFS(templateFS, "templates/index.md"))
)

// TitleFromSlug converts "user-authentication" into "User Authentication".
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func renderWorkflowTemplate(slug, author string, now time.Time) ([]byte, error) {
	date := now.Format("2006-01-02")
	var buf bytes.Buffer
	err := workflowTmpl.Execute(&buf, struct {
		Title        string
		CreatedDate  string
		ModifiedDate string
		Author       string
	}{
		Title:        TitleFromSlug(slug),
		CreatedDate:  date,
		ModifiedDate: date,
		Author:       author,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderIndexTemplate(projectName string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, struct {
		ProjectName    string
		LastUpdated    string
		TotalWorkflows int
		CriticalCount  int
		LastAnalysis   string
	}{
		ProjectName:    projectName,
		LastUpdated:    now.Format("2006-01-02 15:04"),
		TotalWorkflows: 0,
		CriticalCount:  0,
		LastAnalysis:   "Never",
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
