package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	blog "github.com/poulpybifle/buslog/pkg/log"
	"github.com/poulpybifle/buslog/pkg/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

// httpStatus maps store errors to HTTP status codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateWorkflow), errors.Is(err, store.ErrAlreadyInitialized):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidSlug), errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(c echo.Context, err error) error {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		blog.Error("request failed", "path", c.Request().URL.Path, "error", err)
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}

type indexPageData struct {
	ProjectName string
	Workflows   []store.WorkflowSummary
}

func (s *Server) handleIndex(c echo.Context) error {
	data := indexPageData{ProjectName: "Business Logic"}

	if cfg, err := s.store.LoadConfig(); err == nil && cfg.ProjectName != "" {
		data.ProjectName = cfg.ProjectName
	}

	workflows, err := s.store.ListWorkflows()
	if err != nil {
		return jsonError(c, err)
	}
	data.Workflows = workflows

	return c.Render(http.StatusOK, "index.html", data)
}

type workflowPageData struct {
	Slug    string
	Title   string
	Content string
}

func (s *Server) handleWorkflowPage(c echo.Context) error {
	slug := c.Param("slug")

	wf, err := s.store.GetWorkflow(slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Render(http.StatusNotFound, "notfound.html", map[string]string{"Slug": slug})
		}
		return jsonError(c, err)
	}

	return c.Render(http.StatusOK, "workflow.html", workflowPageData{
		Slug:    wf.Slug,
		Title:   store.TitleFromSlug(wf.Slug),
		Content: wf.Content,
	})
}

func (s *Server) handleListWorkflows(c echo.Context) error {
	workflows, err := s.store.ListWorkflows()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"workflows": workflows})
}

func (s *Server) handleGetWorkflow(c echo.Context) error {
	wf, err := s.store.GetWorkflow(c.Param("slug"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, wf)
}

func (s *Server) handleGetAnnotations(c echo.Context) error {
	annotations, err := s.store.GetAnnotations(c.Param("slug"))
	if err != nil {
		return jsonError(c, err)
	}
	if annotations == nil {
		annotations = []store.Annotation{}
	}
	return c.JSON(http.StatusOK, map[string][]store.Annotation{"annotations": annotations})
}

type saveAnnotationsRequest struct {
	Annotations []store.Annotation `json:"annotations"`
}

// handleSaveAnnotations replaces the full stored list. The browser client
// composes the complete list including prior entries before posting.
func (s *Server) handleSaveAnnotations(c echo.Context) error {
	var req saveAnnotationsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if err := s.store.ReplaceAnnotations(c.Param("slug"), req.Annotations); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"saved": len(req.Annotations)})
}

func (s *Server) handleGetConfig(c echo.Context) error {
	cfg, err := s.store.LoadConfig()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, cfg)
}
