// Package web serves the documentation browser: HTML pages for humans and a
// small JSON API consumed by the pages themselves. It is a thin layer over
// the store, no business rules live here.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	blog "github.com/poulpybifle/buslog/pkg/log"
	"github.com/poulpybifle/buslog/pkg/store"
)

// ErrPortInUse is returned by Start when the requested port is taken.
var ErrPortInUse = errors.New("port already in use")

//go:embed templates/*.html
var templateFS embed.FS

type templateRenderer struct {
	templates *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Server wraps an Echo instance bound to a single workflow store.
type Server struct {
	store *store.Store
	echo  *echo.Echo
}

func NewServer(st *store.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.Renderer = &templateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}

	s := &Server{store: st, echo: e}

	e.GET("/", s.handleIndex)
	e.GET("/workflow/:slug", s.handleWorkflowPage)
	e.GET("/api/workflows", s.handleListWorkflows)
	e.GET("/api/workflows/:slug", s.handleGetWorkflow)
	e.GET("/api/workflows/:slug/annotations", s.handleGetAnnotations)
	e.POST("/api/workflows/:slug/annotations", s.handleSaveAnnotations)
	e.GET("/api/config", s.handleGetConfig)

	return s
}

// Handler exposes the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start binds the listener and serves until ctx is cancelled. Binding is done
// explicitly with net.Listen so a port collision surfaces as ErrPortInUse
// before Echo starts serving.
func (s *Server) Start(ctx context.Context, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if strings.Contains(err.Error(), "address already in use") {
			return fmt.Errorf("%w: %s", ErrPortInUse, addr)
		}
		return fmt.Errorf("binding %s: %w", addr, err)
	}
	s.echo.Listener = ln

	blog.Info("web server listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start("")
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		blog.Info("web server stopped")
		return nil
	}
}
