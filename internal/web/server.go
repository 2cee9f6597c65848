// Package web serves the form-based UI: a platform selector, an
// operation selector, and one facade call per submitted form.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/abdulachik/postline/internal/manager"
)

//go:embed templates/*.html
var templateFS embed.FS

// recentLimit is how many of the account's posts populate the post
// selector on the read/update/delete forms.
const recentLimit = 10

// placeholderPlatforms are listed in the selector but not implemented.
var placeholderPlatforms = []string{
	"youtube",
	"facebook",
	"instagram",
	"twitter",
	"linkedin",
}

// Server is the web UI over one post manager.
type Server struct {
	manager *manager.Manager
	logger  *slog.Logger
	tmpl    *template.Template
}

// NewServer creates the web UI server for the given manager.
func NewServer(m *manager.Manager, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		manager: m,
		logger:  logger,
		tmpl:    tmpl,
	}, nil
}

// Handler returns the HTTP handler for the UI.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /create", s.handleCreate)
	mux.HandleFunc("POST /read", s.handleRead)
	mux.HandleFunc("POST /update", s.handleUpdate)
	mux.HandleFunc("POST /delete", s.handleDelete)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

// Run serves the UI until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web UI listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("shutting down web UI")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
