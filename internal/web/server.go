package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/parth/tourdates/internal/logger"
	"github.com/parth/tourdates/internal/storage"
	"github.com/parth/tourdates/internal/tourdate"
)

//go:embed templates/index.html
var templateFS embed.FS

// Server serves one season's tour date calendar.
type Server struct {
	store  *storage.Store
	season string
	tmpl   *template.Template
}

// NewServer builds a Server over an open store.
func NewServer(store *storage.Store, season string) (*Server, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"pct": tourdate.FormatPercentage,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Server{
		store:  store,
		season: season,
		tmpl:   tmpl,
	}, nil
}

// Router wires the middleware stack and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)

	c := corslib.New(corslib.Options{
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})
	r.Use(c.Handler)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/calendar", s.handleCalendar)
		r.Get("/recent", s.handleRecent)
	})
	r.Get("/healthz", s.handleHealth)

	return r
}

// requestLogger emits one debug line per request after the response is
// written.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("request served", logger.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start).String(),
		})
	})
}
