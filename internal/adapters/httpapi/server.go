// Package httpapi exposes the content operations over HTTP for the site's
// editor UI.
package httpapi

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notedock/internal/ports"
)

// MaxUploadSize caps a single uploaded image
const MaxUploadSize = 10 << 20

// Server routes editor requests to the content commands
type Server struct {
	repo     ports.ContentRepository
	opener   ports.FileOpener
	renderer ports.Renderer
	registry *prometheus.Registry
	metrics  *metrics
	logger   *slog.Logger
	now      func() time.Time

	wg     sync.WaitGroup
	engine *gin.Engine
}

// Option configures a Server
type Option func(*Server)

// WithOpener enables POST /api/open-md
func WithOpener(o ports.FileOpener) Option {
	return func(s *Server) { s.opener = o }
}

// WithRenderer enables GET /api/preview
func WithRenderer(r ports.Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

// WithLogger sets the request and failure logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithRegistry registers metrics on reg instead of a private registry
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// WithClock overrides the time source used in health responses
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer builds the gin engine with every route registered
func NewServer(repo ports.ContentRepository, opts ...Option) *Server {
	s := &Server{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.logger = s.logger.With("component", "http")
	s.metrics = newMetrics(s.registry)

	r := gin.New()
	r.Use(recovery(s.logger), s.observe())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/recent", s.handleRecent)
	api.GET("/sidebar", s.handleSidebar)
	if s.renderer != nil {
		api.GET("/preview", s.handlePreview)
	}

	write := api.Group("", originGuard(s.logger))
	write.POST("/save-md", s.handleSave)
	write.POST("/add-nav", s.handleAddCategory)
	write.POST("/add-node", s.handleAddNode)
	write.POST("/add-md", s.handleAddDocument)
	write.POST("/del-node", s.handleDeleteNode)
	write.POST("/upload/img", s.handleUpload)
	if s.opener != nil {
		write.POST("/open-md", s.handleOpen)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	s.engine = r
	return s
}

// Handler returns the root http.Handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Wait blocks until background landing refreshes finish
func (s *Server) Wait() {
	s.wg.Wait()
}
