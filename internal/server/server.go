// Package server serves expression evaluation over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/exactcalc/internal/config"
)

// RequestIDHeader is the header carrying the request id. A request id sent
// by the client is kept; otherwise one is generated.
const RequestIDHeader = "X-Request-ID"

// Server is the HTTP evaluation service.
type Server struct {
	cfg    config.ServerConfig
	prec   int
	log    *slog.Logger
	router *gin.Engine
}

// New creates a server with routes installed.
func New(cfg *config.Config, log *slog.Logger) *Server {
	if !cfg.Server.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		cfg:  cfg.Server,
		prec: cfg.Precision,
		log:  log,
	}
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.logRequests())
	router.GET("/", HealthCheckHandle)
	v1 := router.Group("/v1")
	v1.POST("/evaluate", s.evaluate)
	s.router = router
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is done, then shuts down,
// allowing requests in progress a few seconds to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout.Duration,
		WriteTimeout: s.cfg.WriteTimeout.Duration,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("starting evaluation service", slog.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
	}
	s.log.Info("shutting down evaluation service")
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serving")
	}
	return nil
}

// HealthCheckHandle reports that the service is up.
func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			slog.String("requestID", c.GetString("requestID")),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
