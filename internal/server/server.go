// Package server serves the interactive radar over HTTP. Each session owns its
// own interaction state; the chart rows are shared and swapped on reload.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/dietradar/core"
	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/internal/dataset"
	"github.com/huangsam/dietradar/schema"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds graceful shutdown once the context is done.
var ShutdownTimeout = 5 * time.Second

// Server holds the HTTP router, the current chart data and all sessions.
type Server struct {
	addr   string
	cfg    *contract.Config
	router *gin.Engine

	mu         sync.RWMutex
	ds         *schema.Dataset
	rows       []schema.ChartRow
	similarity []schema.SimilarityPoint
	version    int64

	sessMu   sync.Mutex
	sessions map[string]*session
}

// NewServer builds a server for ds. The config must already be validated.
func NewServer(cfg *contract.Config, ds *schema.Dataset) *Server {
	addr := cfg.ServerAddr
	if addr == "" {
		addr = contract.DefaultServerAddr
	}
	s := &Server{
		addr:     addr,
		cfg:      cfg,
		sessions: make(map[string]*session),
	}
	s.SetDataset(ds)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	s.registerRoutes(router)
	s.router = router
	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// SetDataset recomputes the shared rows from ds. Sessions keep their state.
func (s *Server) SetDataset(ds *schema.Dataset) {
	rows := core.BuildChartRows(ds, core.OptionsFromConfig(s.cfg, ds))
	similarity := core.SimilarityPoints(ds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = ds
	s.rows = rows
	s.similarity = similarity
	s.version++
}

// snapshot returns the current rows and similarity points.
func (s *Server) snapshot() ([]schema.ChartRow, []schema.SimilarityPoint, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows, s.similarity, s.version
}

// Run serves until ctx is done. With a watcher, dataset changes are picked up
// without a restart.
func (s *Server) Run(ctx context.Context, watcher *dataset.Watcher) error {
	group, ctx := errgroup.WithContext(ctx)

	if watcher != nil {
		watcher.Subscribe(func(ds *schema.Dataset) {
			s.SetDataset(ds)
			contract.LogInfo("Reloaded dataset %s", dataset.Describe(ds))
		})
		group.Go(func() error {
			return watcher.Run(ctx)
		})
	}

	group.Go(func() error {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	return group.Wait()
}

// Start serves HTTP until ctx is done or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	contract.LogInfo("Serving diet radar on http://%s", s.addr)
	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

// requestLogger logs one line per request through the shared stderr logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			path = path + "?" + query
		}
		c.Next()
		contract.LogInfo("HTTP %s %s status=%d ip=%s dur=%s",
			c.Request.Method, path, c.Writer.Status(), c.ClientIP(), time.Since(start))
	}
}
