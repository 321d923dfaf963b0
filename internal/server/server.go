// Package server delivers the portfolio page over HTTP with gin.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/civansanli/portfolio/internal/page"
	"github.com/civansanli/portfolio/internal/profile"
	"github.com/civansanli/portfolio/internal/render"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server. A zero Now uses time.Now.
type Options struct {
	StaticDir string
	Assets    page.Assets
	HashSalt  string
	Now       func() time.Time
}

type Server struct {
	engine  *gin.Engine
	profile profile.Profile
	opts    Options
}

// New builds a server for p. The page is rendered on every request so the
// footer year tracks the clock.
func New(p profile.Profile, opts Options) (*Server, error) {
	hasher, err := newIPHasher(opts.HashSalt)
	if err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), visitLogger(hasher))

	s := &Server{engine: r, profile: p.Clone(), opts: opts}
	s.routes()
	if err := s.health(); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/", s.index)
	s.engine.HEAD("/", s.index)
	s.engine.GET(page.ResumePath, s.resume)
	s.engine.HEAD(page.ResumePath, s.resume)
	if s.opts.StaticDir != "" {
		s.engine.Static("/static", s.opts.StaticDir)
	}
}

func (s *Server) index(c *gin.Context) {
	doc := page.Document(s.profile, s.opts.Now(), s.opts.Assets)

	var buf bytes.Buffer
	if err := render.HTML(&buf, doc); err != nil {
		logger := loggerFrom(c)
		logger.Error().Err(err).Msg("render page")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) resume(c *gin.Context) {
	path := filepath.Join(s.opts.StaticDir, filepath.Base(page.ResumePath))
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "resume not available")
		return
	}
	c.File(path)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("portfolio listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
