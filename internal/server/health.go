package server

import (
	"fmt"
	"os"

	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	"github.com/tavsec/gin-healthcheck/config"
)

// staticDirCheck passes while the static asset directory is readable.
type staticDirCheck struct {
	dir string
}

func (c staticDirCheck) Pass() bool {
	info, err := os.Stat(c.dir)
	return err == nil && info.IsDir()
}

func (c staticDirCheck) Name() string {
	return "static-dir"
}

// health mounts GET /healthz.
func (s *Server) health() error {
	var all []checks.Check
	if s.opts.StaticDir != "" {
		all = append(all, staticDirCheck{dir: s.opts.StaticDir})
	}
	if err := healthcheck.New(s.engine, config.DefaultConfig(), all); err != nil {
		return fmt.Errorf("mount health check: %w", err)
	}
	return nil
}
