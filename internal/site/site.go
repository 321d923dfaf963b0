// Package site exports the portfolio as static files for plain file hosting.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/civansanli/portfolio/internal/page"
	"github.com/civansanli/portfolio/internal/profile"
	"github.com/civansanli/portfolio/internal/render"
)

// ErrBrokenAnchors is returned when a navigation link points at a section id
// that is not on the page.
var ErrBrokenAnchors = errors.New("broken navigation anchors")

const copyLimit = 4

type Options struct {
	OutDir    string
	StaticDir string
	Now       time.Time
	Assets    page.Assets
}

// Result describes what Build wrote.
type Result struct {
	Index  string
	Assets []string
	Resume bool
}

// Build renders p into OutDir/index.html and copies StaticDir into
// OutDir/static. A cv.pdf in StaticDir is also published at OutDir/cv.pdf so
// the hero download link resolves.
func Build(ctx context.Context, p profile.Profile, opts Options) (Result, error) {
	if opts.OutDir == "" {
		return Result{}, errors.New("site: output directory is required")
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	doc := page.Document(p, opts.Now, opts.Assets)
	if broken := page.BrokenAnchors(doc); len(broken) > 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrBrokenAnchors, strings.Join(broken, ", "))
	}

	var buf bytes.Buffer
	if err := render.HTML(&buf, doc); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}
	res := Result{Index: filepath.Join(opts.OutDir, "index.html")}
	if err := os.WriteFile(res.Index, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write index: %w", err)
	}

	if opts.StaticDir == "" {
		return res, nil
	}
	assets, err := listFiles(opts.StaticDir)
	if err != nil {
		return Result{}, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(copyLimit)
	for _, rel := range assets {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			src := filepath.Join(opts.StaticDir, rel)
			return copyFile(src, filepath.Join(opts.OutDir, "static", rel))
		})
	}

	resume := filepath.Join(opts.StaticDir, filepath.Base(page.ResumePath))
	if info, err := os.Stat(resume); err == nil && !info.IsDir() {
		res.Resume = true
		g.Go(func() error {
			return copyFile(resume, filepath.Join(opts.OutDir, filepath.Base(page.ResumePath)))
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	res.Assets = assets

	log.Info().
		Str("index", res.Index).
		Int("assets", len(res.Assets)).
		Bool("resume", res.Resume).
		Msg("site built")
	return res, nil
}

// listFiles returns regular files under dir as slash separated relative
// paths, in lexical order. A missing dir has no files.
func listFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list static files: %w", err)
	}
	return files, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return nil
}
