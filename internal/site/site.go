// Package site runs a brochure build from data file to written page.
package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/Bitlatte/brochure/internal/config"
	"github.com/Bitlatte/brochure/internal/content"
	"github.com/Bitlatte/brochure/internal/dates"
	"github.com/Bitlatte/brochure/internal/loader"
	"github.com/Bitlatte/brochure/internal/render"
	"github.com/Bitlatte/brochure/internal/slideshow"
)

// Generator builds the brochure page described by its Config.
type Generator struct {
	cfg    config.Config
	logger *zap.Logger
	now    func() time.Time
}

// Option customises a Generator.
type Option func(*Generator)

// WithClock sets the clock the current month and date are read from.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New returns a Generator for cfg. The wall clock is used unless WithClock is
// given.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run loads the data file, renders the page and writes it to the configured
// output path, replacing any previous file. Nothing is written unless the
// whole page rendered. It returns the output path.
func (g *Generator) Run(ctx context.Context) (string, error) {
	cfg := g.cfg
	g.logger.Info("Starting brochure build",
		zap.String("data", cfg.DataFile),
		zap.String("images", cfg.ImagesDir),
		zap.String("output", cfg.OutputFile))

	doc, err := loader.Load(cfg.DataFile)
	if err != nil {
		return "", err
	}

	period := dates.Resolve(g.now())
	g.logger.Info("Building for period", zap.String("month", period.Month), zap.String("date", period.Date))

	images := slideshow.Discover(cfg.ImagesDir, g.logger)
	g.logger.Info("Slideshow images found", zap.Int("images", len(images)))

	md := content.NewMarkdown()
	announcements, err := content.NewCollector(md, g.logger).Collect(cfg.AnnouncementsDir)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	renderer, err := render.New(render.Options{
		ImagesDir:      cfg.ImagesDir,
		LogoPath:       cfg.LogoPath,
		VideosDir:      cfg.VideosDir,
		MapURL:         cfg.MapURL,
		TestimonyEmail: cfg.TestimonyEmail,
		Markdown:       cfg.Markdown,
	}, md)
	if err != nil {
		return "", err
	}

	html, err := renderer.Document(render.Page{
		Document:      doc,
		Period:        period,
		Images:        images,
		Announcements: announcements,
	})
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := g.write(cfg.OutputFile, html); err != nil {
		return "", err
	}

	g.logger.Info("Brochure generated",
		zap.String("path", cfg.OutputFile),
		zap.String("size", humanize.Bytes(uint64(len(html)))))
	return cfg.OutputFile, nil
}

// write replaces path with data in one step, so a browser or web server never
// sees a half-written page.
func (g *Generator) write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create output directory '%s': %w", dir, err)
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write output file '%s': %w", path, err)
	}
	// The temporary file atomic renames into place is private to the owner.
	if err := os.Chmod(path, 0o644); err != nil {
		g.logger.Warn("Could not set permissions on output file", zap.String("path", path), zap.Error(err))
	}
	return nil
}
