// Package content turns markdown files into announcements for the news tab.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/brochure/internal/model"
)

// dateFormats are tried in order when reading a frontmatter date.
var dateFormats = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// NewMarkdown returns the markdown converter used for every markdown field.
// Raw HTML in the source is not passed through.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
}

// Collector reads announcement files from a directory.
type Collector struct {
	md     goldmark.Markdown
	logger *zap.Logger
}

// NewCollector returns a Collector converting bodies with md.
func NewCollector(md goldmark.Markdown, logger *zap.Logger) *Collector {
	return &Collector{md: md, logger: logger}
}

// Collect converts every .md file below dir into an announcement, newest
// first with undated files last. A missing dir yields no announcements.
// Files whose frontmatter sets draft: true are skipped.
func (c *Collector) Collect(dir string) ([]model.Announcement, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		c.logger.Debug("Announcements directory not found, skipping", zap.String("dir", dir))
		return nil, nil
	}

	var items []model.Announcement
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		item, keep, err := c.convert(path)
		if err != nil {
			return err
		}
		if keep {
			items = append(items, item)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error collecting announcements from %s: %w", dir, walkErr)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date.IsZero() {
			return false
		}
		if items[j].Date.IsZero() {
			return true
		}
		return items[i].Date.After(items[j].Date)
	})

	c.logger.Info("Collected announcements", zap.String("dir", dir), zap.Int("count", len(items)))
	return items, nil
}

func (c *Collector) convert(path string) (model.Announcement, bool, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return model.Announcement{}, false, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var fmData map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(fileBytes), &fmData)
	if err != nil {
		c.logger.Warn("Could not parse frontmatter, treating as pure markdown", zap.String("path", path), zap.Error(err))
		body = fileBytes
		fmData = nil
	}
	if fmData == nil {
		fmData = make(map[string]interface{})
	}

	if draft, ok := fmData["draft"].(bool); ok && draft {
		c.logger.Debug("Skipping draft announcement", zap.String("path", path))
		return model.Announcement{}, false, nil
	}

	var htmlBuffer bytes.Buffer
	if err := c.md.Convert(body, &htmlBuffer); err != nil {
		return model.Announcement{}, false, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", path, err)
	}

	return model.Announcement{
		Title:       title(fmData, path),
		Date:        c.date(fmData, path),
		SourcePath:  path,
		ContentHTML: template.HTML(htmlBuffer.String()),
		Frontmatter: fmData,
	}, true, nil
}

// title prefers the frontmatter title and otherwise title-cases the file name,
// so "youth-camp_signup.md" becomes "Youth Camp Signup".
func title(fmData map[string]interface{}, path string) string {
	if t, ok := fmData["title"].(string); ok && t != "" {
		return t
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return cases.Title(language.English).String(base)
}

func (c *Collector) date(fmData map[string]interface{}, path string) time.Time {
	switch v := fmData["date"].(type) {
	case time.Time:
		return v
	case string:
		for _, format := range dateFormats {
			if parsed, err := time.Parse(format, v); err == nil {
				return parsed
			}
		}
		c.logger.Warn("Could not parse announcement date, use YYYY-MM-DD or RFC3339",
			zap.String("path", path), zap.String("date", v))
	}
	return time.Time{}
}
