// Package slideshow finds the background images for the church header.
package slideshow

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Extensions lists the image types picked up, lower case.
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Discover returns the names of the image files directly inside dir, in the
// order the directory listing yields them. If dir does not exist it is
// created so the next run has somewhere to put images, and no images are
// returned. Discover never fails the build: problems are logged and an empty
// list is returned.
func Discover(dir string, logger *zap.Logger) []string {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Slideshow folder not found, creating it", zap.String("dir", dir))
		if mkErr := os.MkdirAll(dir, os.ModePerm); mkErr != nil {
			logger.Warn("Could not create slideshow folder", zap.String("dir", dir), zap.Error(mkErr))
		}
		return nil
	}
	if err != nil {
		logger.Warn("Could not read slideshow folder", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		images = append(images, entry.Name())
	}
	logger.Debug("Slideshow images discovered", zap.String("dir", dir), zap.Int("images", len(images)))
	return images
}

// IsImage reports whether name has one of the slideshow image extensions.
func IsImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
