// Package loader reads the brochure data document from disk.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/brochure/internal/model"
)

// Load reads and decodes the data document at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON. A missing or malformed
// file is an error; missing optional fields are not.
func Load(path string) (*model.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading data file %s: %w", path, err)
	}

	doc, err := Decode(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("error decoding data file %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses raw according to the file extension ext (".json", ".yaml",
// ".yml"; anything unrecognised is treated as JSON).
func Decode(raw []byte, ext string) (*model.Document, error) {
	var doc model.Document
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}
