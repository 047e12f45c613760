package model

import (
	"html/template"
	"time"
)

// Announcement is a news item written as a markdown file rather than a line
// of the data document.
type Announcement struct {
	Title       string
	Date        time.Time
	SourcePath  string
	ContentHTML template.HTML
	Frontmatter map[string]interface{}
}
