// Package render turns brochure data into the HTML of the generated page.
//
// Each tab has its own named template so a section can be rendered and tested
// on its own. Values are inserted through html/template, so text from the data
// file is escaped for the context it lands in. Markdown fields are converted
// with goldmark, which does not pass raw HTML through.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/brochure/internal/dates"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/style.css
var styleSheet string

//go:embed assets/app.js
var script string

// Options carries the paths and constants the page refers to but does not
// generate.
type Options struct {
	ImagesDir      string
	LogoPath       string
	VideosDir      string
	MapURL         string
	TestimonyEmail string
	// Markdown renders free-text fields (announcements, about) as markdown.
	// When false they are shown as escaped plain text.
	Markdown bool
}

// Renderer executes the embedded page templates.
type Renderer struct {
	opts      Options
	md        goldmark.Markdown
	templates *template.Template
}

// New parses the embedded templates. md converts markdown fields and may be
// nil when opts.Markdown is false.
func New(opts Options, md goldmark.Markdown) (*Renderer, error) {
	r := &Renderer{opts: opts, md: md}

	templates, err := template.New("brochure").Funcs(r.funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.templates = templates
	return r, nil
}

func (r *Renderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"day":       dates.FormatDay,
		"vertical":  VerticalText,
		"markdown":  r.markdown,
		"orDefault": orDefault,
		"inc":       func(i int) int { return i + 1 },
	}
}

// execute runs the named template and returns its output as trusted HTML so
// it can be placed into the document without being escaped twice.
func (r *Renderer) execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template '%s': %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) markdown(s string) template.HTML {
	if !r.opts.Markdown || r.md == nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

// VerticalText splits a tab label into upper-case letters, one per line of
// the vertical tab button.
func VerticalText(label string) []string {
	var letters []string
	for _, r := range cases.Upper(language.English).String(label) {
		letters = append(letters, string(r))
	}
	return letters
}

func orDefault(def, v string) string {
	if v == "" {
		return def
	}
	return v
}
