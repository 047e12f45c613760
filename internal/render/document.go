package render

import (
	"fmt"
	"html/template"

	"github.com/Bitlatte/brochure/internal/dates"
	"github.com/Bitlatte/brochure/internal/model"
)

// Page is everything the document is built from.
type Page struct {
	Document      *model.Document
	Period        dates.Period
	Images        []string
	Announcements []model.Announcement
}

// Tab is one entry of the sidebar and its content section.
type Tab struct {
	Icon  string
	Label string
	Body  template.HTML
}

// Tabs renders the ten content sections in sidebar order. Month-scoped data
// is looked up for page.Period.Month; a month without an entry renders the
// section's empty state.
func (r *Renderer) Tabs(page Page) ([]Tab, error) {
	doc := page.Document
	tabs := doc.Tabs
	month := page.Period.Month

	sections := []struct {
		icon, label string
		render      func() (template.HTML, error)
	}{
		{"🏠", "Home", func() (template.HTML, error) {
			return r.Home(page.Period, tabs.Home, doc.Messages, tabs.WisdomTips[month])
		}},
		{"🎂", "Birthday", func() (template.HTML, error) { return r.Birthdays(month, tabs.Birthdays[month]) }},
		{"💍", "Anniversary", func() (template.HTML, error) { return r.Anniversaries(month, tabs.Anniversaries[month]) }},
		{"📖", "Sermons", func() (template.HTML, error) { return r.Sermons(month, tabs.Sermons[month]) }},
		{"✨", "Inspire", func() (template.HTML, error) { return r.Inspire(tabs.Inspire[month]) }},
		{"🌍", "Missions", func() (template.HTML, error) { return r.Missions(page.Period, tabs.Missions[month]) }},
		{"📅", "Events", func() (template.HTML, error) { return r.Events(month, tabs.Events) }},
		{"📢", "News", func() (template.HTML, error) { return r.Announcements(tabs.Announcements, page.Announcements) }},
		{"📞", "Contact", func() (template.HTML, error) { return r.Contact(tabs.Contact) }},
		{"ℹ️", "About", func() (template.HTML, error) { return r.About(tabs.About) }},
	}

	out := make([]Tab, 0, len(sections))
	for _, s := range sections {
		body, err := s.render()
		if err != nil {
			return nil, fmt.Errorf("failed to render %s tab: %w", s.label, err)
		}
		out = append(out, Tab{Icon: s.icon, Label: s.label, Body: body})
	}
	return out, nil
}

// Document assembles the complete HTML page.
func (r *Renderer) Document(page Page) ([]byte, error) {
	if page.Document == nil {
		return nil, fmt.Errorf("no data document to render")
	}

	tabs, err := r.Tabs(page)
	if err != nil {
		return nil, err
	}

	html, err := r.execute("document", struct {
		Church    model.ChurchInfo
		Tabs      []Tab
		Images    []string
		ImagesDir string
		LogoPath  string
		Style     template.CSS
		Script    template.JS
	}{
		Church:    page.Document.Church,
		Tabs:      tabs,
		Images:    page.Images,
		ImagesDir: r.opts.ImagesDir,
		LogoPath:  r.opts.LogoPath,
		Style:     template.CSS(styleSheet),
		Script:    template.JS(script),
	})
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}
