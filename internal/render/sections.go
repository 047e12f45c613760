package render

import (
	"html/template"

	"github.com/Bitlatte/brochure/internal/dates"
	"github.com/Bitlatte/brochure/internal/model"
)

// Home renders the welcome tab: greeting, rotating messages and the month's
// wisdom tip.
func (r *Renderer) Home(period dates.Period, home model.Home, messages []model.RotatingMessage, tip model.WisdomTip) (template.HTML, error) {
	return r.execute("home", struct {
		Period   dates.Period
		Home     model.Home
		Messages []model.RotatingMessage
		Tip      model.WisdomTip
	}{period, home, messages, tip})
}

// Birthdays renders the month's birthdays. A nil and an empty list render the
// same empty state.
func (r *Renderer) Birthdays(month string, entries []model.Birthday) (template.HTML, error) {
	return r.execute("birthdays", struct {
		Month   string
		Entries []model.Birthday
	}{month, model.NamedBirthdays(entries)})
}

// Anniversaries renders the month's anniversaries.
func (r *Renderer) Anniversaries(month string, entries []model.Anniversary) (template.HTML, error) {
	return r.execute("anniversaries", struct {
		Month   string
		Entries []model.Anniversary
	}{month, model.NamedAnniversaries(entries)})
}

// Sermons renders the month's sermons as an accordion, earliest first, with
// the first card open.
func (r *Renderer) Sermons(month string, sermons []model.Sermon) (template.HTML, error) {
	return r.execute("sermons", struct {
		Month   string
		Sermons []model.Sermon
	}{month, model.ValidSermons(sermons)})
}

// Inspire renders the verse of the month, the featured testimony and the
// share-your-story call to action.
func (r *Renderer) Inspire(inspire model.Inspire) (template.HTML, error) {
	return r.execute("inspire", struct {
		Verse     model.Verse
		Testimony model.Testimony
		Email     string
	}{inspire.Verse, inspire.Testimony, r.opts.TestimonyEmail})
}

// Missions renders the month's featured mission or the no-mission state.
func (r *Renderer) Missions(period dates.Period, mission model.Mission) (template.HTML, error) {
	return r.execute("missions", struct {
		Period    dates.Period
		Mission   model.Mission
		VideosDir string
	}{period, mission, r.opts.VideosDir})
}

// Events renders the permanent events followed by the month's events.
func (r *Renderer) Events(month string, events model.Events) (template.HTML, error) {
	return r.execute("events", struct {
		Events []model.Event
	}{events.ForMonth(month)})
}

// Announcements renders the data file's announcements followed by those
// collected from markdown files.
func (r *Renderer) Announcements(lines []string, posts []model.Announcement) (template.HTML, error) {
	return r.execute("announcements", struct {
		Lines []string
		Posts []model.Announcement
	}{lines, posts})
}

// Contact renders the contact grid.
func (r *Renderer) Contact(contact model.Contact) (template.HTML, error) {
	return r.execute("contact", struct {
		Contact model.Contact
		MapURL  string
	}{contact, r.opts.MapURL})
}

// About renders the mission statement and leadership.
func (r *Renderer) About(about model.About) (template.HTML, error) {
	return r.execute("about", struct {
		About model.About
	}{about})
}
