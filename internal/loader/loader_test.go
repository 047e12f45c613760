package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "church_info": {"name": "Grace Community", "tagline": "Loving God, loving people"},
  "rotating_messages": [
    {"title": "Welcome", "scripture": "Ps 118:24", "text": "This is the day"},
    {"title": "Pray", "text": "Pray without ceasing"}
  ],
  "sidebar_tabs": {
    "home": {"welcome_text": "Glad you are here"},
    "birthdays": {"October": [{"name": "Ann", "date": 21}, {}]},
    "anniversaries": {"October": [{"couple": "Joe & Jo", "date": "12", "years": 10}]},
    "sermons": {"October": [{"title": "Hope", "date": 5, "key_points": ["one"]}]},
    "wisdom_tips": {"October": {"title": "Rest"}, "November": {}},
    "inspire": {"October": {"verse_of_the_month": {"verse": "John 3:16", "text": "For God so loved"}}},
    "missions": {"October": {"featured": "Kenya", "progress": {"percentage": 40}}},
    "events": {"permanant": [{"title": "Service", "date": "Every Sunday"}], "October": []},
    "announcements": ["Choir practice moved"],
    "contact": {"phone": "555", "mail": "PO Box 1", "email": "a@b.c", "address": "1 Main St"},
    "about": {"mission": "Make disciples", "leadership": "Pastor Lee"}
  }
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	doc, err := Load(writeFile(t, "events_data.json", sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "Grace Community", doc.Church.Name)
	require.Len(t, doc.Messages, 2)
	assert.Equal(t, "Ps 118:24", doc.Messages[0].Scripture)
	assert.Empty(t, doc.Messages[1].Scripture)

	tabs := doc.Tabs
	assert.Equal(t, "Glad you are here", tabs.Home.WelcomeText)
	require.Len(t, tabs.Birthdays["October"], 2)
	day, ok := tabs.Birthdays["October"][0].Date.Int()
	assert.True(t, ok)
	assert.Equal(t, 21, day)

	ann := tabs.Anniversaries["October"][0]
	assert.Equal(t, "Joe & Jo", ann.Name())
	_, ok = ann.Date.Int()
	assert.False(t, ok, "quoted dates stay strings")
	assert.Equal(t, "10", ann.Years.String())

	assert.True(t, tabs.WisdomTips["October"].Present())
	assert.False(t, tabs.WisdomTips["November"].Present())
	assert.False(t, tabs.WisdomTips["December"].Present())
	assert.True(t, tabs.Inspire["October"].Verse.Present())
	assert.True(t, tabs.Missions["October"].Progress.Present())
	assert.Len(t, tabs.Events.ForMonth("October"), 1)
	assert.Equal(t, []string{"Choir practice moved"}, tabs.Announcements)
	assert.Equal(t, "1 Main St", tabs.Contact.Address)
	assert.Equal(t, "Pastor Lee", tabs.About.Leadership)
}

func TestLoadYAML(t *testing.T) {
	body := `
church_info:
  name: Grace Community
sidebar_tabs:
  birthdays:
    October:
      - name: Ann
        date: 3
  sermons:
    October:
      - title: Hope
        date: Every Sunday
  missions:
    October:
      featured: Kenya
      progress:
        percentage: 12.5
`
	doc, err := Load(writeFile(t, "events_data.yaml", body))
	require.NoError(t, err)

	assert.Equal(t, "Grace Community", doc.Church.Name)
	day, ok := doc.Tabs.Birthdays["October"][0].Date.Int()
	assert.True(t, ok)
	assert.Equal(t, 3, day)
	assert.Equal(t, "Every Sunday", doc.Tabs.Sermons["October"][0].Date.String())
	assert.Equal(t, "12.5", doc.Tabs.Missions["October"].Progress.Percentage.String())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.json")
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "events_data.json", `{"church_info": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding data file")
}
