package model

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Optional content is "present" when the fields its card cannot render
// without are filled in. Required fields are declared with validate tags on
// the model types and checked here, so every tab asks the same question the
// same way.
var presence = validator.New()

func present(v interface{}) bool {
	return presence.Struct(v) == nil
}

// Present reports whether the birthday names someone.
func (b Birthday) Present() bool { return present(&b) }

// Present reports whether the anniversary names a couple.
func (a Anniversary) Present() bool { return present(&a) }

// Present reports whether the sermon has a title.
func (s Sermon) Present() bool { return present(&s) }

// Present reports whether a wisdom tip was written for the month.
func (w WisdomTip) Present() bool { return present(&w) }

// HasVerse reports whether both the reference and its text are given.
func (w WisdomTip) HasVerse() bool { return w.Verse != "" && w.VerseText != "" }

// Present reports whether the verse of the month has a reference and text.
func (v Verse) Present() bool { return present(&v) }

// HasComment reports whether a pastor's comment can be shown with its author.
func (v Verse) HasComment() bool { return v.Comment != "" && v.CommentAuthor != "" }

// Present reports whether the testimony has both a story and a name.
func (t Testimony) Present() bool { return present(&t) }

// Present reports whether a mission is featured for the month.
func (m Mission) Present() bool { return present(&m) }

// Kind returns the video type when the video can be shown, or "" otherwise.
// A YouTube video needs a URL and a local one needs a filename.
func (v Video) Kind() string {
	switch {
	case v.Type == VideoYouTube && v.URL != "":
		return VideoYouTube
	case v.Type == VideoLocal && v.Filename != "":
		return VideoLocal
	default:
		return ""
	}
}

// Present reports whether the update carries a message or an author.
func (u Update) Present() bool { return u.Message != "" || u.Author != "" }

// Present reports whether a percentage was given, including zero.
func (p Progress) Present() bool { return p.Percentage.IsSet() }

// SupportItem is one way of supporting a mission.
type SupportItem struct {
	Kind  string
	Value string
}

// Support item kinds, in display order.
const (
	SupportGive  = "give_link"
	SupportDrive = "drive"
	SupportEmail = "email"
)

// Items returns the support options whose values are not blank.
func (s Support) Items() []SupportItem {
	var items []SupportItem
	for _, item := range []SupportItem{
		{Kind: SupportGive, Value: s.GiveLink},
		{Kind: SupportDrive, Value: s.Drive},
		{Kind: SupportEmail, Value: s.Email},
	} {
		if strings.TrimSpace(item.Value) != "" {
			items = append(items, item)
		}
	}
	return items
}

// Present reports whether at least one support option is not blank.
func (s Support) Present() bool { return len(s.Items()) > 0 }

// Present reports whether any field of the event is filled in.
func (e Event) Present() bool { return e != Event{} }
