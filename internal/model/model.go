package model

// Document is the brochure data file as a whole.
type Document struct {
	Church   ChurchInfo        `json:"church_info" yaml:"church_info"`
	Messages []RotatingMessage `json:"rotating_messages" yaml:"rotating_messages"`
	Tabs     SidebarTabs       `json:"sidebar_tabs" yaml:"sidebar_tabs"`
}

// ChurchInfo is shown over the slideshow on the right-hand side of the page.
type ChurchInfo struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// RotatingMessage is one entry of the home tab's message carousel.
type RotatingMessage struct {
	Title     string `json:"title" yaml:"title"`
	Scripture string `json:"scripture" yaml:"scripture"`
	Text      string `json:"text" yaml:"text"`
}

// SidebarTabs holds the content of every tab. Month-scoped tabs are keyed by
// the English month name ("January" ... "December").
type SidebarTabs struct {
	Home          Home                     `json:"home" yaml:"home"`
	Birthdays     map[string][]Birthday    `json:"birthdays" yaml:"birthdays"`
	Anniversaries map[string][]Anniversary `json:"anniversaries" yaml:"anniversaries"`
	Sermons       map[string][]Sermon      `json:"sermons" yaml:"sermons"`
	WisdomTips    map[string]WisdomTip     `json:"wisdom_tips" yaml:"wisdom_tips"`
	Inspire       map[string]Inspire       `json:"inspire" yaml:"inspire"`
	Missions      map[string]Mission       `json:"missions" yaml:"missions"`
	Events        Events                   `json:"events" yaml:"events"`
	Announcements []string                 `json:"announcements" yaml:"announcements"`
	Contact       Contact                  `json:"contact" yaml:"contact"`
	About         About                    `json:"about" yaml:"about"`
}

type Home struct {
	WelcomeText string `json:"welcome_text" yaml:"welcome_text"`
}

type Birthday struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Date  Scalar `json:"date" yaml:"date"`
	Years Scalar `json:"years" yaml:"years"`
}

// Anniversary names the couple either through "names" or "couple".
type Anniversary struct {
	Names  string `json:"names" yaml:"names" validate:"required_without=Couple"`
	Couple string `json:"couple" yaml:"couple" validate:"required_without=Names"`
	Date   Scalar `json:"date" yaml:"date"`
	Years  Scalar `json:"years" yaml:"years"`
}

// Name returns Names, falling back to Couple.
func (a Anniversary) Name() string {
	if a.Names != "" {
		return a.Names
	}
	return a.Couple
}

// Sermon entries without a title are placeholders.
type Sermon struct {
	Title     string   `json:"title" yaml:"title" validate:"required"`
	Date      Scalar   `json:"date" yaml:"date"`
	Scripture string   `json:"scripture" yaml:"scripture"`
	Summary   string   `json:"summary" yaml:"summary"`
	KeyPoints []string `json:"key_points" yaml:"key_points"`
}

type WisdomTip struct {
	Title     string   `json:"title" yaml:"title" validate:"required"`
	Tip       string   `json:"tip" yaml:"tip"`
	Steps     []string `json:"steps" yaml:"steps"`
	Verse     string   `json:"verse" yaml:"verse"`
	VerseText string   `json:"verse_text" yaml:"verse_text"`
	Theme     string   `json:"theme" yaml:"theme"`
	Author    string   `json:"author" yaml:"author"`
}

type Inspire struct {
	Verse     Verse     `json:"verse_of_the_month" yaml:"verse_of_the_month"`
	Testimony Testimony `json:"featured_testimony" yaml:"featured_testimony"`
}

type Verse struct {
	Verse         string `json:"verse" yaml:"verse" validate:"required"`
	Text          string `json:"text" yaml:"text" validate:"required"`
	Theme         string `json:"theme" yaml:"theme"`
	Comment       string `json:"comment" yaml:"comment"`
	CommentAuthor string `json:"comment_author" yaml:"comment_author"`
}

type Testimony struct {
	Testimony string `json:"testimony" yaml:"testimony" validate:"required"`
	Name      string `json:"name" yaml:"name" validate:"required"`
	Date      Scalar `json:"date" yaml:"date"`
	Verse     string `json:"verse" yaml:"verse"`
}

type Mission struct {
	Featured     string   `json:"featured" yaml:"featured" validate:"required"`
	Video        Video    `json:"video" yaml:"video"`
	Update       Update   `json:"update" yaml:"update"`
	PrayerPoints []string `json:"prayer_points" yaml:"prayer_points"`
	Progress     Progress `json:"progress" yaml:"progress"`
	Support      Support  `json:"support" yaml:"support"`
}

// Video types understood by the missions tab.
const (
	VideoYouTube = "youtube"
	VideoLocal   = "local"
)

type Video struct {
	Type     string `json:"type" yaml:"type"`
	URL      string `json:"url" yaml:"url"`
	Filename string `json:"filename" yaml:"filename"`
	Title    string `json:"title" yaml:"title"`
	Duration string `json:"duration" yaml:"duration"`
}

type Update struct {
	Message string `json:"message" yaml:"message"`
	Author  string `json:"author" yaml:"author"`
}

type Progress struct {
	Percentage Scalar `json:"percentage" yaml:"percentage"`
	Label      string `json:"label" yaml:"label"`
}

type Support struct {
	GiveLink string `json:"give_link" yaml:"give_link"`
	Drive    string `json:"drive" yaml:"drive"`
	Email    string `json:"email" yaml:"email"`
}

type Event struct {
	Title       string `json:"title" yaml:"title"`
	Date        Scalar `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

type Contact struct {
	Phone   string `json:"phone" yaml:"phone"`
	Mail    string `json:"mail" yaml:"mail"`
	Email   string `json:"email" yaml:"email"`
	Address string `json:"address" yaml:"address"`
}

type About struct {
	Mission    string `json:"mission" yaml:"mission"`
	Leadership string `json:"leadership" yaml:"leadership"`
}
