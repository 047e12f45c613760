package model

// Events maps month names to that month's events. Events that are shown every
// month live under the "permanant" key, the spelling used by existing data
// files; "permanent" is accepted as well.
type Events map[string][]Event

var permanentKeys = []string{"permanant", "permanent"}

// Permanent returns the events shown regardless of month.
func (e Events) Permanent() []Event {
	var out []Event
	for _, key := range permanentKeys {
		out = append(out, e[key]...)
	}
	return out
}

// ForMonth returns permanent events followed by the month's own events,
// leaving out empty entries.
func (e Events) ForMonth(month string) []Event {
	var out []Event
	for _, list := range [][]Event{e.Permanent(), e[month]} {
		for _, ev := range list {
			if ev.Present() {
				out = append(out, ev)
			}
		}
	}
	return out
}
