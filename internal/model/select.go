package model

import "sort"

// NamedBirthdays drops birthdays that do not name anyone.
func NamedBirthdays(list []Birthday) []Birthday {
	var out []Birthday
	for _, b := range list {
		if b.Present() {
			out = append(out, b)
		}
	}
	return out
}

// NamedAnniversaries drops anniversaries that do not name a couple.
func NamedAnniversaries(list []Anniversary) []Anniversary {
	var out []Anniversary
	for _, a := range list {
		if a.Present() {
			out = append(out, a)
		}
	}
	return out
}

// ValidSermons drops untitled placeholder sermons and sorts the rest by date,
// earliest first. The input slice is not modified.
func ValidSermons(list []Sermon) []Sermon {
	var out []Sermon
	for _, s := range list {
		if s.Present() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Compare(out[j].Date) < 0
	})
	return out
}
