package parser

import (
	"strings"
	"time"
)

// dayCodes maps canonical single-letter day codes to weekdays.
var dayCodes = map[rune]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
	'S': time.Saturday,
	'U': time.Sunday,
}

// dayRewrites collapse multi-letter abbreviations to canonical codes.
// Order matters: "TH" must be rewritten before the single-character scan,
// or its T would be taken as Tuesday with a dangling H.
var dayRewrites = [][2]string{
	{"TH", "R"},
	{"TU", "T"},
	{"SU", "U"},
	{"SA", "S"},
}

// NormalizeDays resolves a free-text day pattern ("MWF", "TuTh", "M, W, F")
// into weekdays in first-seen order, deduplicated. Unrecognized characters
// are ignored; an empty or unrecognizable pattern yields no weekdays.
func NormalizeDays(text string) []time.Weekday {
	s := strings.ToUpper(text)
	s = strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(s)
	for _, rw := range dayRewrites {
		s = strings.ReplaceAll(s, rw[0], rw[1])
	}

	var days []time.Weekday
	var seen [7]bool
	for _, r := range s {
		wd, ok := dayCodes[r]
		if !ok || seen[wd] {
			continue
		}
		seen[wd] = true
		days = append(days, wd)
	}
	return days
}
