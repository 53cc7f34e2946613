package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// clockLayouts are tried in order against time-of-day text. Input is
// uppercased first so "2:50 pm" reaches the PM layouts.
var clockLayouts = []string{
	"3:04 PM",
	"3 PM",
	"15:04",
	"3.04 PM",
}

// clockPattern is the last-resort extractor: hour, optional minute,
// optional AM/PM marker.
var clockPattern = regexp.MustCompile(`^\s*(\d{1,2})(?:[:.](\d{1,2}))?\s*([AP])?\.?M?\.?\s*$`)

// ParseClock combines a time-of-day string with a calendar date. It never
// fails outright: when no layout matches and the regex fallback finds
// nothing either, it returns the base date at midnight and relies on the
// session builder's start<end guard to drop the degenerate result.
func ParseClock(base time.Time, value string) time.Time {
	s := strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return at(base, t.Hour(), t.Minute())
		}
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch m[3] {
		case "P":
			if hour < 12 {
				hour += 12
			}
		case "A":
			if hour == 12 {
				hour = 0
			}
		}
		if hour < 24 && minute < 60 {
			return at(base, hour, minute)
		}
	}

	log.Debug().Str("value", value).Msg("unparseable time of day, falling back to midnight")
	return at(base, 0, 0)
}

// at returns the instant at hour:minute on base's calendar date.
func at(base time.Time, hour, minute int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}
