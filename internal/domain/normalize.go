package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// requiredEventFields lists the string attributes that must be non-empty after
// trimming, in the order they are checked.
var requiredEventFields = []string{
	"title",
	"description",
	"overview",
	"image",
	"venue",
	"location",
	"date",
	"time",
	"mode",
	"audience",
	"organizer",
}

var (
	slugStripRe  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe  = regexp.MustCompile(`\s+`)
	slugHyphenRe = regexp.MustCompile(`-+`)

	// eventTimeRe accepts H:mm or HH:mm on a 24-hour clock.
	eventTimeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
)

// dateLayouts are tried in order by NormalizeDate. Layouts without a zone are
// interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// Slugify derives a URL-safe slug from an event title: lower-cased, trimmed,
// every character outside [a-z0-9 -] removed, runs of whitespace collapsed to a
// single hyphen, runs of hyphens collapsed, and edge hyphens stripped.
// Pure: the same title always yields the same slug.
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeDate parses input with general date/time parsing and returns only the
// calendar-date portion in UTC, formatted "YYYY-MM-DD".
func NormalizeDate(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", &ValidationError{Field: "date", Message: "Invalid event date"}
}

// NormalizeTime validates a 24-hour clock value ("H:mm" or "HH:mm") and returns
// it with the hour zero-padded to two digits.
func NormalizeTime(input string) (string, error) {
	m := eventTimeRe.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return "", &ValidationError{Field: "time", Message: "Invalid event time; expected HH:mm (24-hour) format"}
	}
	hour := m[1]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return hour + ":" + m[2], nil
}

// NormalizeEvent validates a candidate event and rewrites it into canonical
// form. The slug is derived from the title only when titleChanged is true or no
// slug is assigned yet; re-saving an event with an unchanged title therefore
// never alters its slug. On error the candidate is left untouched.
func NormalizeEvent(e *Event, titleChanged bool) error {
	trimmed := map[string]string{
		"title":       strings.TrimSpace(e.Title),
		"description": strings.TrimSpace(e.Description),
		"overview":    strings.TrimSpace(e.Overview),
		"image":       strings.TrimSpace(e.Image),
		"venue":       strings.TrimSpace(e.Venue),
		"location":    strings.TrimSpace(e.Location),
		"date":        strings.TrimSpace(e.Date),
		"time":        strings.TrimSpace(e.Time),
		"mode":        strings.TrimSpace(e.Mode),
		"audience":    strings.TrimSpace(e.Audience),
		"organizer":   strings.TrimSpace(e.Organizer),
	}
	for _, field := range requiredEventFields {
		if trimmed[field] == "" {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("Field %q is required and must be a non-empty string", field),
			}
		}
	}

	if err := validateStringList(e.Agenda); err != nil {
		return &ValidationError{Field: "agenda", Message: "Agenda must be a non-empty array of non-empty strings"}
	}
	if err := validateStringList(e.Tags); err != nil {
		return &ValidationError{Field: "tags", Message: "Tags must be a non-empty array of non-empty strings"}
	}

	slug := e.Slug
	if titleChanged || slug == "" {
		slug = Slugify(trimmed["title"])
	}

	date, err := NormalizeDate(trimmed["date"])
	if err != nil {
		return err
	}
	clock, err := NormalizeTime(trimmed["time"])
	if err != nil {
		return err
	}

	// All checks passed; commit the canonical values in one step so a failed
	// validation never leaves a partially normalized candidate.
	e.Title = trimmed["title"]
	e.Description = trimmed["description"]
	e.Overview = trimmed["overview"]
	e.Image = trimmed["image"]
	e.Venue = trimmed["venue"]
	e.Location = trimmed["location"]
	e.Mode = trimmed["mode"]
	e.Audience = trimmed["audience"]
	e.Organizer = trimmed["organizer"]
	e.Slug = slug
	e.Date = date
	e.Time = clock
	return nil
}

func validateStringList(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("empty list")
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("blank entry")
		}
	}
	return nil
}
