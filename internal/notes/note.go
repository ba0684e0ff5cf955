package notes

import (
	"fmt"
	"strings"

	"calnote/internal/calendar"
)

// Note is a free-text entry attached to a calendar day
type Note struct {
	ID    string        `yaml:"id"`
	Date  calendar.Date `yaml:"date"`
	Title string        `yaml:"title"`
}

// Key returns the day key the note is stored under
func (n Note) Key() string {
	return n.Date.Key()
}

func (n Note) String() string {
	return fmt.Sprintf("%s %s", n.Date.Key(), n.Title)
}

// Matches reports whether n is the note target refers to. Notes that both
// carry an ID match on ID; otherwise they match on date and title.
func (n Note) Matches(target Note) bool {
	if n.ID != "" && target.ID != "" {
		return n.ID == target.ID
	}
	return n.Date == target.Date && n.Title == target.Title
}

// ValidationError reports a rejected form field
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ValidateTitle rejects blank titles. The store itself accepts any title;
// hosts call this when strict titles are enabled.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Msg: "title must not be empty"}
	}
	return nil
}

// ParseDate parses a form date into a day, wrapping failures as a ValidationError
func ParseDate(s string) (calendar.Date, error) {
	d, err := calendar.ParseKey(strings.TrimSpace(s))
	if err != nil {
		return calendar.Date{}, &ValidationError{Field: "date", Msg: err.Error()}
	}
	return d, nil
}
