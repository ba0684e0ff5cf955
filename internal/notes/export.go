package notes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"calnote/internal/calendar"
)

// Format selects an export encoding
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatICS      Format = "ics"
)

// ICSProductID identifies calnote in exported calendars
const ICSProductID = "-//calnote//calnote//EN"

// ErrUnknownFormat is returned for export formats other than md, html and ics
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat validates an export format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMarkdown, FormatHTML, FormatICS:
		return f, nil
	case "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

type exportFrontmatter struct {
	Title     string `yaml:"title"`
	Generated string `yaml:"generated"`
	Notes     int    `yaml:"notes"`
	Days      int    `yaml:"days"`
	Entries   []Note `yaml:"entries"`
}

// WriteMarkdown writes the store as a markdown agenda: YAML frontmatter, then
// one heading per day with its notes as a list.
func WriteMarkdown(w io.Writer, s Store, generated time.Time) error {
	var buf bytes.Buffer

	fm := exportFrontmatter{
		Title:     "calnote agenda",
		Generated: generated.Format(time.RFC3339),
		Notes:     s.Len(),
		Days:      len(s.Days()),
		Entries:   s.All(),
	}
	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return err
	}
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")

	buf.WriteString(markdownBody(s))

	_, err = w.Write(buf.Bytes())
	return err
}

func markdownBody(s Store) string {
	var sb strings.Builder
	sb.WriteString("# calnote agenda\n")
	for _, key := range s.Days() {
		d, err := calendar.ParseKey(key)
		if err != nil {
			continue
		}
		sb.WriteString("\n## ")
		sb.WriteString(d.Format("Monday, January 2 2006"))
		sb.WriteString("\n\n")
		for _, n := range s.NotesFor(d) {
			sb.WriteString("- ")
			sb.WriteString(escapeMarkdown(n.Title))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`", `[`, `\[`, `]`, `\]`, `<`, `\<`, `#`, `\#`,
)

// leadingMarker matches a title start that would open a block quote, a nested
// list or an ordered list inside the list item
var leadingMarker = regexp.MustCompile(`^[ \t]*(?:(>)|([+-])(?:[ \t]|$)|[0-9]{1,9}([.)])(?:[ \t]|$))`)

func escapeMarkdown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	s = markdownEscaper.Replace(s)
	m := leadingMarker.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	for g := 2; g < len(m); g += 2 {
		if m[g] >= 0 {
			return s[:m[g]] + `\` + s[m[g]:]
		}
	}
	return s
}

// WriteHTML renders the markdown agenda to a standalone HTML document
func WriteHTML(w io.Writer, s Store, generated time.Time) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdownBody(s)), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<meta name=\"generator\" content=\"calnote %s\">\n", generated.Format(time.RFC3339))
	buf.WriteString("<title>calnote agenda</title>\n</head>\n<body>\n")
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteICS writes one all-day VEVENT per note. Long lines are folded at 75
// octets by the encoder.
func WriteICS(w io.Writer, s Store, generated time.Time) error {
	cal := ics.NewCalendar()
	cal.SetProductId(ICSProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	for i, n := range s.All() {
		event := cal.AddEvent(eventUID(n, i))
		event.SetDtStampTime(generated.UTC())
		event.SetAllDayStartAt(n.Date.Time())
		event.SetAllDayEndAt(n.Date.AddDays(1).Time())
		event.SetSummary(icsNewlines.Replace(n.Title))
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// eventUID falls back to the day key plus the note's export position, so
// ID-less notes on the same day still get distinct UIDs
func eventUID(n Note, pos int) string {
	if n.ID != "" {
		return n.ID + "@calnote"
	}
	return n.Key() + "-" + strconv.Itoa(pos) + "@calnote"
}

var icsNewlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Export writes the store in the given format
func Export(w io.Writer, s Store, format Format, generated time.Time) error {
	switch format {
	case FormatMarkdown:
		return WriteMarkdown(w, s, generated)
	case FormatHTML:
		return WriteHTML(w, s, generated)
	case FormatICS:
		return WriteICS(w, s, generated)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// ExportFile writes the store to dir/calnote-<date>.<format> and returns the path
func ExportFile(dir string, s Store, format Format, generated time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("calnote-%s.%s", calendar.FromTime(generated).Key(), format)
	path := filepath.Join(dir, name)

	var buf bytes.Buffer
	if err := Export(&buf, s, format, generated); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
