package model

import (
	"strings"
	"time"
)

const (
	// DefaultDateFormat is day/month/year, used unless the file or caller says otherwise.
	DefaultDateFormat = "dd/MM/yyyy"
	// MDYDateFormat is selected by the "!Option:MDY" header.
	MDYDateFormat = "MM/dd/yyyy"
)

// Pattern tokens, longest first so "yyyy" wins over "yy".
var dateTokens = []struct {
	pattern string
	layout  string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "1"},
	{"M", "1"},
	{"dd", "2"},
	{"d", "2"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// Layout translates a date pattern like "dd/MM/yyyy HH:mm" into a Go time
// layout. Day and month become non-padded verbs, which accept "1" as well as
// "01". A format with no pattern letters is returned unchanged as a Go layout.
func Layout(format string) string {
	if !strings.ContainsAny(format, "yMdHms") {
		return format
	}
	var b strings.Builder
	for i := 0; i < len(format); {
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok.pattern) {
				b.WriteString(tok.layout)
				i += len(tok.pattern)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

// ParseDate parses raw with the given pattern or layout. Surrounding
// whitespace is ignored; otherwise parsing is strict: out-of-range days do
// not roll over, trailing text is rejected and "yyyy" needs a 4-digit year.
func ParseDate(format, raw string) (time.Time, error) {
	return time.Parse(Layout(format), strings.TrimSpace(raw))
}
