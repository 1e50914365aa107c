// Package dateutil formats dates from user-friendly token strings.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// Formats used by the document envelope.
const (
	ISOFormat  = "YYYY-MM-DD"
	PathFormat = "YYYY/MM/DD"
	LongFormat = "MMMM Do YYYY"
)

// dateTokens maps tokens to their renderers.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token  string
	render func(time.Time) string
}{
	{"YYYY", func(t time.Time) string { return t.Format("2006") }},
	{"MMMM", func(t time.Time) string { return t.Format("January") }},
	{"MMM", func(t time.Time) string { return t.Format("Jan") }},
	{"YY", func(t time.Time) string { return t.Format("06") }},
	{"MM", func(t time.Time) string { return t.Format("01") }},
	{"Do", func(t time.Time) string { return Ordinal(t.Day()) }},
	{"DD", func(t time.Time) string { return t.Format("02") }},
	{"M", func(t time.Time) string { return t.Format("1") }},
	{"D", func(t time.Time) string { return t.Format("2") }},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      ISOFormat,
	"path":     PathFormat,
	"long":     LongFormat,
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
}

// FormatDate renders t using format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, Do, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// A preset name (iso, path, long, european, us) is accepted in place of a format.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func FormatDate(format string, t time.Time) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				result.WriteString(tok.render(t))
				i += len(tok.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// MustFormatDate is FormatDate for formats known to be valid. It panics otherwise.
func MustFormatDate(format string, t time.Time) string {
	s, err := FormatDate(format, t)
	if err != nil {
		panic(err)
	}
	return s
}

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	switch abs := max(n, -n); {
	case abs%100 >= 11 && abs%100 <= 13:
	case abs%10 == 1:
		suffix = "st"
	case abs%10 == 2:
		suffix = "nd"
	case abs%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
