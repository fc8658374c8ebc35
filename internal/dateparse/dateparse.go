// Package dateparse extracts candidate start dates from free-text replies.
//
// The underlying natural-language parser does not understand timezone
// abbreviations, so a zone token is pulled out of the text first and the
// parse is anchored in that zone. This mirrors the shorthand users reply
// with in the creation wizard: "5:30 pm PST tomorrow".
package dateparse

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/uxbn/hawkthorne/internal/timezone"
)

// Candidate is one possible interpretation of the input text
type Candidate struct {
	// Date is the extracted instant
	Date time.Time

	// TimeZoneOffset is the offset in minutes named by the text,
	// nil when no zone was mentioned
	TimeZoneOffset *int
}

// Extractor extracts candidate dates from free text, ordered by
// confidence. The result may be empty.
type Extractor interface {
	Extract(text string, ref time.Time) ([]Candidate, error)
}

// Short zone aliases that the canonical table does not carry. DST is not
// handled; the aliases resolve to standard time.
var zoneAliases = map[string]int{
	"PT": -8 * 60,
	"MT": -7 * 60,
	"CT": -6 * 60,
	"ET": -5 * 60,
}

type extractor struct {
	parser *when.Parser
}

// New creates an extractor backed by the English and common rule sets.
func New() *extractor {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)

	return &extractor{
		parser: parser,
	}
}

// Extract parses the text relative to ref and returns candidate dates.
// An unparseable text yields an empty slice, not an error.
func (e *extractor) Extract(text string, ref time.Time) ([]Candidate, error) {
	offset, remainder, hasZone := splitZone(text)

	if hasZone {
		name, ok := timezone.Name(offset)
		if !ok {
			name = "GMT"
		}
		// Anchor the parse in the named zone so wall-clock times are
		// interpreted there.
		ref = ref.In(time.FixedZone(name, offset*60))
	}

	trimmed := strings.TrimSpace(remainder)
	if strings.EqualFold(trimmed, "now") {
		return []Candidate{newCandidate(ref, offset, hasZone)}, nil
	}

	result, err := e.parser.Parse(trimmed, ref)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	return []Candidate{newCandidate(result.Time, offset, hasZone)}, nil
}

func newCandidate(date time.Time, offset int, hasZone bool) Candidate {
	candidate := Candidate{Date: date}
	if hasZone {
		candidate.TimeZoneOffset = &offset
	}
	return candidate
}

// splitZone removes the first recognized zone abbreviation from the text
// and returns its offset in minutes alongside the remaining text.
func splitZone(text string) (offset int, remainder string, found bool) {
	fields := strings.Fields(text)
	for i, field := range fields {
		token := strings.ToUpper(strings.Trim(field, ".,"))
		if token == "AM" || token == "PM" {
			continue
		}

		zoneOffset, ok := zoneAliases[token]
		if !ok {
			zoneOffset, ok = timezone.Offset(token)
		}
		if !ok {
			continue
		}

		rest := make([]string, 0, len(fields)-1)
		rest = append(rest, fields[:i]...)
		rest = append(rest, fields[i+1:]...)
		return zoneOffset, strings.Join(rest, " "), true
	}

	return 0, text, false
}
