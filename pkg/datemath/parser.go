package datemath

import (
	"fmt"
	"time"
)

// Parser anchors date arithmetic to a fixed IANA timezone so "today"
// means the same thing across the whole pipeline.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Today renders the calendar date of baseTime in the parser's
// timezone as YYYY-MM-DD. This is the date injected into prompts.
func (p *Parser) Today(baseTime time.Time) string {
	return p.startOfDay(baseTime).Format(DateFormat)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
