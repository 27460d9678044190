package extract

import (
	"time"

	"proxy-jobs-export/pkg/datemath"
)

// DateCandidate is a normalized due date offered for one label kind.
type DateCandidate struct {
	Date string // YYYY-MM-DD
	Open bool
}

// Selector picks one representative date out of many candidates.
type Selector struct {
	dates *datemath.Parser
}

// NewSelector creates a Selector evaluating "today" in the parser's timezone.
func NewSelector(dates *datemath.Parser) *Selector {
	return &Selector{dates: dates}
}

// Select prefers candidates from open tasks and falls back to all candidates.
// Within a pool the earliest date on or after today wins; when every date is
// in the past the latest one is used. It returns "" when nothing parses.
func (s *Selector) Select(candidates []DateCandidate, now time.Time) string {
	today := s.dates.Today(now)

	open := make([]DateCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Open {
			open = append(open, c)
		}
	}

	if picked := s.pick(open, today); picked != "" {
		return picked
	}
	return s.pick(candidates, today)
}

func (s *Selector) pick(pool []DateCandidate, today time.Time) string {
	var (
		upcoming, past       time.Time
		hasUpcoming, hasPast bool
	)

	for _, c := range pool {
		d, ok := s.dates.ParseISO(c.Date)
		if !ok {
			continue
		}
		if !d.Before(today) {
			if !hasUpcoming || d.Before(upcoming) {
				upcoming, hasUpcoming = d, true
			}
			continue
		}
		if !hasPast || d.After(past) {
			past, hasPast = d, true
		}
	}

	switch {
	case hasUpcoming:
		return upcoming.Format(datemath.ISOLayout)
	case hasPast:
		return past.Format(datemath.ISOLayout)
	}
	return ""
}
