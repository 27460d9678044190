package extract

import (
	"regexp"
	"strings"
)

// Kind is a single-value date label a task title can carry.
type Kind string

const (
	KindRecord      Kind = "record"
	KindMeeting     Kind = "meeting"
	KindAdjournment Kind = "adjournment"
)

// Kinds returns every label kind in column order.
func Kinds() []Kind {
	return []Kind{KindRecord, KindMeeting, KindAdjournment}
}

var parentheticalRe = regexp.MustCompile(`^\(.*\)$`)

// Matcher decides whether a task title labels a single date of a given kind.
// It never extracts the date itself.
type Matcher struct {
	strict bool
	isDate func(string) bool
}

// NewMatcher creates a Matcher. In strict mode the text following a label
// phrase must be empty, a placeholder, a parenthetical note or a date
// recognized by isDate. isDate may be nil.
func NewMatcher(strict bool, isDate func(string) bool) *Matcher {
	return &Matcher{strict: strict, isDate: isDate}
}

// Match reports whether title is a label of the given kind.
func (m *Matcher) Match(title string, kind Kind) bool {
	rule, ok := LabelRules[kind]
	if !ok {
		return false
	}

	t := strings.TrimSpace(title)
	if t == "" {
		return false
	}

	normalized := strings.ToUpper(strings.Join(strings.Fields(t), " "))
	for _, exact := range rule.Exact {
		if normalized == exact {
			return true
		}
	}

	if rule.Exclude != nil && rule.Exclude.MatchString(t) {
		return false
	}

	if loc := rule.Phrase.FindStringIndex(t); loc != nil {
		return m.acceptTail(t, labelTail(t[loc[1]:]))
	}

	if len(rule.StemsAll) > 0 && matchesAll(rule.StemsAll, t) {
		return !ruleRange.Pattern.MatchString(t) && !ruleArtifact.Pattern.MatchString(t)
	}

	return false
}

// Kinds returns the label kinds title matches, in column order.
func (m *Matcher) Kinds(title string) []Kind {
	var kinds []Kind
	for _, k := range Kinds() {
		if m.Match(title, k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (m *Matcher) acceptTail(title, tail string) bool {
	if ruleRange.Pattern.MatchString(title) || ruleRange.Pattern.MatchString(tail) {
		return false
	}
	if ruleArtifact.Pattern.MatchString(tail) {
		return false
	}
	if !m.strict {
		return true
	}
	return m.confirmsSingleDate(tail)
}

func (m *Matcher) confirmsSingleDate(tail string) bool {
	switch {
	case tail == "":
		return true
	case rulePlaceholder.Pattern.MatchString(tail):
		return true
	case parentheticalRe.MatchString(tail):
		return true
	case m.isDate != nil && m.isDate(tail):
		return true
	}
	return false
}

// labelTail strips the separators that usually follow a label phrase.
func labelTail(rest string) string {
	return strings.TrimSpace(ruleSeparator.Pattern.ReplaceAllString(rest, ""))
}

func matchesAll(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if !p.MatchString(s) {
			return false
		}
	}
	return true
}
