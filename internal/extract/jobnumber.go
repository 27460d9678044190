package extract

import "strings"

// JobID is one job number and the job name derived from a folder title.
type JobID struct {
	Number string
	Name   string
}

// ParseJobTitle derives job numbers and the job name from a folder title.
//
// A title that does not start with exactly six digits yields a single JobID
// with an empty number and the trimmed title as its name. Otherwise the
// leading number is followed by any ", NNNNNN" numbers and by "-NNN" suffixes,
// which borrow the first three digits of the leading number.
func ParseJobTitle(title string) []JobID {
	t := strings.TrimSpace(title)

	loc := ruleBaseNumber.Pattern.FindStringSubmatchIndex(t)
	if loc == nil {
		return []JobID{{Number: "", Name: t}}
	}
	base := t[loc[2]:loc[3]]
	remainder := t[loc[3]:]

	numbers := []string{base}
	for _, m := range ruleCommaJob.Pattern.FindAllStringSubmatch(remainder, -1) {
		numbers = appendUnique(numbers, m[1])
	}
	prefix := base[:3]
	for _, m := range ruleDashJob.Pattern.FindAllStringSubmatch(remainder, -1) {
		numbers = appendUnique(numbers, prefix+m[1])
	}

	name := JobName(t)
	ids := make([]JobID, 0, len(numbers))
	for _, n := range numbers {
		ids = append(ids, JobID{Number: n, Name: name})
	}
	return ids
}

// JobName returns the text after the last parenthesized group of title, or the
// whole title when there is none, then drops a trailing "(N)" suffix. A title
// that ends in a group, "(2)" included, has an empty name.
func JobName(title string) string {
	t := strings.TrimSpace(title)

	name := t
	if groups := ruleNameGroup.Pattern.FindAllStringIndex(t, -1); len(groups) > 0 {
		name = t[groups[len(groups)-1][1]:]
	}
	name = ruleNameSuffix.Pattern.ReplaceAllString(strings.TrimSpace(name), "")
	return strings.TrimSpace(name)
}
