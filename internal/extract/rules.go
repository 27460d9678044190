package extract

import "regexp"

// Field names the output a Rule feeds.
type Field string

const (
	FieldMCCode      Field = "mc_code"
	FieldBRDCode     Field = "brd_code"
	FieldBaseNumber  Field = "base_number"
	FieldCommaJob    Field = "comma_job_number"
	FieldDashJob     Field = "dash_job_suffix"
	FieldNameGroup   Field = "name_paren_group"
	FieldNameSuffix  Field = "name_trailing_number"
	FieldRange       Field = "range_blocker"
	FieldArtifact    Field = "artifact_word"
	FieldPlaceholder Field = "placeholder"
	FieldSeparator   Field = "label_separator"
)

// Rule is one named pattern of the inference engine.
type Rule struct {
	Name    string
	Field   Field
	Pattern *regexp.Regexp
}

var (
	// MC followed by exactly 4 digits, or MCA followed by exactly 3.
	ruleMCCode = Rule{
		Name:    "mc-code",
		Field:   FieldMCCode,
		Pattern: regexp.MustCompile(`(?i)\b(?:MC\d{4}|MCA\d{3})\b`),
	}
	// S, P or Z followed by exactly 5 digits.
	ruleBRDCode = Rule{
		Name:    "brd-code",
		Field:   FieldBRDCode,
		Pattern: regexp.MustCompile(`(?i)\b[SPZ]\d{5}\b`),
	}
	ruleBaseNumber = Rule{
		Name:    "base-job-number",
		Field:   FieldBaseNumber,
		Pattern: regexp.MustCompile(`^(\d{6})(?:\D|$)`),
	}
	ruleCommaJob = Rule{
		Name:    "comma-job-number",
		Field:   FieldCommaJob,
		Pattern: regexp.MustCompile(`,\s*(\d{6})\b`),
	}
	ruleDashJob = Rule{
		Name:    "dash-job-suffix",
		Field:   FieldDashJob,
		Pattern: regexp.MustCompile(`-\s*(\d{3})\b`),
	}
	ruleNameGroup = Rule{
		Name:    "name-paren-group",
		Field:   FieldNameGroup,
		Pattern: regexp.MustCompile(`\([^)]+\)`),
	}
	ruleNameSuffix = Rule{
		Name:    "name-trailing-number",
		Field:   FieldNameSuffix,
		Pattern: regexp.MustCompile(`\(\d+\)\s*$`),
	}
	ruleRange = Rule{
		Name:    "range-blocker",
		Field:   FieldRange,
		Pattern: regexp.MustCompile(`(?i)\b(?:RANGE|WINDOW|THRU|THROUGH|TO|BETWEEN|FROM)\b`),
	}
	ruleArtifact = Rule{
		Name:  "artifact-word",
		Field: FieldArtifact,
		Pattern: regexp.MustCompile(`(?i)\b(?:FILES?|DOCS?|DOCUMENTS?|UPLOADS?|UPLOADED|DRAFTS?|TEMPLATES?|` +
			`REPORTS?|STATUS|EMAILS?|REMINDERS?|CHECKLISTS?|NOTICES?|FOLDERS?|LINKS?|ATTACHMENTS?)\b`),
	}
	rulePlaceholder = Rule{
		Name:    "placeholder",
		Field:   FieldPlaceholder,
		Pattern: regexp.MustCompile(`(?i)^(?:TBD|TBA|N/?A|ASAP)\.?$`),
	}
	ruleSeparator = Rule{
		Name:    "label-separator",
		Field:   FieldSeparator,
		Pattern: regexp.MustCompile(`^[\s:\-\x{2013}\x{2014}]+`),
	}
)

// Rules lists every text rule in evaluation order.
var Rules = []Rule{
	ruleMCCode,
	ruleBRDCode,
	ruleBaseNumber,
	ruleCommaJob,
	ruleDashJob,
	ruleNameGroup,
	ruleNameSuffix,
	ruleRange,
	ruleArtifact,
	rulePlaceholder,
	ruleSeparator,
}

// LabelRule describes how task titles of one Kind are recognized.
type LabelRule struct {
	Kind Kind
	// Exact titles accepted outright, compared after trim and upper-casing.
	Exact []string
	// Phrase must appear word-bounded; the text after it is the tail.
	Phrase *regexp.Regexp
	// StemsAll accepts a title when every stem appears somewhere in it.
	StemsAll []*regexp.Regexp
	// Exclude rejects a title outright.
	Exclude *regexp.Regexp
}

var (
	adjournStem = regexp.MustCompile(`(?i)\bADJOURN`)
	meetingStem = regexp.MustCompile(`(?i)\bMEETING`)
)

// LabelRules holds one rule per label kind.
var LabelRules = map[Kind]LabelRule{
	KindRecord: {
		Kind:   KindRecord,
		Exact:  []string{"RECORD DATE"},
		Phrase: regexp.MustCompile(`(?i)\bRECORD\s+DATE\b`),
	},
	KindMeeting: {
		Kind:    KindMeeting,
		Exact:   []string{"MEETING DATE"},
		Phrase:  regexp.MustCompile(`(?i)\bMEETING\s+DATE\b`),
		Exclude: adjournStem,
	},
	KindAdjournment: {
		Kind:     KindAdjournment,
		Exact:    []string{"ADJOURNMENT DATE", "ADJOURN DATE"},
		Phrase:   regexp.MustCompile(`(?i)\bADJOURN(?:MENT|ED)?\s+DATE\b`),
		StemsAll: []*regexp.Regexp{adjournStem, meetingStem},
	},
}
