package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proxy-jobs-export/internal/extract"
)

func TestRulesTable(t *testing.T) {
	examples := map[string]struct {
		match   []string
		noMatch []string
	}{
		"mc-code":              {match: []string{"MC1234", "mca123", "x MC0001 y"}, noMatch: []string{"MC123", "MCA12", "MC12345"}},
		"brd-code":             {match: []string{"S12345", "p00000", "(Z99999)"}, noMatch: []string{"S1234", "Q12345", "S123456"}},
		"base-job-number":      {match: []string{"123456", "123456 Fund", "123456-789"}, noMatch: []string{"12345 Fund", "1234567", " 123456"}},
		"comma-job-number":     {match: []string{", 654321", ",654321 x"}, noMatch: []string{", 65432", ", 6543210"}},
		"dash-job-suffix":      {match: []string{"-789", "- 789 x"}, noMatch: []string{"-78", "-7890"}},
		"name-paren-group":     {match: []string{"(ACME)", "x (2) y"}, noMatch: []string{"()", "no parens"}},
		"name-trailing-number": {match: []string{"Fund (2)", "Fund (12)  "}, noMatch: []string{"Fund (A)", "(2) Fund"}},
		"range-blocker":        {match: []string{"Range", "4/1 to 4/5", "between", "From"}, noMatch: []string{"Tomorrow", "Ranged"}},
		"artifact-word":        {match: []string{"File", "docs", "Email", "status"}, noMatch: []string{"Profile", "Final"}},
		"placeholder":          {match: []string{"TBD", "tba", "N/A", "NA", "ASAP"}, noMatch: []string{"TBD soon", "4/1"}},
		"label-separator":      {match: []string{": x", " - x", "–x"}, noMatch: []string{"x"}},
	}

	assert.Len(t, extract.Rules, len(examples))
	for _, rule := range extract.Rules {
		ex, ok := examples[rule.Name]
		if !assert.True(t, ok, "rule %s has no examples", rule.Name) {
			continue
		}
		for _, s := range ex.match {
			assert.True(t, rule.Pattern.MatchString(s), "%s should match %q", rule.Name, s)
		}
		for _, s := range ex.noMatch {
			assert.False(t, rule.Pattern.MatchString(s), "%s should not match %q", rule.Name, s)
		}
	}
}

func TestLabelRulesCoverEveryKind(t *testing.T) {
	for _, k := range extract.Kinds() {
		rule, ok := extract.LabelRules[k]
		if assert.True(t, ok, "missing rule for %s", k) {
			assert.Equal(t, k, rule.Kind)
			assert.NotEmpty(t, rule.Exact)
			assert.NotNil(t, rule.Phrase)
		}
	}
}
