package extract

import "strings"

// ExtractMCCode returns the first family A code in text, uppercased, or "".
func ExtractMCCode(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToUpper(ruleMCCode.Pattern.FindString(text))
}

// ExtractBRDCodes returns every family B code in text, uppercased and
// deduplicated in order of appearance.
func ExtractBRDCodes(text string) []string {
	if text == "" {
		return nil
	}
	var codes []string
	for _, m := range ruleBRDCode.Pattern.FindAllString(text, -1) {
		codes = appendUnique(codes, strings.ToUpper(m))
	}
	return codes
}

// Codes accumulates classification codes over an ordered scan of texts.
type Codes struct {
	MC  string
	BRD []string
}

// Observe folds text into c. The first MC code seen is kept; BRD codes are
// appended when new.
func (c Codes) Observe(text string) Codes {
	if c.MC == "" {
		c.MC = ExtractMCCode(text)
	}
	for _, code := range ExtractBRDCodes(text) {
		c.BRD = appendUnique(c.BRD, code)
	}
	return c
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
