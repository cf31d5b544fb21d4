package safety

import "regexp"

type redactionRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules tuned for what actually leaves the machine: staged diffs and
// captured git output. Assignments win over bare-literal rules so the key
// name survives for the model to reason about.
var secretRedactionRules = []redactionRule{
	{
		pattern:     regexp.MustCompile(`(?i)\b([a-z0-9_.-]*(?:token|secret|password|passwd|api[_-]?key|access[_-]?key|private[_-]?key)[a-z0-9_.-]*)\s*[=:]\s*([^\s"']+|"[^"]*"|'[^']*')`),
		replacement: `$1=<redacted>`,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(authorization\s*:\s*(?:bearer|basic|token))\s+\S+`),
		replacement: `$1 <redacted>`,
	},
	{
		pattern:     regexp.MustCompile(`\b(ghp|gho|ghu|ghs|github_pat)_[A-Za-z0-9_]{20,}\b`),
		replacement: `<redacted>`,
	},
	{
		pattern:     regexp.MustCompile(`\b(sk|pk|rk)-[A-Za-z0-9_-]{20,}\b`),
		replacement: `<redacted>`,
	},
	{
		pattern:     regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----(?s:.*?)-----END [A-Z ]*PRIVATE KEY-----`),
		replacement: `<redacted private key>`,
	},
	{
		pattern:     regexp.MustCompile(`\b(AKIA|ASIA)[0-9A-Z]{16}\b`),
		replacement: `<redacted>`,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(https?://)([^/\s:@]+):([^@\s]+)@`),
		replacement: `$1$2:<redacted>@`,
	},
}

// RedactText scrubs credential-shaped content from text before it is sent
// to the language model.
func RedactText(input string) string {
	redacted := input
	for _, rule := range secretRedactionRules {
		redacted = rule.pattern.ReplaceAllString(redacted, rule.replacement)
	}
	return redacted
}
