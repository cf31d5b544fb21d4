package llm

import (
	"regexp"
	"strings"
)

var thinkBlockPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)
var fenceTagPattern = regexp.MustCompile(`^[a-z]{1,16}$`)

// CleanOutput strips the decoration local models like to wrap replies in:
// <think> reasoning blocks and a single enclosing code fence. The surviving
// text is what gets used as a commit message or printed as an explanation.
func CleanOutput(raw string) string {
	cleaned := thinkBlockPattern.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	withoutFence := strings.TrimPrefix(cleaned, "```")
	if idx := strings.IndexRune(withoutFence, '\n'); idx >= 0 {
		// Drop the opening fence line only when it is bare or a language tag.
		// Anything else on that line is content that lost its backticks.
		firstLine := strings.TrimSpace(withoutFence[:idx])
		if firstLine == "" || fenceTagPattern.MatchString(firstLine) {
			withoutFence = withoutFence[idx+1:]
		}
	}
	if idx := strings.LastIndex(withoutFence, "```"); idx >= 0 {
		withoutFence = withoutFence[:idx]
	}
	return strings.TrimSpace(withoutFence)
}
