package lib

import (
	"regexp"
	"strings"
)

var (
	reCommentOpen   = regexp.MustCompile(`^\s*\{`)
	reCommentClose  = regexp.MustCompile(`\}\s*$`)
	reInlineComment = regexp.MustCompile(`\{[^{}]*\}`)
)

/*
	SanitizeLines removes comments and blank lines.

	Inline {...} spans are erased first, except on lines that open with a brace,
	so that a data line keeps its content. Only then are blank lines and lines
	that open or close with a brace dropped whole.
*/
func SanitizeLines(lines []string) []string {
	sanitized := make([]string, 0, len(lines))
	for _, line := range lines {
		if !reCommentOpen.MatchString(line) {
			line = reInlineComment.ReplaceAllString(line, "")
		}

		if isBlank(line) || isComment(line) {
			continue
		}

		sanitized = append(sanitized, line)
	}

	return sanitized
}

/*
	SanitizeText splits raw document text into lines, sanitizes them, and joins
	them back with a trailing newline on every line.
*/
func SanitizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := SanitizeLines(strings.Split(text, "\n"))
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isComment(line string) bool {
	return reCommentOpen.MatchString(line) || reCommentClose.MatchString(line)
}
