package discord

import (
	"regexp"
	"strings"
)

var (
	headerPattern           = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
	multipleNewlinesPattern = regexp.MustCompile(`\n{3,}`)
)

// formatForDiscord tidies model output for Discord rendering: markdown
// headers become bold lines (Discord renders # headers huge) and runs of
// blank lines collapse. Code blocks pass through untouched.
func formatForDiscord(content string) string {
	var out strings.Builder
	inCodeBlock := false

	segments := strings.Split(content, "```")
	for i, segment := range segments {
		if i > 0 {
			out.WriteString("```")
		}
		if inCodeBlock {
			out.WriteString(segment)
		} else {
			formatted := headerPattern.ReplaceAllString(segment, "**$1**")
			formatted = multipleNewlinesPattern.ReplaceAllString(formatted, "\n\n")
			out.WriteString(formatted)
		}
		inCodeBlock = !inCodeBlock
	}

	return strings.TrimSpace(out.String())
}
