package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// StripLinks keeps the display text of Markdown links and drops bare URLs.
func StripLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// PlainText renders Markdown journal text down to plain prose with collapsed
// whitespace. Used to build prompt text for remote analysis; the local
// analyzer tokenizes the raw input directly.
func PlainText(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := htmlTagPattern.ReplaceAllString(string(rendered), " ")
	collapsed := strings.Join(strings.Fields(stripped), " ")

	return strings.TrimSpace(StripLinks(collapsed))
}
