package client

import (
	"regexp"
	"strings"
)

var (
	flashPattern = regexp.MustCompile(`(?is)<div[^>]*\bid="flash"[^>]*>(.*?)</div>`)
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// extractFlash pulls the text of the application's flash banner out of a
// response page. Returns "" when the page has no banner.
func extractFlash(body string) string {
	m := flashPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return collapseText(m[1])
}

// elementText returns the text content of the element with the given id, or
// "" when the page has no such element. The web-inputs page echoes accepted
// values back in elements like output_number.
func elementText(body, id string) string {
	pattern := regexp.MustCompile(`(?is)<[^>]*\bid="` + regexp.QuoteMeta(id) + `"[^>]*>(.*?)</`)
	m := pattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return collapseText(m[1])
}

func collapseText(fragment string) string {
	text := tagPattern.ReplaceAllString(fragment, " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}
