package content

import "strings"

const (
	fullWidthColon = "："
	asciiColon     = ": "
)

// SplitHighlight splits a job highlight of the form "Title: body" (or the
// full-width "Title：body" used in Chinese copy) into its title and body.
// When no separator is present the title is empty and body is the input.
func SplitHighlight(s string) (title, body string) {
	sep := asciiColon
	if strings.Contains(s, fullWidthColon) {
		sep = fullWidthColon
	}
	title, body, found := strings.Cut(s, sep)
	if !found {
		return "", s
	}
	return title, body
}
