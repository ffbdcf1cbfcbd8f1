package article

import (
	"fmt"
	"regexp"
	"strings"
)

// RunKind is the type of an inline text run.
type RunKind int

const (
	Plain RunKind = iota
	Bold
	Link
)

func (k RunKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Link:
		return "link"
	default:
		return fmt.Sprintf("RunKind(%d)", int(k))
	}
}

func (k RunKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// LinkLabelLength is the number of characters of a link shown before the ellipsis.
const LinkLabelLength = 20

// Run is a typed fragment of inline text. For links, Text is the display
// label and URL the untruncated original.
type Run struct {
	Kind RunKind `json:"kind"`
	Text string  `json:"text"`
	URL  string  `json:"url,omitempty"`
}

// Source returns the text the run was produced from.
func (r Run) Source() string {
	switch r.Kind {
	case Bold:
		return "**" + r.Text + "**"
	case Link:
		return r.URL
	default:
		return r.Text
	}
}

var (
	urlPattern  = regexp.MustCompile(`https?://\S+`)
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// Tokenize splits text into plain, bold and link runs in document order.
// URLs are found first; bold markers are only recognised outside URLs and
// only when paired, so a stray "**" stays in a plain run.
func Tokenize(text string) []Run {
	runs := make([]Run, 0, 1)
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		runs = appendStyled(runs, text[last:loc[0]])
		u := text[loc[0]:loc[1]]
		runs = append(runs, Run{Kind: Link, Text: linkLabel(u), URL: u})
		last = loc[1]
	}
	return appendStyled(runs, text[last:])
}

func appendStyled(runs []Run, segment string) []Run {
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(segment, -1) {
		if m[0] > last {
			runs = append(runs, Run{Kind: Plain, Text: segment[last:m[0]]})
		}
		runs = append(runs, Run{Kind: Bold, Text: segment[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(segment) {
		runs = append(runs, Run{Kind: Plain, Text: segment[last:]})
	}
	return runs
}

func linkLabel(u string) string {
	label := u
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(label, scheme) {
			label = label[len(scheme):]
			break
		}
	}
	if r := []rune(label); len(r) > LinkLabelLength {
		label = string(r[:LinkLabelLength])
	}
	return label + "..."
}
