// Package article turns article content into render plans and provides the
// inline tokenizer and tag filtering used by the thinking section.
package article

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kubelouislu/sre-portfolio/internal/content"
)

// ItemKind is the type of a render item.
type ItemKind int

const (
	Heading ItemKind = iota
	Paragraph
	ListItem
	DiagramItem
)

func (k ItemKind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Paragraph:
		return "paragraph"
	case ListItem:
		return "list_item"
	case DiagramItem:
		return "diagram"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Item is one classified content block, ready for display.
//
//	Heading:     Text
//	Paragraph:   Runs
//	ListItem:    Marker, Runs
//	DiagramItem: Diagram, Caption (already prefixed with the figure label)
type Item struct {
	Kind    ItemKind `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Marker  string   `json:"marker,omitempty"`
	Runs    []Run    `json:"runs,omitempty"`
	Diagram *Diagram `json:"diagram,omitempty"`
	Caption string   `json:"caption,omitempty"`
}

// Options controls language-dependent parts of a render plan.
type Options struct {
	// FigureLabel prefixes diagram captions, e.g. "Fig." gives "Fig. 1: ...".
	FigureLabel string
}

const (
	headingPrefix = "## "
	bulletPrefix  = "• "
)

var orderedMarker = regexp.MustCompile(`^\d+\.\s`)

type textRule struct {
	name  string
	match func(string) bool
	build func(string) Item
}

// textRules are tried in order; the last one always matches.
var textRules = []textRule{
	{name: "heading", match: isHeading, build: buildHeading},
	{name: "list", match: isListItem, build: buildListItem},
	{name: "paragraph", match: func(string) bool { return true }, build: buildParagraph},
}

func isHeading(s string) bool {
	return strings.HasPrefix(s, headingPrefix)
}

func isListItem(s string) bool {
	return orderedMarker.MatchString(s) || strings.HasPrefix(s, bulletPrefix)
}

func buildHeading(s string) Item {
	return Item{Kind: Heading, Text: strings.TrimPrefix(s, headingPrefix)}
}

func buildListItem(s string) Item {
	marker, body := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		marker, body = s[:i], s[i+size:]
	}
	return Item{Kind: ListItem, Marker: marker, Runs: Tokenize(body)}
}

func buildParagraph(s string) Item {
	return Item{Kind: Paragraph, Runs: Tokenize(s)}
}

// classify applies the first matching text rule.
func classify(s string) Item {
	for _, r := range textRules {
		if r.match(s) {
			return r.build(s)
		}
	}
	return buildParagraph(s)
}

// RenderPlan maps an article's content blocks to render items in document
// order. Diagram blocks naming an unregistered diagram produce no item.
func RenderPlan(a content.Article, opts Options) []Item {
	return PlanBlocks(a.Content, opts)
}

// PlanBlocks is RenderPlan over a bare block sequence.
func PlanBlocks(blocks []content.Block, opts Options) []Item {
	items := make([]Item, 0, len(blocks))
	figure := 0
	for _, b := range blocks {
		switch b.Kind {
		case content.DiagramBlock:
			d, ok := LookupDiagram(b.DiagramID)
			if !ok {
				continue
			}
			figure++
			items = append(items, Item{
				Kind:    DiagramItem,
				Diagram: &d,
				Caption: figureCaption(opts.FigureLabel, figure, b.Caption),
			})
		default:
			items = append(items, classify(b.Text))
		}
	}
	return items
}

func figureCaption(label string, n int, caption string) string {
	if caption == "" {
		return ""
	}
	if label == "" {
		return caption
	}
	return fmt.Sprintf("%s %d: %s", label, n, caption)
}
