package article

import "github.com/kubelouislu/sre-portfolio/internal/content"

// AllTags returns every distinct tag in order of first appearance.
func AllTags(articles []content.Article) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, a := range articles {
		for _, t := range a.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// Visible returns the articles carrying tag, in their original order. An
// empty tag returns articles unchanged; a tag nobody carries returns an
// empty slice.
func Visible(articles []content.Article, tag string) []content.Article {
	if tag == "" {
		return articles
	}
	out := make([]content.Article, 0, len(articles))
	for _, a := range articles {
		if a.HasTag(tag) {
			out = append(out, a)
		}
	}
	return out
}

// TagFilter is the active-tag state cell. The zero value shows everything.
type TagFilter struct {
	active string
}

// NewTagFilter returns a filter with tag already active.
func NewTagFilter(tag string) *TagFilter {
	return &TagFilter{active: tag}
}

// Select activates tag, or clears the filter when tag is already active.
func (f *TagFilter) Select(tag string) {
	if f.active == tag {
		f.active = ""
		return
	}
	f.active = tag
}

func (f *TagFilter) Clear() { f.active = "" }

// Active returns the active tag, or "" when unfiltered.
func (f *TagFilter) Active() string { return f.active }

// Apply returns the articles visible under the current filter.
func (f *TagFilter) Apply(articles []content.Article) []content.Article {
	return Visible(articles, f.active)
}
