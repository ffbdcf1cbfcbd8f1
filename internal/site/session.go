// Package site holds the top-level view state of one visitor: the active
// tab, the selected article and the language and tag cells.
package site

import (
	"fmt"

	"github.com/kubelouislu/sre-portfolio/internal/article"
	"github.com/kubelouislu/sre-portfolio/internal/content"
	"github.com/kubelouislu/sre-portfolio/internal/lang"
)

type Tab string

const (
	TabResume   Tab = "resume"
	TabStartups Tab = "startups"
	TabThinking Tab = "thinking"
	TabGrowth   Tab = "growth"
)

// Tabs lists the tabs in navigation order.
var Tabs = []Tab{TabResume, TabStartups, TabThinking, TabGrowth}

// ParseTab accepts the name of a known tab.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Session is the state behind one rendered page. Views read through it on
// every render; nothing derived from the active language is cached.
type Session struct {
	Lang *lang.Selector
	Tags *article.TagFilter

	tab      Tab
	selected string
}

// NewSession starts on the resume tab with no article selected.
func NewSession(selector *lang.Selector, tags *article.TagFilter) *Session {
	if tags == nil {
		tags = &article.TagFilter{}
	}
	return &Session{Lang: selector, Tags: tags, tab: TabResume}
}

func (s *Session) Tab() Tab { return s.tab }

// SelectTab switches tab and closes any open article.
func (s *Session) SelectTab(t Tab) {
	s.tab = t
	s.selected = ""
}

// SelectArticle opens an article on the thinking tab.
func (s *Session) SelectArticle(id string) error {
	if _, err := s.Content().Article(id); err != nil {
		return fmt.Errorf("selecting article: %w", err)
	}
	s.tab = TabThinking
	s.selected = id
	return nil
}

// Back returns from the article reader to the list.
func (s *Session) Back() {
	s.selected = ""
}

// Selected resolves the open article against the active dictionary.
func (s *Session) Selected() (content.Article, bool) {
	if s.selected == "" {
		return content.Article{}, false
	}
	a, err := s.Content().Article(s.selected)
	if err != nil {
		return content.Article{}, false
	}
	return a, true
}

func (s *Session) Content() *content.Dictionary {
	return s.Lang.Content()
}

// AllTags lists the tags of the active dictionary's articles.
func (s *Session) AllTags() []string {
	return article.AllTags(s.Content().Thinking)
}

// VisibleArticles applies the tag filter to the active dictionary.
func (s *Session) VisibleArticles() []content.Article {
	return s.Tags.Apply(s.Content().Thinking)
}

// Plan returns the render plan of the open article.
func (s *Session) Plan() ([]article.Item, bool) {
	a, ok := s.Selected()
	if !ok {
		return nil, false
	}
	return article.RenderPlan(a, s.PlanOptions()), true
}

// PlanOptions returns the render options for the active language.
func (s *Session) PlanOptions() article.Options {
	return article.Options{FigureLabel: s.Content().UI.Thinking.Figure}
}
