// Package lang holds the active-language state cell and maps HTTP language
// preferences onto the two supported dictionaries.
package lang

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/kubelouislu/sre-portfolio/internal/content"
)

// Language is one of the two supported dictionary codes.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Default is the language a fresh session starts in.
const Default = Chinese

// Parse accepts "en" or "zh" in any case.
func Parse(code string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case English:
		return English, true
	case Chinese:
		return Chinese, true
	}
	return "", false
}

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == English {
		return Chinese
	}
	return English
}

// SwitchLabel is the text of the language switcher: it names the language
// a click switches to.
func (l Language) SwitchLabel() string {
	if l == English {
		return "中文"
	}
	return "EN"
}

func (l Language) String() string { return string(l) }

var matcher = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.English,
})

// Negotiate picks a language from an Accept-Language header. An empty or
// unparseable header, or one that matches neither language, yields fallback.
func Negotiate(acceptLanguage string, fallback Language) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	if index == 0 {
		return Chinese
	}
	return English
}

// Selector is the language state cell. Toggle is its only mutation; readers
// call Content each time instead of caching the dictionary.
type Selector struct {
	store   *content.Store
	current Language
}

// New returns a selector over store starting at initial. An invalid initial
// value falls back to Default.
func New(store *content.Store, initial Language) *Selector {
	if _, ok := Parse(string(initial)); !ok {
		initial = Default
	}
	return &Selector{store: store, current: initial}
}

func (s *Selector) Language() Language { return s.current }

// Toggle flips between English and Chinese.
func (s *Selector) Toggle() {
	s.current = s.current.Other()
}

// Content returns the full dictionary for the active language.
func (s *Selector) Content() *content.Dictionary {
	d, _ := s.store.Dictionary(string(s.current))
	return d
}
