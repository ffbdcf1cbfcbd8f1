package web

import (
	"net/url"
	"strings"

	"github.com/kubelouislu/sre-portfolio/internal/article"
	"github.com/kubelouislu/sre-portfolio/internal/content"
	"github.com/kubelouislu/sre-portfolio/internal/growth"
	"github.com/kubelouislu/sre-portfolio/internal/lang"
	"github.com/kubelouislu/sre-portfolio/internal/site"
)

// Link is a navigation target. URL loads a full page; HX, when set, loads
// the matching fragment into #main.
type Link struct {
	URL string
	HX  string
}

// linker builds navigation targets for one output mode.
type linker interface {
	tab(l lang.Language, t site.Tab) Link
	article(l lang.Language, id string) Link
	tag(l lang.Language, tag string) Link
	toggle(l lang.Language, t site.Tab) Link
}

// serverLinks address the live server; the language travels in a cookie.
type serverLinks struct{}

func (serverLinks) tab(_ lang.Language, t site.Tab) Link {
	if t == site.TabResume {
		return Link{URL: "/", HX: "/tabs/" + string(t)}
	}
	return Link{URL: "/?tab=" + string(t), HX: "/tabs/" + string(t)}
}

func (serverLinks) article(_ lang.Language, id string) Link {
	return Link{
		URL: "/?tab=thinking&article=" + url.QueryEscape(id),
		HX:  "/thinking/" + url.PathEscape(id),
	}
}

func (serverLinks) tag(_ lang.Language, tag string) Link {
	if tag == "" {
		return Link{URL: "/?tab=thinking", HX: "/thinking"}
	}
	q := url.QueryEscape(tag)
	return Link{URL: "/?tab=thinking&tag=" + q, HX: "/thinking?tag=" + q}
}

func (serverLinks) toggle(lang.Language, site.Tab) Link {
	return Link{URL: "/lang/toggle"}
}

// exportLinks address the static tree written by Export: one directory per
// language, tab, tag and article.
type exportLinks struct{}

func exportURL(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/") + "/"
}

func (exportLinks) tab(l lang.Language, t site.Tab) Link {
	if t == site.TabResume {
		return Link{URL: exportURL(string(l))}
	}
	return Link{URL: exportURL(string(l), string(t))}
}

func (exportLinks) article(l lang.Language, id string) Link {
	return Link{URL: exportURL(string(l), string(site.TabThinking), id)}
}

func (exportLinks) tag(l lang.Language, tag string) Link {
	if tag == "" {
		return Link{URL: exportURL(string(l), string(site.TabThinking))}
	}
	return Link{URL: exportURL(string(l), string(site.TabThinking), "tags", tag)}
}

func (e exportLinks) toggle(l lang.Language, t site.Tab) Link {
	return e.tab(l.Other(), t)
}

// Page is the data behind every template. Fragments receive the same value
// as the full page.
type Page struct {
	Lang        lang.Language
	SwitchLabel string
	Exported    bool
	RequestID   string
	// Return is the full-page URL of the current view, used to come back
	// after a language switch.
	Return string

	D      *content.Dictionary
	Tab    site.Tab
	Nav    []NavItem
	Toggle Link
	Mailto string

	Resume   *ResumeView
	Thinking *ThinkingView
	Reader   *ReaderView
	Growth   *GrowthView
}

type NavItem struct {
	Label  string
	Link   Link
	Active bool
}

type ResumeView struct {
	Jobs []JobView
}

type JobView struct {
	content.Job
	Highlights []Highlight
}

type Highlight struct {
	Title string
	Body  string
}

type ThinkingView struct {
	All       Link
	AllActive bool
	Tags      []TagItem
	Articles  []ArticleCard
	Active    string
	Clear     Link
}

type TagItem struct {
	Name   string
	Link   Link
	Active bool
}

type ArticleCard struct {
	content.Article
	Link Link
}

type ReaderView struct {
	Article content.Article
	Items   []ReaderItem
	Back    Link
}

// ReaderItem is a render item with its diagram strings resolved for the
// active language.
type ReaderItem struct {
	article.Item
	Panels []content.DiagramPanel
}

type GrowthView struct {
	Points   []growth.Point
	Segments []growth.Segment
	Polyline string
}

// buildPage derives the view of sess for the given link mode.
func buildPage(sess *site.Session, lk linker, exported bool) Page {
	l := sess.Lang.Language()
	d := sess.Content()
	p := Page{
		Lang:        l,
		SwitchLabel: l.SwitchLabel(),
		Exported:    exported,
		D:           d,
		Tab:         sess.Tab(),
		Toggle:      lk.toggle(l, sess.Tab()),
		Mailto:      d.Profile.MailtoURL(),
	}
	p.Return = lk.tab(l, sess.Tab()).URL

	labels := map[site.Tab]string{
		site.TabResume:   d.UI.Nav.Resume,
		site.TabStartups: d.UI.Nav.Startups,
		site.TabThinking: d.UI.Nav.Thinking,
		site.TabGrowth:   d.UI.Nav.Growth,
	}
	for _, t := range site.Tabs {
		p.Nav = append(p.Nav, NavItem{Label: labels[t], Link: lk.tab(l, t), Active: t == sess.Tab()})
	}

	switch sess.Tab() {
	case site.TabResume:
		p.Resume = buildResume(d)
	case site.TabThinking:
		if a, ok := sess.Selected(); ok {
			p.Reader = buildReader(sess, a, lk)
			p.Return = lk.article(l, a.ID).URL
		} else {
			p.Thinking = buildThinking(sess, lk)
			p.Return = lk.tag(l, sess.Tags.Active()).URL
		}
	case site.TabGrowth:
		p.Growth = &GrowthView{
			Points:   growth.Trajectory(d.Growth),
			Segments: growth.Segments(d.Growth),
			Polyline: growth.Polyline(d.Growth),
		}
	}
	return p
}

func buildResume(d *content.Dictionary) *ResumeView {
	v := &ResumeView{Jobs: make([]JobView, 0, len(d.Experience))}
	for _, j := range d.Experience {
		jv := JobView{Job: j}
		for _, h := range j.Highlights {
			title, body := content.SplitHighlight(h)
			jv.Highlights = append(jv.Highlights, Highlight{Title: title, Body: body})
		}
		v.Jobs = append(v.Jobs, jv)
	}
	return v
}

func buildThinking(sess *site.Session, lk linker) *ThinkingView {
	l := sess.Lang.Language()
	active := sess.Tags.Active()
	v := &ThinkingView{
		All:       lk.tag(l, ""),
		AllActive: active == "",
		Active:    active,
		Clear:     lk.tag(l, ""),
	}
	for _, t := range sess.AllTags() {
		// Selecting the active tag again clears the filter.
		target := t
		if t == active {
			target = ""
		}
		v.Tags = append(v.Tags, TagItem{Name: t, Link: lk.tag(l, target), Active: t == active})
	}
	for _, a := range sess.VisibleArticles() {
		v.Articles = append(v.Articles, ArticleCard{Article: a, Link: lk.article(l, a.ID)})
	}
	return v
}

func buildReader(sess *site.Session, a content.Article, lk linker) *ReaderView {
	d := sess.Content()
	plan := article.RenderPlan(a, sess.PlanOptions())
	items := make([]ReaderItem, len(plan))
	for i, it := range plan {
		items[i] = ReaderItem{Item: it}
		if it.Diagram != nil {
			items[i].Panels = d.Diagrams[it.Diagram.ID].Panels
		}
	}
	return &ReaderView{
		Article: a,
		Items:   items,
		Back:    lk.tag(sess.Lang.Language(), sess.Tags.Active()),
	}
}
