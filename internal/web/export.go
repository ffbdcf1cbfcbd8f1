package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kubelouislu/sre-portfolio/internal/article"
	"github.com/kubelouislu/sre-portfolio/internal/content"
	"github.com/kubelouislu/sre-portfolio/internal/lang"
	"github.com/kubelouislu/sre-portfolio/internal/site"
)

// Exporter writes every view of a store as static HTML: one tree per
// language with a page per tab, tag filter and article, plus the assets.
type Exporter struct {
	store    *content.Store
	outDir   string
	fallback lang.Language
	tmpl     *template.Template
	pages    int
}

func NewExporter(store *content.Store, outDir string, fallback lang.Language) (*Exporter, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if _, ok := lang.Parse(string(fallback)); !ok {
		fallback = lang.Default
	}
	return &Exporter{store: store, outDir: outDir, fallback: fallback, tmpl: tmpl}, nil
}

// Export writes the site and returns the number of HTML pages written.
func (e *Exporter) Export() (int, error) {
	e.pages = 0
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	for _, code := range content.Languages {
		l, _ := lang.Parse(code)
		if err := e.exportLanguage(l); err != nil {
			return e.pages, fmt.Errorf("exporting %s: %w", code, err)
		}
	}
	if err := e.writeRedirect(); err != nil {
		return e.pages, err
	}
	if err := e.copyStatic(); err != nil {
		return e.pages, err
	}
	return e.pages, nil
}

func (e *Exporter) newSession(l lang.Language, tag string) *site.Session {
	return site.NewSession(lang.New(e.store, l), article.NewTagFilter(tag))
}

func (e *Exporter) exportLanguage(l lang.Language) error {
	d, _ := e.store.Dictionary(string(l))
	tags := article.AllTags(d.Thinking)
	if err := checkSegments("tag", tags, nil); err != nil {
		return err
	}
	ids := make([]string, len(d.Thinking))
	for i, a := range d.Thinking {
		ids[i] = a.ID
	}
	if err := checkSegments("article id", ids, []string{"tags"}); err != nil {
		return err
	}

	for _, t := range site.Tabs {
		sess := e.newSession(l, "")
		sess.SelectTab(t)
		segments := []string{string(l)}
		if t != site.TabResume {
			segments = append(segments, string(t))
		}
		if err := e.writePage(sess, segments...); err != nil {
			return err
		}
	}

	for _, tag := range tags {
		sess := e.newSession(l, tag)
		sess.SelectTab(site.TabThinking)
		if err := e.writePage(sess, string(l), string(site.TabThinking), "tags", tag); err != nil {
			return err
		}
	}

	for _, id := range ids {
		sess := e.newSession(l, "")
		if err := sess.SelectArticle(id); err != nil {
			return err
		}
		if err := e.writePage(sess, string(l), string(site.TabThinking), id); err != nil {
			return err
		}
	}
	return nil
}

func safeSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

// checkSegments rejects names that are unusable as directory names or that
// would share a directory on a case-insensitive filesystem, with each other
// or with a reserved sibling.
func checkSegments(kind string, names, reserved []string) error {
	seen := make(map[string]string, len(names)+len(reserved))
	for _, r := range reserved {
		seen[strings.ToLower(r)] = r
	}
	for _, n := range names {
		if !safeSegment(n) {
			return fmt.Errorf("%s %q cannot be used as a directory name", kind, n)
		}
		key := strings.ToLower(n)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%s %q collides with %q on case-insensitive filesystems", kind, n, prev)
		}
		seen[key] = n
	}
	return nil
}

func (e *Exporter) writePage(sess *site.Session, segments ...string) error {
	dir := filepath.Join(append([]string{e.outDir}, segments...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, "index.html")
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, "page", buildPage(sess, exportLinks{}, true)); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	// os.WriteFile reports close errors too.
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	e.pages++
	return nil
}

const redirectPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><meta http-equiv="refresh" content="0; url=/%[1]s/"><link rel="canonical" href="/%[1]s/"></head>
<body><a href="/%[1]s/">/%[1]s/</a></body></html>
`

func (e *Exporter) writeRedirect() error {
	path := filepath.Join(e.outDir, "index.html")
	body := fmt.Sprintf(redirectPage, e.fallback)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (e *Exporter) copyStatic() error {
	static := staticFiles()
	return fs.WalkDir(static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(e.outDir, "static", filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, name)
		if err != nil {
			return fmt.Errorf("reading asset %s: %w", name, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("writing asset %s: %w", target, err)
		}
		log.Printf("Copied asset %s", name)
		return nil
	})
}
