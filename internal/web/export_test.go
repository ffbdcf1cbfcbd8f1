package web

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kubelouislu/sre-portfolio/internal/article"
	"github.com/kubelouislu/sre-portfolio/internal/content"
	"github.com/kubelouislu/sre-portfolio/internal/lang"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestExport(t *testing.T) {
	store, err := content.Load()
	if err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()
	exp, err := NewExporter(store, out, lang.English)
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}
	pages, err := exp.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	want := 0
	for _, code := range content.Languages {
		d, _ := store.Dictionary(code)
		want += 4 + len(article.AllTags(d.Thinking)) + len(d.Thinking)
	}
	if pages != want {
		t.Errorf("pages = %d, want %d", pages, want)
	}

	if root := readFile(t, filepath.Join(out, "index.html")); !strings.Contains(root, "url=/en/") {
		t.Errorf("root redirect = %q", root)
	}

	en := readFile(t, filepath.Join(out, "en", "index.html"))
	if !strings.Contains(en, `<html lang="en">`) || strings.Contains(en, "hx-get") || strings.Contains(en, "htmx.org") {
		t.Error("exported page is not static")
	}
	if !strings.Contains(en, `href="/zh/"`) {
		t.Error("exported page lacks the language link")
	}

	reader := readFile(t, filepath.Join(out, "en", "thinking", "0", "index.html"))
	if !strings.Contains(reader, "Fig. 1: ") || !strings.Contains(reader, `href="/en/thinking/"`) {
		t.Error("exported reader is incomplete")
	}

	tagPage := readFile(t, filepath.Join(out, "en", "thinking", "tags", "1+N Model", "index.html"))
	if !strings.Contains(tagPage, "Transformation to BRE") || strings.Contains(tagPage, "Embracing Chaos") {
		t.Error("exported tag page is not filtered")
	}
	if strings.Contains(tagPage, "1+N%20Model/") || strings.Contains(tagPage, "1&#43;N%20Model/") {
		t.Error("active tag on its own page still links to itself")
	}
	if !strings.Contains(tagPage, `href="/en/thinking/"`) {
		t.Error("active tag does not link back to the unfiltered list")
	}

	list := readFile(t, filepath.Join(out, "en", "thinking", "index.html"))
	if !strings.Contains(list, `href="/en/thinking/tags/1&#43;N%20Model/"`) && !strings.Contains(list, `href="/en/thinking/tags/1+N%20Model/"`) {
		t.Error("tag link is not path-escaped")
	}

	zhTag := filepath.Join(out, "zh", "thinking", "tags", "深度思考", "index.html")
	if _, err := os.Stat(zhTag); err != nil {
		t.Errorf("zh tag page missing: %v", err)
	}

	if css := readFile(t, filepath.Join(out, "static", "site.css")); !strings.Contains(css, "--primary") {
		t.Error("site.css not copied")
	}
}

func TestExportRejectsUnsafeTags(t *testing.T) {
	d := &content.Dictionary{
		Profile:  content.Profile{Name: "x"},
		Thinking: []content.Article{{ID: "1", Tags: []string{"a/b"}}},
	}
	store, err := content.NewStore(map[string]*content.Dictionary{"en": d, "zh": d})
	if err != nil {
		t.Fatal(err)
	}
	exp, err := NewExporter(store, t.TempDir(), lang.Chinese)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := exp.Export(); err == nil || !strings.Contains(err.Error(), `"a/b"`) {
		t.Errorf("err = %v", err)
	}
}

func singleDictStore(t *testing.T, articles ...content.Article) *content.Store {
	t.Helper()
	d := &content.Dictionary{Profile: content.Profile{Name: "x"}, Thinking: articles}
	store, err := content.NewStore(map[string]*content.Dictionary{"en": d, "zh": d})
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestExportRejectsCaseCollisions(t *testing.T) {
	for name, tc := range map[string]struct {
		articles []content.Article
		want     []string
	}{
		"tags": {
			articles: []content.Article{
				{ID: "1", Tags: []string{"SRE"}},
				{ID: "2", Tags: []string{"sre"}},
			},
			want: []string{`"sre"`, `"SRE"`},
		},
		"article ids": {
			articles: []content.Article{{ID: "abc"}, {ID: "ABC"}},
			want:     []string{`"ABC"`, `"abc"`},
		},
		"article id shadows tags dir": {
			articles: []content.Article{{ID: "Tags"}},
			want:     []string{`"Tags"`},
		},
	} {
		t.Run(name, func(t *testing.T) {
			exp, err := NewExporter(singleDictStore(t, tc.articles...), t.TempDir(), lang.English)
			if err != nil {
				t.Fatal(err)
			}
			pages, err := exp.Export()
			if err == nil {
				t.Fatal("expected collision error")
			}
			for _, w := range tc.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("err = %v, want mention of %s", err, w)
				}
			}
			if pages != 0 {
				t.Errorf("pages = %d, want 0 before any write", pages)
			}
		})
	}
}

func TestExportFailedWriteIsNotCounted(t *testing.T) {
	out := t.TempDir()
	// A directory where the first page file belongs makes the write fail.
	if err := os.MkdirAll(filepath.Join(out, "zh", "index.html"), 0o755); err != nil {
		t.Fatal(err)
	}
	store, err := content.Load()
	if err != nil {
		t.Fatal(err)
	}
	exp, err := NewExporter(store, out, lang.English)
	if err != nil {
		t.Fatal(err)
	}
	pages, err := exp.Export()
	if err == nil || !strings.Contains(err.Error(), "writing") {
		t.Errorf("err = %v", err)
	}
	if pages != 0 {
		t.Errorf("pages = %d, want 0", pages)
	}
}

func TestSafeSegment(t *testing.T) {
	for s, want := range map[string]bool{
		"SRE":       true,
		"1+N Model": true,
		"深度思考":      true,
		"":          false,
		"..":        false,
		"a/b":       false,
		`a\b`:       false,
	} {
		if got := safeSegment(s); got != want {
			t.Errorf("safeSegment(%q) = %v", s, got)
		}
	}
}
