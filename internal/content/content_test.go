package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbedded(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, code := range Languages {
		d, ok := store.Dictionary(code)
		if !ok {
			t.Fatalf("missing dictionary %q", code)
		}
		if len(d.Thinking) == 0 {
			t.Errorf("%s: expected articles", code)
		}
		if len(d.Growth) == 0 {
			t.Errorf("%s: expected life events", code)
		}
		if d.UI.Thinking.Figure == "" {
			t.Errorf("%s: figure label is empty", code)
		}
	}
}

func TestDictionariesAreParallel(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	en, _ := store.Dictionary("en")
	zh, _ := store.Dictionary("zh")

	if len(en.Thinking) != len(zh.Thinking) {
		t.Fatalf("article count: en=%d zh=%d", len(en.Thinking), len(zh.Thinking))
	}
	for i := range en.Thinking {
		if en.Thinking[i].ID != zh.Thinking[i].ID {
			t.Errorf("article %d: en id %q, zh id %q", i, en.Thinking[i].ID, zh.Thinking[i].ID)
		}
	}
	if len(en.Growth) != len(zh.Growth) {
		t.Errorf("growth count: en=%d zh=%d", len(en.Growth), len(zh.Growth))
	}
	for id := range en.Diagrams {
		if _, ok := zh.Diagrams[id]; !ok {
			t.Errorf("diagram %q has no zh strings", id)
		}
	}
}

func TestBlockUnmarshal(t *testing.T) {
	src := `
- "## Intro"
- kind: diagram
  diagramId: sre-trap
  caption: "A caption"
- kind: diagram
  diagramId: unknown-id
`
	var blocks []Block
	if err := yaml.Unmarshal([]byte(src), &blocks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if blocks[0] != Text("## Intro") {
		t.Errorf("block 0 = %+v", blocks[0])
	}
	if blocks[1] != Diagram("sre-trap", "A caption") {
		t.Errorf("block 1 = %+v", blocks[1])
	}
	if blocks[2].Kind != DiagramBlock || blocks[2].Caption != "" {
		t.Errorf("block 2 = %+v", blocks[2])
	}
}

func TestBlockUnmarshalRejectsUnknownKind(t *testing.T) {
	var blocks []Block
	err := yaml.Unmarshal([]byte("- kind: video\n  diagramId: x\n"), &blocks)
	if err == nil || !strings.Contains(err.Error(), `unsupported block kind "video"`) {
		t.Fatalf("expected unsupported kind error, got %v", err)
	}
}

func TestBlockMarshalRoundTrip(t *testing.T) {
	in := []Block{Text("plain"), Diagram("last-mile", "cap"), Diagram("one-plus-n", "")}
	out, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back []Block
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := range in {
		if in[i] != back[i] {
			t.Errorf("block %d: got %+v, want %+v", i, back[i], in[i])
		}
	}
}

func TestArticleLookup(t *testing.T) {
	d := &Dictionary{Thinking: []Article{{ID: "a"}, {ID: "b"}}}
	got, err := d.Article("b")
	if err != nil || got.ID != "b" {
		t.Fatalf("Article(b) = %+v, %v", got, err)
	}
	if _, err := d.Article("zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		dict    Dictionary
		wantErr string
	}{
		{
			name: "valid",
			dict: Dictionary{
				Profile:  Profile{Name: "x"},
				Thinking: []Article{{ID: "0", Content: []Block{Diagram("nope", "")}}},
				Growth:   []LifeEvent{{IconType: IconBirth, Coordinates: Coordinates{X: 0, Y: 100}}},
			},
		},
		{
			name:    "missing name",
			dict:    Dictionary{},
			wantErr: "profile.name is required",
		},
		{
			name:    "duplicate id",
			dict:    Dictionary{Profile: Profile{Name: "x"}, Thinking: []Article{{ID: "1"}, {ID: "1"}}},
			wantErr: `duplicate id "1"`,
		},
		{
			name:    "empty diagram id",
			dict:    Dictionary{Profile: Profile{Name: "x"}, Thinking: []Article{{ID: "1", Content: []Block{Diagram("", "")}}}},
			wantErr: "diagram block without diagramId",
		},
		{
			name:    "bad icon",
			dict:    Dictionary{Profile: Profile{Name: "x"}, Growth: []LifeEvent{{IconType: "rocket"}}},
			wantErr: `invalid iconType "rocket"`,
		},
		{
			name:    "coordinates out of range",
			dict:    Dictionary{Profile: Profile{Name: "x"}, Growth: []LifeEvent{{IconType: IconSchool, Coordinates: Coordinates{X: 101, Y: 5}}}},
			wantErr: "outside [0,100]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dict.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFSMissingLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"zh.yaml": {Data: []byte("profile:\n  name: x\n")},
	}
	if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "en.yaml") {
		t.Fatalf("expected en.yaml error, got %v", err)
	}
}

func TestLoadFSRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"zh.yaml": {Data: []byte("profile:\n  name: x\nmystery: 1\n")},
		"en.yaml": {Data: []byte("profile:\n  name: x\n")},
	}
	if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "parsing zh.yaml") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for _, code := range Languages {
		body := "profile:\n  name: " + code + "\nthinking:\n  - id: \"x\"\n    content:\n      - \"hello\"\n"
		if err := os.WriteFile(filepath.Join(dir, code+".yaml"), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	store, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	en, _ := store.Dictionary("en")
	if en.Profile.Name != "en" || en.Thinking[0].Content[0] != Text("hello") {
		t.Errorf("unexpected dictionary: %+v", en)
	}

	if _, err := LoadDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}
}

func TestNewStore(t *testing.T) {
	d := &Dictionary{Profile: Profile{Name: "x"}}
	if _, err := NewStore(map[string]*Dictionary{"en": d}); err == nil {
		t.Error("expected missing zh error")
	}
	if _, err := NewStore(map[string]*Dictionary{"en": d, "zh": d}); err != nil {
		t.Errorf("NewStore: %v", err)
	}
}

func TestSplitHighlight(t *testing.T) {
	tests := []struct {
		in, title, body string
	}{
		{"Titan Migration: Led a refactor", "Titan Migration", "Led a refactor"},
		{"容灾建设：通过设计端到端容灾流程", "容灾建设", "通过设计端到端容灾流程"},
		{"A: b: c", "A", "b: c"},
		{"no separator here", "", "no separator here"},
		{"time 10:30 only", "", "time 10:30 only"},
	}
	for _, tt := range tests {
		title, body := SplitHighlight(tt.in)
		if title != tt.title || body != tt.body {
			t.Errorf("SplitHighlight(%q) = (%q, %q), want (%q, %q)", tt.in, title, body, tt.title, tt.body)
		}
	}
}

func TestMailtoURL(t *testing.T) {
	p := Profile{Contact: Contact{Email: " me@example.com "}}
	if got := p.MailtoURL(); got != "mailto:me@example.com" {
		t.Errorf("MailtoURL = %q", got)
	}
	if got := (Profile{}).MailtoURL(); got != "" {
		t.Errorf("empty MailtoURL = %q", got)
	}
}

func TestIsDataFile(t *testing.T) {
	for name, want := range map[string]bool{
		"content/en.yaml": true,
		"zh.yaml":         true,
		"fr.yaml":         false,
		"en.yaml.swp":     false,
	} {
		if got := IsDataFile(name); got != want {
			t.Errorf("IsDataFile(%q) = %v, want %v", name, got, want)
		}
	}
}
