package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/localgod/plantkit/pkg/cache"
	pkerrors "github.com/localgod/plantkit/pkg/errors"
	"github.com/localgod/plantkit/pkg/observability"
)

const testModel = `{
  "name": "apps",
  "title": "Apps",
  "elements": [
    {"id": "crm", "name": "CRM", "type": "Application_Component", "label": "CRM"},
    {"id": "erp", "name": "ERP", "type": "Application_Component", "label": "ERP"}
  ],
  "relations": [{"source": "crm", "target": "erp", "type": "Rel_Flow", "label": "orders"}]
}`

func writeModel(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"toml", false},
		{"yaml", false},
		{"csv", false},
		{"JSON", true},
		{"xml", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Input: "model.toml"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("valid options: %v", err)
	}
	if opts.Format != "toml" {
		t.Errorf("Format = %q, want toml", opts.Format)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	explicit := Options{Input: "steps.txt", Format: "csv"}
	if err := explicit.ValidateAndSetDefaults(); err != nil {
		t.Errorf("explicit format should not need an extension: %v", err)
	}

	tests := []struct {
		name string
		opts Options
		code pkerrors.Code
	}{
		{"missing input", Options{}, pkerrors.ErrCodeInvalidInput},
		{"unknown extension", Options{Input: "model.xml"}, pkerrors.ErrCodeUnsupported},
		{"bad format", Options{Input: "model.json", Format: "xml"}, pkerrors.ErrCodeInvalidInput},
		{"negative scale", Options{Input: "model.json", Scale: -1}, pkerrors.ErrCodeInvalidInput},
		{"control chars", Options{Input: "mod\x00el.json"}, pkerrors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); !pkerrors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDocumentKeyOpts(t *testing.T) {
	a := Options{Format: "json", Title: "A"}
	b := Options{Format: "json", Title: "B"}
	k := cache.NewDefaultKeyer()
	if k.DocumentKey("h", a.DocumentKeyOpts()) == k.DocumentKey("h", b.DocumentKeyOpts()) {
		t.Error("title override should change the document key")
	}
}

func TestLoad(t *testing.T) {
	path := writeModel(t, "steps.csv", "a,Start,b\nb,End\n")

	m, err := Load(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.ElementCount() != 2 || len(m.Relations) != 1 {
		t.Errorf("model = %d elements, %d relations", m.ElementCount(), len(m.Relations))
	}

	if _, err := Load(context.Background(), Options{Input: filepath.Join(t.TempDir(), "missing.json")}); !pkerrors.Is(err, pkerrors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRender_Overrides(t *testing.T) {
	path := writeModel(t, "apps.json", testModel)
	m, err := Load(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatal(err)
	}

	doc, err := Render(context.Background(), m, Options{
		Name:         "renamed",
		Title:        "Overridden",
		Scale:        0.5,
		Layout:       "top to bottom direction",
		Includes:     []string{"<archimate/Archimate>"},
		SpriteSource: "icons",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		"@startuml renamed\n",
		"!include <archimate/Archimate>\n",
		"sprite $Flow_Sprite jar:icons/flow\n",
		"scale 0.5\n",
		"title Overridden\n",
		"top to bottom direction\n",
		`Rel_Flow(ID_crm, ID_erp, "orders")` + "\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestRunner_Execute(t *testing.T) {
	ctx := context.Background()
	path := writeModel(t, "apps.json", testModel)

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	first, err := runner.Execute(ctx, Options{Input: path})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheHit {
		t.Error("first run should miss the cache")
	}
	if first.Model == nil || first.Stats.ElementCount != 2 || first.Stats.RelationCount != 1 {
		t.Errorf("stats = %+v", first.Stats)
	}
	if !strings.HasPrefix(first.Document, "@startuml apps\n") {
		t.Errorf("Document =\n%s", first.Document)
	}

	second, err := runner.Execute(ctx, Options{Input: path})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit || second.Document != first.Document || second.ModelHash != first.ModelHash {
		t.Errorf("second run should be served from the cache: hit=%v", second.CacheHit)
	}

	third, err := runner.Execute(ctx, Options{Input: path, Title: "Other"})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit || !strings.Contains(third.Document, "title Other\n") {
		t.Error("changed options should miss the cache")
	}

	refreshed, err := runner.Execute(ctx, Options{Input: path, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheHit {
		t.Error("Refresh should bypass the cache lookup")
	}
}

func TestRunner_ExecuteInvalidModel(t *testing.T) {
	path := writeModel(t, "bad.json", `{"elements": [{"id": "a"}], "relations": [{"source": "a", "target": "b"}]}`)

	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Input: path})
	if !pkerrors.Is(err, pkerrors.ErrCodeUnresolvedReference) {
		t.Errorf("error = %v, want UNRESOLVED_REFERENCE", err)
	}
}

func TestRunner_ExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeModel(t, "apps.json", testModel)
	if _, err := NewRunner(nil, nil, nil).Execute(ctx, Options{Input: path}); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRunner_Hooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	rec := &recordingHooks{}
	observability.SetPipelineHooks(rec)
	observability.SetCacheHooks(rec)

	ctx := context.Background()
	path := writeModel(t, "apps.json", testModel)
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)

	for range 2 {
		if _, err := runner.Execute(ctx, Options{Input: path}); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{
		"cache-miss:document",
		"load-start", "load-complete:2",
		"render-start:apps", "render-complete:apps",
		"cache-set:document",
		"cache-hit:document",
	}
	if strings.Join(rec.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestRunner_Clear(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := NewRunner(c, nil, nil).Clear(ctx); err != nil {
		t.Errorf("Clear(file cache): %v", err)
	}

	runner := NewRunner(plainCache{}, nil, nil)
	if err := runner.Clear(ctx); !pkerrors.Is(err, pkerrors.ErrCodeUnsupported) {
		t.Errorf("Clear(plain cache) = %v, want UNSUPPORTED", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	events []string
}

func (r *recordingHooks) OnLoadStart(context.Context, string) {
	r.events = append(r.events, "load-start")
}

func (r *recordingHooks) OnLoadComplete(_ context.Context, _ string, n int, _ time.Duration, _ error) {
	r.events = append(r.events, "load-complete:"+strconv.Itoa(n))
}

func (r *recordingHooks) OnRenderStart(_ context.Context, name string) {
	r.events = append(r.events, "render-start:"+name)
}

func (r *recordingHooks) OnRenderComplete(_ context.Context, name string, _ int, _ time.Duration, _ error) {
	r.events = append(r.events, "render-complete:"+name)
}

func (r *recordingHooks) OnCacheHit(_ context.Context, k string) {
	r.events = append(r.events, "cache-hit:"+k)
}

func (r *recordingHooks) OnCacheMiss(_ context.Context, k string) {
	r.events = append(r.events, "cache-miss:"+k)
}

func (r *recordingHooks) OnCacheSet(_ context.Context, k string, _ int) {
	r.events = append(r.events, "cache-set:"+k)
}

// plainCache is a Cache without Clear.
type plainCache struct{}

func (plainCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (plainCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (plainCache) Delete(context.Context, string) error                     { return nil }
func (plainCache) Close() error                                             { return nil }
