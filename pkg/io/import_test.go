package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkerrors "github.com/localgod/plantkit/pkg/errors"
)

const jsonModel = `{
  "name": "landscape",
  "title": "Application Landscape",
  "scale": 1.5,
  "includes": ["<archimate/Archimate>"],
  "elements": [
    {"id": "crm", "name": "CRM", "type": "Application_Component", "label": "CRM",
     "extra": {"owner": "sales", "weight": 3}},
    {"id": "erp", "type": "Application_Component", "label": "ERP",
     "children": [{"id": "ledger", "type": "Application_Function", "label": "Ledger"}]}
  ],
  "relations": [
    {"source": "crm", "target": "erp", "type": "Rel_Flow", "label": "orders"}
  ]
}`

const tomlModel = `
name = "landscape"
title = "Application Landscape"
scale = 1.5
includes = ["<archimate/Archimate>"]

[[elements]]
id = "crm"
name = "CRM"
type = "Application_Component"
label = "CRM"

[elements.extra]
owner = "sales"
weight = 3

[[elements]]
id = "erp"
type = "Application_Component"
label = "ERP"

[[elements.children]]
id = "ledger"
type = "Application_Function"
label = "Ledger"

[[relations]]
source = "crm"
target = "erp"
type = "Rel_Flow"
label = "orders"
`

const yamlModel = `
name: landscape
title: Application Landscape
scale: 1.5
includes:
  - <archimate/Archimate>
elements:
  - id: crm
    name: CRM
    type: Application_Component
    label: CRM
    extra:
      owner: sales
      weight: 3
  - id: erp
    type: Application_Component
    label: ERP
    children:
      - id: ledger
        type: Application_Function
        label: Ledger
relations:
  - source: crm
    target: erp
    type: Rel_Flow
    label: orders
`

func TestRead_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, jsonModel},
		{"toml", FormatTOML, tomlModel},
		{"yaml", FormatYAML, yamlModel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Read(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			checkLandscape(t, m)
		})
	}
}

func checkLandscape(t *testing.T, m *Model) {
	t.Helper()
	if m.Name != "landscape" || m.Title != "Application Landscape" || m.Scale != 1.5 {
		t.Errorf("metadata = %q/%q/%v", m.Name, m.Title, m.Scale)
	}
	if len(m.Includes) != 1 || m.Includes[0] != "<archimate/Archimate>" {
		t.Errorf("Includes = %v", m.Includes)
	}
	if len(m.Elements) != 2 || m.ElementCount() != 3 {
		t.Fatalf("elements = %d top-level, %d total", len(m.Elements), m.ElementCount())
	}
	if got := m.Elements[1].Children[0].ID; got != "ledger" {
		t.Errorf("child id = %q, want ledger", got)
	}
	if len(m.Relations) != 1 || m.Relations[0].Label != "orders" {
		t.Errorf("Relations = %+v", m.Relations)
	}

	props := m.Elements[0].Properties()
	if props.Get("owner") != "sales" {
		t.Errorf("owner = %q", props.Get("owner"))
	}
	if v, ok := props.Lookup("weight"); !ok || !v.IsNumber() {
		t.Errorf("weight = %v, %v; want a number", v, ok)
	}
}

func TestRead_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   pkerrors.Code
	}{
		{"malformed json", FormatJSON, `{"elements": [`, pkerrors.ErrCodeInvalidFormat},
		{"malformed toml", FormatTOML, `[[elements]`, pkerrors.ErrCodeInvalidFormat},
		{"empty yaml", FormatYAML, ``, pkerrors.ErrCodeInvalidFormat},
		{"empty id", FormatJSON, `{"elements": [{"id": ""}]}`, pkerrors.ErrCodeInvalidInput},
		{"duplicate id", FormatJSON, `{"elements": [{"id": "a", "children": [{"id": "a"}]}]}`, pkerrors.ErrCodeDuplicateID},
		{"unknown source", FormatJSON, `{"elements": [{"id": "a"}], "relations": [{"source": "x", "target": "a"}]}`, pkerrors.ErrCodeUnresolvedReference},
		{"unknown target", FormatJSON, `{"elements": [{"id": "a"}], "relations": [{"source": "a", "target": "x"}]}`, pkerrors.ErrCodeUnresolvedReference},
		{"unknown format", Format("xml"), `<x/>`, pkerrors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			if !pkerrors.Is(err, tt.code) {
				t.Errorf("Read() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRead_UnresolvedNamesSide(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"elements": [{"id": "a"}], "relations": [{"source": "a", "target": "ghost"}]}`))
	if err == nil || !strings.Contains(err.Error(), `target "ghost"`) {
		t.Errorf("error = %v, want it to name the target side", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"m.json":     FormatJSON,
		"m.TOML":     FormatTOML,
		"dir/m.yaml": FormatYAML,
		"m.yml":      FormatYAML,
		"steps.csv":  FormatCSV,
	}
	for path, want := range tests {
		got, err := DetectFormat(path)
		if err != nil || got != want {
			t.Errorf("DetectFormat(%q) = %q, %v; want %q", path, got, err, want)
		}
	}

	if _, err := DetectFormat("model.xml"); !pkerrors.Is(err, pkerrors.ErrCodeUnsupported) {
		t.Errorf("DetectFormat(xml) error = %v, want UNSUPPORTED", err)
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landscape.toml")
	if err := os.WriteFile(path, []byte(tomlModel), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	checkLandscape(t, m)
}

func TestImport_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Import(filepath.Join(dir, "missing.json")); !pkerrors.Is(err, pkerrors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := Import(""); !pkerrors.Is(err, pkerrors.ErrCodeInvalidPath) {
		t.Errorf("empty path error = %v, want INVALID_PATH", err)
	}

	other := filepath.Join(dir, "model.xml")
	if err := os.WriteFile(other, []byte("<x/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(other); !pkerrors.Is(err, pkerrors.ErrCodeUnsupported) {
		t.Errorf("xml error = %v, want UNSUPPORTED", err)
	}
}

func TestElement_DisplayName(t *testing.T) {
	if got := (Element{ID: "crm"}).DisplayName(); got != "crm" {
		t.Errorf("DisplayName() = %q, want id fallback", got)
	}
	if got := (Element{ID: "crm", Name: "CRM"}).DisplayName(); got != "CRM" {
		t.Errorf("DisplayName() = %q, want CRM", got)
	}
}
