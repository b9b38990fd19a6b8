// Package io reads and writes PlantKit model files.
//
// # Overview
//
// A model file is a declarative description of a diagram: document
// metadata, a forest of elements and the relations between them. The
// loader turns such a file into a [Model], which the plantkit facade turns
// into a rendered document.
//
// # Formats
//
// The format is chosen from the file extension (see [DetectFormat]):
//
//   - .json: the canonical form, also produced by [WriteJSON]
//   - .toml: the same structure in TOML
//   - .yaml / .yml: the same structure in YAML
//   - .csv: a flat list of process steps (see [ReadCSV])
//
// A JSON model looks like this:
//
//	{
//	  "name": "landscape",
//	  "title": "Application Landscape",
//	  "includes": ["<archimate/Archimate>"],
//	  "elements": [
//	    {"id": "crm", "name": "CRM", "type": "Application_Component", "label": "CRM"},
//	    {"id": "erp", "name": "ERP", "type": "Application_Component", "label": "ERP",
//	     "children": [{"id": "ledger", "type": "Application_Function"}]}
//	  ],
//	  "relations": [
//	    {"source": "crm", "target": "erp", "type": "Rel_Flow", "label": "orders"}
//	  ]
//	}
//
// # Element Fields
//
// Required:
//   - id: unique handle used by relations; not rendered
//
// Optional:
//   - name: display name, normalized into the rendered identifier (defaults to id)
//   - type: element macro, e.g. Application_Component
//   - label: quoted text of the element
//   - extra: additional string or number properties
//   - children: nested elements
//
// # Import
//
// Use [Import] to read a file path, or [Read] with an explicit [Format] to
// read from any io.Reader:
//
//	m, err := io.Import("landscape.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every reader validates the result with [Model.Validate]: element ids must
// be valid and unique and every relation endpoint must name a known element.
//
// # Export
//
// [Export] writes a model in the format implied by the target path, and
// [WriteDocument] writes rendered markup to a file.
package io
