// Package plantkit is the fluent entry point for building and rendering
// PlantUML documents.
//
// # Overview
//
// A [Kit] owns a document, the element trees and the relation graph. Every
// builder method returns the same *Kit so calls can be chained; elements
// are addressed by caller-chosen ids:
//
//	kit := plantkit.New("landscape", plantkit.WithTitle("Application Landscape")).
//	    Include("<archimate/Archimate>").
//	    Element("core", "Core Systems", model.Properties{Type: "Grouping"}).
//	    Child("core", "crm", "CRM", model.Properties{Type: "Application_Component", Label: "CRM"}).
//	    Child("core", "erp", "ERP", model.Properties{Type: "Application_Component", Label: "ERP"}).
//	    Relate("crm", "erp", "Rel_Flow", "orders")
//
//	text, err := kit.Render()
//
// # Errors
//
// The first failing call is recorded and every later builder call becomes a
// no-op. [Kit.Err] and [Kit.Render] report it. Failures carry codes from
// pkg/errors:
//
//   - UNRESOLVED_REFERENCE: a relation or child names an unknown id
//   - DUPLICATE_ID: an id is registered twice
//   - INVALID_INPUT: an id is empty or malformed
//   - FACADE_NOT_INITIALIZED: the Kit was not created with [New] or [FromModel]
//
// # Models
//
// [FromModel] builds a Kit from a loaded model file (see pkg/io).
package plantkit
