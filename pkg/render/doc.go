// Package render turns entity trees and relation graphs into PlantUML
// markup blocks.
//
// # Overview
//
// Each entity is written as a macro call named after its type, with the
// normalized entity name as identifier and its label as the quoted text:
//
//	Application_Component(ID_crm, "Customer Relations")
//
// An entity with children opens a block and its children are written one
// level deeper, two spaces per level:
//
//	Grouping(ID_core, "Core") {
//	  Application_Component(ID_crm, "Customer Relations")
//	}
//
// Relations are written one per line in graph order:
//
//	Rel_Flow(ID_crm, ID_erp, "orders")
//
// # Populating Documents
//
// [Populate] appends one body block per root tree plus one block for the
// relations of the graph, then registers a sprite for every distinct
// element and relation type it encountered:
//
//	doc := diagram.New("landscape", "Landscape")
//	render.Populate(doc, roots, g)
//	fmt.Print(doc.Output())
package render
