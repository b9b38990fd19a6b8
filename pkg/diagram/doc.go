// Package diagram assembles PlantUML diagram-description documents.
//
// # Overview
//
// A [Document] holds presentation metadata (name, title, scale, layout
// direction, includes), pre-rendered body blocks and a sprite registry.
// [Document.Output] assembles them in a fixed order:
//
//	@startuml <name>
//	!include <path>                              (one per include)
//	sprite $<alias> jar:<source>/<path>          (one per sprite)
//	scale <scale>
//	title <title>
//	<body blocks, joined by newlines>
//	<layout direction>
//	legend left
//	====
//	<$<alias>> : <label>                         (one per sprite)
//	endlegend
//	@enduml
//
// No section is skipped when its source is empty: a document without
// sprites still emits the legend markers.
//
// Output is idempotent and free of side effects, so it can be called
// repeatedly, for example to snapshot-test intermediate states.
//
// # Usage
//
//	doc := diagram.New("capabilities", "Capability Map")
//	doc.AddInclude("<archimate/Archimate>")
//	doc.AddToBody(`Business_Capability(ID_sales, "Sales")`)
//	doc.AddSprite(sprite.Derive("Business_Capability"))
//	fmt.Print(doc.Output())
package diagram
