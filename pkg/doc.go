// Package pkg provides the libraries behind PlantKit, a model and rendering
// engine for PlantUML architecture diagrams.
//
// # Overview
//
// PlantKit turns a tree of typed elements plus the relations between them
// into a PlantUML document: element macros nested by containment, relation
// macros, sprite declarations for every type in use and a legend.
//
// # Architecture
//
// The data flow through PlantKit:
//
//	Model file (JSON, TOML, YAML, CSV)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [plantkit] package (facade: register elements, relate them)
//	         ↓
//	    [model] + [naming] packages (entity graph, identifiers)
//	         ↓
//	    [render] + [sprite] packages (macro lines, legend entries)
//	         ↓
//	    [diagram] package (document assembly)
//	         ↓
//	    PlantUML text
//
// # Quick Start
//
// Build a diagram with the facade:
//
//	kit := plantkit.New("order_flow", plantkit.WithTitle("Order flow"))
//	proc := func(label string) model.Properties {
//	    return model.Properties{Type: "Business_Process", Label: label}
//	}
//	kit.Element("receive", "Receive order", proc("Receive")).
//	    Element("ship", "Ship order", proc("Ship")).
//	    Relate("receive", "ship", "Rel_Triggering", "")
//	text, err := kit.Render()
//
// Or render a model file through the cached pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "landscape.yaml"})
//
// # Main Packages
//
//   - [model]: entities, typed properties and the insertion-ordered graph
//   - [naming]: identifier normalization
//   - [sprite]: sprite derivation and the legend registry
//   - [diagram]: the document and its fixed output layout
//   - [render]: PlantUML macro lines for entities and relations
//   - [plantkit]: the fluent facade tying the above together
//
// # Supporting Packages
//
//   - [io]: model files in JSON, TOML, YAML and CSV
//   - [pipeline]: load, render and cache orchestration
//   - [cache]: file, Redis and null document caches
//   - [observability]: pipeline and cache hooks
//   - [errors]: coded errors shared by every layer
//   - [buildinfo]: version information injected at build time
//
// [model]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/model
// [naming]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/naming
// [sprite]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/sprite
// [diagram]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/diagram
// [render]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/render
// [plantkit]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/plantkit
// [io]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/localgod/plantkit/pkg/buildinfo
package pkg
