// Package sprite derives legend entries (sprites) from element and relation
// type names and keeps them in a deduplicated, insertion-ordered registry.
//
// # Derivation
//
// [Derive] maps a type name to a [Sprite]:
//
//	sprite.Derive("Application_Component")
//	// {Alias: "Application_Component_Sprite", Path: "application-component", Label: "Application Component"}
//
//	sprite.Derive("Rel_Flow")
//	// {Alias: "Flow_Sprite", Path: "flow", Label: "Flow"}
//
// Relation types ("Rel_<Kind>[_<Direction>]") are reduced to their kind, and
// the American spelling "Realization" is rewritten to the British
// "Realisation" used by the ArchiMate sprite library.
//
// # Registry
//
// A [Registry] is unique on the (Alias, Path) pair. Adding a duplicate pair
// is a silent no-op; the same alias with a different path is a separate
// entry.
package sprite
