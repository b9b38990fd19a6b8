// Package naming maps display strings to identifiers that are safe to use
// as element aliases in the emitted diagram markup.
//
// # Normalization
//
// [Normalize] lower-cases its input, collapses every run of whitespace or
// hyphens into a single underscore, drops everything outside [a-z0-9_] and
// prefixes the result with "ID_":
//
//	naming.Normalize("Customer Portal")   // "ID_customer_portal"
//	naming.Normalize("Order-Service v2")  // "ID_order_service_v2"
//	naming.Normalize("!!!")               // "ID_element"
//
// Normalize is total and pure. Its own output is a fixed point, so values
// that were already normalized can be passed through again safely.
//
// Names are stored verbatim in the model; normalization only happens at
// render time.
package naming
