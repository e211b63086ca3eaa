// Package response wraps engine results.
//
// A Result is the mutable slot the dispatch hands to a backend: exactly one
// of a JSON object, a FlatBuffer builder or a raw byte payload, chosen by the
// requested output format before the backend runs. A Response wraps a
// populated Result and is immutable; it exposes the payload as rendered JSON
// text, as the finished FlatBuffer byte region, or as raw tile bytes, plus
// direct field accessors into JSON-shaped results.
//
// FlatBuffer extraction follows a uniform pointer-plus-exact-size contract.
// A builder grows its backing array from the end, so the finished region
// normally starts at an offset into the allocation; in that case the region
// is copied into a fresh exactly-sized slice. When the region happens to
// start at the allocation start it is handed over without a copy.
package response
