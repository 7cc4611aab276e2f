// Package search looks up the code of a single plant or costume.
//
// Names are resolved by the code search backend: suggestions offer fuzzy
// matches while typing, and a code search returns the {i, r, e} code object
// for a chosen name.
//
// # HTTP Endpoints
//
//   - GET /search/suggestions?q= : Fuzzy name matches.
//   - POST /search/code : Code for {"keyword": "..."}.
package search
