// Package combo generates codes for combinations of plants or costumes.
//
// Each mode of the catalog manifest offers a pool of identifiers and a
// selection range. A selection is canonicalized by pool position, so the
// same items always produce the same key regardless of the order they were
// picked in. Local modes look the key up in their cached catalog; remote
// modes send it to the code search backend.
//
// # HTTP Endpoints
//
//   - GET /combo/modes : Lists the modes.
//   - GET /combo/modes/:id : Returns a mode with its named items.
//   - POST /combo/modes/:id/generate : Returns the code for {"ids": [...]}.
package combo
