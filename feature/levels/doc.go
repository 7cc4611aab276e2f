// Package levels serves level codes.
//
// Built-in levels come from the levels file named in the catalog manifest,
// a single JSON object mapping level names to code objects, and keep the
// file's order. Custom levels are stored in the custom_levels table and are
// listed before the built-in ones. A new custom level needs an unused name
// and a code that is a JSON object.
//
// # HTTP Endpoints
//
//   - GET /levels?q= : Lists levels, optionally filtered by name.
//   - POST /levels : Stores {"name": "...", "code": "{...}"}.
package levels
