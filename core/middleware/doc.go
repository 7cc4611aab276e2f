// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation protecting every route except the docs.
//   - rayid: per-request ray id stored in the context and echoed in the
//     X-Ray-ID response header for log correlation.
package middleware
