// Package remote is the client for the code search backend.
//
// The backend answers two JSON endpoints: POST /api/search resolves an item
// name or a canonical combination key to a code, and POST
// /api/search/suggestions returns fuzzy name matches. Both wrap their result
// in a {success, data, message} envelope.
//
// Connection failures and 5xx answers are retried with avast/retry-go.
// A success=false answer is final and surfaces as *RemoteError. Timeouts and
// unreachable hosts map to ErrTimeout and ErrUnreachable so callers can show
// a friendly message.
package remote
