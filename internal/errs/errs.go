// Package errs defines the closed set of error shapes the API returns.
//
// Every failure that reaches a client is expressed as an *HTTPError:
// a machine-readable code, a human-readable message, optional field-level
// detail for validation failures, and the HTTP status the global error
// handler should write. Handlers and services return these; nothing else
// decides status codes.
package errs
