// Package shared holds the request and response helpers used by the API
// handlers and middleware: trace IDs in the context, JSON decoding and
// validation, and JSON/error response writers.
package shared
