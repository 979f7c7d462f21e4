// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the request handlers, allowing the HTTP layer to remain independent of
// the SQL dialect in use.
package store
