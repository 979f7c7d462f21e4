// Package api handles incoming HTTP requests for the task resource: routing,
// request decoding and validation, and response formatting. It adapts HTTP
// requests to calls on a store.TaskStore.
package api
