// Package domain contains the Task entity and the validation rules that every
// persisted task must satisfy. It has no dependencies on storage or transport.
package domain
