// Package mocks provides hand-written test doubles for the interfaces the
// HTTP layer depends on. Each mock records its calls and lets a test either
// supply a custom function or fixed return values.
package mocks
