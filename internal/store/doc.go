// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic. Each record kind is persisted as a flat list
// that can be loaded whole, appended to, rewritten, or filtered.
package store
